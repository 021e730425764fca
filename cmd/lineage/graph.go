package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/lineagehq/lineage/internal/output"
	"github.com/lineagehq/lineage/internal/progress"
	"github.com/lineagehq/lineage/internal/service/trace"
	"github.com/lineagehq/lineage/pkg/graph"
)

func graphCmd() *cli.Command {
	return &cli.Command{
		Name:      "graph",
		Aliases:   []string{"dag"},
		Usage:     "Build the inheritance graph of a source tree (Mermaid output)",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "direction",
				Value: "TD",
				Usage: "Mermaid direction: TD, LR, BT",
			},
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "Include PageRank and component metrics",
			},
		},
		Action: runGraphCmd,
	}
}

func runGraphCmd(c *cli.Context) error {
	source := c.Args().Get(0)
	if source == "" {
		source = "."
	}
	includeMetrics := c.Bool("metrics")

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	var tracker *progress.Tracker
	svc := trace.New(cfg)
	g, err := svc.Graph(trace.Options{
		Source: source,
		OnIndexStart: func(total int) {
			tracker = progress.NewTracker("Indexing sources...", total)
		},
		OnIndexFile: func() {
			if tracker != nil {
				tracker.Tick()
			}
		},
	})
	if tracker != nil {
		tracker.FinishSuccess()
	}
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), true)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if formatter.Format() == output.FormatJSON || formatter.Format() == output.FormatTOON {
		if includeMetrics {
			return formatter.Output(struct {
				Graph   *graph.DependencyGraph `json:"graph" toon:"graph"`
				Metrics *graph.Metrics         `json:"metrics" toon:"metrics"`
			}{g, graph.CalculateMetrics(g)})
		}
		return formatter.Output(g)
	}

	mermaid := "```mermaid\n" + g.ToMermaidDirected(graph.MermaidDirection(c.String("direction"))) + "```"

	if formatter.Format() == output.FormatMarkdown {
		section := &output.Section{Title: "Inheritance Graph", Content: mermaid}
		if includeMetrics {
			m := graph.CalculateMetrics(g)
			section.Sections = append(section.Sections, output.Section{
				Title: "Metrics",
				Content: fmt.Sprintf(
					"- Nodes: %d\n- Edges: %d\n- Avg Degree: %.2f\n- Density: %.4f\n- Components: %d (largest: %d)",
					m.Summary.TotalNodes, m.Summary.TotalEdges, m.Summary.AvgDegree,
					m.Summary.Density, m.Summary.Components, m.Summary.LargestComponent),
			})
		}
		return formatter.Output(section)
	}

	w := formatter.Writer()
	fmt.Fprintln(w, mermaid)

	if includeMetrics {
		metrics := graph.CalculateMetrics(g)
		fmt.Fprintln(w)
		if formatter.Colored() {
			color.Cyan("Graph Metrics:")
		} else {
			fmt.Fprintln(w, "Graph Metrics:")
		}
		fmt.Fprintf(w, "  Nodes: %d\n", metrics.Summary.TotalNodes)
		fmt.Fprintf(w, "  Edges: %d\n", metrics.Summary.TotalEdges)
		fmt.Fprintf(w, "  Avg Degree: %.2f\n", metrics.Summary.AvgDegree)
		fmt.Fprintf(w, "  Density: %.4f\n", metrics.Summary.Density)
		fmt.Fprintf(w, "  Components: %d (largest: %d)\n",
			metrics.Summary.Components, metrics.Summary.LargestComponent)

		if len(metrics.NodeMetrics) > 0 {
			fmt.Fprintln(w)
			if formatter.Colored() {
				color.Cyan("Top Classes by PageRank:")
			} else {
				fmt.Fprintln(w, "Top Classes by PageRank:")
			}
			sort.Slice(metrics.NodeMetrics, func(i, j int) bool {
				return metrics.NodeMetrics[i].PageRank > metrics.NodeMetrics[j].PageRank
			})
			for i, nm := range metrics.NodeMetrics {
				if i >= 5 {
					break
				}
				fmt.Fprintf(w, "  %s: %.4f (in: %d, out: %d)\n",
					nm.Name, nm.PageRank, nm.InDegree, nm.OutDegree)
			}
		}
	}

	return nil
}
