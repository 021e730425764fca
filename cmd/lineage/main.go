package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/lineagehq/lineage/internal/output"
	"github.com/lineagehq/lineage/internal/progress"
	"github.com/lineagehq/lineage/internal/service/trace"
	"github.com/lineagehq/lineage/pkg/config"
	"github.com/lineagehq/lineage/pkg/hierarchy"
)

var (
	version = "dev"
	commit  = "none"    //nolint:unused // set via ldflags at build time
	date    = "unknown" //nolint:unused // set via ldflags at build time
)

func main() {
	app := &cli.App{
		Name:    "lineage",
		Usage:   "Class hierarchy inspection CLI",
		Version: version,
		Description: `Lineage indexes a source tree, traces class inheritance chains, and
emits the subclass-to-superclass dependency graph as an edge table,
JSON, TOON, or a Mermaid diagram.

Supports: Python, Ruby, Java, TypeScript, JavaScript, PHP, C#, C++`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (TOML, YAML, or JSON)",
				EnvVars: []string{"LINEAGE_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Output format: text, json, toon, markdown",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write output to file",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output",
			},
		},
		Commands: []*cli.Command{
			traceCmd(),
			graphCmd(),
			initCmd(),
			mcpCmd(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

// loadConfig honors the --config flag, falling back to the standard search.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault(), nil
}

func traceCmd() *cli.Command {
	return &cli.Command{
		Name:      "trace",
		Aliases:   []string{"tr"},
		Usage:     "Trace the inheritance hierarchy around a class",
		ArgsUsage: "<class> [path]",
		Description: `Traces the named class's superclass chain, then walks a directory
subtree and folds every class found there into the same forest.

The optional path argument picks the walk root relative to the class's
defining directory: a directory path, or a non-positive integer where 0
means the class's own directory and -2 walks two levels up.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "source",
				Aliases: []string{"s"},
				Value:   ".",
				Usage:   "Directory indexed for class definitions",
			},
		},
		Action: runTraceCmd,
	}
}

func runTraceCmd(c *cli.Context) error {
	if c.Args().Len() < 1 {
		return fmt.Errorf("missing class name (usage: lineage trace <class> [path])")
	}
	class := c.Args().Get(0)
	pathArg := c.Args().Get(1)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	var tracker, walk *progress.Tracker
	svc := trace.New(cfg)
	result, err := svc.Trace(class, trace.Options{
		Source: c.String("source"),
		Path:   pathArg,
		OnIndexStart: func(total int) {
			tracker = progress.NewTracker("Indexing sources...", total)
		},
		OnIndexFile: func() {
			if tracker != nil {
				tracker.Tick()
			}
		},
		OnClass: func(string) {
			if walk == nil {
				// Indexing is done once the walk reports its first class.
				if tracker != nil {
					tracker.FinishSuccess()
					tracker = nil
				}
				walk = progress.NewSpinner("Tracing classes...")
			}
			walk.Tick()
		},
	})
	if err != nil {
		if walk != nil {
			walk.FinishError(err)
		} else if tracker != nil {
			tracker.FinishError(err)
		}
		return err
	}
	if tracker != nil {
		tracker.FinishSuccess()
	}
	if walk != nil {
		walk.FinishSuccess()
	}

	formatter, err := output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), true)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if c.Bool("verbose") {
		formatter.Info("Indexed %d source files, walk root %s", result.Indexed, result.Root)
	}
	if len(result.Edges) == 0 {
		formatter.Warning("No inheritance edges found for %s", result.Class)
	}

	rows := make([][]string, 0, len(result.Edges))
	for _, e := range result.Edges {
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.From),
			e.Name,
			fmt.Sprintf("%d", e.To),
			result.Labels[e.To],
		})
	}

	table := output.NewTable(
		fmt.Sprintf("Inheritance of %s (root: %s)", result.Class, result.Root),
		[]string{"Node", "Class", "Parent Node", "Superclass"},
		rows,
		[]string{
			fmt.Sprintf("Edges: %d", len(result.Edges)),
			"",
			fmt.Sprintf("Trees: %d", result.Forest.Len()),
			fmt.Sprintf("Indexed: %d", result.Indexed),
		},
		struct {
			Class  string                 `json:"class" toon:"class"`
			Root   string                 `json:"root" toon:"root"`
			Edges  []hierarchy.EdgeRecord `json:"edges" toon:"edges"`
			Labels map[int]string         `json:"labels" toon:"labels"`
		}{result.Class, result.Root, result.Edges, result.Labels},
	)

	return formatter.Output(table)
}
