package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	toon "github.com/toon-format/toon-go"

	"github.com/lineagehq/lineage/internal/service/trace"
	"github.com/lineagehq/lineage/pkg/config"
	"github.com/lineagehq/lineage/pkg/graph"
	"github.com/lineagehq/lineage/pkg/hierarchy"
)

// TraceInput is the input for the trace_hierarchy tool.
type TraceInput struct {
	Class  string `json:"class" jsonschema:"Name of the class to trace."`
	Path   string `json:"path,omitempty" jsonschema:"Walk root relative to the class's directory: a directory, or a non-positive integer -k to walk k levels up. Defaults to the class's own directory."`
	Source string `json:"source,omitempty" jsonschema:"Directory indexed for class definitions. Defaults to current directory."`
}

// GraphInput is the input for the inheritance_graph tool.
type GraphInput struct {
	Source         string `json:"source,omitempty" jsonschema:"Directory to build the graph for. Defaults to current directory."`
	IncludeMetrics bool   `json:"include_metrics,omitempty" jsonschema:"Include PageRank, degree, and component metrics."`
}

// traceOutput is the serialized trace result.
type traceOutput struct {
	Class   string                 `json:"class" toon:"class"`
	Root    string                 `json:"root" toon:"root"`
	Indexed int                    `json:"indexed" toon:"indexed"`
	Edges   []hierarchy.EdgeRecord `json:"edges" toon:"edges"`
	Labels  map[int]string         `json:"labels" toon:"labels"`
}

// graphOutput is the serialized graph result.
type graphOutput struct {
	Graph   *graph.DependencyGraph `json:"graph" toon:"graph"`
	Metrics *graph.Metrics         `json:"metrics,omitempty" toon:"metrics,omitempty"`
}

func handleTraceHierarchy(ctx context.Context, req *mcp.CallToolRequest, input TraceInput) (*mcp.CallToolResult, any, error) {
	if input.Class == "" {
		return toolError("class is required")
	}

	svc := trace.New(config.LoadOrDefault())
	result, err := svc.Trace(input.Class, trace.Options{
		Source: input.Source,
		Path:   input.Path,
	})
	if err != nil {
		return toolError(err.Error())
	}

	return toolResult(traceOutput{
		Class:   result.Class,
		Root:    result.Root,
		Indexed: result.Indexed,
		Edges:   result.Edges,
		Labels:  result.Labels,
	})
}

func handleInheritanceGraph(ctx context.Context, req *mcp.CallToolRequest, input GraphInput) (*mcp.CallToolResult, any, error) {
	svc := trace.New(config.LoadOrDefault())
	g, err := svc.Graph(trace.Options{Source: input.Source})
	if err != nil {
		return toolError(err.Error())
	}

	out := graphOutput{Graph: g}
	if input.IncludeMetrics {
		out.Metrics = graph.CalculateMetrics(g)
	}
	return toolResult(out)
}

func toolResult(data any) (*mcp.CallToolResult, any, error) {
	out, err := toon.Marshal(data, toon.WithIndent(2))
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(out)},
		},
	}, nil, nil
}

func toolError(msg string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: "Error: " + msg},
		},
		IsError: true,
	}, nil, nil
}
