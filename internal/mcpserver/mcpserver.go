// Package mcpserver exposes hierarchy tracing over the Model Context
// Protocol so agents can query inheritance structure directly.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server and registers the lineage tools.
type Server struct {
	server *mcp.Server
}

// NewServer creates an MCP server with the trace and graph tools registered.
func NewServer(version string) *Server {
	if version == "" {
		version = "dev"
	}
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "lineage",
			Version: version,
		},
		nil,
	)

	s := &Server{server: server}
	s.registerTools()
	return s
}

// Run starts the MCP server over stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "trace_hierarchy",
		Description: "Trace the inheritance chain of a class and every class " +
			"under its directory subtree. Returns a subclass-to-superclass edge " +
			"table with per-class node numbers.",
	}, handleTraceHierarchy)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "inheritance_graph",
		Description: "Build the full inheritance graph of a source tree. " +
			"Returns nodes, edges, and optionally PageRank and component metrics.",
	}, handleInheritanceGraph)
}
