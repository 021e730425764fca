package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/lineagehq/lineage/internal/mcpserver"
)

func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Start MCP (Model Context Protocol) server for LLM tool integration",
		Description: `Starts an MCP server over stdio transport that exposes hierarchy
tracing as tools LLMs can invoke.

To use with Claude Desktop, add to your config:
  {
    "mcpServers": {
      "lineage": {
        "command": "lineage",
        "args": ["mcp"]
      }
    }
  }

Available tools:
  - trace_hierarchy     Inheritance edge table for a class and its subtree
  - inheritance_graph   Full inheritance graph with optional metrics`,
		Action: runMCPCmd,
	}
}

func runMCPCmd(c *cli.Context) error {
	server := mcpserver.NewServer(version)
	return server.Run(context.Background())
}
