package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDefaultConfig(t *testing.T) {
	content, err := generateDefaultConfig()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(content, "# Lineage CLI Configuration"))
	assert.Contains(t, content, "node_modules")
	assert.Contains(t, content, "gitignore")
}

func TestAppCommands(t *testing.T) {
	for _, cmd := range []string{"trace", "graph", "init", "mcp"} {
		t.Run(cmd, func(t *testing.T) {
			switch cmd {
			case "trace":
				assert.Equal(t, "trace", traceCmd().Name)
			case "graph":
				assert.Equal(t, "graph", graphCmd().Name)
			case "init":
				assert.Equal(t, "init", initCmd().Name)
			case "mcp":
				assert.Equal(t, "mcp", mcpCmd().Name)
			}
		})
	}
}
