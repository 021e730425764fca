package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"animal.py": "class Animal(Organism):\n    pass\n",
		"dog.py":    "class Dog(Animal):\n    pass\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func contentText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestNewServer(t *testing.T) {
	s := NewServer("1.2.3")
	assert.NotNil(t, s.server)

	s = NewServer("")
	assert.NotNil(t, s.server)
}

func TestHandleTraceHierarchy(t *testing.T) {
	dir := fixtureTree(t)

	result, _, err := handleTraceHierarchy(context.Background(), nil, TraceInput{
		Class:  "Dog",
		Source: dir,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	text := contentText(t, result)
	assert.Contains(t, text, "Dog")
	assert.Contains(t, text, "Animal")
	assert.Contains(t, text, "Organism")
}

func TestHandleTraceHierarchyMissingClass(t *testing.T) {
	result, _, err := handleTraceHierarchy(context.Background(), nil, TraceInput{})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleTraceHierarchyUnknownClass(t *testing.T) {
	dir := fixtureTree(t)

	result, _, err := handleTraceHierarchy(context.Background(), nil, TraceInput{
		Class:  "Unicorn",
		Source: dir,
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, contentText(t, result), "unrecognized class")
}

func TestHandleInheritanceGraph(t *testing.T) {
	dir := fixtureTree(t)

	result, _, err := handleInheritanceGraph(context.Background(), nil, GraphInput{
		Source:         dir,
		IncludeMetrics: true,
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	text := contentText(t, result)
	assert.Contains(t, text, "Dog")
	assert.Contains(t, text, "metrics")
}
