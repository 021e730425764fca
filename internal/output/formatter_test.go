package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatTOON, ParseFormat("toon"))
	assert.Equal(t, FormatMarkdown, ParseFormat("md"))
	assert.Equal(t, FormatMarkdown, ParseFormat("markdown"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat("garbage"))
}

func TestTableRenderText(t *testing.T) {
	table := NewTable(
		"Inheritance of Dog",
		[]string{"Node", "Class"},
		[][]string{
			{"1", "Dog"},
			{"2", "Animal"},
		},
		[]string{"Edges: 1", ""},
		nil,
	)

	var buf bytes.Buffer
	require.NoError(t, table.RenderText(&buf, false))

	out := buf.String()
	assert.Contains(t, out, "Inheritance of Dog")
	assert.Contains(t, out, "Dog")
	assert.Contains(t, out, "Animal")
	assert.Contains(t, out, "Edges: 1")
}

func TestTableRenderMarkdown(t *testing.T) {
	table := NewTable(
		"Edges",
		[]string{"From", "To"},
		[][]string{{"1", "2"}},
		nil,
		nil,
	)

	var buf bytes.Buffer
	require.NoError(t, table.RenderMarkdown(&buf))

	out := buf.String()
	assert.Contains(t, out, "## Edges")
	assert.Contains(t, out, "| From | To |")
	assert.Contains(t, out, "| --- | --- |")
	assert.Contains(t, out, "| 1 | 2 |")
}

func TestTableRenderDataFallsBackToRows(t *testing.T) {
	table := NewTable("", []string{"Class", "Parent"}, [][]string{{"Dog", "Animal"}}, nil, nil)

	data, ok := table.RenderData().([]map[string]string)
	require.True(t, ok)
	require.Len(t, data, 1)
	assert.Equal(t, "Dog", data[0]["Class"])
	assert.Equal(t, "Animal", data[0]["Parent"])
}

func TestFormatterJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	f, err := NewFormatter(FormatJSON, path, true)
	require.NoError(t, err)

	// Redirecting to a file always disables color.
	assert.False(t, f.Colored())

	payload := map[string]any{"class": "Dog", "edges": 2}
	require.NoError(t, f.Output(payload))
	require.NoError(t, f.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "Dog", decoded["class"])
}

func TestFormatterTOON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toon")
	f, err := NewFormatter(FormatTOON, path, false)
	require.NoError(t, err)

	require.NoError(t, f.Output(map[string]string{"class": "Dog"}))
	require.NoError(t, f.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "class")
	assert.Contains(t, string(raw), "Dog")
}

func TestSectionRenderText(t *testing.T) {
	s := &Section{
		Title:   "Summary",
		Content: "3 classes",
		Sections: []Section{
			{Title: "Detail", Content: "1 tree"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, s.RenderText(&buf, false))

	out := buf.String()
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, strings.Repeat("=", len("Summary")))
	assert.Contains(t, out, "Detail")
	assert.Contains(t, out, strings.Repeat("-", len("Detail")))
}
