package hierarchy

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lineagehq/lineage/pkg/graph"
)

func TestTreeEdgesNumbersUnkeyedParents(t *testing.T) {
	tr := NewTree()
	tr.Insert("A", []string{"B"}, 1)
	tr.Insert("B", []string{"C"}, 2)
	tr.Insert("D", []string{"C"}, 3)

	records, labels, err := TreeEdges(tr)
	require.NoError(t, err)

	// C never became a key, so it gets the first number past the tree max,
	// shared across both edges that reference it.
	want := []EdgeRecord{
		{Name: "A", From: 1, To: 2},
		{Name: "B", From: 2, To: 4},
		{Name: "D", From: 3, To: 4},
	}
	assert.Equal(t, want, records)
	assert.Equal(t, "C", labels[4])
	assert.Equal(t, "A", labels[1])
}

func TestTreeEdgesSortedByFrom(t *testing.T) {
	tr := NewTree()
	tr.Insert("D", []string{"C"}, 3)
	tr.Insert("A", []string{"B"}, 1)
	tr.Insert("B", []string{"C"}, 2)

	records, _, err := TreeEdges(tr)
	require.NoError(t, err)

	froms := make([]int, len(records))
	for i, r := range records {
		froms[i] = r.From
	}
	assert.True(t, sort.IntsAreSorted(froms))
}

func TestExportOffsetsAcrossTrees(t *testing.T) {
	f := NewForest()
	f.Add("X", []string{"Y"})
	f.Add("W", []string{"V"})

	records, labels, err := Export(f)
	require.NoError(t, err)

	want := []EdgeRecord{
		{Name: "X", From: 1, To: 2},
		{Name: "W", From: 3, To: 4},
	}
	assert.Equal(t, want, records)
	assert.Equal(t, map[int]string{1: "X", 2: "Y", 3: "W", 4: "V"}, labels)
}

func TestExportEmptyForest(t *testing.T) {
	records, labels, err := Export(NewForest())
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Empty(t, labels)
}

func TestToGraph(t *testing.T) {
	f := NewForest()
	idx := f.Add("A", []string{"B"})
	f.Tree(idx).Insert("B", []string{"C"}, 2)
	f.Tree(idx).Insert("D", []string{"C"}, 3)

	g, err := ToGraph(f)
	require.NoError(t, err)

	require.Len(t, g.Nodes, 4)
	assert.Equal(t, "n1", g.Nodes[0].ID)
	assert.Equal(t, "A", g.Nodes[0].Name)
	assert.Equal(t, graph.NodeClass, g.Nodes[0].Type)
	assert.Equal(t, "C", g.Nodes[3].Name)

	require.Len(t, g.Edges, 3)
	assert.Equal(t, graph.EdgeInherit, g.Edges[0].Type)
	assert.Equal(t, "n1", g.Edges[0].From)
	assert.Equal(t, "n2", g.Edges[0].To)
	assert.Equal(t, "A", g.Edges[0].Label)
}
