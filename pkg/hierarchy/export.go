package hierarchy

import (
	"fmt"
	"sort"

	"github.com/lineagehq/lineage/pkg/graph"
)

// EdgeRecord is one direct subclass -> superclass relation: the subclass
// name as label, its own node number, and its parent's node number.
type EdgeRecord struct {
	Name string `json:"name" toon:"name"`
	From int    `json:"from" toon:"from"`
	To   int    `json:"to" toon:"to"`
}

// TreeEdges flattens one tree into edge records sorted ascending by From.
// Parent classes that never became keys (roots with no superclass of their
// own) are assigned fresh node numbers past the tree's maximum, one per
// distinct name, so every edge has a numeric target. The returned label map
// covers keyed classes and assigned roots alike.
func TreeEdges(t *Tree) ([]EdgeRecord, map[int]string, error) {
	labels := make(map[int]string, t.Len())
	maxNode := 0
	for _, name := range t.Keys() {
		e, _ := t.Entry(name)
		labels[e.Node] = name
		if e.Node > maxNode {
			maxNode = e.Node
		}
	}

	num := NewNumberer(maxNode + 1)
	roots := make(map[string]int)
	var records []EdgeRecord

	for _, name := range t.Keys() {
		e, _ := t.Entry(name)
		for _, parent := range e.Parents {
			to, err := t.NodeOf(parent)
			if err != nil {
				n, seen := roots[parent]
				if !seen {
					n = num.Next()
					roots[parent] = n
					labels[n] = parent
				}
				to = n
			}
			records = append(records, EdgeRecord{Name: name, From: e.Node, To: to})
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].From < records[j].From
	})
	return records, labels, nil
}

// Export flattens the final forest into a single edge table sorted ascending
// by From. Node numbers are unique only within a tree, so each tree's
// numbers are offset by the total count of the trees before it.
func Export(f *Forest) ([]EdgeRecord, map[int]string, error) {
	var all []EdgeRecord
	labels := make(map[int]string)
	offset := 0

	for _, t := range f.Trees() {
		records, treeLabels, err := TreeEdges(t)
		if err != nil {
			return nil, nil, err
		}
		maxNode := 0
		for n, name := range treeLabels {
			labels[n+offset] = name
			if n > maxNode {
				maxNode = n
			}
		}
		for _, r := range records {
			all = append(all, EdgeRecord{Name: r.Name, From: r.From + offset, To: r.To + offset})
		}
		offset += maxNode
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].From < all[j].From
	})
	return all, labels, nil
}

// ToGraph converts the forest into a renderable dependency graph with one
// class node per numbered entry and one inherit edge per record.
func ToGraph(f *Forest) (*graph.DependencyGraph, error) {
	records, labels, err := Export(f)
	if err != nil {
		return nil, err
	}

	g := graph.NewDependencyGraph()
	nums := make([]int, 0, len(labels))
	for n := range labels {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	for _, n := range nums {
		g.AddNode(graph.Node{
			ID:   nodeID(n),
			Name: labels[n],
			Type: graph.NodeClass,
		})
	}
	for _, r := range records {
		g.AddEdge(graph.Edge{
			From:  nodeID(r.From),
			To:    nodeID(r.To),
			Type:  graph.EdgeInherit,
			Label: r.Name,
		})
	}
	return g, nil
}

func nodeID(n int) string {
	return fmt.Sprintf("n%d", n)
}
