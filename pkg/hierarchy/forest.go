package hierarchy

import "fmt"

// Forest owns the collection of trees under construction during one
// traversal run. A class name appears in at most one tree at any time;
// callers check Locate before adding.
type Forest struct {
	trees []*Tree
}

// NewForest creates an empty forest.
func NewForest() *Forest {
	return &Forest{}
}

// Len returns the number of trees currently in the forest.
func (f *Forest) Len() int {
	return len(f.trees)
}

// Tree returns the tree at index i.
func (f *Forest) Tree(i int) *Tree {
	return f.trees[i]
}

// Trees returns the trees in creation order.
func (f *Forest) Trees() []*Tree {
	return f.trees
}

// Locate scans all trees in creation order and returns the index of the
// first one containing name. Trees are disjoint by construction, so the
// first match is the only match; detection order deliberately follows
// creation order.
func (f *Forest) Locate(name string) (int, bool) {
	for i, t := range f.trees {
		if t.Contains(name) {
			return i, true
		}
	}
	return 0, false
}

// Add appends a new tree seeded with a single entry: root with the given
// parents at node 1. Returns the new tree's index.
func (f *Forest) Add(root string, parents []string) int {
	t := NewTree()
	t.Insert(root, parents, 1)
	f.trees = append(f.trees, t)
	return len(f.trees) - 1
}

// MergeInto merges the tree at source into the tree at target, anchored at
// the class name present in both. The target reserves a contiguous block of
// node numbers immediately after the anchor for the incoming entries: every
// target class numbered above the anchor shifts up by len(source)-1, then
// every source class numbered below its anchor position moves across with
// its number increased by the anchor's target position. The anchor's target
// record is kept as-is. The absorbed source tree is removed from the forest.
// Returns the target's index after removal.
func (f *Forest) MergeInto(target, source int, anchor string) (int, error) {
	if target == source {
		return target, fmt.Errorf("cannot merge tree %d into itself", target)
	}
	dst := f.trees[target]
	src := f.trees[source]

	shift, err := dst.NodeOf(anchor)
	if err != nil {
		return target, fmt.Errorf("merge anchor missing in target: %w", err)
	}
	nodenum, err := src.NodeOf(anchor)
	if err != nil {
		return target, fmt.Errorf("merge anchor missing in source: %w", err)
	}

	grow := src.Len() - 1
	for _, name := range dst.Keys() {
		e, _ := dst.Entry(name)
		if e.Node > shift {
			dst.Insert(name, e.Parents, e.Node+grow)
		}
	}

	for _, name := range src.Keys() {
		e, _ := src.Entry(name)
		if e.Node < nodenum {
			dst.Insert(name, e.Parents, e.Node+shift)
		}
	}

	f.trees = append(f.trees[:source], f.trees[source+1:]...)
	if source < target {
		target--
	}
	return target, nil
}
