package hierarchy

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a node lookup for a class name that is not present
// in the expected tree. A correct traversal never hits this; callers treat
// it as fatal rather than user-recoverable.
var ErrNotFound = errors.New("class not found in tree")

// Entry records one class within a tree: its direct parent names in
// declaration order and its node number. Every keyed class has at least one
// parent; parentless (root) classes are only ever referenced as targets.
type Entry struct {
	Parents []string
	Node    int
}

// Tree is one connected partial hierarchy, keyed by class name. Node
// numbers within a tree are a dense assignment starting at 1.
type Tree struct {
	entries map[string]Entry
	order   []string
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{entries: make(map[string]Entry)}
}

// Insert records or overwrites the entry for name. Re-insertion is expected
// when node numbers are shifted during merges; the original insertion order
// is kept for Keys.
func (t *Tree) Insert(name string, parents []string, node int) {
	if _, exists := t.entries[name]; !exists {
		t.order = append(t.order, name)
	}
	t.entries[name] = Entry{Parents: parents, Node: node}
}

// NodeOf returns the node number assigned to name.
func (t *Tree) NodeOf(name string) (int, error) {
	e, ok := t.entries[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return e.Node, nil
}

// Entry returns the full record for name.
func (t *Tree) Entry(name string) (Entry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// Contains reports whether name is a key in this tree.
func (t *Tree) Contains(name string) bool {
	_, ok := t.entries[name]
	return ok
}

// Keys returns all class names in insertion order.
func (t *Tree) Keys() []string {
	keys := make([]string, len(t.order))
	copy(keys, t.order)
	return keys
}

// Len returns the number of classes keyed in the tree.
func (t *Tree) Len() int {
	return len(t.entries)
}
