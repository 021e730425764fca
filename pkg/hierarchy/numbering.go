package hierarchy

// Numberer hands out increasing integer node numbers. One instance is
// threaded through each ancestry walk so that sibling branches of a
// multi-parent class draw from the same sequence, and the exporter uses a
// fresh one to number parent classes that never became tree keys.
type Numberer struct {
	next int
}

// NewNumberer creates a numberer whose first Next() returns start.
func NewNumberer(start int) *Numberer {
	return &Numberer{next: start}
}

// Next returns the next node number and advances the sequence.
func (n *Numberer) Next() int {
	v := n.next
	n.next++
	return v
}

// Peek returns the number Next() would return, without advancing.
func (n *Numberer) Peek() int {
	return n.next
}
