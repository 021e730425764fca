// Package introspect resolves class names to descriptors exposing their
// direct superclasses. The production implementation indexes source files
// with tree-sitter; the hierarchy builder only depends on the Provider
// interface, so tests can substitute a fixed table.
package introspect

import "errors"

// ErrUnrecognizedClass indicates a class identifier that cannot be resolved
// to a descriptor.
var ErrUnrecognizedClass = errors.New("unrecognized class")

// Descriptor identifies a class and where it was defined. External classes
// (referenced as a superclass but not defined under the indexed root) carry
// only a name.
type Descriptor struct {
	Name    string
	File    string
	Line    uint32
	Parents []string // direct superclass names in declaration order
}

// Provider is the class-introspection capability consumed by the hierarchy
// builder.
type Provider interface {
	// Resolve returns the descriptor for a class name, or false if the name
	// does not identify a known class.
	Resolve(name string) (*Descriptor, bool)

	// Superclasses returns descriptors for a class's direct superclasses in
	// declaration order, empty if it has none. Parent names that do not
	// resolve to an indexed class are returned as external descriptors with
	// no parents of their own.
	Superclasses(d *Descriptor) []*Descriptor

	// ClassesIn returns the names of classes defined in a source file, in
	// definition order.
	ClassesIn(path string) []string
}
