package hierarchy

import (
	"github.com/lineagehq/lineage/pkg/introspect"
)

// Walker yields the candidate source files and subdirectories of one
// directory, excluding self/parent markers.
type Walker interface {
	ListEntries(dir string) (files []string, subdirs []string, err error)
}

// Builder drives the directory traversal, consults the introspection
// provider for superclass chains, and feeds discovered classes into the
// forest. Traversal is synchronous and depth-first; every step sees the
// forest as left by all previously processed files, including merges.
type Builder struct {
	provider introspect.Provider
	walker   Walker
	forest   *Forest
	active   int
	onClass  func(name string)
}

// Option configures a Builder.
type Option func(*Builder)

// WithProgress registers a callback invoked once per discovered candidate
// class, before it is traced.
func WithProgress(fn func(name string)) Option {
	return func(b *Builder) {
		b.onClass = fn
	}
}

// NewBuilder creates a builder over the given provider and walker.
func NewBuilder(provider introspect.Provider, walker Walker, opts ...Option) *Builder {
	b := &Builder{
		provider: provider,
		walker:   walker,
		forest:   NewForest(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Forest returns the forest assembled so far.
func (b *Builder) Forest() *Forest {
	return b.forest
}

// Build walks root and all of its subdirectories depth-first, tracing every
// class defined in the files encountered. A traversal error aborts the run;
// there is no partial-result mode.
func (b *Builder) Build(root string) error {
	files, subdirs, err := b.walker.ListEntries(root)
	if err != nil {
		return err
	}
	for _, path := range files {
		for _, name := range b.provider.ClassesIn(path) {
			if b.onClass != nil {
				b.onClass(name)
			}
			if err := b.Trace(name); err != nil {
				return err
			}
		}
	}
	for _, dir := range subdirs {
		if err := b.Build(dir); err != nil {
			return err
		}
	}
	return nil
}

// Trace records the inheritance chain of a single class. Names that do not
// resolve to a class, classes with no superclasses, and classes already
// recorded in some tree are silently skipped; none of these is an error.
func (b *Builder) Trace(name string) error {
	desc, ok := b.provider.Resolve(name)
	if !ok {
		return nil
	}
	supers := b.provider.Superclasses(desc)
	if len(supers) == 0 {
		return nil
	}
	if _, found := b.forest.Locate(name); found {
		return nil
	}

	b.active = b.forest.Add(name, parentNames(supers))
	num := NewNumberer(1)
	num.Next() // node 1 belongs to the seed class
	for _, s := range supers {
		if err := b.ascend(s, num); err != nil {
			return err
		}
	}
	return nil
}

// ascend walks one level up the inheritance chain. Recursion terminates
// when an ancestor has no superclasses (roots are referenced as parent
// targets only, never inserted) or when the ancestor already belongs to an
// earlier tree, in which case the active tree is merged into it and the
// remaining ancestry is taken as already captured there.
func (b *Builder) ascend(desc *introspect.Descriptor, num *Numberer) error {
	supers := b.provider.Superclasses(desc)
	if len(supers) == 0 {
		return nil
	}

	idx, found := b.forest.Locate(desc.Name)
	if found && idx == b.active {
		// Ancestry rejoins the tree being built; nothing left to add.
		return nil
	}

	node := num.Next()
	b.forest.Tree(b.active).Insert(desc.Name, parentNames(supers), node)

	if found {
		merged, err := b.forest.MergeInto(idx, b.active, desc.Name)
		if err != nil {
			return err
		}
		// Sibling branches of a multi-parent class keep drawing from the
		// same counter after a merge; their numbers are not reconciled with
		// the merged tree's numbering. See the builder tests for the
		// observable effect.
		b.active = merged
		return nil
	}

	for _, s := range supers {
		if err := b.ascend(s, num); err != nil {
			return err
		}
	}
	return nil
}

func parentNames(descs []*introspect.Descriptor) []string {
	names := make([]string, len(descs))
	for i, d := range descs {
		names[i] = d.Name
	}
	return names
}
