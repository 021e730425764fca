package introspect

import (
	"os"
	"runtime"

	"github.com/sourcegraph/conc/pool"

	"github.com/lineagehq/lineage/pkg/parser"
)

// DefaultMaxFileSize is the per-file parse limit.
const DefaultMaxFileSize = 10 * 1024 * 1024

// SourceIndex maps class names to their descriptors across a scanned source
// tree. It implements Provider.
type SourceIndex struct {
	classes map[string]*Descriptor
	byFile  map[string][]string
}

type indexOptions struct {
	workers     int
	maxFileSize int64
	onFile      func()
}

// IndexOption configures BuildIndex.
type IndexOption func(*indexOptions)

// WithWorkers sets the number of parallel parse workers.
func WithWorkers(n int) IndexOption {
	return func(o *indexOptions) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithMaxFileSize sets the per-file size limit in bytes.
func WithMaxFileSize(n int64) IndexOption {
	return func(o *indexOptions) {
		if n > 0 {
			o.maxFileSize = n
		}
	}
}

// WithIndexProgress registers a callback invoked once per processed file.
func WithIndexProgress(fn func()) IndexOption {
	return func(o *indexOptions) {
		o.onFile = fn
	}
}

// BuildIndex parses the given files in parallel and collects every class
// definition. Files that fail to parse or exceed the size limit are skipped;
// indexing is best-effort by design. When the same class name is defined in
// several files the earliest file in the input order wins.
func BuildIndex(files []string, opts ...IndexOption) (*SourceIndex, error) {
	o := indexOptions{
		workers:     runtime.NumCPU(),
		maxFileSize: DefaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(&o)
	}

	// Results land in a per-file slot so merge order is deterministic
	// regardless of goroutine scheduling.
	defsByFile := make([][]classDef, len(files))

	p := pool.New().WithMaxGoroutines(o.workers)
	for i, path := range files {
		p.Go(func() {
			if o.onFile != nil {
				defer o.onFile()
			}
			if tooLarge(path, o.maxFileSize) {
				return
			}
			ps := parser.New()
			defer ps.Close()
			result, err := ps.ParseFile(path)
			if err != nil {
				return
			}
			defsByFile[i] = extractClassDefs(result)
		})
	}
	p.Wait()

	ix := &SourceIndex{
		classes: make(map[string]*Descriptor),
		byFile:  make(map[string][]string, len(files)),
	}
	for i, defs := range defsByFile {
		path := files[i]
		for _, def := range defs {
			ix.byFile[path] = append(ix.byFile[path], def.name)
			if _, exists := ix.classes[def.name]; exists {
				continue
			}
			ix.classes[def.name] = &Descriptor{
				Name:    def.name,
				File:    path,
				Line:    def.line,
				Parents: def.parents,
			}
		}
	}
	return ix, nil
}

// Resolve returns the descriptor for a class name.
func (ix *SourceIndex) Resolve(name string) (*Descriptor, bool) {
	d, ok := ix.classes[name]
	return d, ok
}

// Superclasses returns descriptors for a class's direct parents in
// declaration order. Parents defined outside the indexed tree get a
// synthesized descriptor with no parents of its own, so ascent terminates
// there.
func (ix *SourceIndex) Superclasses(d *Descriptor) []*Descriptor {
	if len(d.Parents) == 0 {
		return nil
	}
	out := make([]*Descriptor, 0, len(d.Parents))
	for _, name := range d.Parents {
		if pd, ok := ix.classes[name]; ok {
			out = append(out, pd)
			continue
		}
		out = append(out, &Descriptor{Name: name})
	}
	return out
}

// ClassesIn returns the class names defined in a file, in definition order.
func (ix *SourceIndex) ClassesIn(path string) []string {
	return ix.byFile[path]
}

// Len returns the number of distinct indexed classes.
func (ix *SourceIndex) Len() int {
	return len(ix.classes)
}

var _ Provider = (*SourceIndex)(nil)

func tooLarge(path string, limit int64) bool {
	info, err := os.Stat(path)
	return err != nil || info.Size() > limit
}
