// Package trace wires the scanner, source index, locator, and hierarchy
// builder into the pipeline shared by the CLI commands and the MCP server.
package trace

import (
	"fmt"
	"path/filepath"

	"github.com/lineagehq/lineage/internal/locator"
	"github.com/lineagehq/lineage/pkg/config"
	"github.com/lineagehq/lineage/pkg/graph"
	"github.com/lineagehq/lineage/pkg/hierarchy"
	"github.com/lineagehq/lineage/pkg/introspect"
	"github.com/lineagehq/lineage/pkg/scanner"
)

// Service runs hierarchy traces against a source tree.
type Service struct {
	cfg *config.Config
}

// New creates a trace service. A nil config uses defaults.
func New(cfg *config.Config) *Service {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Service{cfg: cfg}
}

// Options controls a single trace run.
type Options struct {
	// Source is the directory indexed for class definitions. Defaults to ".".
	Source string

	// Path is the walk-root argument, resolved against the traced class's
	// defining directory. Empty means that directory itself.
	Path string

	// OnIndexStart is called with the file count before indexing begins.
	OnIndexStart func(total int)

	// OnIndexFile is called once per indexed file.
	OnIndexFile func()

	// OnClass is called once per class discovered during the walk.
	OnClass func(name string)
}

// Result holds the edge table produced by a trace.
type Result struct {
	Class   string
	Root    string
	Indexed int
	Edges   []hierarchy.EdgeRecord
	Labels  map[int]string
	Forest  *hierarchy.Forest
}

// Trace indexes the source tree, resolves the named class and the walk
// root, and assembles the inheritance forest. The named class's own chain
// is traced first so it anchors the forest; the walk then covers every
// class under the resolved root.
func (s *Service) Trace(class string, opts Options) (*Result, error) {
	ix, sc, err := s.buildIndex(opts)
	if err != nil {
		return nil, err
	}

	desc, ok := ix.Resolve(class)
	if !ok {
		return nil, fmt.Errorf("%w: %s", introspect.ErrUnrecognizedClass, class)
	}

	root, err := locator.Resolve(filepath.Dir(desc.File), opts.Path)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", opts.Path, err)
	}

	b := hierarchy.NewBuilder(ix, sc, hierarchy.WithProgress(opts.OnClass))
	if err := b.Trace(class); err != nil {
		return nil, err
	}
	if err := b.Build(root); err != nil {
		return nil, err
	}

	edges, labels, err := hierarchy.Export(b.Forest())
	if err != nil {
		return nil, err
	}

	return &Result{
		Class:   class,
		Root:    root,
		Indexed: ix.Len(),
		Edges:   edges,
		Labels:  labels,
		Forest:  b.Forest(),
	}, nil
}

// Graph assembles the inheritance forest for every class under source and
// converts it to a renderable dependency graph.
func (s *Service) Graph(opts Options) (*graph.DependencyGraph, error) {
	ix, sc, err := s.buildIndex(opts)
	if err != nil {
		return nil, err
	}

	source := opts.Source
	if source == "" {
		source = "."
	}

	b := hierarchy.NewBuilder(ix, sc, hierarchy.WithProgress(opts.OnClass))
	if err := b.Build(source); err != nil {
		return nil, err
	}
	return hierarchy.ToGraph(b.Forest())
}

func (s *Service) buildIndex(opts Options) (*introspect.SourceIndex, *scanner.Scanner, error) {
	source := opts.Source
	if source == "" {
		source = "."
	}

	sc := scanner.New(s.cfg)
	files, err := sc.ScanDir(source)
	if err != nil {
		return nil, nil, err
	}
	if opts.OnIndexStart != nil {
		opts.OnIndexStart(len(files))
	}

	ixOpts := []introspect.IndexOption{
		introspect.WithWorkers(s.cfg.Index.Workers),
		introspect.WithMaxFileSize(s.cfg.Index.MaxFileSize),
	}
	if opts.OnIndexFile != nil {
		ixOpts = append(ixOpts, introspect.WithIndexProgress(opts.OnIndexFile))
	}

	ix, err := introspect.BuildIndex(files, ixOpts...)
	if err != nil {
		return nil, nil, err
	}
	return ix, sc, nil
}
