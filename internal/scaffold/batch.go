package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/uigen-dev/uigen/internal/resolve"
)

// Batch drives file creation for one target. Generators run in registration
// order; each one touches a distinct file, so the order only determines the
// sequence of filesystem operations.
type Batch struct {
	srcRoot string
	target  *resolve.Target
	gens    []Generator
}

// NewBatch creates an empty batch for the given target. srcRoot is the
// absolute source root that relative display paths are computed against.
func NewBatch(srcRoot string, target *resolve.Target) *Batch {
	return &Batch{srcRoot: srcRoot, target: target}
}

// DefaultBatch returns a batch with the standard generator set registered:
// component stub, barrel index, stylesheet module.
func DefaultBatch(srcRoot string, target *resolve.Target, componentExt, barrelExt string) *Batch {
	b := NewBatch(srcRoot, target)
	b.Register(
		&ComponentFile{Ext: componentExt},
		&BarrelFile{Ext: barrelExt},
		&StylesheetFile{},
	)
	return b
}

// Register appends generators in the given order.
func (b *Batch) Register(gens ...Generator) {
	b.gens = append(b.gens, gens...)
}

// CreateAll runs every registered generator: parent directories are created
// recursively, the file is created empty if absent, then the generator writes
// its contents. Filesystem errors abort immediately; files already written in
// the same batch are left in place.
func (b *Batch) CreateAll() error {
	if b.target.Name == "" {
		return resolve.ErrEmptyName
	}
	for _, g := range b.gens {
		if err := create(g, b.target); err != nil {
			return err
		}
	}
	return nil
}

// RelativePaths returns the display paths of every registered generator's
// file, relative to the source root, in registration order. It only computes
// paths from the resolved target and can run before or after CreateAll.
func (b *Batch) RelativePaths() ([]string, error) {
	paths := make([]string, len(b.gens))
	for i, g := range b.gens {
		rel, err := filepath.Rel(b.srcRoot, g.AbsPath(b.target))
		if err != nil {
			return nil, fmt.Errorf("computing relative path: %w", err)
		}
		paths[i] = filepath.ToSlash(rel)
	}
	return paths, nil
}

// create runs the generic creation sequence for one generator. Directory and
// file creation are idempotent; re-running on an existing tree neither fails
// nor truncates.
func create(g Generator, t *resolve.Target) error {
	path := g.AbsPath(t)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", filepath.Dir(path), err)
	}

	// Touch the file so every variant starts from an existing file.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	f.Close()

	return g.Write(t)
}
