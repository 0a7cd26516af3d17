// Package resolve turns a user-supplied slash-separated path plus a folder
// kind into the target descriptor the file generators work from. Resolution is
// pure computation: the source root is injected at construction and nothing
// here touches the filesystem.
package resolve

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Kind is a top-level category under the source root.
type Kind string

const (
	Components Kind = "components"
	Pages      Kind = "pages"
)

// ErrEmptyName is returned when the resolved element name is empty, e.g. for
// blank input or a path ending in "/". Callers re-prompt instead of creating
// malformed file names.
var ErrEmptyName = errors.New("element name is empty")

// ParseKind maps user input to a Kind. It accepts the single-letter shortcuts
// used by the prompts ("c", "p") as well as the full names, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "components":
		return Components, nil
	case "p", "pages":
		return Pages, nil
	}
	return "", fmt.Errorf("unknown folder kind %q (use c for components, p for pages)", s)
}

// Target describes where and what to generate. It is created once per run and
// shared by reference with every generator; fields are never mutated after
// resolution.
type Target struct {
	Name string // leaf identifier, last path segment
	Dir  string // absolute directory the files are written into
	Kind Kind
}

// Resolver computes targets under a fixed source root.
type Resolver struct {
	srcRoot string
}

// NewResolver creates a Resolver rooted at srcRoot, which should be an
// absolute path.
func NewResolver(srcRoot string) *Resolver {
	return &Resolver{srcRoot: srcRoot}
}

// Resolve splits raw on "/" and builds the target. The last segment becomes
// the element name. With more than one segment the directory is
// <srcRoot>/<kind>/<all segments but the last>; a single segment gets a
// dedicated directory named after the element, <srcRoot>/<kind>/<segment>.
//
// Segments are taken as-is; there is no character-set validation.
func (r *Resolver) Resolve(raw string, kind Kind) (*Target, error) {
	segments := strings.Split(raw, "/")
	name := segments[len(segments)-1]
	if name == "" {
		return nil, ErrEmptyName
	}

	var dir string
	if len(segments) > 1 {
		parts := append([]string{r.srcRoot, string(kind)}, segments[:len(segments)-1]...)
		dir = filepath.Join(parts...)
	} else {
		dir = filepath.Join(r.srcRoot, string(kind), name)
	}

	return &Target{Name: name, Dir: dir, Kind: kind}, nil
}
