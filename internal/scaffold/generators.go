package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/uigen-dev/uigen/internal/resolve"
)

// Generator produces one file for a resolved target. The implementer set is
// fixed: ComponentFile, BarrelFile, StylesheetFile.
type Generator interface {
	// AbsPath returns the absolute path of the file this generator owns.
	AbsPath(t *resolve.Target) string
	// Write fills the file with contents. The parent directory and an empty
	// file already exist by the time Write runs.
	Write(t *resolve.Target) error
}

// render executes an embedded template against the target.
func render(tmplName string, t *resolve.Target) ([]byte, error) {
	tmplBytes, err := fs.ReadFile(templateFS, filepath.Join("templates", tmplName))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", tmplName, err)
	}

	tmpl, err := template.New(tmplName).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", tmplName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, t); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", tmplName, err)
	}
	return buf.Bytes(), nil
}

// ComponentFile generates the component stub: a React FC named after the
// target, a <Name>Props interface, a styles import from the sibling CSS
// module, and a default export. The stub is owned by the tool and rewritten
// on every run.
type ComponentFile struct {
	Ext string // e.g., "tsx"
}

func (g *ComponentFile) AbsPath(t *resolve.Target) string {
	return filepath.Join(t.Dir, t.Name+"."+g.Ext)
}

func (g *ComponentFile) Write(t *resolve.Target) error {
	contents, err := render("component.tsx.tmpl", t)
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.AbsPath(t), contents, 0644); err != nil {
		return fmt.Errorf("writing component stub: %w", err)
	}
	return nil
}

// BarrelFile generates the index file that re-exports the component's default
// export. Unlike the other generators it is idempotent: an index that already
// has non-whitespace content — typically re-exports accumulated by hand in a
// shared directory — is left byte-for-byte untouched.
type BarrelFile struct {
	Ext string // e.g., "ts"
}

func (g *BarrelFile) AbsPath(t *resolve.Target) string {
	return filepath.Join(t.Dir, "index."+g.Ext)
}

func (g *BarrelFile) Write(t *resolve.Target) error {
	path := g.AbsPath(t)

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading existing index: %w", err)
	}
	if strings.TrimSpace(string(existing)) != "" {
		return nil
	}

	contents, err := render("barrel.ts.tmpl", t)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, contents, 0644); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}

// StylesheetFile generates the CSS module with a single empty rule block
// scoped to a class named after the target. Rewritten on every run.
type StylesheetFile struct{}

func (g *StylesheetFile) AbsPath(t *resolve.Target) string {
	return filepath.Join(t.Dir, t.Name+".module.css")
}

func (g *StylesheetFile) Write(t *resolve.Target) error {
	contents, err := render("stylesheet.module.css.tmpl", t)
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.AbsPath(t), contents, 0644); err != nil {
		return fmt.Errorf("writing stylesheet: %w", err)
	}
	return nil
}
