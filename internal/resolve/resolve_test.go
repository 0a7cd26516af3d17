package resolve

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
		wantErr  bool
	}{
		{"c", Components, false},
		{"C", Components, false},
		{"p", Pages, false},
		{"P", Pages, false},
		{" c ", Components, false},
		{"components", Components, false},
		{"Pages", Pages, false},
		{"x", "", true},
		{"", "", true},
		{"comp", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			kind, err := ParseKind(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseKind(%q) expected error, got %q", tt.input, kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) unexpected error: %v", tt.input, err)
			}
			if kind != tt.expected {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.input, kind, tt.expected)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	srcRoot := filepath.Join("/project", "src")
	r := NewResolver(srcRoot)

	tests := []struct {
		name     string
		raw      string
		kind     Kind
		wantName string
		wantDir  string
	}{
		{
			name:     "single segment gets dedicated directory",
			raw:      "foo",
			kind:     Components,
			wantName: "foo",
			wantDir:  filepath.Join(srcRoot, "components", "foo"),
		},
		{
			name:     "two segments",
			raw:      "widgets/Card",
			kind:     Components,
			wantName: "Card",
			wantDir:  filepath.Join(srcRoot, "components", "widgets"),
		},
		{
			name:     "three segments",
			raw:      "a/b/foo",
			kind:     Components,
			wantName: "foo",
			wantDir:  filepath.Join(srcRoot, "components", "a", "b"),
		},
		{
			name:     "pages kind",
			raw:      "admin/Dashboard",
			kind:     Pages,
			wantName: "Dashboard",
			wantDir:  filepath.Join(srcRoot, "pages", "admin"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := r.Resolve(tt.raw, tt.kind)
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.raw, err)
			}
			if target.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", target.Name, tt.wantName)
			}
			if target.Dir != tt.wantDir {
				t.Errorf("Dir = %q, want %q", target.Dir, tt.wantDir)
			}
			if target.Kind != tt.kind {
				t.Errorf("Kind = %q, want %q", target.Kind, tt.kind)
			}
		})
	}
}

func TestResolveEmptyName(t *testing.T) {
	r := NewResolver("/project/src")

	for _, raw := range []string{"", "widgets/", "a/b/"} {
		t.Run("input "+raw, func(t *testing.T) {
			_, err := r.Resolve(raw, Components)
			if !errors.Is(err, ErrEmptyName) {
				t.Errorf("Resolve(%q) error = %v, want ErrEmptyName", raw, err)
			}
		})
	}
}
