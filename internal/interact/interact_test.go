package interact

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/uigen-dev/uigen/internal/config"
)

func testSettings(t *testing.T) config.Settings {
	t.Helper()
	return config.Settings{
		SrcRoot:      t.TempDir(),
		ComponentExt: "tsx",
		BarrelExt:    "ts",
	}
}

func TestRunCreatesFiles(t *testing.T) {
	set := testSettings(t)

	input := "c\nwidgets/Card\ny\n"
	var output bytes.Buffer

	if err := Run(set, strings.NewReader(input), &output); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	dir := filepath.Join(set.SrcRoot, "components", "widgets")
	for _, name := range []string{"Card.tsx", "index.ts", "Card.module.css"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}

	out := output.String()
	if !strings.Contains(out, "components/widgets/Card.tsx") {
		t.Errorf("output missing confirmation list:\n%s", out)
	}
	// Normal completion prints nothing after the files are written.
	if idx := strings.Index(out, "Ok? [Y]/n: "); idx < 0 || strings.TrimSpace(out[idx+len("Ok? [Y]/n: "):]) != "" {
		t.Errorf("expected no output after the confirmation prompt:\n%s", out)
	}
}

func TestRunEmptyConfirmationProceeds(t *testing.T) {
	set := testSettings(t)

	input := "p\nDashboard\n\n"
	var output bytes.Buffer

	if err := Run(set, strings.NewReader(input), &output); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(set.SrcRoot, "pages", "Dashboard", "Dashboard.tsx")); err != nil {
		t.Errorf("expected pages/Dashboard/Dashboard.tsx: %v", err)
	}
}

func TestRunAbortWritesNothing(t *testing.T) {
	set := testSettings(t)

	input := "c\nwidgets/Card\nn\n"
	var output bytes.Buffer

	err := Run(set, strings.NewReader(input), &output)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("Run() error = %v, want ErrAborted", err)
	}

	if _, err := os.Stat(filepath.Join(set.SrcRoot, "components")); !os.IsNotExist(err) {
		t.Error("abort must not create any files")
	}
}

func TestRunRepromptsOnInvalidKind(t *testing.T) {
	set := testSettings(t)

	input := "x\nq\nc\nCard\ny\n"
	var output bytes.Buffer

	if err := Run(set, strings.NewReader(input), &output); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	out := output.String()
	if strings.Count(out, "c - components, p - pages:") != 3 {
		t.Errorf("expected the kind prompt three times:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(set.SrcRoot, "components", "Card", "Card.tsx")); err != nil {
		t.Errorf("expected components/Card/Card.tsx: %v", err)
	}
}

func TestRunRepromptsOnEmptyPath(t *testing.T) {
	set := testSettings(t)

	// Empty input, then a trailing slash, then a valid path.
	input := "c\n\nwidgets/\nwidgets/Card\ny\n"
	var output bytes.Buffer

	if err := Run(set, strings.NewReader(input), &output); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	out := output.String()
	if strings.Count(out, "The element name is empty") != 2 {
		t.Errorf("expected two empty-name re-prompts:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(set.SrcRoot, "components", "widgets", "Card.tsx")); err != nil {
		t.Errorf("expected components/widgets/Card.tsx: %v", err)
	}
}

func TestRunRepromptsOnUnrecognizedConfirmation(t *testing.T) {
	set := testSettings(t)

	input := "c\nCard\nmaybe\ny\n"
	var output bytes.Buffer

	if err := Run(set, strings.NewReader(input), &output); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if strings.Count(output.String(), "Ok? [Y]/n:") != 2 {
		t.Errorf("expected the confirmation prompt twice:\n%s", output.String())
	}
}

func TestRunInputClosed(t *testing.T) {
	set := testSettings(t)

	var output bytes.Buffer
	err := Run(set, strings.NewReader(""), &output)
	if err == nil {
		t.Fatal("expected error when input closes mid-session")
	}
}
