// Package interact implements the prompt-driven scaffolding session: folder
// kind choice, element path, confirmation, then file creation. Prompts read
// from an io.Reader and write to an io.Writer so the whole flow runs against
// strings.Reader/bytes.Buffer in tests.
package interact

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/uigen-dev/uigen/internal/config"
	"github.com/uigen-dev/uigen/internal/resolve"
	"github.com/uigen-dev/uigen/internal/scaffold"
)

// ErrAborted is returned when the user answers "n" at the confirmation
// prompt. Zero files have been written at that point.
var ErrAborted = errors.New("aborted by user")

// Run drives one full interactive scaffolding session. Invalid prompt input
// re-prompts indefinitely; only read failures (e.g. closed stdin) and
// filesystem errors surface as errors.
func Run(set config.Settings, r io.Reader, w io.Writer) error {
	reader := bufio.NewReader(r)

	kind, err := askKind(reader, w)
	if err != nil {
		return err
	}

	target, err := askTarget(reader, w, resolve.NewResolver(set.SrcRoot), kind)
	if err != nil {
		return err
	}

	batch := scaffold.DefaultBatch(set.SrcRoot, target, set.ComponentExt, set.BarrelExt)
	paths, err := batch.RelativePaths()
	if err != nil {
		return err
	}

	if err := Confirm(reader, w, paths); err != nil {
		return err
	}

	// The confirmation prompt already listed the files; a normal run prints
	// nothing further.
	return batch.CreateAll()
}

// askKind loops until the user picks a folder kind.
func askKind(reader *bufio.Reader, w io.Writer) (resolve.Kind, error) {
	for {
		fmt.Fprint(w, "c - components, p - pages: ")
		line, err := readLine(reader)
		if err != nil {
			return "", err
		}

		kind, err := resolve.ParseKind(line)
		if err != nil {
			fmt.Fprintln(w, "Didn't catch that, try again.")
			continue
		}
		return kind, nil
	}
}

// askTarget loops until the path resolves to a non-empty element name.
func askTarget(reader *bufio.Reader, w io.Writer, r *resolve.Resolver, kind resolve.Kind) (*resolve.Target, error) {
	for {
		fmt.Fprintf(w, "Where does it go? %s/", kind)
		line, err := readLine(reader)
		if err != nil {
			return nil, err
		}

		target, err := r.Resolve(strings.TrimSpace(line), kind)
		if errors.Is(err, resolve.ErrEmptyName) {
			fmt.Fprintln(w, "The element name is empty, try again.")
			continue
		}
		if err != nil {
			return nil, err
		}
		return target, nil
	}
}

// Confirm shows the file list and loops until the user accepts or declines.
// "y" and an empty answer accept; "n" returns ErrAborted.
func Confirm(reader *bufio.Reader, w io.Writer, paths []string) error {
	for {
		fmt.Fprintln(w, "\nAbout to create:")
		for _, p := range paths {
			fmt.Fprintf(w, "  %s\n", p)
		}
		fmt.Fprint(w, "\nOk? [Y]/n: ")

		line, err := readLine(reader)
		if err != nil {
			return err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "":
			return nil
		case "n":
			return ErrAborted
		default:
			fmt.Fprintln(w, "Didn't catch that, try again.")
		}
	}
}

// readLine reads one line, tolerating a missing trailing newline on the final
// line of input.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
