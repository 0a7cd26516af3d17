package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uigen-dev/uigen/internal/config"
	"github.com/uigen-dev/uigen/internal/interact"
	"github.com/uigen-dev/uigen/internal/resolve"
	"github.com/uigen-dev/uigen/internal/scaffold"
)

var (
	newKind string
	newYes  bool
)

func init() {
	newCmd.Flags().StringVarP(&newKind, "kind", "k", "c", "Folder kind: c (components) or p (pages)")
	newCmd.Flags().BoolVarP(&newYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new [path]",
	Short: "Scaffold a new component or page",
	Long: `Scaffold a component stub, barrel index file, and CSS module.

With no arguments an interactive session asks for the folder kind and the
element path. With a path argument the prompts are skipped:

  uigen new                          # interactive
  uigen new widgets/Card             # components/widgets/Card.tsx etc.
  uigen new Dashboard --kind p --yes # pages/Dashboard/, no confirmation

A single-segment path creates a dedicated directory named after the element;
with multiple segments the last one names the element and the rest form the
directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	set, err := config.Load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if len(args) == 0 {
		err := interact.Run(set, cmd.InOrStdin(), out)
		if errors.Is(err, interact.ErrAborted) {
			fmt.Fprintln(out, "Ok, exiting without creating anything.")
			return nil
		}
		return err
	}

	kind, err := resolve.ParseKind(newKind)
	if err != nil {
		return err
	}

	target, err := resolve.NewResolver(set.SrcRoot).Resolve(strings.TrimSpace(args[0]), kind)
	if err != nil {
		return err
	}

	batch := scaffold.DefaultBatch(set.SrcRoot, target, set.ComponentExt, set.BarrelExt)
	paths, err := batch.RelativePaths()
	if err != nil {
		return err
	}

	if !newYes {
		err := interact.Confirm(bufio.NewReader(cmd.InOrStdin()), out, paths)
		if errors.Is(err, interact.ErrAborted) {
			fmt.Fprintln(out, "Ok, exiting without creating anything.")
			return nil
		}
		if err != nil {
			return err
		}
	}

	if err := batch.CreateAll(); err != nil {
		return err
	}

	fmt.Fprintln(out, "Created:")
	for _, p := range paths {
		fmt.Fprintf(out, "  %s\n", p)
	}
	return nil
}
