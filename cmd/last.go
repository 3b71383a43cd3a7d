package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/robertgumeny/wadrun/internal/state"
	"github.com/robertgumeny/wadrun/internal/types"
)

var lastFlags struct {
	key      keyFlags
	pathOnly bool
}

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the last recorded demo",
	Args:  cobra.NoArgs,
	RunE:  runLast,
}

func init() {
	lastCmd.Flags().BoolVar(&lastFlags.pathOnly, "path", false, "print only the demo path")
}

func runLast(cmd *cobra.Command, args []string) error {
	e, err := loadEnvironment(&lastFlags.key)
	if err != nil {
		return err
	}
	return printLast(cmd.OutOrStdout(), e.DemoDir, lastFlags.pathOnly)
}

func printLast(w io.Writer, demoRoot string, pathOnly bool) error {
	s, err := state.Load(state.Path(demoRoot))
	if err != nil && !errors.Is(err, state.ErrNotFound) {
		return err
	}
	if !s.HasDemo() {
		return types.Errorf(types.ErrNotFound, "no last recorded demo in %s", demoRoot)
	}

	if pathOnly {
		fmt.Fprintln(w, s.Last.Demo)
		return nil
	}

	r := s.Last
	fmt.Fprintf(w, "%-12s %s\n", "Demo:", r.Demo)
	fmt.Fprintf(w, "%-12s %s %s (%s)\n", "Target:", r.Target, r.Warp, r.Category)
	if r.Mapper != "" {
		fmt.Fprintf(w, "%-12s %s\n", "Mapper:", r.Mapper)
	}
	fmt.Fprintf(w, "%-12s #%d\n", "Attempt:", r.Attempt)
	fmt.Fprintf(w, "%-12s %s %s\n", "Port:", r.Executable, r.Version)
	fmt.Fprintf(w, "%-12s %s\n", "Recorded:", r.RecordedAt)
	fmt.Fprintf(w, "%-12s %d\n", "Exit code:", r.ExitCode)
	fmt.Fprintf(w, "%-12s %d runs, %ds recorded\n", "Totals:", s.Totals.Runs, s.Totals.DurationSeconds)
	return nil
}
