package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/robertgumeny/wadrun/internal/demo"
	"github.com/robertgumeny/wadrun/internal/log"
	"github.com/robertgumeny/wadrun/internal/resolve"
	"github.com/robertgumeny/wadrun/internal/state"
	"github.com/robertgumeny/wadrun/internal/types"
)

var clearFlags keyFlags

var clearCmd = &cobra.Command{
	Use:   "clear [target] [map numbers...]",
	Short: "Delete the latest recorded demo",
	Long: `Delete a recorded demo.

With a target, the latest attempt of the demo sequence selected by the target
and the play flags is deleted, so the next recording reuses its number.
Without a target, the demo of the last recorded run is deleted.`,
	Args: cobra.RangeArgs(0, 3),
	RunE: runClear,
}

func init() {
	bindKeyFlags(clearCmd, &clearFlags)
}

func runClear(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		e, err := loadEnvironment(&clearFlags)
		if err != nil {
			return err
		}
		return clearLast(e.DemoDir)
	}

	ctx, err := loadLaunchContext(&clearFlags)
	if err != nil {
		return err
	}
	in, err := requestInput(args, &clearFlags, ctx.settings)
	if err != nil {
		return err
	}
	req, err := types.NewRequest(in)
	if err != nil {
		return err
	}
	res, err := resolve.Resolve(req, ctx.resolveOptions(""))
	if err != nil {
		return err
	}
	return clearLatest(ctx.env.DemoDir, res.DemoKey(ctx.env.DemoDir))
}

// clearLatest deletes the latest attempt of key. If it is also the last run,
// the last-run pointer is dropped.
func clearLatest(demoRoot string, key demo.Key) error {
	loc, ok, err := demo.Latest(key)
	if err != nil {
		return err
	}
	if !ok {
		return types.Errorf(types.ErrNotFound, "no recorded demo for %s in %s", key.Base(), key.Dir())
	}
	if err := os.Remove(loc.Path()); err != nil {
		return fmt.Errorf("delete demo: %w", err)
	}
	log.Success("deleted " + loc.Path())

	path := state.Path(demoRoot)
	s, err := state.Load(path)
	if err != nil {
		if errors.Is(err, state.ErrNotFound) {
			return nil
		}
		return err
	}
	if s.Last.Demo == loc.Path() {
		state.ClearLast(s)
		return state.Save(path, s)
	}
	return nil
}

// clearLast deletes the demo named by the last-run pointer and drops the
// pointer.
func clearLast(demoRoot string) error {
	path := state.Path(demoRoot)
	s, err := state.Load(path)
	if err != nil && !errors.Is(err, state.ErrNotFound) {
		return err
	}
	if !s.HasDemo() {
		return types.Errorf(types.ErrNotFound, "no last recorded demo in %s", demoRoot)
	}

	if err := os.Remove(s.Last.Demo); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("delete demo: %w", err)
		}
		log.Warning("last demo was already deleted: " + s.Last.Demo)
	} else {
		log.Success("deleted " + s.Last.Demo)
	}

	state.ClearLast(s)
	return state.Save(path, s)
}
