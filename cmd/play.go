package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/robertgumeny/wadrun/internal/demo"
	"github.com/robertgumeny/wadrun/internal/launcher"
	"github.com/robertgumeny/wadrun/internal/log"
	"github.com/robertgumeny/wadrun/internal/resolve"
	"github.com/robertgumeny/wadrun/internal/state"
	"github.com/robertgumeny/wadrun/internal/types"
)

// playFlags holds the play command's flags. Key flags are shared with clear.
var playFlags struct {
	key keyFlags

	demo           string
	files          []string
	compatibility  string
	track          int
	unmodded       bool
	noDefaultFiles bool
	noAttempts     bool
	practice       bool
	verbose        bool
	noLaunch       bool
}

var playCmd = &cobra.Command{
	Use:   "play <target> [map numbers...]",
	Short: "Launch a WAD, recording or playing back a demo",
	Long: `Launch a WAD on the configured source port.

Without --demo the run is recorded to the next free attempt of its demo
sequence. With --demo N attempt N is played back. --practice runs without a
demo and --no-launch only prints the command line.`,
	Example: `  wadrun play scythe 7 -s uv -c max
  wadrun play doom 2 4 -a -w
  wadrun play scythe -m 7 -d 3
  wadrun play bobmap -t Bob -x`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runPlay,
}

func init() {
	bindKeyFlags(playCmd, &playFlags.key)
	fl := playCmd.Flags()
	fl.StringVarP(&playFlags.demo, "demo", "d", "", "play back demo attempt N instead of recording")
	fl.StringArrayVarP(&playFlags.files, "file", "f", nil, "extra file to load before everything else (repeatable)")
	fl.StringVarP(&playFlags.compatibility, "compatibility", "o", "", "override compatibility from wadrun.yaml")
	fl.IntVarP(&playFlags.track, "track", "k", 0, "force music track N")
	fl.BoolVarP(&playFlags.unmodded, "unmodded", "u", false, "do not load configured mods or add-ons")
	fl.BoolVarP(&playFlags.noDefaultFiles, "no-default-files", "j", false, "do not load extra files found next to the WAD")
	fl.BoolVarP(&playFlags.noAttempts, "no-attempts", "b", false, "do not print the attempt number")
	fl.BoolVarP(&playFlags.practice, "practice", "i", false, "run without recording a demo")
	fl.BoolVarP(&playFlags.verbose, "verbose", "v", false, "print the resolved launch plan")
	fl.BoolVarP(&playFlags.noLaunch, "no-launch", "x", false, "print the command line instead of running it")
}

// runPlay implements the launch path:
//
//	Parsed → Resolved → PathDerived → (Printed | Executed) → Reported
//
// Every step is terminal on failure; nothing is spawned unless resolution
// and demo path derivation succeed.
func runPlay(cmd *cobra.Command, args []string) error {
	log.SetVerbose(playFlags.verbose)

	// Parsed.
	ctx, err := loadLaunchContext(&playFlags.key)
	if err != nil {
		return err
	}
	in, err := requestInput(args, &playFlags.key, ctx.settings)
	if err != nil {
		return err
	}
	in.Demo = playFlags.demo
	in.Files = playFlags.files
	in.Practice = playFlags.practice
	in.UseMods = !playFlags.unmodded
	in.DefaultFiles = !playFlags.noDefaultFiles
	in.Track = playFlags.track

	req, err := types.NewRequest(in)
	if err != nil {
		return err
	}

	// Resolved.
	res, err := resolve.Resolve(req, ctx.resolveOptions(playFlags.compatibility))
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		log.Warning(w)
	}
	extra, err := launcher.SplitArgs(ctx.settings.ExtraArgs)
	if err != nil {
		return types.Errorf(types.ErrInvalidArgument, "extra_args in settings: %v", err)
	}

	// PathDerived. A dry run only peeks so it leaves the demo tree untouched.
	key := res.DemoKey(ctx.env.DemoDir)
	var loc demo.Location
	if playFlags.noLaunch && req.Records() {
		loc, err = demo.Peek(key)
	} else {
		loc, err = demo.Derive(key, req.Demo(), req.Practice())
	}
	if err != nil {
		return err
	}

	argv := launcher.Build(res, loc, extra)
	printPlan(res, loc)

	// Printed.
	if playFlags.noLaunch {
		fmt.Fprintln(cmd.OutOrStdout(), launcher.Command(argv))
		return nil
	}

	// Executed.
	opts := launcher.Options{
		Out:         cmd.OutOrStdout(),
		ShowAttempt: !playFlags.noAttempts && !req.Practice(),
		Attempt:     loc.Attempt,
	}
	recording := req.Records()
	if recording {
		opts.Recorded = loc.Path()
	}
	result, err := launcher.Run(argv, opts)
	if err != nil {
		return err
	}

	// Reported.
	if recording {
		if err := saveLastRun(ctx.env.DemoDir, res, loc, result); err != nil {
			log.Warning(fmt.Sprintf("could not save last run: %v", err))
		}
	}
	if result.ExitCode != 0 {
		return Exit(result.ExitCode)
	}
	return nil
}

// printPlan prints the resolved plan when verbose output is on.
func printPlan(res *resolve.Resolution, loc demo.Location) {
	if !log.Verbose() {
		return
	}
	req := res.Request
	log.Section("LAUNCH PLAN: " + req.Target())
	log.Detail("Port", res.Port.Name()+" ("+res.Executable+")")
	log.Detail("IWAD", res.IWADPath)
	log.Detail("WAD", string(res.Kind)+" "+res.TargetPath)
	if files := res.Files(); len(files) > 0 {
		log.Detail("Files", files...)
	}
	log.Detail("Map", res.Map.Warp())
	log.Detail("Skill", req.Skill().Name+" ("+strconv.Itoa(req.Skill().Number)+")")
	log.Detail("Category", req.Category())
	if letters := req.Modifiers().Letters(); letters != "" {
		log.Detail("Modifiers", letters)
	}
	switch {
	case req.Practice():
		log.Detail("Demo", "none (practice)")
	case loc.Mode == types.DemoPlay:
		log.Detail("Play back", loc.Path())
	default:
		log.Detail("Record", loc.Path())
	}
}

// saveLastRun records the finished run in the last-run pointer.
func saveLastRun(demoRoot string, res *resolve.Resolution, loc demo.Location, result launcher.Result) error {
	path := state.Path(demoRoot)
	s, err := state.LoadOrEmpty(path)
	if err != nil {
		return err
	}
	req := res.Request
	state.RecordRun(s, state.Run{
		Demo:            loc.Path(),
		Target:          req.Target(),
		Mapper:          req.Mapper(),
		Warp:            res.Map.Warp(),
		Category:        req.Category(),
		Attempt:         loc.Attempt,
		Executable:      res.ExecutableName,
		Version:         res.Version,
		Player:          res.Player,
		ExitCode:        result.ExitCode,
		DurationSeconds: int(result.Duration().Seconds()),
	})
	return state.Save(path, s)
}
