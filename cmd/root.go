package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/robertgumeny/wadrun/internal/log"
)

var version = "v0.3.0"

var rootCmd = &cobra.Command{
	Use:   "wadrun",
	Short: "wadrun launches Doom source ports with computed arguments and demo names",
	Long: `wadrun resolves a WAD, map, skill and category into a source port command
line, records demos under a deterministic name with a gap-free attempt number,
and plays them back.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with the engine's exit code, 0 on
// success, or a non-zero code when planning fails.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	var ee ExitError
	if !errors.As(err, &ee) || ee.Err != nil {
		log.Error(err.Error())
	}
	log.OsExit(exitCode(err))
}

func init() {
	rootCmd.Version = version
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(lastCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(initCmd)
}
