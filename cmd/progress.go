package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robertgumeny/wadrun/internal/demo"
	"github.com/robertgumeny/wadrun/internal/env"
	"github.com/robertgumeny/wadrun/internal/log"
	"github.com/robertgumeny/wadrun/internal/port"
	"github.com/robertgumeny/wadrun/internal/progress"
)

var progressFlags struct {
	key  keyFlags
	xlsx string
	jobs int
}

var progressCmd = &cobra.Command{
	Use:   "progress [target...]",
	Short: "Report recorded map coverage per target",
	Long: `Report, for every target recorded by the player, how many maps have at
least one demo, the longest run of consecutive such maps and the share of the
target's maps covered. Without targets every recorded target is reported.`,
	RunE: runProgress,
}

func init() {
	fl := progressCmd.Flags()
	fl.StringVarP(&progressFlags.key.player, "player", "p", "", "override $"+env.VarPlayer)
	fl.StringVarP(&progressFlags.key.version, "version", "r", "", "override $"+env.VarVersion)
	fl.StringVarP(&progressFlags.key.executable, "executable", "e", "", "override $"+env.VarExe)
	fl.StringVar(&progressFlags.xlsx, "xlsx", "", "also write the report to this .xlsx workbook")
	fl.IntVar(&progressFlags.jobs, "jobs", progress.DefaultConcurrency, "targets scanned concurrently")
}

func runProgress(cmd *cobra.Command, args []string) error {
	e, err := loadEnvironment(&progressFlags.key)
	if err != nil {
		return err
	}
	playerDir := demo.PlayerDir(e.DemoDir, port.ExecutableName(e.Executable), strings.ToLower(e.Version), e.Player)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	reports, err := progress.Scan(ctx, playerDir, args, progressFlags.jobs)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), progress.Render(reports))

	if progressFlags.xlsx != "" {
		if err := progress.ExportXLSX(progressFlags.xlsx, reports); err != nil {
			return fmt.Errorf("export %s: %w", progressFlags.xlsx, err)
		}
		log.Success("wrote " + progressFlags.xlsx)
	}
	return nil
}
