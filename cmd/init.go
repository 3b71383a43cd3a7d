package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robertgumeny/wadrun/internal/env"
	"github.com/robertgumeny/wadrun/internal/log"
	"github.com/robertgumeny/wadrun/internal/templates"
)

var initFlags struct {
	force bool
}

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write starter wadrun.yaml and pwads.json",
	Long: `Write a starter settings file (wadrun.yaml) and WAD configuration
(pwads.json) into dir, or into $` + env.VarWadDir + ` when dir is omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initFlags.force, "force", false, "Overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) error {
	var dir string
	if len(args) == 1 {
		dir = args[0]
	} else if dir = os.Getenv(env.VarWadDir); dir == "" {
		return fmt.Errorf("no directory given and $%s is not set", env.VarWadDir)
	}
	return initProject(dir, initFlags.force)
}

// initProject is the testable core of the init command. It copies the
// embedded init/ template files into dir, skipping files that already exist
// unless force is set.
func initProject(dir string, force bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	if err := copyInitTemplates(dir, force); err != nil {
		return err
	}
	log.Info("initialized " + dir + "; edit wadrun.yaml and pwads.json, then run: wadrun play <wad>")
	return nil
}

// copyInitTemplates walks the embedded init/ FS and copies files to dir with
// no filename transformations.
func copyInitTemplates(dir string, force bool) error {
	return fs.WalkDir(templates.Init, "init", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(path, "init/")
		dst := filepath.Join(dir, filepath.FromSlash(rel))

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				log.Warning(fmt.Sprintf("%s already exists, skipping (use --force to overwrite)", dst))
				return nil
			}
		}

		if mkErr := os.MkdirAll(filepath.Dir(dst), 0o755); mkErr != nil {
			return fmt.Errorf("create directory for %s: %w", dst, mkErr)
		}

		data, readErr := templates.Init.ReadFile(path)
		if readErr != nil {
			return fmt.Errorf("read template %s: %w", path, readErr)
		}

		if writeErr := os.WriteFile(dst, data, 0o644); writeErr != nil {
			return fmt.Errorf("write %s: %w", dst, writeErr)
		}

		log.Success(fmt.Sprintf("created %s", dst))
		return nil
	})
}
