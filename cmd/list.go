package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/robertgumeny/wadrun/internal/catalog"
	"github.com/robertgumeny/wadrun/internal/resolve"
	"github.com/robertgumeny/wadrun/internal/types"
	"github.com/robertgumeny/wadrun/internal/wadfs"
)

var listFlags keyFlags

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed PWADs",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	listIWADStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A8DADC"))
	listDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
	listBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)
)

func init() {
	listCmd.Flags().StringVarP(&listFlags.configuration, "configuration", "g", "", "WAD configuration file (default $DOOM_DIR/pwads.json)")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx, err := loadLaunchContext(&listFlags)
	if err != nil {
		return err
	}
	pwads, err := listPWADs(ctx.env.WadDir, ctx.catalog)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderPWADs(pwads))
	return nil
}

// pwadInfo is one installed PWAD with its catalog settings.
type pwadInfo struct {
	Name  string
	IWAD  string
	Short string
	Mods  int
}

// listPWADs returns the directories under <wadDir>/pwad that hold a
// <name>/<name>.wad file, sorted by name.
func listPWADs(wadDir string, cat *catalog.Catalog) ([]pwadInfo, error) {
	root := filepath.Join(wadDir, string(resolve.KindPWAD))
	if _, err := wadfs.VerifyDir(root); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", root, err)
	}

	var out []pwadInfo
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !wadfs.IsFile(filepath.Join(root, name, name+".wad")) {
			continue
		}
		entry, _ := cat.Lookup(name)
		out = append(out, pwadInfo{
			Name:  name,
			IWAD:  cat.IWAD(name),
			Short: entry.Short,
			Mods:  len(cat.ModFiles(name)),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func renderPWADs(pwads []pwadInfo) string {
	width := 0
	for _, p := range pwads {
		width = max(width, len(p.Name))
	}

	var b strings.Builder
	b.WriteString(listTitleStyle.Render(fmt.Sprintf("PWADs (%d)", len(pwads))))
	for _, p := range pwads {
		line := fmt.Sprintf("\n%-*s  %s", width, p.Name, listIWADStyle.Render(fmt.Sprintf("%-8s", p.IWAD)))
		var extra []string
		if p.Short != "" {
			extra = append(extra, "short "+p.Short)
		}
		if p.Mods > 0 {
			extra = append(extra, fmt.Sprintf("%d mod files", p.Mods))
		}
		if len(extra) > 0 {
			line += " " + listDimStyle.Render(strings.Join(extra, ", "))
		}
		b.WriteString(line)
	}
	if len(pwads) == 0 {
		b.WriteString("\n" + listDimStyle.Render("none installed; IWADs: "+strings.Join(types.IWADs, ", ")))
	}
	return listBoxStyle.Render(b.String())
}
