package progress

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	partStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)
)

// Render formats reports as an aligned table in a rounded box.
func Render(reports []Report) string {
	width := 0
	for _, r := range reports {
		width = max(width, len(r.Target))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Progress"))
	for _, r := range reports {
		pct := fmt.Sprintf("%6.2f%%", r.Percent)
		if r.Completed >= r.Max {
			pct = doneStyle.Render(pct)
		} else {
			pct = partStyle.Render(pct)
		}
		detail := dimStyle.Render(fmt.Sprintf("%d/%d maps, longest run %d", r.Completed, r.Max, r.LongestRun))
		fmt.Fprintf(&b, "\n%-*s %s  %s", width+1, r.Target+":", pct, detail)
	}
	if len(reports) == 0 {
		b.WriteString("\n" + dimStyle.Render("no recorded targets"))
	}
	return boxStyle.Render(b.String())
}
