// Package log provides colored terminal output for wadrun.
// Styles are rendered with lipgloss, which drops colors when stdout is not
// a terminal.
package log

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	infoStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F8F9FA"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFE66D"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A8DADC"))
)

// sectionLine is the unicode box-draw separator used by Section.
const sectionLine = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// OsExit terminates the process. It is a package-level variable so tests can
// replace it without subprocess overhead.
var OsExit = os.Exit

var verbose bool

// SetVerbose turns Detail output on or off.
func SetVerbose(v bool) { verbose = v }

// Verbose reports whether Detail output is on.
func Verbose() bool { return verbose }

// Info prints a white [INFO] message to stdout.
func Info(msg string) {
	fmt.Printf("%s %s\n", infoStyle.Render("[INFO]"), msg)
}

// Success prints a green [SUCCESS] message to stdout.
func Success(msg string) {
	fmt.Printf("%s %s\n", successStyle.Render("[SUCCESS]"), msg)
}

// Warning prints a yellow [WARNING] message to stdout.
func Warning(msg string) {
	fmt.Printf("%s %s\n", warningStyle.Render("[WARNING]"), msg)
}

// Error prints a red [ERROR] message to stdout.
func Error(msg string) {
	fmt.Printf("%s %s\n", errorStyle.Render("[ERROR]"), msg)
}

// Section prints a cyan unicode box-draw separator with a title.
func Section(title string) {
	fmt.Printf("\n%s\n", sectionStyle.Render(sectionLine))
	fmt.Printf("%s\n", sectionStyle.Render(title))
	fmt.Printf("%s\n\n", sectionStyle.Render(sectionLine))
}

// Detail prints an indented label/value line when verbose output is on.
// Each extra value is printed on its own continuation line.
func Detail(label string, values ...string) {
	if !verbose {
		return
	}
	if len(values) == 0 {
		fmt.Printf("  %s\n", labelStyle.Render(label))
		return
	}
	fmt.Printf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%-14s", label+":")), values[0])
	for _, v := range values[1:] {
		fmt.Printf("  %-14s %s\n", "", v)
	}
}
