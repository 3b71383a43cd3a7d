package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// clockFormat is the wall-clock format of the start and finish lines.
const clockFormat = "15:04:05"

// Options control how a run is executed and reported.
type Options struct {
	// Out receives the run report. Defaults to os.Stdout.
	Out io.Writer

	// ShowAttempt prints the attempt line before the start line.
	ShowAttempt bool
	Attempt     int

	// Recorded is the demo path the engine records to. When set, a successful
	// start is followed by a "Wrote demo to" line.
	Recorded string

	// now is replaced in tests.
	now func() time.Time
}

// Result describes a finished engine run.
type Result struct {
	ExitCode int
	Start    time.Time
	Finish   time.Time
}

// Duration returns the wall-clock time the engine ran.
func (r Result) Duration() time.Duration {
	return r.Finish.Sub(r.Start)
}

// Run executes args[0] with args[1:] (no shell wrapping). Stdin, Stdout and
// Stderr are inherited from this process. The call blocks until the engine
// exits.
//
// A non-zero exit code is not an error: it is reported in Result.ExitCode.
// An error is returned only when the engine could not be started.
func Run(args []string, opts Options) (Result, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return Result{}, fmt.Errorf("engine command must not be empty")
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	now := opts.now
	if now == nil {
		now = time.Now
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if opts.ShowAttempt {
		fmt.Fprintf(out, "| %-12s #%d\n", "Attempt:", opts.Attempt)
	}

	res := Result{Start: now()}
	fmt.Fprintf(out, "| %-12s %s\n", "Start:", res.Start.Format(clockFormat))

	if err := cmd.Start(); err != nil {
		return res, fmt.Errorf("start engine %q: %w", args[0], err)
	}

	waitErr := cmd.Wait()
	res.Finish = now()

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return res, fmt.Errorf("engine command failed: %w", waitErr)
		}
		res.ExitCode = exitErr.ExitCode()
	}

	fmt.Fprintf(out, "| %-12s %s\n", "Finish:", res.Finish.Format(clockFormat))
	fmt.Fprintf(out, "| %-12s %s\n", "Total:", formatDuration(res.Duration()))
	if opts.Recorded != "" {
		fmt.Fprintf(out, "Wrote demo to: %s\n", opts.Recorded)
	}

	return res, nil
}

// Command renders args as one shell-pastable line. Arguments containing
// whitespace or quotes are single-quoted.
func Command(args []string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = quote(a)
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$`") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// formatDuration converts d to a human-readable string truncated to whole
// seconds. Examples: "0s", "45s", "3m 15s", "1h 2m 30s".
func formatDuration(d time.Duration) string {
	seconds := int(d / time.Second)
	if seconds <= 0 {
		return "0s"
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
