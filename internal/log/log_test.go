package log_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/robertgumeny/wadrun/internal/log"
)

// captureOutput redirects os.Stdout during fn and returns what was written.
func captureOutput(fn func()) string {
	r, w, _ := os.Pipe()
	old := os.Stdout
	os.Stdout = w
	fn()
	w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	io.Copy(&buf, r) //nolint:errcheck
	return buf.String()
}

func TestInfo(t *testing.T) {
	out := captureOutput(func() { log.Info("test message") })
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("Info output missing [INFO]: %q", out)
	}
	if !strings.Contains(out, "test message") {
		t.Errorf("Info output missing message: %q", out)
	}
}

func TestSuccess(t *testing.T) {
	out := captureOutput(func() { log.Success("test message") })
	if !strings.Contains(out, "[SUCCESS]") {
		t.Errorf("Success output missing [SUCCESS]: %q", out)
	}
	if !strings.Contains(out, "test message") {
		t.Errorf("Success output missing message: %q", out)
	}
}

func TestWarning(t *testing.T) {
	out := captureOutput(func() { log.Warning("test message") })
	if !strings.Contains(out, "[WARNING]") {
		t.Errorf("Warning output missing [WARNING]: %q", out)
	}
	if !strings.Contains(out, "test message") {
		t.Errorf("Warning output missing message: %q", out)
	}
}

func TestError(t *testing.T) {
	out := captureOutput(func() { log.Error("test message") })
	if !strings.Contains(out, "[ERROR]") {
		t.Errorf("Error output missing [ERROR]: %q", out)
	}
	if !strings.Contains(out, "test message") {
		t.Errorf("Error output missing message: %q", out)
	}
}

func TestSection(t *testing.T) {
	out := captureOutput(func() { log.Section("My Section") })
	if !strings.Contains(out, "━") {
		t.Errorf("Section output missing box-draw separator: %q", out)
	}
	if !strings.Contains(out, "My Section") {
		t.Errorf("Section output missing title: %q", out)
	}
}

func TestDetailRequiresVerbose(t *testing.T) {
	defer log.SetVerbose(false)

	log.SetVerbose(false)
	if out := captureOutput(func() { log.Detail("IWAD", "/iwads/doom2.wad") }); out != "" {
		t.Errorf("Detail printed while not verbose: %q", out)
	}

	log.SetVerbose(true)
	if !log.Verbose() {
		t.Fatal("Verbose() = false after SetVerbose(true)")
	}
	out := captureOutput(func() { log.Detail("Files", "/a.wad", "/b.wad") })
	for _, want := range []string{"Files:", "/a.wad", "/b.wad"} {
		if !strings.Contains(out, want) {
			t.Errorf("Detail output missing %q: %q", want, out)
		}
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected one line per value, got %q", out)
	}
}
