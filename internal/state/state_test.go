package state_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/robertgumeny/wadrun/internal/state"
)

func TestLoadNotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := state.Load(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, state.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, state.FileName)
	if err := os.WriteFile(path, []byte("last: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := state.Load(path)
	var parseErr *state.ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("expected *ParseError, got %v (%T)", err, err)
	}
}

func TestLoadOrEmpty(t *testing.T) {
	s, err := state.LoadOrEmpty(filepath.Join(t.TempDir(), state.FileName))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.HasDemo() || s.Totals.Runs != 0 {
		t.Errorf("expected empty state, got %+v", s)
	}
}

func TestSaveLoad(t *testing.T) {
	path := state.Path(t.TempDir())

	s := &state.LastRun{}
	state.RecordRun(s, state.Run{
		Demo:            "/demos/dsda-doom/0.28/p/scythe/map01/p-scythe-map01-uv-max_000.lmp",
		Target:          "scythe",
		Warp:            "map01",
		Category:        "max",
		Executable:      "dsda-doom",
		Version:         "0.28",
		Player:          "p",
		DurationSeconds: 120,
		RecordedAt:      "2026-02-24T20:06:54Z",
	})
	state.RecordRun(s, state.Run{
		Demo:            "/demos/dsda-doom/0.28/p/scythe/map01/p-scythe-map01-uv-max_001.lmp",
		Target:          "scythe",
		Warp:            "map01",
		Category:        "max",
		Attempt:         1,
		ExitCode:        2,
		DurationSeconds: 30,
		RecordedAt:      "2026-02-24T20:11:36Z",
	})

	if err := state.Save(path, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temp file left behind: %v", err)
	}

	got, err := state.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, s) {
		t.Errorf("loaded state differs:\n got %+v\nwant %+v", got, s)
	}
	if got.Last.Attempt != 1 || got.Totals.Runs != 2 || got.Totals.DurationSeconds != 150 {
		t.Errorf("unexpected last/totals: %+v", got)
	}
}

func TestRecordRunStampsTime(t *testing.T) {
	s := &state.LastRun{}
	state.RecordRun(s, state.Run{Demo: "x.lmp"})
	if s.Last.RecordedAt == "" {
		t.Error("expected RecordedAt to be stamped")
	}
}

func TestClearLastKeepsTotals(t *testing.T) {
	s := &state.LastRun{}
	state.RecordRun(s, state.Run{Demo: "x.lmp", DurationSeconds: 9})
	state.ClearLast(s)
	if s.HasDemo() {
		t.Error("expected no demo after ClearLast")
	}
	if s.Totals.Runs != 1 || s.Totals.DurationSeconds != 9 {
		t.Errorf("totals changed: %+v", s.Totals)
	}
}
