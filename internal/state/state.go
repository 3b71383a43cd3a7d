// Package state provides atomic load and save operations for the last-run
// pointer kept at the demo root: .wadrun-last.yaml.
//
// All writes are atomic: data is marshalled to a .tmp file in the same
// directory, then os.Rename replaces the target in a single kernel call.
// This prevents partial writes from corrupting state.
package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the last-run pointer's file name inside the demo root.
const FileName = ".wadrun-last.yaml"

// ErrNotFound is returned by Load when the state file does not exist.
var ErrNotFound = errors.New("state file not found")

// ParseError is returned when a state file exists but cannot be unmarshalled.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Run describes one recorded engine run.
type Run struct {
	Demo            string `yaml:"demo"`
	Target          string `yaml:"target"`
	Mapper          string `yaml:"mapper,omitempty"`
	Warp            string `yaml:"warp"`
	Category        string `yaml:"category"`
	Attempt         int    `yaml:"attempt"`
	Executable      string `yaml:"executable"`
	Version         string `yaml:"version"`
	Player          string `yaml:"player"`
	ExitCode        int    `yaml:"exit_code"`
	DurationSeconds int    `yaml:"duration_seconds"`
	RecordedAt      string `yaml:"recorded_at"`
}

// Totals accumulate over every recorded run.
type Totals struct {
	Runs            int `yaml:"runs"`
	DurationSeconds int `yaml:"duration_seconds"`
}

// LastRun is the content of the state file. Last is zero after the last
// demo has been cleared.
type LastRun struct {
	Last   Run    `yaml:"last"`
	Totals Totals `yaml:"totals"`
}

// HasDemo reports whether the pointer names a demo.
func (s *LastRun) HasDemo() bool {
	return s != nil && s.Last.Demo != ""
}

// Path returns the state file path for demoRoot.
func Path(demoRoot string) string {
	return filepath.Join(demoRoot, FileName)
}

// Load reads the state file at path.
// Returns ErrNotFound if the file is absent, or *ParseError on malformed YAML.
func Load(path string) (*LastRun, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var s LastRun
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &s, nil
}

// LoadOrEmpty is Load with a missing file treated as an empty state.
func LoadOrEmpty(path string) (*LastRun, error) {
	s, err := Load(path)
	if errors.Is(err, ErrNotFound) {
		return &LastRun{}, nil
	}
	return s, err
}

// Save atomically writes s to path.
// It writes to path+".tmp" first, then renames to path.
func Save(path string, s *LastRun) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal last run: %w", err)
	}
	return atomicWrite(path, data)
}

// RecordRun makes run the last run and adds it to the totals. A zero
// RecordedAt is stamped with the current UTC time.
func RecordRun(s *LastRun, run Run) {
	if run.RecordedAt == "" {
		run.RecordedAt = time.Now().UTC().Format(time.RFC3339)
	}
	s.Last = run
	s.Totals.Runs++
	s.Totals.DurationSeconds += run.DurationSeconds
}

// ClearLast drops the last-run pointer and keeps the totals.
func ClearLast(s *LastRun) {
	s.Last = Run{}
}

// atomicWrite writes data to path by first writing to path+".tmp",
// then calling os.Rename to replace the final target atomically.
func atomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup on rename failure
		return fmt.Errorf("rename %s -> %s: %w", tmp, path, err)
	}
	return nil
}
