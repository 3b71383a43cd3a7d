// Package port provides the Port interface and implementations for supported
// Doom source ports.
package port

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/robertgumeny/wadrun/internal/types"
)

// Supported port names, as accepted by New and the settings file.
const (
	NameDSDA   = "dsda"
	NameGZDoom = "gzdoom"
)

// Port translates port-neutral launch options into a source port's switches.
type Port interface {
	// Name returns the port's settings name.
	Name() string

	// CompatibilityArgs returns the switches selecting compatibility level.
	// An empty level returns nil.
	CompatibilityArgs(level string) []string

	// MusicArgs returns the switches forcing music track. Zero returns nil.
	MusicArgs(track int) ([]string, error)
}

// DSDA implements Port for dsda-doom and other PrBoom+ descendants.
type DSDA struct{}

// Name returns "dsda".
func (DSDA) Name() string { return NameDSDA }

// CompatibilityArgs returns -complevel level.
func (DSDA) CompatibilityArgs(level string) []string {
	if level == "" {
		return nil
	}
	return []string{"-complevel", level}
}

// MusicArgs rejects any track override; dsda-doom has no console command for it.
func (DSDA) MusicArgs(track int) ([]string, error) {
	if track == 0 {
		return nil, nil
	}
	return nil, types.Errorf(types.ErrInvalidArgument, "music track override is not supported by %s", NameDSDA)
}

// GZDoom implements Port for gzdoom.
type GZDoom struct{}

// Name returns "gzdoom".
func (GZDoom) Name() string { return NameGZDoom }

// CompatibilityArgs returns -compatmode level.
func (GZDoom) CompatibilityArgs(level string) []string {
	if level == "" {
		return nil
	}
	return []string{"-compatmode", level}
}

// MusicArgs returns the +idmus console command for track.
func (GZDoom) MusicArgs(track int) ([]string, error) {
	if track == 0 {
		return nil, nil
	}
	return []string{"+idmus", strconv.Itoa(track)}, nil
}

// New returns the Port registered under name.
func New(name string) (Port, error) {
	switch strings.ToLower(name) {
	case NameDSDA:
		return DSDA{}, nil
	case NameGZDoom:
		return GZDoom{}, nil
	default:
		return nil, fmt.Errorf("unknown port %q: supported ports are %q and %q", name, NameDSDA, NameGZDoom)
	}
}

// Detect guesses the Port from the executable's file name.
func Detect(exe string) Port {
	if strings.Contains(strings.ToLower(filepath.Base(exe)), NameGZDoom) {
		return GZDoom{}
	}
	return DSDA{}
}

// ExecutableName returns the executable's base name up to its first dot, so
// "dsda-doom.exe" and "dsda-doom" name the same demo directory.
func ExecutableName(exe string) string {
	base := filepath.Base(exe)
	if i := strings.Index(base, "."); i > 0 {
		return base[:i]
	}
	return base
}
