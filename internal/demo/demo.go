// Package demo derives demo file locations and attempt numbers.
//
// A demo key (player, target, map, difficulty, modifiers, category, plus the
// port and version it was recorded with) owns a directory and a base name:
//
//	<root>/<exe>/<version>/<player>[/.test/<mapper>]/<target>/<warp>/
//	    <player>-<target>-<warp>-<difficulty><modifiers>-<category>_<NNN>.lmp
//
// Attempt numbers form a gap-free sequence starting at 0. The next attempt is
// found by probing NNN upward until a file is missing. Nothing here locks the
// directory; two runs recording the same key at the same time may pick the
// same attempt.
package demo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/robertgumeny/wadrun/internal/types"
)

// Extension of demo lumps.
const Extension = ".lmp"

// MaxAttempts bounds the attempt scan. Attempt numbers are three digits.
const MaxAttempts = 1000

// testDir holds demos recorded against a mapper's test WAD.
const testDir = ".test"

// Key identifies a demo sequence.
type Key struct {
	Root       string
	Executable string
	Version    string
	Player     string
	Mapper     string
	Target     string
	Warp       string
	Difficulty string
	Modifiers  string
	Category   string
}

// Dir returns the directory holding every attempt of the key.
func (k Key) Dir() string {
	base := PlayerDir(k.Root, k.Executable, k.Version, k.Player)
	if k.Mapper != "" {
		base = filepath.Join(base, testDir, k.Mapper)
	}
	return filepath.Join(base, k.Target, k.Warp)
}

// PlayerDir returns the directory holding every target a player recorded
// with one executable version.
func PlayerDir(root, executable, version, player string) string {
	return filepath.Join(root, executable, version, player)
}

// Base returns the file name shared by every attempt, without the attempt
// suffix and extension.
func (k Key) Base() string {
	return strings.Join([]string{
		k.Player,
		k.Target,
		k.Warp,
		k.Difficulty + k.Modifiers,
		k.Category,
	}, "-")
}

// FileName returns the file name of attempt n for base.
func FileName(base string, n int) string {
	return fmt.Sprintf("%s_%03d%s", base, n, Extension)
}

// Location is a derived demo file.
type Location struct {
	Dir     string
	Base    string
	Attempt int
	Mode    types.DemoMode
}

// Path returns the full demo file path.
func (l Location) Path() string {
	return filepath.Join(l.Dir, FileName(l.Base, l.Attempt))
}

// NextAttempt returns the smallest attempt number whose file does not exist.
// Exhausting MaxAttempts is ErrPreconditionViolated.
func NextAttempt(k Key) (int, error) {
	dir, base := k.Dir(), k.Base()
	for n := 0; n < MaxAttempts; n++ {
		_, err := os.Stat(filepath.Join(dir, FileName(base, n)))
		if errors.Is(err, os.ErrNotExist) {
			return n, nil
		}
		if err != nil {
			return 0, fmt.Errorf("probe demo attempt %d: %w", n, err)
		}
	}
	return 0, types.Errorf(types.ErrPreconditionViolated, "too many demos: %d attempts exist for %s", MaxAttempts, filepath.Join(dir, base))
}

// Record derives the location of the next recording for k and makes sure
// its directory exists. The chosen file must not exist.
func Record(k Key) (Location, error) {
	loc, err := Peek(k)
	if err != nil {
		return Location{}, err
	}

	if err := os.MkdirAll(loc.Dir, 0o755); err != nil {
		return Location{}, fmt.Errorf("create demo directory %s: %w", loc.Dir, err)
	}

	if _, err := os.Stat(loc.Path()); err == nil {
		return Location{}, types.Errorf(types.ErrPreconditionViolated, "file for -record already exists: %s", loc.Path())
	}
	return loc, nil
}

// Peek derives the location the next recording for k would use without
// touching the filesystem beyond reads.
func Peek(k Key) (Location, error) {
	n, err := NextAttempt(k)
	if err != nil {
		return Location{}, err
	}
	return Location{Dir: k.Dir(), Base: k.Base(), Attempt: n, Mode: types.DemoRecord}, nil
}

// Play derives the location of attempt n of k, which must exist.
func Play(k Key, n int) (Location, error) {
	if n < 0 || n >= MaxAttempts {
		return Location{}, types.Errorf(types.ErrInvalidArgument, "demo number %d is out of range 0-%d", n, MaxAttempts-1)
	}
	loc := Location{Dir: k.Dir(), Base: k.Base(), Attempt: n, Mode: types.DemoPlay}
	info, err := os.Stat(loc.Path())
	if err != nil || !info.Mode().IsRegular() {
		return Location{}, types.Errorf(types.ErrNotFound, "file for -playdemo doesn't exist: %s", loc.Path())
	}
	return loc, nil
}

// Latest returns the highest existing attempt of k, even when lower
// attempts were removed. ok is false when no attempt has been recorded.
func Latest(k Key) (loc Location, ok bool, err error) {
	entries, err := os.ReadDir(k.Dir())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Location{}, false, nil
		}
		return Location{}, false, fmt.Errorf("read demo directory: %w", err)
	}
	prefix := k.Base() + "_"
	latest := -1
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		n, ok := attemptNumber(e.Name(), prefix)
		if ok && n > latest {
			latest = n
		}
	}
	if latest < 0 {
		return Location{}, false, nil
	}
	return Location{Dir: k.Dir(), Base: k.Base(), Attempt: latest, Mode: types.DemoPlay}, true, nil
}

// attemptNumber parses the NNN of <prefix>NNN.lmp.
func attemptNumber(name, prefix string) (int, bool) {
	digits, ok := strings.CutPrefix(name, prefix)
	if !ok {
		return 0, false
	}
	digits, ok = strings.CutSuffix(digits, Extension)
	if !ok || len(digits) != 3 {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Derive selects the location for a launch. Playback checks that the demo
// exists; recording creates the directory; practice runs only peek at the
// attempt number.
func Derive(k Key, sel types.DemoSelector, practice bool) (Location, error) {
	switch {
	case sel.Mode == types.DemoPlay:
		return Play(k, sel.Number)
	case practice:
		return Peek(k)
	default:
		return Record(k)
	}
}
