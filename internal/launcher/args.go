// Package launcher assembles the engine's argument vector, runs the engine and
// reports the run.
package launcher

import (
	"fmt"
	"strconv"

	"github.com/robertgumeny/wadrun/internal/demo"
	"github.com/robertgumeny/wadrun/internal/resolve"
	"github.com/robertgumeny/wadrun/internal/types"
)

// Build returns the engine argument vector for res, with argv[0] the
// executable. The demo directive and path are left out for practice runs.
// extra is appended last.
//
//	exe [compat] -iwad IWAD [-file FILES...] -skill N -warp W... [modifiers]
//	    [-record|-playdemo PATH] [music] [extra...]
func Build(res *resolve.Resolution, loc demo.Location, extra []string) []string {
	req := res.Request

	args := []string{res.Executable}
	args = append(args, res.CompatArgs...)
	args = append(args, "-iwad", res.IWADPath)

	if files := res.Files(); len(files) > 0 {
		args = append(args, "-file")
		args = append(args, files...)
	}

	args = append(args, "-skill", strconv.Itoa(req.Skill().Number))
	args = append(args, "-warp")
	args = append(args, res.Map.WarpArgs()...)
	args = append(args, req.Modifiers().Flags()...)

	if !req.Practice() {
		sel := types.DemoSelector{Mode: loc.Mode}
		args = append(args, sel.Directive(), loc.Path())
	}

	args = append(args, res.MusicArgs...)
	args = append(args, extra...)
	return args
}

// SplitArgs tokenizes s like a POSIX shell, respecting single and double
// quotes and backslash escapes outside quotes. No variable expansion or
// globbing is performed. This lets extra_args in wadrun.yaml carry values
// with spaces:
//
//	extra_args: -geom 1280x720 +set name "Doom Guy"
func SplitArgs(s string) ([]string, error) {
	var args []string
	var cur []byte
	started := false
	inSingle := false
	inDouble := false

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case inSingle:
			if ch == '\'' {
				inSingle = false
			} else {
				cur = append(cur, ch)
			}
		case inDouble:
			if ch == '\\' && i+1 < len(s) {
				next := s[i+1]
				// Characters escapable inside double quotes per POSIX
				if next == '"' || next == '\\' || next == '$' || next == '`' || next == '\n' {
					cur = append(cur, next)
					i++
				} else {
					cur = append(cur, ch)
				}
			} else if ch == '"' {
				inDouble = false
			} else {
				cur = append(cur, ch)
			}
		case ch == '\\':
			if i+1 < len(s) {
				cur = append(cur, s[i+1])
				started = true
				i++
			}
		case ch == '\'':
			inSingle, started = true, true
		case ch == '"':
			inDouble, started = true, true
		case ch == ' ' || ch == '\t' || ch == '\n':
			if started || len(cur) > 0 {
				args = append(args, string(cur))
				cur = cur[:0]
				started = false
			}
		default:
			cur = append(cur, ch)
			started = true
		}
	}

	if inSingle {
		return nil, fmt.Errorf("unterminated single quote in %q", s)
	}
	if inDouble {
		return nil, fmt.Errorf("unterminated double quote in %q", s)
	}
	if started || len(cur) > 0 {
		args = append(args, string(cur))
	}

	return args, nil
}
