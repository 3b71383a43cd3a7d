// Package types defines the value types shared by the launch planner: skills,
// modifiers, map specs, demo selectors and the immutable launch request.
package types

import (
	"strconv"
	"strings"

	"github.com/robertgumeny/wadrun/internal/suggest"
)

// ---------------------------------------------------------------------------
// IWADs
// ---------------------------------------------------------------------------

// IWAD names of the supported base games. Doom is the only four-episode IWAD.
const (
	IWADDoom     = "doom"
	IWADDoom2    = "doom2"
	IWADTNT      = "tnt"
	IWADPlutonia = "plutonia"
)

// IWADs lists every supported IWAD.
var IWADs = []string{IWADDoom, IWADDoom2, IWADTNT, IWADPlutonia}

// IsIWAD reports whether name is one of the supported IWADs.
func IsIWAD(name string) bool {
	for _, iwad := range IWADs {
		if iwad == name {
			return true
		}
	}
	return false
}

// IsEpisodic reports whether iwad addresses maps as episode/map pairs.
func IsEpisodic(iwad string) bool {
	return iwad == IWADDoom
}

// ---------------------------------------------------------------------------
// Skills
// ---------------------------------------------------------------------------

// Skill is a difficulty level: the engine's numeric value and its short name.
type Skill struct {
	Number int
	Name   string
}

var skills = []Skill{
	{1, "itytd"},
	{2, "hntr"},
	{3, "hmp"},
	{4, "uv"},
	{5, "nm"},
}

// SkillNames returns the short names of all skills in ascending order.
func SkillNames() []string {
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	return names
}

// ParseSkill accepts either a skill name ("uv") or its number ("4").
func ParseSkill(token string) (Skill, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	for _, s := range skills {
		if t == s.Name || t == strconv.Itoa(s.Number) {
			return s, nil
		}
	}
	return Skill{}, Errorf(ErrInvalidArgument, "unknown skill %q%s", token, suggest.Hint(t, SkillNames()))
}

// ---------------------------------------------------------------------------
// Modifiers
// ---------------------------------------------------------------------------

// Modifier is a gameplay modifier flag. The declaration order below is the
// order in which letters appear in demo names and flags appear on the
// command line.
type Modifier int

const (
	ModFast Modifier = iota
	ModNoMonsters
	ModRespawn
)

var modifierOrder = []Modifier{ModFast, ModNoMonsters, ModRespawn}

// Letter is the single-character demo name encoding of the modifier.
func (m Modifier) Letter() string {
	switch m {
	case ModFast:
		return "f"
	case ModNoMonsters:
		return "o"
	case ModRespawn:
		return "r"
	}
	return ""
}

// Flag is the engine command-line switch for the modifier.
func (m Modifier) Flag() string {
	switch m {
	case ModFast:
		return "-fast"
	case ModNoMonsters:
		return "-nomonsters"
	case ModRespawn:
		return "-respawn"
	}
	return ""
}

// ModifierSet records which modifiers are active.
type ModifierSet struct {
	Fast       bool
	NoMonsters bool
	Respawn    bool
}

// Has reports whether m is active in the set.
func (s ModifierSet) Has(m Modifier) bool {
	switch m {
	case ModFast:
		return s.Fast
	case ModNoMonsters:
		return s.NoMonsters
	case ModRespawn:
		return s.Respawn
	}
	return false
}

// Active returns the active modifiers in declaration order.
func (s ModifierSet) Active() []Modifier {
	var out []Modifier
	for _, m := range modifierOrder {
		if s.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

// Letters concatenates the letters of every active modifier.
func (s ModifierSet) Letters() string {
	var b strings.Builder
	for _, m := range s.Active() {
		b.WriteString(m.Letter())
	}
	return b.String()
}

// Flags returns the engine switches of every active modifier.
func (s ModifierSet) Flags() []string {
	var out []string
	for _, m := range s.Active() {
		out = append(out, m.Flag())
	}
	return out
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

// Categories is the built-in set of run categories.
var Categories = []string{
	"collector",
	"fast",
	"max",
	"nightmare",
	"nightmare100",
	"nomo",
	"nomo100",
	"pacifist",
	"respawn",
	"speed",
	"stroller",
	"tyson",
}

// DefaultCategory is used when no category is given.
const DefaultCategory = "max"

// ---------------------------------------------------------------------------
// Maps
// ---------------------------------------------------------------------------

// MapSpec identifies a level. Episode is zero for single-episode IWADs.
type MapSpec struct {
	Episode int
	Map     int
}

// Episodic reports whether the spec is an episode/map pair.
func (m MapSpec) Episodic() bool {
	return m.Episode > 0
}

// Warp is the map identifier used in demo paths: "map07" or "e2m4".
func (m MapSpec) Warp() string {
	if m.Episodic() {
		return "e" + strconv.Itoa(m.Episode) + "m" + strconv.Itoa(m.Map)
	}
	if m.Map < 10 {
		return "map0" + strconv.Itoa(m.Map)
	}
	return "map" + strconv.Itoa(m.Map)
}

// WarpArgs are the values passed after the engine's -warp switch.
func (m MapSpec) WarpArgs() []string {
	if m.Episodic() {
		return []string{strconv.Itoa(m.Episode), strconv.Itoa(m.Map)}
	}
	return []string{strconv.Itoa(m.Map)}
}

// ---------------------------------------------------------------------------
// Demo selection
// ---------------------------------------------------------------------------

// DemoMode selects between recording a new demo and playing an existing one.
type DemoMode int

const (
	DemoRecord DemoMode = iota
	DemoPlay
)

// DemoSelector is the demo half of a request. Number is meaningful only for
// DemoPlay.
type DemoSelector struct {
	Mode   DemoMode
	Number int
}

// Directive is the engine switch for the selected mode.
func (d DemoSelector) Directive() string {
	if d.Mode == DemoPlay {
		return "-playdemo"
	}
	return "-record"
}

// ParseDemoSelector maps an empty token to recording and a literal
// non-negative integer to playback of that attempt.
func ParseDemoSelector(token string) (DemoSelector, error) {
	t := strings.TrimSpace(token)
	if t == "" {
		return DemoSelector{Mode: DemoRecord}, nil
	}
	for _, r := range t {
		if r < '0' || r > '9' {
			return DemoSelector{}, Errorf(ErrInvalidArgument, "demo number must be a non-negative integer, got %q", token)
		}
	}
	n, err := strconv.Atoi(t)
	if err != nil {
		return DemoSelector{}, Errorf(ErrInvalidArgument, "demo number %q: %v", token, err)
	}
	return DemoSelector{Mode: DemoPlay, Number: n}, nil
}
