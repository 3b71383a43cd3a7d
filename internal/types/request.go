package types

import (
	"strconv"
	"strings"

	"github.com/robertgumeny/wadrun/internal/suggest"
)

// RequestInput is the raw, unvalidated user input for a launch. It is only
// consumed by NewRequest.
type RequestInput struct {
	Target    string
	Mapper    string
	Skill     string
	Maps      []string
	Category  string
	Modifiers ModifierSet
	Demo      string
	Files     []string
	Practice  bool
	UseMods   bool

	// DefaultFiles includes loadable files found next to the target WAD.
	DefaultFiles bool

	// Track overrides the music track; zero keeps the level's own.
	Track int

	// ExtraCategories extends the built-in category set.
	ExtraCategories []string
}

// Request is a validated launch request. It has no setters; every accessor
// returns a copy, so a Request can be shared freely once built.
type Request struct {
	target       string
	mapper       string
	skill        Skill
	maps         []int
	category     string
	modifiers    ModifierSet
	demo         DemoSelector
	files        []string
	practice     bool
	useMods      bool
	defaultFiles bool
	track        int
}

// NewRequest validates in and returns the corresponding Request. Map numbers
// are parsed here; their consistency with the IWAD family is checked by the
// resolver once the IWAD is known.
func NewRequest(in RequestInput) (Request, error) {
	target := strings.ToLower(strings.TrimSpace(in.Target))
	if target == "" {
		return Request{}, Errorf(ErrInvalidArgument, "target must not be empty")
	}

	skill, err := ParseSkill(in.Skill)
	if err != nil {
		return Request{}, err
	}

	if len(in.Maps) > 2 {
		return Request{}, Errorf(ErrInvalidArgument, "expected one or two map numbers, got %d: %v", len(in.Maps), in.Maps)
	}
	maps := make([]int, 0, len(in.Maps))
	for _, tok := range in.Maps {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil || n < 1 {
			return Request{}, Errorf(ErrInvalidArgument, "map number %q must be a positive integer", tok)
		}
		maps = append(maps, n)
	}

	category := strings.ToLower(strings.TrimSpace(in.Category))
	if category == "" {
		category = DefaultCategory
	}
	if !knownCategory(category, in.ExtraCategories) {
		return Request{}, Errorf(ErrInvalidArgument, "unknown category %q%s", in.Category, suggest.Hint(category, AllCategories(in.ExtraCategories)))
	}

	demo, err := ParseDemoSelector(in.Demo)
	if err != nil {
		return Request{}, err
	}
	if in.Practice && demo.Mode == DemoPlay {
		return Request{}, Errorf(ErrInvalidArgument, "practice mode cannot play back demo %d", demo.Number)
	}

	if in.Track < 0 {
		return Request{}, Errorf(ErrInvalidArgument, "music track must not be negative, got %d", in.Track)
	}

	return Request{
		target:       target,
		mapper:       strings.TrimSpace(in.Mapper),
		skill:        skill,
		maps:         maps,
		category:     category,
		modifiers:    in.Modifiers,
		demo:         demo,
		files:        append([]string(nil), in.Files...),
		practice:     in.Practice,
		useMods:      in.UseMods,
		defaultFiles: in.DefaultFiles,
		track:        in.Track,
	}, nil
}

// AllCategories returns the built-in categories followed by extra.
func AllCategories(extra []string) []string {
	out := append([]string(nil), Categories...)
	for _, c := range extra {
		out = append(out, strings.ToLower(c))
	}
	return out
}

func knownCategory(category string, extra []string) bool {
	for _, c := range AllCategories(extra) {
		if c == category {
			return true
		}
	}
	return false
}

func (r Request) Target() string         { return r.target }
func (r Request) Mapper() string         { return r.mapper }
func (r Request) Skill() Skill           { return r.skill }
func (r Request) Maps() []int            { return append([]int(nil), r.maps...) }
func (r Request) Category() string       { return r.category }
func (r Request) Modifiers() ModifierSet { return r.modifiers }
func (r Request) Demo() DemoSelector     { return r.demo }
func (r Request) Files() []string        { return append([]string(nil), r.files...) }
func (r Request) Practice() bool         { return r.practice }
func (r Request) UseMods() bool          { return r.useMods }
func (r Request) DefaultFiles() bool     { return r.defaultFiles }
func (r Request) Track() int             { return r.track }

// Records reports whether the run writes a new demo.
func (r Request) Records() bool {
	return !r.practice && r.demo.Mode == DemoRecord
}
