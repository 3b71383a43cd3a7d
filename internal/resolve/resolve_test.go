package resolve_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/robertgumeny/wadrun/internal/catalog"
	"github.com/robertgumeny/wadrun/internal/config"
	"github.com/robertgumeny/wadrun/internal/env"
	"github.com/robertgumeny/wadrun/internal/port"
	"github.com/robertgumeny/wadrun/internal/resolve"
	"github.com/robertgumeny/wadrun/internal/types"
)

// fixture is a throwaway WAD tree with one IWAD of each kind, a PWAD, a test
// WAD and a special mapper WAD.
type fixture struct {
	root string
	opts resolve.Options
}

func touch(t *testing.T, path string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("PWAD"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	e := env.Environment{
		WadDir:     filepath.Join(root, "wads"),
		IWADDir:    filepath.Join(root, "iwads"),
		DemoDir:    filepath.Join(root, "demos"),
		ModDir:     filepath.Join(root, "dsda", "mod"),
		AddonDir:   filepath.Join(root, "dsda", "addon"),
		Player:     "Cinnamon",
		Executable: filepath.Join(root, "dsda", "dsda-doom"),
		Version:    "0.28.1",
	}

	touch(t, e.Executable)
	for _, iwad := range types.IWADs {
		touch(t, filepath.Join(e.IWADDir, iwad, iwad+".wad"))
	}
	touch(t, filepath.Join(e.WadDir, "pwad", "scythe", "scythe.wad"))
	touch(t, filepath.Join(e.WadDir, "pwad", "scythe", "scythe.deh"))
	touch(t, filepath.Join(e.WadDir, "pwad", "scythe", "scythe.txt"))
	touch(t, filepath.Join(e.WadDir, "pwad", "e1fix", "e1fix.wad"))
	touch(t, filepath.Join(e.WadDir, "twad", "Bob", "bobmap", "bobmap.wad"))
	touch(t, filepath.Join(e.WadDir, "zwad", "Cinnamon", "cinmap", "cinmap.wad"))
	touch(t, filepath.Join(e.ModDir, "smooth.pk3"))
	touch(t, filepath.Join(e.ModDir, "scythe-ost.wad"))
	touch(t, filepath.Join(e.AddonDir, "zz-hud.wad"))
	touch(t, filepath.Join(e.AddonDir, "aa-sprites.wad"))
	touch(t, filepath.Join(e.AddonDir, "README.md"))

	cat := catalog.New(map[string]catalog.Entry{
		"scythe": {IWAD: "doom2", Mods: []string{"smooth.pk3", "missing.pk3", "notes.txt"}, Music: []string{"scythe-ost.wad"}},
		"e1fix":  {IWAD: "doom"},
		"broken": {IWAD: "heretic"},
	})

	return &fixture{
		root: root,
		opts: resolve.Options{Env: e, Settings: config.Defaults(), Catalog: cat},
	}
}

func request(t *testing.T, mutate func(*types.RequestInput)) types.Request {
	t.Helper()
	in := types.RequestInput{
		Target:       "scythe",
		Skill:        "uv",
		Category:     "max",
		UseMods:      true,
		DefaultFiles: true,
	}
	if mutate != nil {
		mutate(&in)
	}
	req, err := types.NewRequest(in)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	return req
}

// ---------------------------------------------------------------------------
// Resolve
// ---------------------------------------------------------------------------

func TestResolve_PWAD(t *testing.T) {
	f := newFixture(t)
	req := request(t, func(in *types.RequestInput) { in.Maps = []string{"7"} })

	res, err := resolve.Resolve(req, f.opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.IWAD != "doom2" {
		t.Errorf("IWAD = %q, want doom2", res.IWAD)
	}
	if res.Kind != resolve.KindPWAD {
		t.Errorf("Kind = %q, want pwad", res.Kind)
	}
	if res.Map.Warp() != "map07" {
		t.Errorf("Warp = %q, want map07", res.Map.Warp())
	}
	if res.Port.Name() != port.NameDSDA {
		t.Errorf("Port = %q, want dsda", res.Port.Name())
	}
	if res.ExecutableName != "dsda-doom" {
		t.Errorf("ExecutableName = %q", res.ExecutableName)
	}

	e := f.opts.Env
	wantFiles := []string{
		filepath.Join(e.WadDir, "pwad", "scythe", "scythe.deh"),
		filepath.Join(e.ModDir, "scythe-ost.wad"),
		filepath.Join(e.ModDir, "smooth.pk3"),
		filepath.Join(e.AddonDir, "aa-sprites.wad"),
		filepath.Join(e.AddonDir, "zz-hud.wad"),
		filepath.Join(e.WadDir, "pwad", "scythe", "scythe.wad"),
	}
	if got := res.Files(); !reflect.DeepEqual(got, wantFiles) {
		t.Errorf("Files() =\n  %v\nwant\n  %v", got, wantFiles)
	}

	if len(res.Warnings) != 2 {
		t.Errorf("Warnings = %v, want one for the missing mod and one for the ignored mod", res.Warnings)
	}
}

func TestResolve_ExtraFilesComeFirst(t *testing.T) {
	f := newFixture(t)
	req := request(t, func(in *types.RequestInput) {
		in.Files = []string{"/tmp/test.wad"}
		in.UseMods = false
		in.DefaultFiles = false
	})
	res, err := resolve.Resolve(req, f.opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"/tmp/test.wad", filepath.Join(f.opts.Env.WadDir, "pwad", "scythe", "scythe.wad")}
	if got := res.Files(); !reflect.DeepEqual(got, want) {
		t.Errorf("Files() = %v, want %v", got, want)
	}
}

func TestResolve_IWADTarget(t *testing.T) {
	f := newFixture(t)
	req := request(t, func(in *types.RequestInput) {
		in.Target = "doom"
		in.Maps = []string{"2", "4"}
		in.UseMods = false
	})
	res, err := resolve.Resolve(req, f.opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Kind != resolve.KindIWAD {
		t.Errorf("Kind = %q, want iwad", res.Kind)
	}
	if res.Map.Warp() != "e2m4" {
		t.Errorf("Warp = %q, want e2m4", res.Map.Warp())
	}
	if got := res.Files(); len(got) != 0 {
		t.Errorf("Files() = %v, want none for an IWAD target", got)
	}
	if res.TargetPath != res.IWADPath {
		t.Errorf("TargetPath = %q, want the IWAD path %q", res.TargetPath, res.IWADPath)
	}
}

func TestResolve_MapperKinds(t *testing.T) {
	f := newFixture(t)

	res, err := resolve.Resolve(request(t, func(in *types.RequestInput) {
		in.Target, in.Mapper, in.UseMods = "bobmap", "Bob", false
	}), f.opts)
	if err != nil {
		t.Fatalf("test WAD: %v", err)
	}
	if res.Kind != resolve.KindTWAD {
		t.Errorf("Kind = %q, want twad", res.Kind)
	}

	res, err = resolve.Resolve(request(t, func(in *types.RequestInput) {
		in.Target, in.Mapper, in.UseMods = "cinmap", "Cinnamon", false
	}), f.opts)
	if err != nil {
		t.Fatalf("special mapper WAD: %v", err)
	}
	if res.Kind != resolve.KindSWAD {
		t.Errorf("Kind = %q, want swad", res.Kind)
	}
	if !strings.Contains(res.TargetPath, filepath.Join("zwad", "Cinnamon")) {
		t.Errorf("TargetPath = %q, want it under zwad/Cinnamon", res.TargetPath)
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.RequestInput)
		prepare func(f *fixture)
		want    error
	}{
		{
			name:   "single map number for doom",
			mutate: func(in *types.RequestInput) { in.Target = "doom"; in.Maps = []string{"3"} },
			want:   types.ErrInvalidArgument,
		},
		{
			name:   "two map numbers for doom2 target",
			mutate: func(in *types.RequestInput) { in.Maps = []string{"1", "2"} },
			want:   types.ErrInvalidArgument,
		},
		{
			name:   "special mapper alias target with mapper",
			mutate: func(in *types.RequestInput) { in.Target = "zwad"; in.Mapper = "Bob" },
			want:   types.ErrAmbiguousInput,
		},
		{
			name:   "iwad target with mapper",
			mutate: func(in *types.RequestInput) { in.Target = "tnt"; in.Mapper = "Bob" },
			want:   types.ErrAmbiguousInput,
		},
		{
			name:   "unknown pwad",
			mutate: func(in *types.RequestInput) { in.Target = "scyth" },
			want:   types.ErrNotFound,
		},
		{
			name:    "missing executable",
			prepare: func(f *fixture) { f.opts.Env.Executable = filepath.Join(f.root, "nope") },
			want:    types.ErrNotFound,
		},
		{
			name:    "missing mod directory",
			prepare: func(f *fixture) { f.opts.Env.ModDir = filepath.Join(f.root, "nomods") },
			want:    types.ErrNotFound,
		},
		{
			name:    "missing iwad file",
			prepare: func(f *fixture) { os.RemoveAll(filepath.Join(f.opts.Env.IWADDir, "doom2")) },
			want:    types.ErrNotFound,
		},
		{
			name:   "unsupported configured iwad",
			mutate: func(in *types.RequestInput) { in.Target = "broken" },
			want:   types.ErrInvalidArgument,
		},
		{
			name:   "music track on dsda",
			mutate: func(in *types.RequestInput) { in.Track = 5 },
			want:   types.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.prepare != nil {
				tt.prepare(f)
			}
			_, err := resolve.Resolve(request(t, tt.mutate), f.opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestResolve_NotFoundSuggestsConfiguredWAD(t *testing.T) {
	f := newFixture(t)
	_, err := resolve.Resolve(request(t, func(in *types.RequestInput) { in.Target = "scyth" }), f.opts)
	if err == nil || !strings.Contains(err.Error(), "did you mean scythe") {
		t.Errorf("error = %v, want a suggestion for scythe", err)
	}
}

func TestResolve_CompatibilityAndPortOverride(t *testing.T) {
	f := newFixture(t)
	f.opts.Settings.Compatibility = "9"
	f.opts.Settings.Port = port.NameGZDoom

	res, err := resolve.Resolve(request(t, func(in *types.RequestInput) { in.Track = 3; in.UseMods = false }), f.opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"-compatmode", "9"}; !reflect.DeepEqual(res.CompatArgs, want) {
		t.Errorf("CompatArgs = %v, want %v", res.CompatArgs, want)
	}
	if want := []string{"+idmus", "3"}; !reflect.DeepEqual(res.MusicArgs, want) {
		t.Errorf("MusicArgs = %v, want %v", res.MusicArgs, want)
	}

	f.opts.Compatibility = "2"
	res, err = resolve.Resolve(request(t, func(in *types.RequestInput) { in.UseMods = false }), f.opts)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"-compatmode", "2"}; !reflect.DeepEqual(res.CompatArgs, want) {
		t.Errorf("flag override CompatArgs = %v, want %v", res.CompatArgs, want)
	}
}

func TestResolution_DemoKey(t *testing.T) {
	f := newFixture(t)
	f.opts.Env.Version = "0.28.1-RC"
	req := request(t, func(in *types.RequestInput) {
		in.Maps = []string{"12"}
		in.Category = "nomo"
		in.Modifiers = types.ModifierSet{Fast: true, Respawn: true}
		in.UseMods = false
	})
	res, err := resolve.Resolve(req, f.opts)
	if err != nil {
		t.Fatal(err)
	}
	k := res.DemoKey(f.opts.Env.DemoDir)
	if got, want := k.Base(), "Cinnamon-scythe-map12-uvfr-nomo"; got != want {
		t.Errorf("Base() = %q, want %q", got, want)
	}
	wantDir := filepath.Join(f.opts.Env.DemoDir, "dsda-doom", "0.28.1-rc", "Cinnamon", "scythe", "map12")
	if got := k.Dir(); got != wantDir {
		t.Errorf("Dir() = %q, want %q", got, wantDir)
	}
}
