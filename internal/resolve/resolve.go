// Package resolve turns a validated launch request into a fully qualified
// launch plan: executable, IWAD, target WAD, loadable files, warp target and
// port-specific switches. Resolution only reads the filesystem.
package resolve

import (
	"path/filepath"
	"strings"

	"github.com/robertgumeny/wadrun/internal/catalog"
	"github.com/robertgumeny/wadrun/internal/config"
	"github.com/robertgumeny/wadrun/internal/demo"
	"github.com/robertgumeny/wadrun/internal/env"
	"github.com/robertgumeny/wadrun/internal/port"
	"github.com/robertgumeny/wadrun/internal/suggest"
	"github.com/robertgumeny/wadrun/internal/types"
	"github.com/robertgumeny/wadrun/internal/wadfs"
)

// Options are the collaborators a resolution reads from. Env already carries
// any player, executable or version overrides given on the command line.
type Options struct {
	Env      env.Environment
	Settings *config.Settings
	Catalog  *catalog.Catalog

	// Compatibility overrides Settings.Compatibility when non-empty.
	Compatibility string
}

// Resolution is the outcome of resolving a request.
type Resolution struct {
	Request types.Request
	Port    port.Port

	Executable     string
	ExecutableName string
	Player         string
	Version        string

	IWAD       string
	IWADPath   string
	Kind       Kind
	TargetPath string

	// DefaultFiles are loadable files found next to the target WAD.
	DefaultFiles []string

	// Mods are configured mod/music files followed by add-on directory files.
	Mods []string

	Map        types.MapSpec
	CompatArgs []string
	MusicArgs  []string

	// Warnings are non-fatal problems worth reporting, such as configured
	// mods that are missing on disk.
	Warnings []string
}

// Files returns the ordered -file list: explicit extra files, default files,
// mods, then the target WAD unless the target is the IWAD itself.
func (r *Resolution) Files() []string {
	var out []string
	out = append(out, r.Request.Files()...)
	out = append(out, r.DefaultFiles...)
	out = append(out, r.Mods...)
	if r.Kind != KindIWAD {
		out = append(out, r.TargetPath)
	}
	return out
}

// DemoKey returns the demo naming key for this resolution under root.
func (r *Resolution) DemoKey(root string) demo.Key {
	return demo.Key{
		Root:       root,
		Executable: r.ExecutableName,
		Version:    strings.ToLower(r.Version),
		Player:     r.Player,
		Mapper:     r.Request.Mapper(),
		Target:     r.Request.Target(),
		Warp:       r.Map.Warp(),
		Difficulty: r.Request.Skill().Name,
		Modifiers:  r.Request.Modifiers().Letters(),
		Category:   r.Request.Category(),
	}
}

// Resolve resolves req against opts. Failures are typed: ErrInvalidArgument,
// ErrAmbiguousInput or ErrNotFound.
func Resolve(req types.Request, opts Options) (*Resolution, error) {
	settings := opts.Settings
	if settings == nil {
		settings = config.Defaults()
	}

	res := &Resolution{
		Request: req,
		Player:  opts.Env.Player,
		Version: opts.Env.Version,
	}

	kind, err := Classify(req.Target(), req.Mapper(), settings)
	if err != nil {
		return nil, err
	}
	res.Kind = kind

	exe, err := wadfs.VerifyFile(opts.Env.Executable)
	if err != nil {
		return nil, err
	}
	res.Executable = exe
	res.ExecutableName = port.ExecutableName(exe)

	if settings.Port != "" {
		if res.Port, err = port.New(settings.Port); err != nil {
			return nil, types.Errorf(types.ErrInvalidArgument, "%v", err)
		}
	} else {
		res.Port = port.Detect(exe)
	}

	res.IWAD = opts.Catalog.IWAD(req.Target())
	if !types.IsIWAD(res.IWAD) {
		return nil, types.Errorf(types.ErrInvalidArgument, "configured iwad %q for %s is not one of %s",
			res.IWAD, req.Target(), strings.Join(types.IWADs, ", "))
	}
	if res.Map, err = ParseMap(req.Maps(), res.IWAD); err != nil {
		return nil, err
	}

	iwadPath := filepath.Join(opts.Env.IWADDir, res.IWAD, res.IWAD+".wad")
	if res.IWADPath, err = wadfs.VerifyFile(iwadPath); err != nil {
		return nil, err
	}

	if kind == KindIWAD {
		res.TargetPath = res.IWADPath
	} else {
		path := TargetPath(opts.Env.WadDir, req.Target(), req.Mapper(), kind, settings)
		if res.TargetPath, err = wadfs.VerifyFile(path); err != nil {
			return nil, types.Errorf(types.ErrNotFound, "no WAD %s at %s%s",
				req.Target(), path, suggest.Hint(req.Target(), opts.Catalog.Names()))
		}
		if req.DefaultFiles() {
			res.DefaultFiles, err = wadfs.ListLoadable(filepath.Dir(res.TargetPath), settings.IgnoreExtensions, res.TargetPath)
			if err != nil {
				return nil, err
			}
		}
	}

	if req.UseMods() {
		if err := resolveMods(res, opts, settings); err != nil {
			return nil, err
		}
	}

	compat := settings.Compatibility
	if opts.Compatibility != "" {
		compat = opts.Compatibility
	}
	res.CompatArgs = res.Port.CompatibilityArgs(compat)

	if res.MusicArgs, err = res.Port.MusicArgs(req.Track()); err != nil {
		return nil, err
	}

	return res, nil
}

// resolveMods fills res.Mods with configured mods from the mod directory and
// every loadable file in the add-on directory. Configured mods that are
// ignored or missing are skipped with a warning.
func resolveMods(res *Resolution, opts Options, settings *config.Settings) error {
	modDir, err := wadfs.VerifyDir(opts.Env.ModDir)
	if err != nil {
		return err
	}
	addonDir, err := wadfs.VerifyDir(opts.Env.AddonDir)
	if err != nil {
		return err
	}

	for _, name := range opts.Catalog.ModFiles(res.Request.Target()) {
		full := filepath.Join(modDir, name)
		if wadfs.Ignored(name, settings.IgnoreExtensions) {
			res.Warnings = append(res.Warnings, "ignoring configured mod with excluded extension: "+full)
			continue
		}
		if !wadfs.IsFile(full) {
			res.Warnings = append(res.Warnings, "configured mod not found: "+full)
			continue
		}
		res.Mods = append(res.Mods, full)
	}

	addons, err := wadfs.ListLoadable(addonDir, settings.IgnoreExtensions)
	if err != nil {
		return err
	}
	res.Mods = append(res.Mods, addons...)
	return nil
}
