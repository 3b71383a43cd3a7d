package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robertgumeny/wadrun/internal/catalog"
	"github.com/robertgumeny/wadrun/internal/config"
	"github.com/robertgumeny/wadrun/internal/env"
	"github.com/robertgumeny/wadrun/internal/resolve"
	"github.com/robertgumeny/wadrun/internal/types"
)

// keyFlags are the flags that select a demo sequence. They are shared by
// play and clear.
type keyFlags struct {
	fast          bool
	noMonsters    bool
	respawn       bool
	skill         string
	maps          []string
	category      string
	mapper        string
	configuration string
	settings      string
	player        string
	version       string
	executable    string
}

func bindKeyFlags(c *cobra.Command, f *keyFlags) {
	fl := c.Flags()
	fl.BoolVarP(&f.fast, "fast", "a", false, "fast monsters")
	fl.BoolVarP(&f.noMonsters, "nomonsters", "n", false, "no monsters")
	fl.BoolVarP(&f.respawn, "respawn", "w", false, "respawning monsters")
	fl.StringVarP(&f.skill, "skill", "s", "", "skill name or number: "+strings.Join(types.SkillNames(), ", ")+" or 1-5 (default from wadrun.yaml, else uv)")
	fl.StringSliceVarP(&f.maps, "map", "m", nil, "map number, or episode and map for doom (e.g. -m 2,4)")
	fl.StringVarP(&f.category, "category", "c", "", "run category (default from wadrun.yaml, else max)")
	fl.StringVarP(&f.mapper, "mapper", "t", "", "mapper whose test WAD is the target")
	fl.StringVarP(&f.configuration, "configuration", "g", "", "WAD configuration file (default $DOOM_DIR/pwads.json)")
	fl.StringVar(&f.settings, "settings", "", "settings file (default $DOOM_DIR/wadrun.yaml)")
	fl.StringVarP(&f.player, "player", "p", "", "override $"+env.VarPlayer)
	fl.StringVarP(&f.version, "version", "r", "", "override $"+env.VarVersion)
	fl.StringVarP(&f.executable, "executable", "e", "", "override $"+env.VarExe)
}

// launchContext is everything loaded before a request can be resolved.
type launchContext struct {
	env      env.Environment
	settings *config.Settings
	catalog  *catalog.Catalog
}

// overrideLookup returns an env.Lookup where non-empty overrides win over
// the process environment.
func overrideLookup(overrides map[string]string) env.Lookup {
	return func(key string) (string, bool) {
		if v := overrides[key]; v != "" {
			return v, true
		}
		return os.LookupEnv(key)
	}
}

// loadEnvironment loads the environment with the player, version and
// executable flag overrides applied.
func loadEnvironment(f *keyFlags) (env.Environment, error) {
	return env.Load(overrideLookup(map[string]string{
		env.VarPlayer:  f.player,
		env.VarVersion: f.version,
		env.VarExe:     f.executable,
	}))
}

// loadLaunchContext loads the environment, settings and catalog. A missing
// catalog at the default path is an empty catalog; a missing catalog named
// with --configuration is an error.
func loadLaunchContext(f *keyFlags) (*launchContext, error) {
	e, err := loadEnvironment(f)
	if err != nil {
		return nil, err
	}

	settingsPath := f.settings
	if settingsPath == "" {
		settingsPath = config.DefaultPath(e.WadDir)
	}
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("load settings %s: %w", settingsPath, err)
	}

	catalogPath := f.configuration
	if catalogPath == "" {
		catalogPath = catalog.DefaultPath(e.WadDir)
	}
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		if f.configuration != "" || !errors.Is(err, types.ErrNotFound) {
			return nil, err
		}
		cat = catalog.New(nil)
	}

	return &launchContext{env: e, settings: settings, catalog: cat}, nil
}

// requestInput builds the RequestInput shared by play and clear from the
// target argument, trailing map number arguments and key flags. Flags left
// unset fall back to settings.
func requestInput(args []string, f *keyFlags, settings *config.Settings) (types.RequestInput, error) {
	maps := f.maps
	if len(args) > 1 {
		if len(maps) > 0 {
			return types.RequestInput{}, types.Errorf(types.ErrInvalidArgument,
				"map numbers given both as arguments %v and with --map %v", args[1:], maps)
		}
		maps = args[1:]
	}

	skill := f.skill
	if skill == "" {
		skill = settings.DefaultSkill
	}
	category := f.category
	if category == "" {
		category = settings.DefaultCategory
	}

	return types.RequestInput{
		Target:   args[0],
		Mapper:   f.mapper,
		Skill:    skill,
		Maps:     maps,
		Category: category,
		Modifiers: types.ModifierSet{
			Fast:       f.fast,
			NoMonsters: f.noMonsters,
			Respawn:    f.respawn,
		},
		ExtraCategories: settings.ExtraCategories,
	}, nil
}

// resolveOptions returns the resolver options for ctx.
func (ctx *launchContext) resolveOptions(compatibility string) resolve.Options {
	return resolve.Options{
		Env:           ctx.env,
		Settings:      ctx.settings,
		Catalog:       ctx.catalog,
		Compatibility: compatibility,
	}
}
