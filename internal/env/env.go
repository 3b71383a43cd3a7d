// Package env reads the environment variables wadrun needs into an explicit
// Environment value. It is loaded once at startup and passed down; nothing in
// the planner reads the process environment directly.
package env

import (
	"strings"

	"github.com/robertgumeny/wadrun/internal/types"
)

// Variable names.
const (
	VarWadDir   = "DOOM_DIR"
	VarIWADDir  = "DOOM_IWAD_DIR"
	VarDemoDir  = "DOOM_DEMO_DIR"
	VarModDir   = "DOOM_MOD_DIR"
	VarAddonDir = "DOOM_ADDON_DIR"
	VarPlayer   = "DOOM_PLAYER"
	VarExe      = "DOOM_EXE"
	VarVersion  = "DOOM_VERSION"
)

// Environment holds the base directories and defaults taken from the
// environment.
type Environment struct {
	WadDir     string
	IWADDir    string
	DemoDir    string
	ModDir     string
	AddonDir   string
	Player     string
	Executable string
	Version    string
}

// Lookup matches os.LookupEnv.
type Lookup func(key string) (string, bool)

// Load reads every required variable through lookup. All missing or empty
// variables are reported together in a single ErrEnvironmentMissing error.
func Load(lookup Lookup) (Environment, error) {
	var missing []string
	get := func(key string) string {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		if !ok || v == "" {
			missing = append(missing, key)
		}
		return v
	}

	e := Environment{
		WadDir:     get(VarWadDir),
		IWADDir:    get(VarIWADDir),
		DemoDir:    get(VarDemoDir),
		ModDir:     get(VarModDir),
		AddonDir:   get(VarAddonDir),
		Player:     get(VarPlayer),
		Executable: get(VarExe),
		Version:    get(VarVersion),
	}

	if len(missing) > 0 {
		return Environment{}, types.Errorf(types.ErrEnvironmentMissing,
			"required environment variables not set: %s", strings.Join(missing, ", "))
	}
	return e, nil
}
