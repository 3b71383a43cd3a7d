package env_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/robertgumeny/wadrun/internal/env"
	"github.com/robertgumeny/wadrun/internal/types"
)

func fullEnv() map[string]string {
	return map[string]string{
		env.VarWadDir:   "/doom/wads",
		env.VarIWADDir:  "/doom/iwads",
		env.VarDemoDir:  "/doom/demos",
		env.VarModDir:   "/doom/mod",
		env.VarAddonDir: "/doom/addon",
		env.VarPlayer:   "Cinnamon",
		env.VarExe:      "/opt/dsda/dsda-doom",
		env.VarVersion:  "0.28.1",
	}
}

func lookupFrom(m map[string]string) env.Lookup {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestLoad_AllPresent(t *testing.T) {
	e, err := env.Load(lookupFrom(fullEnv()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.WadDir != "/doom/wads" || e.DemoDir != "/doom/demos" {
		t.Errorf("directories not loaded: %+v", e)
	}
	if e.Player != "Cinnamon" || e.Version != "0.28.1" {
		t.Errorf("player/version not loaded: %+v", e)
	}
	if e.Executable != "/opt/dsda/dsda-doom" {
		t.Errorf("Executable = %q", e.Executable)
	}
}

func TestLoad_MissingListsEveryVariable(t *testing.T) {
	m := fullEnv()
	delete(m, env.VarPlayer)
	m[env.VarDemoDir] = "   "

	_, err := env.Load(lookupFrom(m))
	if !errors.Is(err, types.ErrEnvironmentMissing) {
		t.Fatalf("error = %v, want ErrEnvironmentMissing", err)
	}
	for _, name := range []string{env.VarPlayer, env.VarDemoDir} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not mention %s", err, name)
		}
	}
	if strings.Contains(err.Error(), env.VarWadDir) {
		t.Errorf("error %q mentions a variable that is set", err)
	}
}
