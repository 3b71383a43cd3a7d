package templates_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/robertgumeny/wadrun/internal/catalog"
	"github.com/robertgumeny/wadrun/internal/config"
	"github.com/robertgumeny/wadrun/internal/templates"
)

func TestInitFS_ContainsExpectedFiles(t *testing.T) {
	for _, path := range []string{"init/wadrun.yaml", "init/pwads.json"} {
		f, err := templates.Init.Open(path)
		if err != nil {
			t.Errorf("expected file %q not found in embedded Init FS: %v", path, err)
			continue
		}
		f.Close()
	}
}

func TestSettingsTemplate_LoadsAsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, []byte(templates.Settings), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := config.LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings(template): %v", err)
	}
	want := config.Defaults()
	if got.DefaultCategory != want.DefaultCategory || got.DefaultSkill != want.DefaultSkill {
		t.Errorf("template defaults = %q/%q, want %q/%q",
			got.DefaultCategory, got.DefaultSkill, want.DefaultCategory, want.DefaultSkill)
	}
	if alias, ok := got.SpecialAlias("cinnamon"); !ok || alias != "zwad" {
		t.Errorf("SpecialAlias(cinnamon) = %q, %v; want zwad", alias, ok)
	}
	if len(got.IgnoreExtensions) != len(config.DefaultIgnoreExtensions) {
		t.Errorf("IgnoreExtensions = %v, want %v", got.IgnoreExtensions, config.DefaultIgnoreExtensions)
	}
}

func TestCatalogTemplate_IsValid(t *testing.T) {
	data, err := templates.Init.ReadFile("init/pwads.json")
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]catalog.Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("init/pwads.json is not valid: %v", err)
	}

	path := filepath.Join(t.TempDir(), catalog.FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("catalog.Load(template): %v", err)
	}
	if got := c.IWAD("sigil"); got != "doom" {
		t.Errorf("IWAD(sigil) = %q, want doom", got)
	}
}
