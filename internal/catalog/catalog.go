// Package catalog loads the per-WAD configuration file (pwads.json) that
// associates a WAD with its IWAD, mod files and music files.
//
// The file is a JSON object keyed by WAD name. A ".yaml" or ".yml" file with
// the same shape is also accepted.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/robertgumeny/wadrun/internal/types"
)

// FileName is the catalog file looked up in the WAD tree root.
const FileName = "pwads.json"

// Entry is the configuration of a single WAD. Every field is optional.
type Entry struct {
	IWAD  string   `json:"iwad,omitempty" yaml:"iwad,omitempty"`
	Mods  []string `json:"mods,omitempty" yaml:"mods,omitempty"`
	Music []string `json:"music,omitempty" yaml:"music,omitempty"`
	Short string   `json:"short,omitempty" yaml:"short,omitempty"`
}

// Catalog maps a lower-case WAD name to its Entry. It is read-only after Load.
type Catalog struct {
	entries map[string]Entry
}

// ParseError is returned when the catalog exists but cannot be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads the catalog at path. A missing file is ErrNotFound; malformed
// content is *ParseError.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, types.Errorf(types.ErrNotFound, "configuration file %s does not exist", path)
		}
		return nil, err
	}

	raw := map[string]Entry{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return New(raw), nil
}

// New builds a Catalog from entries. Keys are normalized to lower case.
func New(entries map[string]Entry) *Catalog {
	c := &Catalog{entries: make(map[string]Entry, len(entries))}
	for name, e := range entries {
		c.entries[strings.ToLower(name)] = e
	}
	return c
}

// Lookup returns the entry for wad, if configured.
func (c *Catalog) Lookup(wad string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	e, ok := c.entries[strings.ToLower(wad)]
	return e, ok
}

// IWAD returns the IWAD a target runs on: an IWAD target is its own IWAD,
// otherwise the configured iwad, otherwise doom2.
func (c *Catalog) IWAD(target string) string {
	t := strings.ToLower(target)
	if types.IsIWAD(t) {
		return t
	}
	if e, ok := c.Lookup(t); ok && e.IWAD != "" {
		return strings.ToLower(e.IWAD)
	}
	return types.IWADDoom2
}

// ModFiles returns the configured music files followed by the mod files for
// wad. Unknown WADs have none.
func (c *Catalog) ModFiles(wad string) []string {
	e, ok := c.Lookup(wad)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(e.Music)+len(e.Mods))
	out = append(out, e.Music...)
	out = append(out, e.Mods...)
	return out
}

// Names returns every configured WAD name, sorted.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultPath returns the catalog path inside wadDir.
func DefaultPath(wadDir string) string {
	return filepath.Join(wadDir, FileName)
}
