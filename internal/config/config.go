// Package config provides Settings loading for wadrun.
// Settings are read from wadrun.yaml (by default in the WAD tree root). A
// missing file returns sane defaults without error. CLI flags (bound via
// cobra) override settings at the highest precedence by being applied after
// LoadSettings returns.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file looked up in the WAD tree root.
const FileName = "wadrun.yaml"

// Default values for Settings fields.
const (
	DefaultCategory = "max"
	DefaultSkill    = "uv"
)

// DefaultIgnoreExtensions are never passed to the engine as loadable files.
var DefaultIgnoreExtensions = []string{"bat", "exe", "gz", "md", "rar", "txt", "zip"}

// DefaultSpecialMappers maps a mapper name to the directory alias their WADs
// are stored under.
var DefaultSpecialMappers = map[string]string{
	"cinnamon": "zwad",
	"garlic":   "bwad",
}

// Settings holds all optional configuration for wadrun.
type Settings struct {
	Compatibility    string            `yaml:"compatibility"`
	DefaultCategory  string            `yaml:"default_category"`
	DefaultSkill     string            `yaml:"default_skill"`
	SpecialMappers   map[string]string `yaml:"special_mappers"`
	IgnoreExtensions []string          `yaml:"ignore_extensions"`
	ExtraCategories  []string          `yaml:"extra_categories"`
	ExtraArgs        string            `yaml:"extra_args"`
	Port             string            `yaml:"port"`
}

// defaults returns Settings populated with sane defaults.
func defaults() Settings {
	mappers := make(map[string]string, len(DefaultSpecialMappers))
	for k, v := range DefaultSpecialMappers {
		mappers[k] = v
	}
	return Settings{
		DefaultCategory:  DefaultCategory,
		DefaultSkill:     DefaultSkill,
		SpecialMappers:   mappers,
		IgnoreExtensions: append([]string(nil), DefaultIgnoreExtensions...),
	}
}

// Defaults returns Settings with every field at its default value.
func Defaults() *Settings {
	s := defaults()
	return &s
}

// partialSettings is used during YAML parsing to distinguish between a field
// being absent (nil pointer) and a field being explicitly set to its zero value.
type partialSettings struct {
	Compatibility    *string            `yaml:"compatibility"`
	DefaultCategory  *string            `yaml:"default_category"`
	DefaultSkill     *string            `yaml:"default_skill"`
	SpecialMappers   *map[string]string `yaml:"special_mappers"`
	IgnoreExtensions *[]string          `yaml:"ignore_extensions"`
	ExtraCategories  *[]string          `yaml:"extra_categories"`
	ExtraArgs        *string            `yaml:"extra_args"`
	Port             *string            `yaml:"port"`
}

// LoadSettings reads wadrun.yaml at path and returns Settings.
// If the file does not exist, defaults are returned without error.
// Fields absent from the file keep their default values.
// Mapper names are normalized to lower case and extensions lose any leading dot.
func LoadSettings(path string) (*Settings, error) {
	s := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &s, nil
		}
		return nil, err
	}

	var partial partialSettings
	if err := yaml.Unmarshal(data, &partial); err != nil {
		return nil, err
	}

	if partial.Compatibility != nil {
		s.Compatibility = *partial.Compatibility
	}
	if partial.DefaultCategory != nil {
		s.DefaultCategory = *partial.DefaultCategory
	}
	if partial.DefaultSkill != nil {
		s.DefaultSkill = *partial.DefaultSkill
	}
	if partial.SpecialMappers != nil {
		s.SpecialMappers = make(map[string]string, len(*partial.SpecialMappers))
		for name, alias := range *partial.SpecialMappers {
			s.SpecialMappers[strings.ToLower(name)] = alias
		}
	}
	if partial.IgnoreExtensions != nil {
		s.IgnoreExtensions = nil
		for _, ext := range *partial.IgnoreExtensions {
			s.IgnoreExtensions = append(s.IgnoreExtensions, strings.ToLower(strings.TrimPrefix(ext, ".")))
		}
	}
	if partial.ExtraCategories != nil {
		s.ExtraCategories = *partial.ExtraCategories
	}
	if partial.ExtraArgs != nil {
		s.ExtraArgs = *partial.ExtraArgs
	}
	if partial.Port != nil {
		s.Port = *partial.Port
	}

	return &s, nil
}

// DefaultPath returns the settings path inside wadDir.
func DefaultPath(wadDir string) string {
	return filepath.Join(wadDir, FileName)
}

// SpecialAlias returns the directory alias for mapper, if mapper is special.
// The lookup is case-insensitive.
func (s *Settings) SpecialAlias(mapper string) (string, bool) {
	alias, ok := s.SpecialMappers[strings.ToLower(mapper)]
	return alias, ok
}

// IsSpecialName reports whether name is a special mapper name or one of their
// directory aliases.
func (s *Settings) IsSpecialName(name string) bool {
	n := strings.ToLower(name)
	for mapper, alias := range s.SpecialMappers {
		if n == mapper || n == strings.ToLower(alias) {
			return true
		}
	}
	return false
}
