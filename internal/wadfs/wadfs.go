// Package wadfs provides the filesystem probes used while resolving a launch:
// existence checks that fail with ErrNotFound, and listings of loadable files
// filtered by an ignore-extension set.
package wadfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/robertgumeny/wadrun/internal/types"
)

// VerifyFile returns path if it names an existing regular file.
func VerifyFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", types.Errorf(types.ErrNotFound, "no such file: %s", path)
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return "", types.Errorf(types.ErrNotFound, "not a file: %s", path)
	}
	return path, nil
}

// VerifyDir returns path if it names an existing directory.
func VerifyDir(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", types.Errorf(types.ErrNotFound, "no such directory: %s", path)
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return "", types.Errorf(types.ErrNotFound, "not a directory: %s", path)
	}
	return path, nil
}

// IsFile reports whether path is an existing regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Ignored reports whether name has one of the ignored extensions. Extensions
// are compared case-insensitively and without the leading dot.
func Ignored(name string, ignore []string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return false
	}
	for _, ig := range ignore {
		if ext == strings.ToLower(strings.TrimPrefix(ig, ".")) {
			return true
		}
	}
	return false
}

// ListLoadable returns the regular files directly inside dir whose extension
// is not ignored, sorted by name. Paths in exclude are skipped.
func ListLoadable(dir string, ignore []string, exclude ...string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, types.Errorf(types.ErrNotFound, "no such directory: %s", dir)
		}
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	skip := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		skip[filepath.Clean(e)] = true
	}

	var out []string
	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())
		if skip[full] || Ignored(entry.Name(), ignore) {
			continue
		}
		if !IsFile(full) {
			continue
		}
		out = append(out, full)
	}
	sort.Strings(out)
	return out, nil
}
