// Package templates holds the starter files written by `wadrun init`.
// All templates are compiled into the binary at build time via //go:embed.
package templates

import "embed"

// Init holds files copied to the WAD tree root by `wadrun init`. Copied
// as-is with no filename transformations.
//
//go:embed init
var Init embed.FS

// Settings is the content of init/wadrun.yaml.
//
//go:embed init/wadrun.yaml
var Settings string
