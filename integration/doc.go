// Package integration contains the end-to-end smoke tests for wadrun. Tests
// in this package build the CLI and run it against a throwaway WAD tree with
// a mock engine.
//
// Run with: go test ./integration/... -v -timeout 60s
package integration
