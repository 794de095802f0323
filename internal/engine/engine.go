// Package engine provides the path resolution and creation logic behind touchp.
//
// The engine decides, for each component of a target path, whether it is safe
// to proceed, must be cleared, or must abort. It is the only layer that mutates
// the filesystem, and it does so exclusively through fsops.FS.
//
// Key components:
//   - Engine: holds the filesystem collaborator
//   - Resolve: turns a user-supplied path into an absolute, clean path
//   - Create: clears conflicts, ensures parent directories and creates the empty file
package engine

import (
	"github.com/danieljhkim/touchp/internal/fsops"
)

// Engine orchestrates touchp operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs fsops.FS
}

// New creates a new Engine with the given filesystem.
func New(fs fsops.FS) *Engine {
	return &Engine{fs: fs}
}
