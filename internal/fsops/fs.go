// Package fsops provides the filesystem operations touchp relies on.
//
// All filesystem access in touchp goes through the FS interface so the
// path resolver can be exercised against fakes that inject failures or keep
// the whole tree in memory.
//
// Key features:
//   - Existence queries that follow symlinks and distinguish files from directories
//   - Recursive directory creation and removal
//   - Empty-file creation that truncates prior content
//   - Testable via the FS interface
package fsops

import (
	"fmt"
	"os"
)

// DirPerm is the mode used for directories created by MkdirAll callers.
const DirPerm os.FileMode = 0755

// FS provides an abstraction for filesystem operations.
// All filesystem access in touchp must go through this interface.
type FS interface {
	// Stat returns file info, following symlinks.
	Stat(path string) (os.FileInfo, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// Remove removes a file or empty directory.
	Remove(path string) error

	// RemoveAll removes a path and all its contents.
	RemoveAll(path string) error

	// CreateEmpty creates an empty regular file, truncating an existing one.
	CreateEmpty(path string) error

	// Getwd returns the current working directory.
	Getwd() (string, error)
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Stat returns file info, following symlinks.
func (fs *RealFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// MkdirAll creates a directory and all parent directories.
func (fs *RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Remove removes a file or empty directory.
func (fs *RealFS) Remove(path string) error {
	return os.Remove(path)
}

// RemoveAll removes a path and all its contents.
// A symlink is removed itself; the tree it points to is left alone.
func (fs *RealFS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// CreateEmpty creates an empty regular file at path.
func (fs *RealFS) CreateEmpty(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %q: %w", path, err)
	}
	return nil
}

// Getwd returns the current working directory.
func (fs *RealFS) Getwd() (string, error) {
	return os.Getwd()
}

// Kind classifies what a path currently is on disk.
type Kind int

const (
	// KindMissing means the path could not be stat'ed.
	KindMissing Kind = iota
	// KindFile is a regular file.
	KindFile
	// KindDir is a directory.
	KindDir
	// KindOther is anything else: a device, fifo or socket.
	KindOther
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "directory"
	case KindOther:
		return "other"
	default:
		return "missing"
	}
}

// KindOf reports the kind of path, following symlinks.
// Any stat error, including permission errors and ENOTDIR, reads as KindMissing.
func KindOf(fs FS, path string) Kind {
	info, err := fs.Stat(path)
	if err != nil {
		return KindMissing
	}
	switch {
	case info.IsDir():
		return KindDir
	case info.Mode().IsRegular():
		return KindFile
	default:
		return KindOther
	}
}
