package engine

import (
	"path/filepath"

	"github.com/danieljhkim/touchp/internal/fsops"
)

// Create makes req.Path an empty regular file.
//
// It proceeds in order: target check, ancestor walk, directory creation,
// target clearing, file creation. The first failing step aborts the rest;
// mutations made by earlier steps are not rolled back.
func (e *Engine) Create(req *CreateRequest) (*CreateResult, error) {
	if !filepath.IsAbs(req.Path) {
		return nil, newPathError(ErrInvalidPath, req.Path, errNotAbsolute)
	}
	path := filepath.Clean(req.Path)

	existing := fsops.KindOf(e.fs, path)
	if existing != fsops.KindMissing && !req.Overwrite {
		return nil, newPathError(ErrAlreadyExists, path, nil)
	}

	parent := filepath.Dir(path)
	if parent == path {
		return nil, newPathError(ErrInvalidPath, path, errNoParent)
	}

	result := &CreateResult{
		Path:     path,
		Replaced: existing != fsops.KindMissing,
	}

	if err := e.clearAncestors(parent, req.Overwrite, result); err != nil {
		return nil, err
	}

	if err := e.fs.MkdirAll(parent, fsops.DirPerm); err != nil {
		return nil, newPathError(ErrDirectoryCreation, parent, err)
	}

	// Only reachable with Overwrite: a directory here failed the first check otherwise.
	if fsops.KindOf(e.fs, path) == fsops.KindDir {
		if err := e.fs.RemoveAll(path); err != nil {
			return nil, newPathError(ErrDirectoryRemoval, path, err)
		}
		result.RemovedDirectory = path
	}

	if err := e.fs.CreateEmpty(path); err != nil {
		return nil, newPathError(ErrFileCreation, path, err)
	}

	return result, nil
}

// clearAncestors walks the ancestor chain of parent from the root down.
// A regular file in the chain aborts the walk, or is deleted when overwrite
// is set, so that deeper directories can be created afterwards.
func (e *Engine) clearAncestors(parent string, overwrite bool, result *CreateResult) error {
	for _, prefix := range ancestorChain(parent) {
		switch fsops.KindOf(e.fs, prefix) {
		case fsops.KindFile:
			if !overwrite {
				return newPathError(ErrBlockedByFile, prefix, nil)
			}
			if err := e.fs.Remove(prefix); err != nil {
				return newPathError(ErrFileRemoval, prefix, err)
			}
			result.RemovedFiles = append(result.RemovedFiles, prefix)
			result.CreatedDirectories = append(result.CreatedDirectories, prefix)
		case fsops.KindMissing:
			result.CreatedDirectories = append(result.CreatedDirectories, prefix)
		}
	}
	return nil
}
