package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrEnvironment indicates the current working directory could not be determined.
	ErrEnvironment = errors.New("failed to get current directory")

	// ErrInvalidPath indicates the target path has no usable form or parent.
	ErrInvalidPath = errors.New("invalid path")

	// ErrAlreadyExists indicates the target exists and overwrite was not requested.
	ErrAlreadyExists = errors.New("already exists")

	// ErrBlockedByFile indicates an ancestor of the target is a regular file.
	ErrBlockedByFile = errors.New("already exists as a file")

	// ErrFileRemoval indicates a blocking ancestor file could not be deleted.
	ErrFileRemoval = errors.New("failed to remove file")

	// ErrDirectoryCreation indicates the parent directories could not be created.
	ErrDirectoryCreation = errors.New("failed to create directories")

	// ErrDirectoryRemoval indicates a directory at the target could not be removed.
	ErrDirectoryRemoval = errors.New("failed to remove directory")

	// ErrFileCreation indicates the empty file could not be created.
	ErrFileCreation = errors.New("failed to create file")
)

// PathError records a failed step together with the path it concerns.
// errors.Is matches both Kind and the underlying cause.
type PathError struct {
	Kind error
	Path string
	Err  error
}

func (e *PathError) Error() string {
	var msg string
	switch e.Kind {
	case ErrAlreadyExists, ErrBlockedByFile:
		msg = fmt.Sprintf("'%s' %v", e.Path, e.Kind)
	default:
		if e.Path == "" {
			msg = e.Kind.Error()
		} else {
			msg = fmt.Sprintf("%v '%s'", e.Kind, e.Path)
		}
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PathError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Reasons attached to ErrInvalidPath.
var (
	errEmptyPath   = errors.New("path is empty")
	errNotAbsolute = errors.New("path is not absolute")
	errNoParent    = errors.New("path has no parent directory")
)

func newPathError(kind error, path string, err error) *PathError {
	return &PathError{Kind: kind, Path: path, Err: err}
}
