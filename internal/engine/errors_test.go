package engine

import (
	"errors"
	"io/fs"
	"testing"
)

func TestPathError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *PathError
		want string
	}{
		{
			name: "already exists",
			err:  newPathError(ErrAlreadyExists, "/tmp/file.txt", nil),
			want: "'/tmp/file.txt' already exists",
		},
		{
			name: "blocked by file",
			err:  newPathError(ErrBlockedByFile, "/tmp/a", nil),
			want: "'/tmp/a' already exists as a file",
		},
		{
			name: "io failure with cause",
			err:  newPathError(ErrFileCreation, "/tmp/file.txt", fs.ErrPermission),
			want: "failed to create file '/tmp/file.txt': permission denied",
		},
		{
			name: "no path",
			err:  newPathError(ErrEnvironment, "", errors.New("getwd: no such file or directory")),
			want: "failed to get current directory: getwd: no such file or directory",
		},
		{
			name: "invalid path reason",
			err:  newPathError(ErrInvalidPath, "/", errNoParent),
			want: "invalid path '/': path has no parent directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPathError_Is(t *testing.T) {
	err := error(newPathError(ErrDirectoryRemoval, "/tmp/dir", fs.ErrPermission))

	if !errors.Is(err, ErrDirectoryRemoval) {
		t.Error("errors.Is should match the kind")
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is should match the cause")
	}
	if errors.Is(err, ErrDirectoryCreation) {
		t.Error("errors.Is should not match another kind")
	}

	bare := error(newPathError(ErrAlreadyExists, "/tmp/file", nil))
	if !errors.Is(bare, ErrAlreadyExists) {
		t.Error("errors.Is should match the kind without a cause")
	}
}
