package integration

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/danieljhkim/touchp/internal/engine"
)

// testFS is a filesystem implementation that keeps files and directories in
// memory for testing. Paths are absolute, clean and slash-separated.
type testFS struct {
	files map[string][]byte
	dirs  map[string]bool
	cwd   string

	// ops records every mutating call in order, e.g. "remove /a".
	ops []string
}

func newTestFS(cwd string) *testFS {
	return &testFS{
		files: make(map[string][]byte),
		dirs:  map[string]bool{"/": true},
		cwd:   cwd,
	}
}

// parentsExist reports whether every ancestor of path is a directory.
func (fs *testFS) parentsExist(path string) error {
	for p := filepath.Dir(path); ; p = filepath.Dir(p) {
		if _, ok := fs.files[p]; ok {
			return syscall.ENOTDIR
		}
		if !fs.dirs[p] {
			return os.ErrNotExist
		}
		if p == filepath.Dir(p) {
			return nil
		}
	}
}

func (fs *testFS) Stat(path string) (os.FileInfo, error) {
	if err := fs.parentsExist(path); err != nil && path != "/" {
		return nil, &os.PathError{Op: "stat", Path: path, Err: err}
	}
	if fs.dirs[path] {
		return &mockFileInfo{name: filepath.Base(path), mode: os.ModeDir | 0755, isDir: true}, nil
	}
	if content, ok := fs.files[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), size: int64(len(content)), mode: 0644}, nil
	}
	return nil, &os.PathError{Op: "stat", Path: path, Err: os.ErrNotExist}
}

func (fs *testFS) MkdirAll(path string, perm os.FileMode) error {
	var missing []string
	for p := path; !fs.dirs[p]; p = filepath.Dir(p) {
		if _, ok := fs.files[p]; ok {
			return &os.PathError{Op: "mkdir", Path: p, Err: syscall.ENOTDIR}
		}
		missing = append(missing, p)
	}
	for i := len(missing) - 1; i >= 0; i-- {
		fs.dirs[missing[i]] = true
		fs.ops = append(fs.ops, "mkdir "+missing[i])
	}
	return nil
}

func (fs *testFS) Remove(path string) error {
	if _, ok := fs.files[path]; ok {
		delete(fs.files, path)
		fs.ops = append(fs.ops, "remove "+path)
		return nil
	}
	if fs.dirs[path] {
		if len(fs.children(path)) > 0 {
			return &os.PathError{Op: "remove", Path: path, Err: syscall.ENOTEMPTY}
		}
		delete(fs.dirs, path)
		fs.ops = append(fs.ops, "remove "+path)
		return nil
	}
	return &os.PathError{Op: "remove", Path: path, Err: os.ErrNotExist}
}

func (fs *testFS) RemoveAll(path string) error {
	for _, p := range fs.children(path) {
		delete(fs.files, p)
		delete(fs.dirs, p)
	}
	delete(fs.files, path)
	delete(fs.dirs, path)
	fs.ops = append(fs.ops, "removeall "+path)
	return nil
}

func (fs *testFS) CreateEmpty(path string) error {
	if fs.dirs[path] {
		return &os.PathError{Op: "open", Path: path, Err: syscall.EISDIR}
	}
	if err := fs.parentsExist(path); err != nil {
		return &os.PathError{Op: "open", Path: path, Err: err}
	}
	fs.files[path] = nil
	fs.ops = append(fs.ops, "create "+path)
	return nil
}

func (fs *testFS) Getwd() (string, error) {
	if fs.cwd == "" {
		return "", &os.PathError{Op: "getwd", Path: ".", Err: os.ErrNotExist}
	}
	return fs.cwd, nil
}

// children returns every path strictly below dir, sorted.
func (fs *testFS) children(dir string) []string {
	prefix := strings.TrimSuffix(dir, "/") + "/"
	var out []string
	for p := range fs.files {
		if strings.HasPrefix(p, prefix) {
			out = append(out, p)
		}
	}
	for p := range fs.dirs {
		if strings.HasPrefix(p, prefix) {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// mockFileInfo implements os.FileInfo
type mockFileInfo struct {
	name  string
	size  int64
	mode  os.FileMode
	isDir bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() os.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

func setupTestEngine(t *testing.T) (*engine.Engine, *testFS) {
	t.Helper()
	if filepath.Separator != '/' {
		t.Skip("in-memory filesystem uses slash-separated paths")
	}
	fs := newTestFS("/home/user/project")
	fs.dirs["/home"] = true
	fs.dirs["/home/user"] = true
	fs.dirs["/home/user/project"] = true
	return engine.New(fs), fs
}
