package engine

import (
	"path/filepath"
	"strings"
)

// Resolve turns a user-provided path (absolute, relative, or containing "..")
// into an absolute, lexically clean path. The working directory is read once,
// and only when rawPath is relative; the filesystem is otherwise untouched.
func (e *Engine) Resolve(rawPath string) (string, error) {
	if rawPath == "" {
		return "", newPathError(ErrInvalidPath, rawPath, errEmptyPath)
	}

	absPath := rawPath
	if !filepath.IsAbs(rawPath) {
		cwd, err := e.fs.Getwd()
		if err != nil {
			return "", newPathError(ErrEnvironment, "", err)
		}
		absPath = filepath.Join(cwd, rawPath)
	}

	return filepath.Clean(absPath), nil
}

// ancestorChain returns every prefix of the absolute path dir, from the
// filesystem root down to dir itself, growing one component at a time.
func ancestorChain(dir string) []string {
	sep := string(filepath.Separator)
	volume := filepath.VolumeName(dir)
	rest := dir[len(volume):]

	prefix := volume
	if strings.HasPrefix(rest, sep) {
		prefix += sep
	}

	chain := []string{prefix}
	for _, part := range strings.Split(rest, sep) {
		if part == "" {
			continue
		}
		prefix = filepath.Join(prefix, part)
		chain = append(chain, prefix)
	}
	return chain
}
