package cli

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/danieljhkim/touchp/internal/engine"
	"github.com/danieljhkim/touchp/internal/fsops"
)

// newEngine creates a new engine backed by the real filesystem.
func newEngine() *engine.Engine {
	return engine.New(fsops.NewRealFS())
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatError formats an error for display on stderr.
func FormatError(err error) string {
	msg := err.Error()
	if errors.Is(err, engine.ErrAlreadyExists) || errors.Is(err, engine.ErrBlockedByFile) {
		msg += ". Use --overwrite to overwrite it."
	}
	return errorColor.Sprintf("Error: %s", msg)
}
