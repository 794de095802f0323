package cli

import (
	"io"

	"github.com/fatih/color"

	"github.com/danieljhkim/touchp/internal/engine"
)

var (
	// fatih/color disables these automatically when output is not a TTY
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// printRemoved prints a destructive change
func printRemoved(w io.Writer, what, path string) {
	_, _ = warningColor.Fprintf(w, "- removed %s %s\n", what, path)
}

// printCreated prints a created directory or file
func printCreated(w io.Writer, what, path string) {
	_, _ = successColor.Fprintf(w, "+ created %s %s\n", what, path)
}

// printResult prints every change recorded in result, in the order it happened.
func printResult(w io.Writer, result *engine.CreateResult) {
	for _, path := range result.RemovedFiles {
		printRemoved(w, "file", path)
	}
	for _, path := range result.CreatedDirectories {
		printCreated(w, "directory", path)
	}
	if result.RemovedDirectory != "" {
		printRemoved(w, "directory", result.RemovedDirectory)
	}
	if result.Replaced && result.RemovedDirectory == "" {
		_, _ = dimColor.Fprintf(w, "~ truncated file %s\n", result.Path)
		return
	}
	printCreated(w, "file", result.Path)
}
