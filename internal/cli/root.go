package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/touchp/internal/engine"
)

var (
	version = "dev"

	// Colors for help output sections
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// options holds the flag values of a single invocation.
type options struct {
	overwrite  bool
	verbose    bool
	jsonOutput bool
}

// newRootCmd builds the touchp command with its own set of flag values.
func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "touchp <file_path>",
		Version: version,
		Short:   "Create an empty file and any missing parent directories",
		Long: `touchp creates an empty file at the given path, creating any missing parent
directories along the way.

Without --overwrite nothing is destroyed: an existing target, or a regular file
sitting where a parent directory must go, aborts the run. With --overwrite such
files are deleted, a directory at the target is removed recursively, and an
existing file is truncated.`,
		Example: `  touchp notes/2024/todo.md
  touchp --overwrite build/out/report.txt`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd.OutOrStdout(), args[0], opts)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetHelpFunc(customHelpFunc)

	cmd.Flags().BoolVarP(&opts.overwrite, "overwrite", "o", false, "Overwrite existing files or directories that block the target")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print every change made to the filesystem")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the result in JSON format")

	return cmd
}

func runCreate(out io.Writer, rawPath string, opts *options) error {
	eng := newEngine()

	path, err := eng.Resolve(rawPath)
	if err != nil {
		return err
	}

	result, err := eng.Create(&engine.CreateRequest{
		Path:      path,
		Overwrite: opts.overwrite,
	})
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return outputJSON(out, result)
	}
	if opts.verbose {
		printResult(out, result)
	}
	return nil
}

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// customHelpFunc prints help with colored section titles
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	if cmd.HasExample() {
		help.WriteString(sectionTitleColor.Sprint("Examples:"))
		help.WriteString("\n")
		help.WriteString(cmd.Example)
		help.WriteString("\n\n")
	}

	if cmd.HasAvailableLocalFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
	}

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

// Execute runs touchp with the process arguments.
func Execute() error {
	return ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// ExecuteArgs runs touchp with the given arguments and output streams.
func ExecuteArgs(args []string, stdout, stderr io.Writer) error {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}
