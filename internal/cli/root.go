package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/toolbox/internal/app"
	"github.com/atomicstack/toolbox/internal/catalog"
	"github.com/atomicstack/toolbox/internal/logging"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	okColor      = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	dimColor     = color.New(color.Faint)
	nameColor    = color.New(color.FgCyan, color.Bold)
	currentColor = color.New(color.FgMagenta, color.Bold)
)

// ExitError carries a specific process exit status out of a command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewRootCommand builds the command tree. Global flags are parsed before the
// subcommand by the config package; cfg carries their result.
func NewRootCommand(cfg app.Config, stdout, stderr io.Writer) *cobra.Command {
	var noColor bool
	root := &cobra.Command{
		Use:           "toolbox",
		Short:         "Terminal launcher for a catalog of scripts",
		Version:       app.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate("toolbox v{{.Version}}\n")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")

	root.AddCommand(
		newListCommand(cfg),
		newCheckCommand(cfg),
		newRunCommand(cfg),
		newThemesCommand(cfg),
		newVersionCommand(cfg),
	)
	return root
}

// Execute runs one subcommand and returns the process exit status.
func Execute(cfg app.Config, args []string) int {
	return execute(cfg, args, os.Stdout, os.Stderr)
}

func execute(cfg app.Config, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(cfg, stdout, stderr)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			errorColor.Fprintf(stderr, "Error: %v\n", exitErr.Err)
		}
		return exitErr.Code
	}
	logging.Error(err)
	errorColor.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

func loadCatalog(cmd *cobra.Command, path string) (*catalog.Catalog, error) {
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	for _, warning := range cat.Warnings() {
		warnColor.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", warning)
	}
	return cat, nil
}
