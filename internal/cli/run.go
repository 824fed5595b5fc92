package cli

import (
	"errors"
	"fmt"

	"github.com/atomicstack/toolbox/internal/app"
	"github.com/atomicstack/toolbox/internal/logging"
	"github.com/atomicstack/toolbox/internal/runner"
	"github.com/spf13/cobra"
)

func newRunCommand(cfg app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "run NAME",
		Short: "Run the first program called NAME without the launcher",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(cmd, cfg.CatalogPath)
			if err != nil {
				return err
			}
			matches, err := lookup(cat, args[0])
			if err != nil {
				return err
			}
			path := matches[0].Script
			r := runner.New(cfg.Shell)
			if err := r.Check(path); err != nil {
				logging.Activity(fmt.Sprintf("Error running script: %s - %v", path, err))
				return err
			}

			script := r.Script(path)
			script.SetStdin(cmd.InOrStdin())
			script.SetStdout(cmd.OutOrStdout())
			script.SetStderr(cmd.ErrOrStderr())
			outcome := script.Outcome(script.Exec())
			switch {
			case !outcome.Started:
				logging.Activity(fmt.Sprintf("Error running script: %s - %s", path, outcome.Message))
				return &ExitError{Code: 1, Err: errors.New(outcome.Message)}
			case !outcome.Succeeded:
				logging.Activity(fmt.Sprintf("Script executed: %s (exit status %d)", path, outcome.ExitCode))
				return &ExitError{Code: outcome.ExitCode, Err: errors.New(outcome.Message)}
			}
			logging.Activity("Script executed: " + path)
			return nil
		},
	}
}
