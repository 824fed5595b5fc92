package cli

import (
	"context"
	"fmt"

	"github.com/atomicstack/toolbox/internal/app"
	"github.com/atomicstack/toolbox/internal/update"
	"github.com/spf13/cobra"
)

func newVersionCommand(cfg app.Config) *cobra.Command {
	var offline bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version and check for a newer release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "toolbox v%s\n", app.Version)
			if offline {
				return nil
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), update.DefaultTimeout)
			defer cancel()
			latest, err := update.NewChecker(cfg.UpdateURL, app.Version).Latest(ctx)
			switch {
			case err != nil:
				warnColor.Fprintf(cmd.ErrOrStderr(), "Update check failed: %v\n", err)
			case latest != "":
				okColor.Fprintf(out, "Update v%s available\n", latest)
			default:
				fmt.Fprintln(out, "Up to date")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&offline, "offline", false, "skip the release check")
	return cmd
}
