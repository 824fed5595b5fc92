package cli

import (
	"errors"

	"github.com/atomicstack/toolbox/internal/app"
	"github.com/atomicstack/toolbox/internal/format/table"
	"github.com/atomicstack/toolbox/internal/runner"
	"github.com/spf13/cobra"
)

func newListCommand(cfg app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every program in the catalog with its script status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(cmd, cfg.CatalogPath)
			if err != nil {
				return err
			}
			var rows [][]string
			for _, c := range cat.Categories {
				for _, p := range c.Programs {
					rows = append(rows, []string{
						c.Name,
						nameColor.Sprint(p.Name),
						dimColor.Sprint(p.Script),
						scriptStatus(p.Script),
					})
				}
			}
			return table.Write(cmd.OutOrStdout(), []string{"CATEGORY", "PROGRAM", "SCRIPT", "STATUS"}, rows, nil)
		},
	}
}

func scriptStatus(path string) string {
	err := runner.Check(path)
	switch {
	case err == nil:
		return okColor.Sprint("ok")
	case errors.Is(err, runner.ErrNotFound):
		return errorColor.Sprint("missing")
	case errors.Is(err, runner.ErrNotFile):
		return errorColor.Sprint("not a file")
	case errors.Is(err, runner.ErrNotExecutable):
		return warnColor.Sprint("not executable")
	default:
		return errorColor.Sprint("error")
	}
}
