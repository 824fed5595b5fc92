package cli

import (
	"github.com/atomicstack/toolbox/internal/app"
	"github.com/atomicstack/toolbox/internal/format/table"
	"github.com/atomicstack/toolbox/internal/theme"
	"github.com/spf13/cobra"
)

func newThemesCommand(cfg app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List colour schemes in cycle order and mark the saved one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, saved, err := app.LoadPreferences(cfg.PrefsPath)
			if err != nil {
				saved = theme.DefaultID
			}
			var rows [][]string
			for _, s := range theme.Schemes() {
				marker := " "
				id := s.ID
				if s.ID == saved {
					marker = currentColor.Sprint("*")
					id = currentColor.Sprint(s.ID)
				}
				rows = append(rows, []string{marker, id, s.Name})
			}
			return table.Write(cmd.OutOrStdout(), nil, rows, nil)
		},
	}
}
