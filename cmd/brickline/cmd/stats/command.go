// Package stats implements the stats command.
package stats

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/brickline"
	"github.com/agentstation/brickline/cmd/application"
	"github.com/agentstation/brickline/internal/cmd/output"
	"github.com/agentstation/brickline/internal/wantedfile"
)

// NewCommand creates the stats command using app context.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "stats FILE...",
		GroupID: "inspect",
		Short:   "Show statistics of wanted lists",
		Args:    cobra.MinimumNArgs(1),
		Long: `Stats decodes each wanted list and reports:

  Total Items              number of ITEM entries
  Total Parts              sum of minimum quantities (an item without one counts as 1)
  Unique Item/Color Count  distinct item id and color pairs
  Unique Color Count       distinct colors`,
		Example: `  brickline stats wanted.xml               # One list
  brickline stats a.xml b.xml -o yaml      # Several lists as YAML`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := app.Logger()

			lists := make([]output.NamedStatistics, 0, len(args))
			for _, path := range args {
				text, err := wantedfile.Read(path)
				if err != nil {
					return err
				}
				s, err := brickline.Stats(text)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				logger.Debug().Str("path", path).Int("items", s.TotalItems).Msg("computed statistics")
				lists = append(lists, output.NamedStatistics{Name: path, Statistics: s})
			}

			format := output.Format(app.OutputFormat())
			formatter := output.NewFormatter(format)
			if format == output.FormatTable {
				return formatter.Format(cmd.OutOrStdout(), output.StatisticsTable(lists))
			}
			return formatter.Format(cmd.OutOrStdout(), lists)
		},
	}
}
