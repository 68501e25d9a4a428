// Package format implements the fmt command.
package format

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/brickline"
	"github.com/agentstation/brickline/cmd/application"
	"github.com/agentstation/brickline/internal/cmd/alerts"
	"github.com/agentstation/brickline/internal/cmd/output"
	"github.com/agentstation/brickline/internal/wantedfile"
	"github.com/agentstation/brickline/pkg/errors"
)

// NewCommand creates the fmt command using app context.
func NewCommand(app application.Application) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "fmt FILE",
		GroupID: "core",
		Short:   "Rewrite a wanted list in canonical form",
		Args:    cobra.ExactArgs(1),
		Long: `Fmt decodes a wanted list and encodes it again: XML declaration, no
whitespace between elements and the fields of every item in upload order.
Item order is kept. Unknown elements are dropped.

The result is printed to stdout, or written back to FILE with -w.`,
		Example: `  brickline fmt wanted.xml        # Print canonical form
  brickline fmt -w wanted.xml     # Rewrite in place`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			text, err := wantedfile.Read(path)
			if err != nil {
				return err
			}
			formatted, err := brickline.Format(text, brickline.WithCodecMode(app.Config().CodecMode))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			if !write {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), formatted); err != nil {
					return errors.WrapIO("write", "stdout", err)
				}
				return nil
			}
			notify := alerts.NewFormatWriter(cmd.ErrOrStderr(), output.Format(app.OutputFormat()))
			if formatted == text {
				app.Logger().Debug().Str("path", path).Msg("already formatted")
				return notify.WriteAlert(alerts.NewInfo(path + " already formatted"))
			}
			if err := wantedfile.Write(path, formatted); err != nil {
				return err
			}
			app.Logger().Info().Str("path", path).Msg("formatted wanted list")
			return notify.WriteAlert(alerts.NewSuccess("formatted " + path))
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back to FILE")

	return cmd
}
