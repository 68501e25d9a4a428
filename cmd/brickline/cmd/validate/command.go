// Package validate implements the validate command.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/brickline/cmd/application"
	"github.com/agentstation/brickline/internal/cmd/output"
	"github.com/agentstation/brickline/internal/wantedfile"
	"github.com/agentstation/brickline/pkg/codec"
	"github.com/agentstation/brickline/pkg/errors"
)

// NewCommand creates the validate command using app context.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "validate FILE...",
		GroupID: "inspect",
		Short:   "Check that wanted lists decode",
		Args:    cobra.MinimumNArgs(1),
		Long: `Validate decodes each wanted list and reports the first problem found in
each file: malformed XML, a missing or repeated element, an unknown item type,
condition or flag code, or a number out of range.

The command exits non-zero if any file fails.`,
		Example: `  brickline validate wanted.xml
  brickline validate *.xml -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := Validate(app, args)

			format := output.Format(app.OutputFormat())
			formatter := output.NewFormatter(format)
			var data any = results
			if format == output.FormatTable {
				data = output.ValidationTable(results)
			}
			if err := formatter.Format(cmd.OutOrStdout(), data); err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if !r.Valid {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d files failed validation", errors.ErrInvalidInput, failed, len(results))
			}
			return nil
		},
	}
}

// Validate decodes every file and records the outcome. A file that cannot
// be read counts as invalid.
func Validate(app application.Application, paths []string) []output.ValidationResult {
	logger := app.Logger()

	results := make([]output.ValidationResult, 0, len(paths))
	for _, path := range paths {
		result := output.ValidationResult{File: path}

		text, err := wantedfile.Read(path)
		if err == nil {
			var n int
			n, err = countItems(text)
			result.Items = n
		}
		if err != nil {
			result.Error = err.Error()
			logger.Warn().Err(err).Str("path", path).Msg("validation failed")
		} else {
			result.Valid = true
		}
		results = append(results, result)
	}
	return results
}

func countItems(text string) (int, error) {
	list, err := codec.Decode(text)
	if err != nil {
		return 0, err
	}
	return list.Len(), nil
}
