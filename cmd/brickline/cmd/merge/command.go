// Package merge implements the merge command.
package merge

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/brickline/cmd/application"
	"github.com/agentstation/brickline/internal/cmd/globals"
)

// NewCommand creates the merge command using app context.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "merge -l LEFT -r RIGHT [-w OUT]",
		GroupID: "core",
		Short:   "Merge two wanted lists into one",
		Args:    cobra.NoArgs,
		Long: `Merge combines two wanted lists into one list with a single entry per
item id and color.

The left list is the primary: for items on both lists its price, condition,
remarks and flags are kept, and the quantities are added together. Items only
on the right list are copied over. The result is sorted by item id and color.

The merged list is written to stdout, or to OUT with -w. A summary and the
statistics of both inputs and the result are printed to stderr. An existing
OUT is only replaced after confirmation, or with --force.`,
		Example: `  brickline merge -l mine.xml -r theirs.xml                 # Print the merged list
  brickline merge -l mine.xml -r theirs.xml -w merged.xml   # Write it to a file
  brickline merge -l a.xml -r b.xml -w a.xml --force        # Replace a.xml without asking
  brickline merge -l a.xml -r b.xml -o json                 # Summary as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ExecuteMerge(cmd, app, globals.ParseMerge(cmd))
		},
	}

	globals.AddMergeFlags(cmd)

	return cmd
}
