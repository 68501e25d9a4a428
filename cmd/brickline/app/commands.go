package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/brickline/cmd/brickline/cmd/completion"
	"github.com/agentstation/brickline/cmd/brickline/cmd/format"
	"github.com/agentstation/brickline/cmd/brickline/cmd/merge"
	"github.com/agentstation/brickline/cmd/brickline/cmd/stats"
	"github.com/agentstation/brickline/cmd/brickline/cmd/validate"
	"github.com/agentstation/brickline/pkg/constants"
)

// CreateMergeCommand creates the merge command with app dependencies.
func (a *App) CreateMergeCommand() *cobra.Command {
	return merge.NewCommand(a)
}

// CreateFormatCommand creates the fmt command with app dependencies.
func (a *App) CreateFormatCommand() *cobra.Command {
	return format.NewCommand(a)
}

// CreateStatsCommand creates the stats command with app dependencies.
func (a *App) CreateStatsCommand() *cobra.Command {
	return stats.NewCommand(a)
}

// CreateValidateCommand creates the validate command with app dependencies.
func (a *App) CreateValidateCommand() *cobra.Command {
	return validate.NewCommand(a)
}

// CreateCompletionCommand creates the completion command.
func (a *App) CreateCompletionCommand() *cobra.Command {
	return completion.NewCommand()
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("%s %s\n", constants.AppName, a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
