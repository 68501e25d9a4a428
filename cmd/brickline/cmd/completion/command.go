// Package completion implements the completion command.
package completion

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/brickline/internal/cmd/constants"
)

// NewCommand creates the completion command. The script is generated from
// the root command, so it covers every registered subcommand.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [" + strings.Join(constants.Shells(), "|") + "]",
		Short: "Generate completion script",
		Long: `To load completions:

Bash:

  $ source <(brickline completion bash)

Zsh:

  $ brickline completion zsh > "${fpath[1]}/_brickline"

Fish:

  $ brickline completion fish | source

PowerShell:

  PS> brickline completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             constants.Shells(),
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			root := cmd.Root()
			switch args[0] {
			case constants.ShellBash:
				return root.GenBashCompletionV2(out, true)
			case constants.ShellZsh:
				return root.GenZshCompletion(out)
			case constants.ShellFish:
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
