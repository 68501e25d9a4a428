// Package constants provides shared constants for CLI commands.
package constants

// Shell names accepted by the completion command.
const (
	ShellBash       = "bash"
	ShellZsh        = "zsh"
	ShellFish       = "fish"
	ShellPowerShell = "powershell"
)

// Shells lists every supported shell in the order shown in help output.
func Shells() []string {
	return []string{ShellBash, ShellZsh, ShellFish, ShellPowerShell}
}
