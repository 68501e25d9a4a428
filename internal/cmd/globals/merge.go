package globals

import "github.com/spf13/cobra"

// MergeFlags holds the flags of the merge command.
type MergeFlags struct {
	Left      string
	Right     string
	Write     string
	Force     bool
	CodecMode string
}

// AddMergeFlags adds merge flags to a command. Left and right are required.
func AddMergeFlags(cmd *cobra.Command) *MergeFlags {
	flags := &MergeFlags{}

	cmd.Flags().StringVarP(&flags.Left, "left", "l", "",
		"Primary wanted list; its metadata wins")
	cmd.Flags().StringVarP(&flags.Right, "right", "r", "",
		"Secondary wanted list folded into the primary")
	cmd.Flags().StringVarP(&flags.Write, "write", "w", "",
		"Write the merged list to this file instead of stdout")
	cmd.Flags().BoolVar(&flags.Force, "force", false,
		"Overwrite the output file without asking")
	cmd.Flags().StringVar(&flags.CodecMode, "codec-mode", "",
		"Encoder mode: direct or legacy")
	_ = cmd.MarkFlagRequired("left")
	_ = cmd.MarkFlagRequired("right")

	return flags
}

// ParseMerge extracts merge flags from a command.
// The command must have had AddMergeFlags called on it, otherwise this will panic.
func ParseMerge(cmd *cobra.Command) *MergeFlags {
	return &MergeFlags{
		Left:      mustGetString(cmd, "left"),
		Right:     mustGetString(cmd, "right"),
		Write:     mustGetString(cmd, "write"),
		Force:     mustGetBool(cmd, "force"),
		CodecMode: mustGetString(cmd, "codec-mode"),
	}
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
