// Package emoji provides symbol constants for CLI output.
// These symbols create a consistent visual language across all commands.
package emoji

// Symbol constants for status indicators and user feedback in terminal output.
const (
	// Success represents successful completion of an operation.
	// Used for: written files, lists that validate.
	Success = "✓"

	// Error represents failures.
	// Used for: lists that fail to decode, refused overwrites.
	Error = "✗"

	// Warning represents non-critical issues.
	// Used for: invalid or conflicting logging settings.
	Warning = "!"

	// Info represents informational messages.
	Info = "i"

	// Unknown represents unknown or indeterminate states.
	Unknown = "?"
)
