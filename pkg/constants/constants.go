// Package constants holds values shared by the brickline command and its
// supporting packages.
package constants

import "time"

// Application identity
const (
	// AppName is the command name and the stem of its config file
	AppName = "brickline"

	// EnvPrefix prefixes every configuration environment variable
	EnvPrefix = "BRICKLINE"

	// ConfigFileName is the config file name without extension, searched in
	// the home directory and the working directory
	ConfigFileName = ".brickline"

	// ConfigFileType is the config file format
	ConfigFileType = "yaml"
)

// File permission constants
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for written wanted lists and log files (rw-r--r--)
	FilePermissions = 0644
)

// Timeout constants
const (
	// CommandTimeout bounds a single CLI command
	CommandTimeout = 2 * time.Minute
)

// Merge sides. Errors and log fields use these names to say which input
// list a problem came from.
const (
	SidePrimary   = "primary"
	SideSecondary = "secondary"
)

// Defaults
const (
	// DefaultCodecMode is the encoder mode used when none is configured
	DefaultCodecMode = "direct"

	// DefaultFormat is the output format for summaries and statistics
	DefaultFormat = "table"

	// DefaultLogLevel is the log level used when none is configured
	DefaultLogLevel = "warn"
)
