// Package config loads brickline settings from flags, the environment, .env
// files and an optional YAML config file.
//
// Precedence, highest first:
//  1. Command-line flags that were set
//  2. BRICKLINE_* environment variables
//  3. .env.local, then .env
//  4. Config file (--config, or .brickline.yaml in $HOME or the working directory)
//  5. Defaults
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentstation/brickline/internal/cmd/output"
	"github.com/agentstation/brickline/pkg/codec"
	"github.com/agentstation/brickline/pkg/constants"
	"github.com/agentstation/brickline/pkg/errors"
)

// Configuration keys. Environment variables are the key upper-cased with the
// BRICKLINE_ prefix, e.g. BRICKLINE_CODEC_MODE.
const (
	KeyConfig    = "config"
	KeyCodecMode = "codec_mode"
	KeyForce     = "force"
	KeyFormat    = "format"
	KeyVerbose   = "verbose"
	KeyQuiet     = "quiet"
	KeyNoColor   = "no_color"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
	KeyLogOutput = "log_output"
)

// flagKeys maps flag names to the configuration key they override.
var flagKeys = map[string]string{
	"config":     KeyConfig,
	"codec-mode": KeyCodecMode,
	"force":      KeyForce,
	"format":     KeyFormat,
	"verbose":    KeyVerbose,
	"quiet":      KeyQuiet,
	"no-color":   KeyNoColor,
	"log-level":  KeyLogLevel,
}

// Config holds the resolved application configuration.
type Config struct {
	// ConfigFile is the config file that was read, or "".
	ConfigFile string

	CodecMode codec.Mode
	Force     bool
	Format    output.Format

	Verbose bool
	Quiet   bool
	NoColor bool

	LogLevel  string
	LogFormat string
	LogOutput string
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		CodecMode: codec.ModeDirect,
		LogFormat: "auto",
		LogOutput: "stderr",
	}
}

type loader struct {
	flags       *pflag.FlagSet
	envFiles    []string
	searchPaths []string
	configFile  string
}

// Option configures Load.
type Option func(*loader)

// WithFlags lets flags that were set on fs override every other source.
func WithFlags(fs *pflag.FlagSet) Option {
	return func(l *loader) { l.flags = fs }
}

// WithEnvFiles replaces the .env files that are loaded. Earlier files win.
func WithEnvFiles(files ...string) Option {
	return func(l *loader) { l.envFiles = files }
}

// WithSearchPaths replaces the directories searched for .brickline.yaml.
func WithSearchPaths(dirs ...string) Option {
	return func(l *loader) { l.searchPaths = dirs }
}

// WithConfigFile reads exactly this config file. A missing file is an error.
func WithConfigFile(path string) Option {
	return func(l *loader) { l.configFile = path }
}

// Load resolves the configuration from every source.
func Load(opts ...Option) (*Config, error) {
	l := &loader{envFiles: []string{".env.local", ".env"}}
	if home, err := os.UserHomeDir(); err == nil {
		l.searchPaths = append(l.searchPaths, home)
	}
	l.searchPaths = append(l.searchPaths, ".")
	for _, opt := range opts {
		opt(l)
	}

	loadEnvFiles(l.envFiles)

	v := viper.New()
	v.SetDefault(KeyCodecMode, constants.DefaultCodecMode)
	v.SetDefault(KeyLogFormat, "auto")
	v.SetDefault(KeyLogOutput, "stderr")

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// The unprefixed LOG_* variables are honored too.
	for _, key := range []string{KeyLogLevel, KeyLogFormat, KeyLogOutput} {
		if err := v.BindEnv(key, envName(key), strings.ToUpper(key)); err != nil {
			return nil, errors.NewConfigError(key, "cannot bind environment", err)
		}
	}

	if err := bindFlags(v, l.flags); err != nil {
		return nil, err
	}

	configFile := l.configFile
	if f := v.GetString(KeyConfig); f != "" {
		configFile = f
	}
	if err := readConfigFile(v, configFile, l.searchPaths); err != nil {
		return nil, err
	}

	return build(v)
}

func envName(key string) string {
	return constants.EnvPrefix + "_" + strings.ToUpper(key)
}

// loadEnvFiles loads .env files into the process environment. godotenv never
// overrides variables that are already set, so earlier files win.
func loadEnvFiles(files []string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return errors.NewConfigError(key, "cannot bind flag --"+name, err)
		}
	}
	return nil
}

func readConfigFile(v *viper.Viper, file string, searchPaths []string) error {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return errors.NewConfigError("config", "cannot read "+file, err)
		}
		return nil
	}

	for _, dir := range searchPaths {
		v.AddConfigPath(dir)
	}
	v.SetConfigName(constants.ConfigFileName)
	v.SetConfigType(constants.ConfigFileType)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.NewConfigError("config", "cannot parse config file", err)
	}
	return nil
}

func build(v *viper.Viper) (*Config, error) {
	mode, err := codec.ParseMode(v.GetString(KeyCodecMode))
	if err != nil {
		return nil, errors.NewConfigError(KeyCodecMode, "must be direct or legacy, got "+v.GetString(KeyCodecMode), err)
	}
	format, err := output.ParseFormat(v.GetString(KeyFormat))
	if err != nil {
		return nil, errors.NewConfigError(KeyFormat, "must be table, json or yaml, got "+v.GetString(KeyFormat), err)
	}

	return &Config{
		ConfigFile: v.ConfigFileUsed(),
		CodecMode:  mode,
		Force:      v.GetBool(KeyForce),
		Format:     format,
		Verbose:    v.GetBool(KeyVerbose),
		Quiet:      v.GetBool(KeyQuiet),
		NoColor:    v.GetBool(KeyNoColor),
		LogLevel:   v.GetString(KeyLogLevel),
		LogFormat:  v.GetString(KeyLogFormat),
		LogOutput:  v.GetString(KeyLogOutput),
	}, nil
}

// ResolveLogLevel applies the level precedence: an explicit log level wins,
// then --quiet (error), then --verbose (debug), then the default.
// It reports whether an explicit level was not recognised.
func (c *Config) ResolveLogLevel() (level string, invalid bool) {
	if c.LogLevel != "" {
		switch l := strings.ToLower(c.LogLevel); l {
		case "trace", "debug", "info", "warn", "error":
			return l, false
		default:
			return constants.DefaultLogLevel, true
		}
	}
	switch {
	case c.Quiet:
		return "error", false
	case c.Verbose:
		return "debug", false
	default:
		return constants.DefaultLogLevel, false
	}
}
