package brickline

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/brickline/pkg/codec"
	"github.com/agentstation/brickline/pkg/errors"
	"github.com/agentstation/brickline/pkg/logging"
	"github.com/agentstation/brickline/pkg/reconcile"
)

type options struct {
	mode          codec.Mode
	accumulate    reconcile.Accumulator
	logger        *zerolog.Logger
	primaryName   string
	secondaryName string
}

func defaultOptions() *options {
	return &options{
		mode:       codec.ModeDirect,
		accumulate: reconcile.LegacyAccumulate,
		logger:     &logging.Nop,
	}
}

// Option is a function that configures Merge and Format.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// newOptions returns options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithCodecMode selects how the output payload is encoded.
func WithCodecMode(mode codec.Mode) Option {
	return func(o *options) error {
		if !mode.IsValid() {
			return errors.NewValidationError("codec_mode", mode, "must be direct or legacy")
		}
		o.mode = mode
		return nil
	}
}

// WithAccumulator sets the rule combining quantities of matching items.
// The default is reconcile.LegacyAccumulate.
func WithAccumulator(fn reconcile.Accumulator) Option {
	return func(o *options) error {
		if fn == nil {
			return errors.NewValidationError("accumulator", nil, "cannot be nil")
		}
		o.accumulate = fn
		return nil
	}
}

// WithLogger sets the logger for the run. Without it nothing is logged.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger != nil {
			o.logger = logger
		}
		return nil
	}
}

// WithListNames names the primary and secondary lists (usually their file
// paths) in log lines.
func WithListNames(primary, secondary string) Option {
	return func(o *options) error {
		o.primaryName = primary
		o.secondaryName = secondary
		return nil
	}
}
