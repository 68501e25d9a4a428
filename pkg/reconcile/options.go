package reconcile

import (
	"github.com/agentstation/brickline/pkg/errors"
)

type options struct {
	accumulate Accumulator
}

func defaultOptions() *options {
	return &options{
		accumulate: LegacyAccumulate,
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithAccumulator sets the rule that combines quantities of matching items.
func WithAccumulator(fn Accumulator) Option {
	return func(o *options) error {
		if fn == nil {
			return &errors.ValidationError{
				Field:   "accumulator",
				Message: "cannot be nil",
			}
		}
		o.accumulate = fn
		return nil
	}
}
