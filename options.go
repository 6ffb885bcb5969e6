package bitfifo

import (
	"go.uber.org/zap"
)

type option struct {
	logger *zap.Logger
}

func applyOpts(options ...OptionFunc) *option {
	opts := &option{
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		opt(opts)
	}
	return opts
}

// OptionFunc is a function that sets an option for a Fifo instance.
type OptionFunc func(*option)

// WithLogger sets the logger used to trace word spills and refills at debug level.
func WithLogger(logger *zap.Logger) OptionFunc {
	return func(o *option) {
		if logger != nil {
			o.logger = logger
		}
	}
}
