package bloomgo

import (
	"log/slog"
)

type options struct {
	logger *Logger
}

// Option configures filter construction.
//
// Options exist to avoid exploding the constructor surface; the
// zero-option call is the common case.
type Option func(*options)

// WithLogger configures structured logging for filter lifecycle
// events (construction, clear). Hot-path operations never log.
//
//	logger := bloomgo.NewTextLogger(slog.LevelDebug)
//	f := bloomgo.New(set.NewBitSet(1024), 7, bloomgo.WithLogger(logger))
//
// If nil is passed, logging stays disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLogLevel enables text logging to stderr at the given level.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}
