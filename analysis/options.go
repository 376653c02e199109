// SPDX-License-Identifier: MIT

package analysis

import (
	"io"
	"log/slog"
)

// Options configures Solve.
//
// Logger        – receives one Debug record per Solve call. Default discards.
// ReducedSystem – attach the reduced coefficient block and right-hand side to
//
//	multiple-solution results. Default true.
type Options struct {
	Logger        *slog.Logger // destination for solver diagnostics
	ReducedSystem bool         // expose ReducedA/ReducedB on MultipleSolutions
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithLogger routes solver diagnostics to l. A nil l keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithReducedSystem controls whether multiple-solution results carry the
// reduced system. Particular and NullSpace work either way.
func WithReducedSystem(on bool) Option {
	return func(o *Options) {
		o.ReducedSystem = on
	}
}

// DefaultOptions returns the defaults used when Solve receives no options.
func DefaultOptions() Options {
	return Options{
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		ReducedSystem: true,
	}
}
