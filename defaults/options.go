package defaults

import "go.uber.org/zap"

// CopyFunc duplicates a single default value. It must return a value the
// wrapped callable accepts wherever the original default was accepted.
type CopyFunc func(any) any

type config struct {
	useDeepCopy bool
	copyFn      CopyFunc
	logger      *zap.Logger
}

// Option configures a Protector.
type Option func(*config)

// WithDeepCopy selects recursive copying of nested containers instead of the
// default one-level copy. Mutually exclusive with WithCopyFunc.
func WithDeepCopy() Option {
	return func(cfg *config) {
		cfg.useDeepCopy = true
	}
}

// WithCopyFunc supplies a custom copy strategy. Sometimes the built-in deep
// copy is not "deep enough" — values behind channels, funcs or unexported
// fields stay shared — so the caller can take over copying entirely.
// A custom function silently overrides the default shallow strategy, but
// combining it with WithDeepCopy is a construction-time error.
func WithCopyFunc(fn CopyFunc) Option {
	return func(cfg *config) {
		cfg.copyFn = fn
	}
}

// WithLogger attaches a zap logger; injections are reported at debug level.
// Without it the wrapper stays silent.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}
