package defaults

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/on-the-ground/defens_ive_go/bind"
	"github.com/on-the-ground/defens_ive_go/shared/deepclone"
	"github.com/on-the-ground/defens_ive_go/signature"
)

var (
	// ErrCopyConflict is returned by New when both WithDeepCopy and
	// WithCopyFunc are supplied.
	ErrCopyConflict = errors.New("cannot specify a copy function if deep copy is enabled")
	// ErrNotProtectable is returned by Wrap for a requested name that is not
	// a defaulted parameter of the callable.
	ErrNotProtectable = errors.New("cannot protect parameter")
)

// Protector is the configured-wrap-factory entry point: it fixes the set of
// parameter names to protect and the copy strategy once, then wraps any
// number of callables. An empty name set means "protect every defaulted
// parameter".
type Protector struct {
	names  []string
	copyFn CopyFunc
	logger *zap.Logger
}

// New builds a Protector. Configuration errors surface here, never at call
// time.
func New(names []string, opts ...Option) (*Protector, error) {
	cfg := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.useDeepCopy && cfg.copyFn != nil {
		return nil, ErrCopyConflict
	}

	copyFn := CopyFunc(deepclone.Shallow)
	if cfg.useDeepCopy {
		copyFn = deepclone.Deep
	}
	if cfg.copyFn != nil {
		copyFn = cfg.copyFn
	}

	return &Protector{
		names:  append([]string(nil), names...),
		copyFn: copyFn,
		logger: cfg.logger,
	}, nil
}

// MustNew is the panic-on-failure variant of New.
func MustNew(names []string, opts ...Option) *Protector {
	p, err := New(names, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Wrap returns a callable with the same calling convention as fn in which
// every tracked parameter the caller leaves unsupplied receives a fresh copy
// of its default value. Requested names that are not defaulted parameters of
// sig fail here, all reported together.
func (p *Protector) Wrap(sig signature.Signature, fn bind.Fn) (bind.Fn, error) {
	tracked, kwTracked, err := classify(p.names, sig)
	if err != nil {
		return nil, err
	}

	copyFn := p.copyFn
	logger := p.logger.With(
		zap.String("wrapper_id", uuid.New().String()),
		zap.String("callable", sig.Name()),
		zap.Uint64("signature", sig.Fingerprint()),
	)

	return func(args bind.Args, kwargs bind.KwArgs) (any, error) {
		var injected []string
		merged := kwargs

		inject := func(name string, def any) {
			if len(injected) == 0 {
				merged = make(bind.KwArgs, len(kwargs)+1)
				for k, v := range kwargs {
					merged[k] = v
				}
			}
			merged[name] = copyFn(def)
			injected = append(injected, name)
		}

		for _, prm := range tracked {
			if suppliedToCall(prm, args, kwargs) {
				continue
			}
			inject(prm.Name, prm.Default)
		}
		for _, prm := range kwTracked {
			if _, supplied := kwargs[prm.Name]; supplied {
				continue
			}
			inject(prm.Name, prm.Default)
		}

		if len(injected) > 0 {
			logger.Debug("injected fresh default values", zap.Strings("parameters", injected))
		}
		return fn(args, merged)
	}, nil
}

// Protect is the zero-configuration entry point: every defaulted parameter of
// sig is protected with the shallow copy strategy.
func Protect(sig signature.Signature, fn bind.Fn) (bind.Fn, error) {
	p, err := New(nil)
	if err != nil {
		return nil, err
	}
	return p.Wrap(sig, fn)
}

// MustProtect is the panic-on-failure variant of Protect.
func MustProtect(sig signature.Signature, fn bind.Fn) bind.Fn {
	wrapped, err := Protect(sig, fn)
	if err != nil {
		panic(err)
	}
	return wrapped
}

// suppliedToCall reports whether the caller already provided a value for the
// tracked positional parameter, by position or by name.
func suppliedToCall(prm signature.Parameter, args bind.Args, kwargs bind.KwArgs) bool {
	if len(args) > prm.Index {
		return true
	}
	_, byName := kwargs[prm.Name]
	return byName
}

// classify routes each requested name to the defaulted positional or the
// defaulted keyword-only list. An empty request tracks everything defaulted.
func classify(
	names []string,
	sig signature.Signature,
) ([]signature.Parameter, []signature.KwParameter, error) {
	if len(names) == 0 {
		return sig.DefaultedParameters(), sig.DefaultedKwParameters(), nil
	}

	var err error
	var tracked []signature.Parameter
	var kwTracked []signature.KwParameter

	for _, name := range names {
		switch {
		case sig.HasPositional(name):
			info, infoErr := sig.ParameterInfo(name)
			if infoErr != nil {
				err = multierr.Append(err, fmt.Errorf("%w: %w", ErrNotProtectable, infoErr))
				continue
			}
			tracked = append(tracked, info)
		case sig.HasKwOnly(name):
			info, infoErr := sig.KwParameterInfo(name)
			if infoErr != nil {
				err = multierr.Append(err, fmt.Errorf("%w: %w", ErrNotProtectable, infoErr))
				continue
			}
			kwTracked = append(kwTracked, info)
		default:
			err = multierr.Append(err, fmt.Errorf(
				"%w: %s is not a parameter of %s", ErrNotProtectable, name, sig.Name(),
			))
		}
	}
	if err != nil {
		return nil, nil, err
	}
	return tracked, kwTracked, nil
}
