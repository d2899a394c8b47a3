// Package bind defines the explicit calling convention used across the
// module: positional arguments, keyword arguments, and Resolve, which merges
// a call against a signature.Signature into the full flat argument list.
//
// Resolve fills an omitted defaulted parameter with the default object stored
// in the Signature itself. Every call that omits the same parameter therefore
// observes the same object — the shared-mutable-default trap. That behavior
// is deliberate: it reproduces the convention being modeled, and the defaults
// package exists to remove the trap for callables that opt in.
package bind

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/defens_ive_go/signature"
)

var (
	// ErrTooManyArgs is returned when more positional arguments are supplied
	// than the signature declares.
	ErrTooManyArgs = errors.New("too many positional arguments")
	// ErrUnknownKeyword is returned for a keyword argument naming no parameter.
	ErrUnknownKeyword = errors.New("unexpected keyword argument")
	// ErrDuplicateValue is returned when a parameter receives a value both by
	// position and by name.
	ErrDuplicateValue = errors.New("multiple values for parameter")
	// ErrMissingArg is returned when a required parameter receives no value.
	ErrMissingArg = errors.New("missing required parameter")
)

// Args holds a call's positional arguments in order.
type Args []any

// KwArgs holds a call's keyword arguments by parameter name.
type KwArgs map[string]any

// Fn is a callable under the explicit convention. Wrappers produced by the
// defaults package expose this exact convention, so protection is invisible
// to callers.
type Fn func(args Args, kwargs KwArgs) (any, error)

// Resolve merges args and kwargs against sig into the full flat argument
// list: positional parameters in declared order followed by keyword-only
// parameters in declared order. Omitted defaulted parameters are filled with
// the stored default object.
func Resolve(sig signature.Signature, args Args, kwargs KwArgs) ([]any, error) {
	numPos := sig.NumPositional()
	if len(args) > numPos {
		return nil, fmt.Errorf("%w: %s takes %d, got %d",
			ErrTooManyArgs, sig.Name(), numPos, len(args))
	}

	posNames := sig.PositionalNames()
	firstDefault := sig.FirstDefaultIndex()

	resolved := make([]any, 0, numPos+sig.NumKwOnly())
	for i, name := range posNames {
		switch v, supplied := kwargs[name]; {
		case i < len(args):
			if supplied {
				return nil, fmt.Errorf("%w: %s of %s", ErrDuplicateValue, name, sig.Name())
			}
			resolved = append(resolved, args[i])
		case supplied:
			resolved = append(resolved, v)
		case i >= firstDefault:
			info, err := sig.ParameterInfo(name)
			if err != nil {
				return nil, err
			}
			resolved = append(resolved, info.Default)
		default:
			return nil, fmt.Errorf("%w: %s of %s", ErrMissingArg, name, sig.Name())
		}
	}

	for _, name := range sig.KwOnlyNames() {
		if v, supplied := kwargs[name]; supplied {
			resolved = append(resolved, v)
			continue
		}
		info, err := sig.KwParameterInfo(name)
		if err != nil {
			if errors.Is(err, signature.ErrNoDefault) {
				return nil, fmt.Errorf("%w: %s of %s", ErrMissingArg, name, sig.Name())
			}
			return nil, err
		}
		resolved = append(resolved, info.Default)
	}

	for name := range kwargs {
		if !sig.HasPositional(name) && !sig.HasKwOnly(name) {
			return nil, fmt.Errorf("%w: %s for %s", ErrUnknownKeyword, name, sig.Name())
		}
	}

	return resolved, nil
}
