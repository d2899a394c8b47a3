package signature

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	// ErrUnknownParameter is returned when a name is not a parameter of the callable.
	ErrUnknownParameter = errors.New("not a parameter of the callable")
	// ErrNoDefault is returned when a parameter exists but carries no default value.
	ErrNoDefault = errors.New("parameter has no default value")
	// ErrInvalidSignature is returned by New when the declared parameter layout is inconsistent.
	ErrInvalidSignature = errors.New("invalid signature")
)

// Parameter describes a positional parameter that carries a default value.
// Index is the 0-based position in the declared parameter list.
type Parameter struct {
	Name    string
	Index   int
	Default any
}

// KwParameter describes a keyword-only parameter that carries a default value.
type KwParameter struct {
	Name    string
	Default any
}

type specKind int

const (
	kindPositional specKind = iota
	kindKwOnly
)

// ParamSpec declares a single parameter of a callable.
// Build specs with Pos, PosDefault, KwOnly and KwOnlyRequired.
type ParamSpec struct {
	name       string
	kind       specKind
	def        any
	hasDefault bool
}

// Pos declares a positional parameter without a default value.
func Pos(name string) ParamSpec {
	return ParamSpec{name: name, kind: kindPositional}
}

// PosDefault declares a positional parameter with a default value.
// Defaulted positional parameters must form the trailing run of the
// positional parameter list.
func PosDefault(name string, def any) ParamSpec {
	return ParamSpec{name: name, kind: kindPositional, def: def, hasDefault: true}
}

// KwOnly declares a keyword-only parameter with a default value.
func KwOnly(name string, def any) ParamSpec {
	return ParamSpec{name: name, kind: kindKwOnly, def: def, hasDefault: true}
}

// KwOnlyRequired declares a keyword-only parameter without a default value.
func KwOnlyRequired(name string) ParamSpec {
	return ParamSpec{name: name, kind: kindKwOnly}
}

// Signature is an explicit parameter descriptor for a callable: the ordered
// positional parameter names, the default values aligned to the trailing
// positional parameters, and the keyword-only parameters with their defaults.
// A Signature is immutable once constructed and safe for concurrent reads.
type Signature struct {
	name       string
	positional []string
	defaults   []any
	kwOnly     []string
	kwDefaults map[string]any
}

// New builds a Signature for the callable known by name from its declared
// parameters. All layout violations are reported together: empty or duplicate
// names, a defaultless positional parameter after a defaulted one, and a
// positional parameter declared after a keyword-only one.
func New(name string, specs ...ParamSpec) (Signature, error) {
	sig := Signature{
		name:       name,
		kwDefaults: map[string]any{},
	}

	var err error
	seen := map[string]struct{}{}
	seenDefault := false
	seenKwOnly := false

	for _, spec := range specs {
		if spec.name == "" {
			err = multierr.Append(err, fmt.Errorf("%w: empty parameter name in %s", ErrInvalidSignature, name))
			continue
		}
		if _, dup := seen[spec.name]; dup {
			err = multierr.Append(err, fmt.Errorf("%w: duplicate parameter %s in %s", ErrInvalidSignature, spec.name, name))
			continue
		}
		seen[spec.name] = struct{}{}

		switch spec.kind {
		case kindPositional:
			if seenKwOnly {
				err = multierr.Append(err, fmt.Errorf(
					"%w: positional parameter %s follows keyword-only parameter in %s",
					ErrInvalidSignature, spec.name, name,
				))
				continue
			}
			if spec.hasDefault {
				seenDefault = true
				sig.defaults = append(sig.defaults, spec.def)
			} else if seenDefault {
				err = multierr.Append(err, fmt.Errorf(
					"%w: defaultless parameter %s follows defaulted parameter in %s",
					ErrInvalidSignature, spec.name, name,
				))
				continue
			}
			sig.positional = append(sig.positional, spec.name)
		case kindKwOnly:
			seenKwOnly = true
			sig.kwOnly = append(sig.kwOnly, spec.name)
			if spec.hasDefault {
				sig.kwDefaults[spec.name] = spec.def
			}
		}
	}

	if err != nil {
		return Signature{}, err
	}
	return sig, nil
}

// MustNew is the panic-on-failure variant of New.
func MustNew(name string, specs ...ParamSpec) Signature {
	sig, err := New(name, specs...)
	if err != nil {
		panic(err)
	}
	return sig
}

// Name returns the callable's declared name.
func (s Signature) Name() string { return s.name }

// NumPositional returns the number of positional parameters.
func (s Signature) NumPositional() int { return len(s.positional) }

// NumKwOnly returns the number of keyword-only parameters.
func (s Signature) NumKwOnly() int { return len(s.kwOnly) }

// FirstDefaultIndex returns the index of the first defaulted positional
// parameter. When no positional parameter has a default it equals
// NumPositional.
func (s Signature) FirstDefaultIndex() int {
	return len(s.positional) - len(s.defaults)
}

// PositionalNames returns the positional parameter names in declared order.
func (s Signature) PositionalNames() []string {
	names := make([]string, len(s.positional))
	copy(names, s.positional)
	return names
}

// KwOnlyNames returns the keyword-only parameter names in declared order.
func (s Signature) KwOnlyNames() []string {
	names := make([]string, len(s.kwOnly))
	copy(names, s.kwOnly)
	return names
}

// HasPositional reports whether name is a positional parameter.
func (s Signature) HasPositional(name string) bool {
	return s.positionalIndex(name) >= 0
}

// HasKwOnly reports whether name is a keyword-only parameter.
func (s Signature) HasKwOnly(name string) bool {
	for _, kw := range s.kwOnly {
		if kw == name {
			return true
		}
	}
	return false
}

func (s Signature) positionalIndex(name string) int {
	for i, p := range s.positional {
		if p == name {
			return i
		}
	}
	return -1
}

// ParameterInfo returns the Parameter for a defaulted positional parameter.
func (s Signature) ParameterInfo(name string) (Parameter, error) {
	idx := s.positionalIndex(name)
	if idx < 0 {
		return Parameter{}, fmt.Errorf("%w: %s of %s", ErrUnknownParameter, name, s.name)
	}
	first := s.FirstDefaultIndex()
	if idx < first {
		return Parameter{}, fmt.Errorf("%w: %s of %s", ErrNoDefault, name, s.name)
	}
	return Parameter{Name: name, Index: idx, Default: s.defaults[idx-first]}, nil
}

// KwParameterInfo returns the KwParameter for a defaulted keyword-only parameter.
func (s Signature) KwParameterInfo(name string) (KwParameter, error) {
	if def, ok := s.kwDefaults[name]; ok {
		return KwParameter{Name: name, Default: def}, nil
	}
	if s.HasKwOnly(name) {
		return KwParameter{}, fmt.Errorf("%w: %s of %s", ErrNoDefault, name, s.name)
	}
	return KwParameter{}, fmt.Errorf("%w: %s of %s", ErrUnknownParameter, name, s.name)
}

// DefaultedParameters returns every positional parameter that has a default
// value, in declared order.
func (s Signature) DefaultedParameters() []Parameter {
	first := s.FirstDefaultIndex()
	params := make([]Parameter, 0, len(s.defaults))
	for i, def := range s.defaults {
		params = append(params, Parameter{
			Name:    s.positional[first+i],
			Index:   first + i,
			Default: def,
		})
	}
	return params
}

// DefaultedKwParameters returns every keyword-only parameter that has a
// default value, in declared order.
func (s Signature) DefaultedKwParameters() []KwParameter {
	params := make([]KwParameter, 0, len(s.kwDefaults))
	for _, name := range s.kwOnly {
		if def, ok := s.kwDefaults[name]; ok {
			params = append(params, KwParameter{Name: name, Default: def})
		}
	}
	return params
}
