package signature

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

var (
	// ErrNotAFunction is returned by Check when the callable is not a Go func.
	ErrNotAFunction = errors.New("callable is not a function")
	// ErrVariadicFunction is returned by Check for variadic callables.
	// Variadic capture cannot be named by a parameter descriptor.
	ErrVariadicFunction = errors.New("variadic functions are not supported")
	// ErrArityMismatch is returned by Check when the callable's parameter
	// count differs from the declared signature.
	ErrArityMismatch = errors.New("signature does not match function arity")
)

// Check verifies by reflection that fn is a non-variadic func whose parameter
// count matches the declared signature: positional parameters first, then
// keyword-only parameters in declared order.
func (s Signature) Check(fn any) error {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func {
		return fmt.Errorf("%w: %T for %s", ErrNotAFunction, fn, s.name)
	}
	if t.IsVariadic() {
		return fmt.Errorf("%w: %s", ErrVariadicFunction, s.name)
	}
	if want := len(s.positional) + len(s.kwOnly); t.NumIn() != want {
		return fmt.Errorf("%w: %s declares %d parameters, func takes %d",
			ErrArityMismatch, s.name, want, t.NumIn())
	}
	return nil
}

// Fingerprint hashes the parameter layout of the signature. Two signatures
// with the same name, parameter names, kinds and default placement share a
// fingerprint regardless of default values. Intended for log correlation.
func (s Signature) Fingerprint() uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(s.name)
	for i, p := range s.positional {
		if i == s.FirstDefaultIndex() {
			_, _ = d.WriteString("\x00=")
		}
		_, _ = d.WriteString("\x00p:")
		_, _ = d.WriteString(p)
	}
	for _, kw := range s.kwOnly {
		_, _ = d.WriteString("\x00k:")
		_, _ = d.WriteString(kw)
		if _, ok := s.kwDefaults[kw]; ok {
			_, _ = d.WriteString("=")
		}
	}
	return d.Sum64()
}
