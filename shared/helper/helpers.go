package helper

import (
	"fmt"

	"github.com/on-the-ground/defens_ive_go/bind"
)

// GetTypedValueOf safely asserts the result of a getter function to the expected type T.
// Returns an error if type assertion fails.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}

// MustGetTypedValue is the panic-on-failure variant of GetTypedValueOf.
// Use when failure should be fatal.
func MustGetTypedValue[T any](getFn func() (any, error)) T {
	res, err := GetTypedValueOf[T](getFn)
	if err != nil {
		panic(err)
	}
	return res
}

// CallTyped invokes fn under the bind convention and asserts the result to T.
// Handy for re-typing the outcome of an adapted or protected callable.
func CallTyped[T any](fn bind.Fn, args bind.Args, kwargs bind.KwArgs) (T, error) {
	return GetTypedValueOf[T](func() (any, error) {
		return fn(args, kwargs)
	})
}

// MustCallTyped is the panic-on-failure variant of CallTyped.
func MustCallTyped[T any](fn bind.Fn, args bind.Args, kwargs bind.KwArgs) T {
	res, err := CallTyped[T](fn, args, kwargs)
	if err != nil {
		panic(err)
	}
	return res
}
