package bindfn

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/defens_ive_go/bind"
	"github.com/on-the-ground/defens_ive_go/signature"
)

// ErrArgumentType is returned at call time when a resolved argument does not
// have the type the adapted function expects.
var ErrArgumentType = errors.New("argument has unexpected type")

// I1O1 adapts a one-parameter function into a bind.Fn under sig.
func I1O1[I1, O1 any](sig signature.Signature, fn func(I1) O1) (bind.Fn, error) {
	return adapt(sig, fn, func(slots []any) (any, error) {
		i1, err := slotAs[I1](sig, 0, slots)
		if err != nil {
			return nil, err
		}
		return fn(i1), nil
	})
}

// I2O1 adapts a two-parameter function into a bind.Fn under sig.
func I2O1[I1, I2, O1 any](sig signature.Signature, fn func(I1, I2) O1) (bind.Fn, error) {
	return adapt(sig, fn, func(slots []any) (any, error) {
		i1, err := slotAs[I1](sig, 0, slots)
		if err != nil {
			return nil, err
		}
		i2, err := slotAs[I2](sig, 1, slots)
		if err != nil {
			return nil, err
		}
		return fn(i1, i2), nil
	})
}

// I3O1 adapts a three-parameter function into a bind.Fn under sig.
func I3O1[I1, I2, I3, O1 any](sig signature.Signature, fn func(I1, I2, I3) O1) (bind.Fn, error) {
	return adapt(sig, fn, func(slots []any) (any, error) {
		i1, err := slotAs[I1](sig, 0, slots)
		if err != nil {
			return nil, err
		}
		i2, err := slotAs[I2](sig, 1, slots)
		if err != nil {
			return nil, err
		}
		i3, err := slotAs[I3](sig, 2, slots)
		if err != nil {
			return nil, err
		}
		return fn(i1, i2, i3), nil
	})
}

// I4O1 adapts a four-parameter function into a bind.Fn under sig.
func I4O1[I1, I2, I3, I4, O1 any](sig signature.Signature, fn func(I1, I2, I3, I4) O1) (bind.Fn, error) {
	return adapt(sig, fn, func(slots []any) (any, error) {
		i1, err := slotAs[I1](sig, 0, slots)
		if err != nil {
			return nil, err
		}
		i2, err := slotAs[I2](sig, 1, slots)
		if err != nil {
			return nil, err
		}
		i3, err := slotAs[I3](sig, 2, slots)
		if err != nil {
			return nil, err
		}
		i4, err := slotAs[I4](sig, 3, slots)
		if err != nil {
			return nil, err
		}
		return fn(i1, i2, i3, i4), nil
	})
}

func adapt(sig signature.Signature, fn any, call func([]any) (any, error)) (bind.Fn, error) {
	if err := sig.Check(fn); err != nil {
		return nil, err
	}
	return func(args bind.Args, kwargs bind.KwArgs) (any, error) {
		slots, err := bind.Resolve(sig, args, kwargs)
		if err != nil {
			return nil, err
		}
		return call(slots)
	}, nil
}

func slotAs[T any](sig signature.Signature, idx int, slots []any) (T, error) {
	v, ok := slots[idx].(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s of %s is %T, want %T",
			ErrArgumentType, paramName(sig, idx), sig.Name(), slots[idx], zero)
	}
	return v, nil
}

func paramName(sig signature.Signature, idx int) string {
	if idx < sig.NumPositional() {
		return sig.PositionalNames()[idx]
	}
	return sig.KwOnlyNames()[idx-sig.NumPositional()]
}
