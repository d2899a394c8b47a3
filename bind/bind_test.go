package bind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/defens_ive_go/bind"
	"github.com/on-the-ground/defens_ive_go/signature"
)

func schedSig() signature.Signature {
	return signature.MustNew("f",
		signature.Pos("x"),
		signature.PosDefault("a", "def-a"),
		signature.KwOnlyRequired("c"),
		signature.KwOnly("d", "def-d"),
	)
}

func TestResolveOrderAndFill(t *testing.T) {
	slots, err := bind.Resolve(schedSig(), bind.Args{1, 2}, bind.KwArgs{"c": 3, "d": 4})
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3, 4}, slots)
}

func TestResolveFillsOmittedDefaults(t *testing.T) {
	slots, err := bind.Resolve(schedSig(), bind.Args{1}, bind.KwArgs{"c": 3})
	require.NoError(t, err)
	assert.Equal(t, []any{1, "def-a", 3, "def-d"}, slots)
}

func TestResolvePositionalByName(t *testing.T) {
	slots, err := bind.Resolve(schedSig(), bind.Args{}, bind.KwArgs{"x": 1, "a": 2, "c": 3})
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3, "def-d"}, slots)
}

// Resolve hands out the stored default object itself, so an omitted mutable
// default is shared between calls. This is the trap the defaults package
// removes; bind keeps it on purpose.
func TestResolveSharesMutableDefaults(t *testing.T) {
	sig := signature.MustNew("f",
		signature.Pos("x"),
		signature.PosDefault("a", map[int]int{}),
	)

	first, err := bind.Resolve(sig, bind.Args{1}, nil)
	require.NoError(t, err)
	first[1].(map[int]int)[1] = 1

	second, err := bind.Resolve(sig, bind.Args{2}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 1}, second[1], "mutation leaked into the next call")
}

func TestResolveErrors(t *testing.T) {
	sig := schedSig()

	_, err := bind.Resolve(sig, bind.Args{1, 2, 3}, bind.KwArgs{"c": 0})
	assert.ErrorIs(t, err, bind.ErrTooManyArgs)

	_, err = bind.Resolve(sig, bind.Args{1}, bind.KwArgs{"c": 0, "zzz": 1})
	assert.ErrorIs(t, err, bind.ErrUnknownKeyword)
	assert.ErrorContains(t, err, "zzz")

	_, err = bind.Resolve(sig, bind.Args{1, 2}, bind.KwArgs{"a": 9, "c": 0})
	assert.ErrorIs(t, err, bind.ErrDuplicateValue)
	assert.ErrorContains(t, err, "a")

	_, err = bind.Resolve(sig, bind.Args{}, bind.KwArgs{"c": 0})
	assert.ErrorIs(t, err, bind.ErrMissingArg)
	assert.ErrorContains(t, err, "x")

	_, err = bind.Resolve(sig, bind.Args{1}, nil)
	assert.ErrorIs(t, err, bind.ErrMissingArg)
	assert.ErrorContains(t, err, "c")
}
