package signature_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/on-the-ground/defens_ive_go/signature"
)

func TestFirstDefaultIndexAlignment(t *testing.T) {
	sig := signature.MustNew("f",
		signature.Pos("x"),
		signature.Pos("y"),
		signature.PosDefault("a", []int{1}),
		signature.PosDefault("b", []int{2}),
	)

	assert.Equal(t, 4, sig.NumPositional())
	assert.Equal(t, 2, sig.FirstDefaultIndex())

	a, err := sig.ParameterInfo("a")
	require.NoError(t, err)
	assert.Equal(t, 2, a.Index)
	assert.Equal(t, []int{1}, a.Default)

	b, err := sig.ParameterInfo("b")
	require.NoError(t, err)
	assert.Equal(t, 3, b.Index)
	assert.Equal(t, []int{2}, b.Default)
}

func TestFirstDefaultIndexWithoutDefaults(t *testing.T) {
	sig := signature.MustNew("f", signature.Pos("x"), signature.Pos("y"))
	assert.Equal(t, 2, sig.FirstDefaultIndex())
	assert.Empty(t, sig.DefaultedParameters())
}

func TestParameterInfoErrors(t *testing.T) {
	sig := signature.MustNew("f",
		signature.Pos("x"),
		signature.PosDefault("a", 0),
	)

	_, err := sig.ParameterInfo("x")
	assert.ErrorIs(t, err, signature.ErrNoDefault)

	_, err = sig.ParameterInfo("nope")
	assert.ErrorIs(t, err, signature.ErrUnknownParameter)
	assert.ErrorContains(t, err, "nope")
	assert.ErrorContains(t, err, "f")
}

func TestKwParameterInfo(t *testing.T) {
	sig := signature.MustNew("g",
		signature.Pos("x"),
		signature.KwOnlyRequired("c"),
		signature.KwOnly("d", map[int]int{}),
	)

	d, err := sig.KwParameterInfo("d")
	require.NoError(t, err)
	assert.Equal(t, map[int]int{}, d.Default)

	_, err = sig.KwParameterInfo("c")
	assert.ErrorIs(t, err, signature.ErrNoDefault)

	_, err = sig.KwParameterInfo("x")
	assert.ErrorIs(t, err, signature.ErrUnknownParameter)
}

func TestDefaultedParametersOrder(t *testing.T) {
	sig := signature.MustNew("g",
		signature.Pos("x"),
		signature.PosDefault("a", 1),
		signature.PosDefault("b", 2),
		signature.KwOnly("c", 3),
		signature.KwOnly("d", 4),
	)

	pos := sig.DefaultedParameters()
	require.Len(t, pos, 2)
	assert.Equal(t, "a", pos[0].Name)
	assert.Equal(t, "b", pos[1].Name)

	kw := sig.DefaultedKwParameters()
	require.Len(t, kw, 2)
	assert.Equal(t, "c", kw[0].Name)
	assert.Equal(t, "d", kw[1].Name)
}

func TestNewRejectsBadLayouts(t *testing.T) {
	_, err := signature.New("f",
		signature.PosDefault("a", 1),
		signature.Pos("x"),
	)
	assert.ErrorIs(t, err, signature.ErrInvalidSignature)
	assert.ErrorContains(t, err, "defaultless parameter x")

	_, err = signature.New("f",
		signature.KwOnly("c", 1),
		signature.Pos("x"),
	)
	assert.ErrorIs(t, err, signature.ErrInvalidSignature)

	_, err = signature.New("f",
		signature.Pos("x"),
		signature.Pos("x"),
	)
	assert.ErrorIs(t, err, signature.ErrInvalidSignature)
	assert.ErrorContains(t, err, "duplicate")

	_, err = signature.New("f", signature.Pos(""))
	assert.ErrorIs(t, err, signature.ErrInvalidSignature)
}

func TestNewAggregatesViolations(t *testing.T) {
	_, err := signature.New("f",
		signature.Pos(""),
		signature.Pos("x"),
		signature.Pos("x"),
	)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() {
		signature.MustNew("f", signature.Pos("x"), signature.Pos("x"))
	})
}

func TestCheck(t *testing.T) {
	sig := signature.MustNew("f",
		signature.Pos("x"),
		signature.PosDefault("a", []int{}),
		signature.KwOnly("c", 0),
	)

	assert.NoError(t, sig.Check(func(int, []int, int) int { return 0 }))

	err := sig.Check(func(int, []int) int { return 0 })
	assert.ErrorIs(t, err, signature.ErrArityMismatch)

	err = sig.Check(func(int, ...int) int { return 0 })
	assert.ErrorIs(t, err, signature.ErrVariadicFunction)

	err = sig.Check(42)
	assert.ErrorIs(t, err, signature.ErrNotAFunction)

	err = sig.Check(nil)
	assert.True(t, errors.Is(err, signature.ErrNotAFunction))
}

func TestFingerprint(t *testing.T) {
	sig1 := signature.MustNew("f", signature.Pos("x"), signature.PosDefault("a", []int{}))
	sig2 := signature.MustNew("f", signature.Pos("x"), signature.PosDefault("a", map[int]int{}))
	sig3 := signature.MustNew("f", signature.Pos("x"), signature.PosDefault("b", []int{}))
	sig4 := signature.MustNew("f", signature.Pos("x"), signature.Pos("a"))

	assert.Equal(t, sig1.Fingerprint(), sig2.Fingerprint(), "default values do not affect the layout")
	assert.NotEqual(t, sig1.Fingerprint(), sig3.Fingerprint())
	assert.NotEqual(t, sig1.Fingerprint(), sig4.Fingerprint())
}
