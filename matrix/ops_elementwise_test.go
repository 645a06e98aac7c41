// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strokenet/matrix"
)

// --- ElementwiseDivide --------------------------------------------------------

func TestElementwiseDivide_SkipsZeros(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 4, []float64{6, 0, 5, 8})
	b := NewFilledDense(t, 1, 4, []float64{3, 2, 0, -4})

	got, err := matrix.ElementwiseDivide(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 0, 0, -2}, got.RawData())
}

// --- ElementwiseLog -----------------------------------------------------------

func TestElementwiseLog_SkipsZero(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 3, []float64{1, 0, math.E})
	got, err := matrix.ElementwiseLog(a)
	require.NoError(t, err)
	require.InDelta(t, 0.0, MustAt(t, got, 0, 0), 1e-15)
	require.Equal(t, 0.0, MustAt(t, got, 0, 1))
	require.InDelta(t, 1.0, MustAt(t, got, 0, 2), 1e-15)
}

// --- scalar ops ---------------------------------------------------------------

func TestScalarAddAndMinus(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 1, []float64{0.25, 1})

	plus, err := matrix.ScalarAdd(a, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{1.25, 2}, plus.RawData())

	minus, err := matrix.ScalarMinus(a, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{0.75, 0}, minus.RawData())
}

// --- Map / ZipWith ------------------------------------------------------------

func TestMap_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	X := RandomDense(t, 40, 9, 7)
	sq := func(v float64) float64 { return v * v }

	fast, err := matrix.Map(X, sq)
	require.NoError(t, err)
	slow, err := matrix.Map(hide{X}, sq)
	require.NoError(t, err)
	require.True(t, matrix.Equal(fast, slow))
}

func TestZipWith_CustomFunc(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 3, []float64{1, 5, 3})
	b := NewFilledDense(t, 1, 3, []float64{4, 2, 3})

	got, err := matrix.ZipWith(a, b, math.Max)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 5, 3}, got.RawData())

	_, err = matrix.ZipWith(a, MustDense(t, 3, 1), math.Max)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMap_NilInput(t *testing.T) {
	t.Parallel()

	_, err := matrix.Map(nil, math.Abs)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.ElementwiseLog(typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// --- AllClose / Equal ---------------------------------------------------------

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 2, []float64{1, 2})
	b := NewFilledDense(t, 1, 2, []float64{1 + 1e-10, 2})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	require.False(t, matrix.Equal(a, b))
	require.False(t, matrix.Equal(a, MustDense(t, 2, 1)))
	require.False(t, matrix.Equal(nil, b))
}
