// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strokenet/matrix"
)

func TestAddSub_Basic(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{10, 20, 30, 40})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{11, 22, 33, 44}, sum.RawData())

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	require.Equal(t, []float64{9, 18, 27, 36}, diff.RawData())

	// operands untouched
	require.Equal(t, []float64{1, 2, 3, 4}, a.RawData())
}

func TestAdd_Associative(t *testing.T) {
	t.Parallel()

	a := RandomDense(t, 5, 7, 11)
	b := RandomDense(t, 5, 7, 12)
	c := RandomDense(t, 5, 7, 13)

	ab, err := matrix.Add(a, b)
	require.NoError(t, err)
	left, err := matrix.Add(ab, c)
	require.NoError(t, err)

	bc, err := matrix.Add(b, c)
	require.NoError(t, err)
	right, err := matrix.Add(a, bc)
	require.NoError(t, err)

	requireClose(t, left, right, 1e-12)
}

func TestHadamard_Commutative(t *testing.T) {
	t.Parallel()

	a := RandomDense(t, 4, 3, 21)
	b := RandomDense(t, 4, 3, 22)

	ab, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	ba, err := matrix.Hadamard(b, a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(ab, ba))
}

func TestElementwise_DimensionMismatch(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 2)

	ops := map[string]func(x, y matrix.Matrix) (*matrix.Dense, error){
		"Add":               matrix.Add,
		"Sub":               matrix.Sub,
		"Hadamard":          matrix.Hadamard,
		"ElementwiseDivide": matrix.ElementwiseDivide,
	}
	for name, op := range ops {
		_, err := op(a, b)
		assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, name)
	}
}

func TestMul_Basic(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, got.Rows())
	require.Equal(t, 2, got.Cols())
	require.Equal(t, []float64{58, 64, 139, 154}, got.RawData())
}

func TestMul_DimensionMismatch(t *testing.T) {
	t.Parallel()

	_, err := matrix.Mul(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_IdentityIsNeutral(t *testing.T) {
	t.Parallel()

	a := RandomDense(t, 6, 4, 31)
	id, err := matrix.Identity(4, 4)
	require.NoError(t, err)

	got, err := matrix.Mul(a, id)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, got))
}

// TestMul_LargeRowParallel exercises the worker split on enough rows to fan out.
func TestMul_LargeRowParallel(t *testing.T) {
	t.Parallel()

	a := RandomDense(t, 300, 12, 41)
	id, err := matrix.Identity(12, 12)
	require.NoError(t, err)

	got, err := matrix.Mul(a, id)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, got))
}

func TestMul_FallbackMatchesDense(t *testing.T) {
	t.Parallel()

	a := RandomDense(t, 3, 4, 51)
	b := RandomDense(t, 4, 2, 52)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	require.True(t, matrix.Equal(fast, slow))
}

func TestTranspose_Involution(t *testing.T) {
	t.Parallel()

	a := RandomDense(t, 3, 5, 61)
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 5, at.Rows())
	require.Equal(t, 3, at.Cols())
	require.Equal(t, MustAt(t, a, 1, 4), MustAt(t, at, 4, 1))

	att, err := matrix.Transpose(at)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, att))
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	id, err := matrix.Identity(2, 3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 0, 1, 0}, id.RawData())

	_, err = matrix.Identity(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestScalarMultiply(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 3, []float64{1, -2, 3})
	got, err := matrix.ScalarMultiply(a, -0.5)
	require.NoError(t, err)
	require.Equal(t, []float64{-0.5, 1, -1.5}, got.RawData())

	alias, err := matrix.Scale(a, -0.5)
	require.NoError(t, err)
	require.True(t, matrix.Equal(got, alias))
}
