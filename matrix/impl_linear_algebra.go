// SPDX-License-Identifier: MIT
// Package matrix provides the algebraic core: element-wise addition and
// subtraction, the Hadamard product, matrix multiplication, transpose and
// identity construction. All functions validate fail-fast and return a
// fresh *Dense; operands are never mutated.
//
// Notes:
//   - Mul runs row-parallel; each output row is written by exactly one
//     goroutine, so results do not depend on scheduling.
//   - Errors are wrapped with the op* tags below via matrixErrorf.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/strokenet/internal/parallel"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opScale         = "ScalarMultiply"
	opScalarAdd     = "ScalarAdd"
	opScalarMinus   = "ScalarMinus"
	opHadamard      = "Hadamard"
	opDivide        = "ElementwiseDivide"
	opLog           = "ElementwiseLog"
	opMap           = "Map"
	opZip           = "ZipWith"
	opIdentity      = "Identity"
	opExtractColumn = "ExtractColumn"
	opCutColumn     = "CutColumn"
	opPrependColumn = "PrependColumn"
	opAppendRight   = "AppendRight"
	opSumColumns    = "SumColumnsToRow"
	opFlatten       = "FlattenRows"
	opUnflatten     = "UnflattenToSquare"
	opArgMax        = "ArgMaxRow"
	opAllClose      = "AllClose"
	opSumAll        = "SumAll"
	opFrobeniusNorm = "FrobeniusNorm"
	opFromGonum     = "FromGonum"
	opToGonum       = "ToGonum"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	res, err := zipWith(a, b, func(x, y float64) float64 { return x + y })
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return res, nil
}

// Sub computes the element-wise difference C = A - B.
func Sub(a, b Matrix) (*Dense, error) {
	res, err := zipWith(a, b, func(x, y float64) float64 { return x - y })
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return res, nil
}

// Hadamard computes the elementwise product (a ⊙ b).
// Hadamard ≠ matrix multiplication; use Mul for A×B.
func Hadamard(a, b Matrix) (*Dense, error) {
	res, err := zipWith(a, b, func(x, y float64) float64 { return x * y })
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
// MAIN DESCRIPTION:
//   - Requires a.Cols == b.Rows; the result is a.Rows × b.Cols.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: transpose B once so every inner product walks two contiguous
//     slices (row i of A, row j of Bᵀ) with floats.Dot.
//   - Stage 3: split output rows across workers; each row is owned by one
//     goroutine.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Every C[i,j] is one Dot over k in fixed order; the row split never
//     changes a value.
//
// Complexity:
//   - Time O(n*m*p), Space O(n*p + m*p) for the result and Bᵀ.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bt, err := Transpose(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	n, k, p := da.r, da.c, bt.r
	res, err := newDenseZeroOK(n, p)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	parallel.ForRange(n, parallel.DefaultConfig(), func(lo, hi int) {
		var i, j int
		var arow []float64
		for i = lo; i < hi; i++ {
			arow = da.data[i*k : (i+1)*k]
			for j = 0; j < p; j++ {
				res.data[i*p+j] = floats.Dot(arow, bt.data[j*k:(j+1)*k])
			}
		}
	})

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// transpose(transpose(A)) == A for every A.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := dm.r, dm.c
	res, err := newDenseZeroOK(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// ScalarMultiply returns a new matrix whose elements are alpha * m[i,j].
func ScalarMultiply(m Matrix, alpha float64) (*Dense, error) {
	res, err := mapDense(m, func(v float64) float64 { return v * alpha })
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return res, nil
}

// Scale is an alias of ScalarMultiply.
func Scale(m Matrix, alpha float64) (*Dense, error) { return ScalarMultiply(m, alpha) }

// Identity returns an n×m matrix with ones on the main diagonal and zeros
// elsewhere; non-square shapes are allowed.
//
// Errors:
//   - ErrInvalidDimensions for non-positive shapes.
func Identity(n, m int) (*Dense, error) {
	res, err := NewDense(n, m)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < min(n, m); i++ {
		res.data[i*m+i] = 1
	}

	return res, nil
}
