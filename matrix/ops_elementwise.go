// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels driven by plain function values: Map for unary
//     transforms, ZipWith for two equal-shaped operands.
//   - Named element-wise operations (division, log, scalar add/minus) are
//     thin wrappers so no operation is chosen by comparing names.
//
// Determinism & Performance:
//   - Rows are split across workers; each output cell is computed once from
//     the same inputs, so results are identical to a sequential run.
//   - One allocation per call (the result).

package matrix

import (
	"math"

	"github.com/katalvlaran/strokenet/internal/parallel"
)

// mapDense is the shared unary kernel; callers add their own op tag.
func mapDense(m Matrix, f UnaryFunc) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, err
	}
	res, err := newDenseZeroOK(dm.r, dm.c)
	if err != nil {
		return nil, err
	}

	c := dm.c
	parallel.ForRange(dm.r, parallel.DefaultConfig(), func(lo, hi int) {
		for idx := lo * c; idx < hi*c; idx++ {
			res.data[idx] = f(dm.data[idx])
		}
	})

	return res, nil
}

// zipWith is the shared binary kernel; callers add their own op tag.
func zipWith(a, b Matrix, f BinaryFunc) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, err
	}
	da, err := asDense(a)
	if err != nil {
		return nil, err
	}
	db, err := asDense(b)
	if err != nil {
		return nil, err
	}
	res, err := newDenseZeroOK(da.r, da.c)
	if err != nil {
		return nil, err
	}

	c := da.c
	parallel.ForRange(da.r, parallel.DefaultConfig(), func(lo, hi int) {
		for idx := lo * c; idx < hi*c; idx++ {
			res.data[idx] = f(da.data[idx], db.data[idx])
		}
	})

	return res, nil
}

// Map returns a new matrix with f applied to every element of m.
func Map(m Matrix, f UnaryFunc) (*Dense, error) {
	res, err := mapDense(m, f)
	if err != nil {
		return nil, matrixErrorf(opMap, err)
	}

	return res, nil
}

// ZipWith returns a new matrix with out[i,j] = f(a[i,j], b[i,j]).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func ZipWith(a, b Matrix, f BinaryFunc) (*Dense, error) {
	res, err := zipWith(a, b, f)
	if err != nil {
		return nil, matrixErrorf(opZip, err)
	}

	return res, nil
}

// ElementwiseDivide computes a[i,j] / b[i,j].
// Wherever either operand is exactly zero the result cell stays 0; no
// infinities or NaNs are produced.
func ElementwiseDivide(a, b Matrix) (*Dense, error) {
	res, err := zipWith(a, b, func(x, y float64) float64 {
		if x == 0 || y == 0 {
			return 0
		}
		return x / y
	})
	if err != nil {
		return nil, matrixErrorf(opDivide, err)
	}

	return res, nil
}

// ElementwiseLog computes the natural log of every element.
// A cell whose input is exactly zero stays 0 instead of becoming -Inf.
func ElementwiseLog(m Matrix) (*Dense, error) {
	res, err := mapDense(m, func(v float64) float64 {
		if v == 0 {
			return 0
		}
		return math.Log(v)
	})
	if err != nil {
		return nil, matrixErrorf(opLog, err)
	}

	return res, nil
}

// ScalarAdd returns m[i,j] + s.
func ScalarAdd(m Matrix, s float64) (*Dense, error) {
	res, err := mapDense(m, func(v float64) float64 { return v + s })
	if err != nil {
		return nil, matrixErrorf(opScalarAdd, err)
	}

	return res, nil
}

// ScalarMinus returns s - m[i,j] (the scalar is the minuend).
func ScalarMinus(m Matrix, s float64) (*Dense, error) {
	res, err := mapDense(m, func(v float64) float64 { return s - v })
	if err != nil {
		return nil, matrixErrorf(opScalarMinus, err)
	}

	return res, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for idx := range da.data {
		if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// Equal reports whether a and b have the same shape and bitwise-equal values.
// Nil operands are never equal.
func Equal(a, b Matrix) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	ok, err := AllClose(a, b, 0, 0)

	return err == nil && ok
}
