// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Structural reshaping used for bias-column and regularization
//     bookkeeping: column extraction/removal, bias prepend, horizontal
//     concatenation, per-column reduction, flatten/unflatten.
//   - Small reductions (SumAll, FrobeniusNorm, ArgMaxRow) for cost and
//     prediction.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ExtractColumn returns column j of m as an r×1 matrix.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
func ExtractColumn(m Matrix, j int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opExtractColumn, err)
	}
	if err := ValidateColIndex(m, j); err != nil {
		return nil, matrixErrorf(opExtractColumn, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opExtractColumn, err)
	}

	res, err := NewDense(dm.r, 1)
	if err != nil {
		return nil, matrixErrorf(opExtractColumn, err)
	}
	for i := 0; i < dm.r; i++ {
		res.data[i] = dm.data[i*dm.c+j]
	}

	return res, nil
}

// CutColumn returns m without column j, an r×(c-1) matrix.
// Removing the only column yields a legal r×0 matrix.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
func CutColumn(m Matrix, j int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCutColumn, err)
	}
	if err := ValidateColIndex(m, j); err != nil {
		return nil, matrixErrorf(opCutColumn, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opCutColumn, err)
	}

	nc := dm.c - 1
	res, err := newDenseZeroOK(dm.r, nc)
	if err != nil {
		return nil, matrixErrorf(opCutColumn, err)
	}
	var i, src, dst int
	for i = 0; i < dm.r; i++ {
		src, dst = i*dm.c, i*nc
		copy(res.data[dst:dst+j], dm.data[src:src+j])
		copy(res.data[dst+j:dst+nc], dm.data[src+j+1:src+dm.c])
	}

	return res, nil
}

// PrependColumn returns [v | m]: m with a new leading column filled with v.
// With v = 1 this is the bias unit of a network layer.
func PrependColumn(m Matrix, v float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPrependColumn, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opPrependColumn, err)
	}

	nc := dm.c + 1
	res, err := newDenseZeroOK(dm.r, nc)
	if err != nil {
		return nil, matrixErrorf(opPrependColumn, err)
	}
	for i := 0; i < dm.r; i++ {
		res.data[i*nc] = v
		copy(res.data[i*nc+1:(i+1)*nc], dm.data[i*dm.c:(i+1)*dm.c])
	}

	return res, nil
}

// AppendRight returns the horizontal concatenation [a | b].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch when row counts differ.
func AppendRight(a, b Matrix) (*Dense, error) {
	if err := ValidateSameRows(a, b); err != nil {
		return nil, matrixErrorf(opAppendRight, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opAppendRight, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opAppendRight, err)
	}

	nc := da.c + db.c
	res, err := newDenseZeroOK(da.r, nc)
	if err != nil {
		return nil, matrixErrorf(opAppendRight, err)
	}
	for i := 0; i < da.r; i++ {
		copy(res.data[i*nc:i*nc+da.c], da.data[i*da.c:(i+1)*da.c])
		copy(res.data[i*nc+da.c:(i+1)*nc], db.data[i*db.c:(i+1)*db.c])
	}

	return res, nil
}

// SumColumnsToRow returns the 1×c row of per-column sums.
func SumColumnsToRow(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSumColumns, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opSumColumns, err)
	}

	res, err := newDenseZeroOK(1, dm.c)
	if err != nil {
		return nil, matrixErrorf(opSumColumns, err)
	}
	for i := 0; i < dm.r; i++ {
		floats.Add(res.data, dm.data[i*dm.c:(i+1)*dm.c])
	}

	return res, nil
}

// FlattenRows lays the rows of an r×c matrix end to end in one 1×(r·c) row.
func FlattenRows(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opFlatten, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opFlatten, err)
	}
	res, err := newDenseZeroOK(1, dm.r*dm.c)
	if err != nil {
		return nil, matrixErrorf(opFlatten, err)
	}
	copy(res.data, dm.data)

	return res, nil
}

// UnflattenToSquare reshapes row `row` of m into an n×n matrix, n = √Cols.
// Inverse of FlattenRows for square inputs.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (bad row), ErrNotPerfectSquare.
func UnflattenToSquare(m Matrix, row int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opUnflatten, err)
	}
	if err := ValidateRowIndex(m, row); err != nil {
		return nil, matrixErrorf(opUnflatten, err)
	}
	n := int(math.Sqrt(float64(m.Cols())))
	for n*n > m.Cols() {
		n--
	}
	for (n+1)*(n+1) <= m.Cols() {
		n++
	}
	if n == 0 || n*n != m.Cols() {
		return nil, matrixErrorf(opUnflatten, fmt.Errorf("%d columns: %w", m.Cols(), ErrNotPerfectSquare))
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opUnflatten, err)
	}

	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opUnflatten, err)
	}
	copy(res.data, dm.data[row*dm.c:(row+1)*dm.c])

	return res, nil
}

// ArgMaxRow returns the column index of the largest value in row i.
// Ties resolve to the lowest index.
func ArgMaxRow(m Matrix, i int) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opArgMax, err)
	}
	if err := ValidateRowIndex(m, i); err != nil {
		return 0, matrixErrorf(opArgMax, err)
	}
	if m.Cols() == 0 {
		return 0, matrixErrorf(opArgMax, ErrOutOfRange)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opArgMax, err)
	}

	return floats.MaxIdx(dm.data[i*dm.c : (i+1)*dm.c]), nil
}

// SumAll returns the sum of every element.
func SumAll(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opSumAll, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opSumAll, err)
	}

	return floats.Sum(dm.data), nil
}

// FrobeniusNorm returns sqrt(Σ m[i,j]²).
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFrobeniusNorm, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return 0, matrixErrorf(opFrobeniusNorm, err)
	}
	if len(dm.data) == 0 {
		return 0, nil
	}

	return floats.Norm(dm.data, 2), nil
}
