// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All operations return these sentinels (possibly wrapped with an op tag)
// and tests match them via errors.Is. No operation panics on user input.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Kernels
// wrap with matrixErrorf(opTag, err) at the facade; callers still match the
// sentinel with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) and column helpers return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes: elementwise
	// ops on unequal shapes, Mul where a.Cols != b.Rows, AppendRight with
	// unequal row counts.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value passed to Set.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNotPerfectSquare is returned by UnflattenToSquare when the column
	// count has no integer square root.
	ErrNotPerfectSquare = errors.New("matrix: length is not a perfect square")

	// ErrBadData indicates a backing slice whose length disagrees with the
	// requested shape, or ragged nested rows.
	ErrBadData = errors.New("matrix: data length does not match shape")
)

// ErrIndexOutOfRange names the same condition as ErrOutOfRange.
var ErrIndexOutOfRange = ErrOutOfRange
