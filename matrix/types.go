// SPDX-License-Identifier: MIT

package matrix

// Matrix represents a two-dimensional array of float64 values.
// Operations in this package accept any Matrix and return *Dense; a *Dense
// operand is read in place, anything else is materialized first.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// UnaryFunc maps one element to a new value.
type UnaryFunc func(v float64) float64

// BinaryFunc combines the elements of two equal-shaped operands at the same
// position into one value.
type BinaryFunc func(a, b float64) float64
