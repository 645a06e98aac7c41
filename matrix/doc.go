// SPDX-License-Identifier: MIT

// Package matrix is the dense linear-algebra engine behind stroke
// rasterization and the classifier.
//
// The package provides:
//
//   - Dense: a row-major float64 matrix over one contiguous buffer with
//     bounds-checked At/Set (no silent out-of-range reads).
//   - Algebra: Add, Sub, Mul, Transpose, Hadamard, Identity.
//   - Elementwise kernels driven by function values (Map, ZipWith) and the
//     named wrappers built on them (ElementwiseDivide, ElementwiseLog,
//     ScalarAdd, ScalarMultiply, ScalarMinus).
//   - Structural reshaping for bias/regularization bookkeeping:
//     ExtractColumn, CutColumn, PrependColumn, AppendRight,
//     SumColumnsToRow, FlattenRows, UnflattenToSquare.
//
// Every operation returns a fresh *Dense; operands are never mutated.
// Shape violations surface as ErrDimensionMismatch, bad indices as
// ErrOutOfRange, both matchable with errors.Is.
//
// Row-independent kernels (Mul, Map, ZipWith) split their rows across
// goroutines; the output is bit-identical to a sequential run.
package matrix
