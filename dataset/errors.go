// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrTrainingDataIO wraps a file that is missing or cannot be read or written.
	ErrTrainingDataIO = errors.New("dataset: training data I/O")

	// ErrRowCountMismatch means the feature and label files disagree on row count.
	ErrRowCountMismatch = errors.New("dataset: feature and label row counts differ")

	// ErrRaggedRow means a row has a different value count than the first row.
	ErrRaggedRow = errors.New("dataset: ragged row")

	// ErrBadValue means a token did not parse as a finite number.
	ErrBadValue = errors.New("dataset: bad value")

	// ErrEmpty means the input holds no rows.
	ErrEmpty = errors.New("dataset: no rows")
)
