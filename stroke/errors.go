// SPDX-License-Identifier: MIT

package stroke

import "errors"

var (
	// ErrEmptyPath is returned when an operation needs at least one point.
	ErrEmptyPath = errors.New("stroke: empty path")

	// ErrTooFewPoints is returned by the two-shape split for paths shorter
	// than two points.
	ErrTooFewPoints = errors.New("stroke: two shapes need at least two points")

	// ErrNoGap is returned by the two-shape split when no consecutive pair
	// is farther apart than one pixel, so the first shape would be empty.
	ErrNoGap = errors.New("stroke: no gap between consecutive points")
)
