// SPDX-License-Identifier: MIT

package raster

import "errors"

var (
	// ErrEmptyPath is returned when there is nothing to rasterize.
	ErrEmptyPath = errors.New("raster: empty path")

	// ErrBadBox is returned for a degenerate bounding box or a path point
	// lying outside the box it was rasterized against.
	ErrBadBox = errors.New("raster: bad bounding box")

	// ErrTooLarge is returned when the box or the padded grid exceeds
	// MaxBoxSide or MaxGridCells.
	ErrTooLarge = errors.New("raster: drawing too large")
)
