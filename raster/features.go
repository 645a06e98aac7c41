// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"

	"github.com/katalvlaran/strokenet/matrix"
	"github.com/katalvlaran/strokenet/stroke"
)

// Features runs the whole pipeline on path treated as a single shape and
// returns one 1×EdgeLength² feature row.
func Features(path []stroke.Point, opts ...Option) (*matrix.Dense, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	shapes, err := stroke.Separate(path, stroke.SingleShape)
	if err != nil {
		return nil, fmt.Errorf("features: %w", err)
	}

	return ShapeFeatures(shapes[0], opts...)
}

// ShapeFeatures is Features for an already separated shape.
func ShapeFeatures(s stroke.Shape, opts ...Option) (*matrix.Dense, error) {
	g, err := Rasterize(s.Points, s.Box, opts...)
	if err != nil {
		return nil, err
	}
	if g.opts.emulate {
		g.EmulateWriting()
	}
	small, err := g.Downscale()
	if err != nil {
		return nil, err
	}

	return matrix.FlattenRows(small)
}
