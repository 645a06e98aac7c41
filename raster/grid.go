// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"
	"math"

	"github.com/katalvlaran/strokenet/matrix"
	"github.com/katalvlaran/strokenet/stroke"
)

// Grid is a padded raster of one shape, still under construction.
// Cells are stored row-major; rows follow Y and columns follow X.
type Grid struct {
	rows, cols     int
	rowPad, colPad int
	cells          []float64
	opts           Options
}

// Rasterize stamps path onto a zero grid sized to box plus padding.
//
// Implementation:
//   - Stage 1: rows = box.Height(), cols = box.Width(); each axis gets
//     PaddingCells·dim/EdgeLength cells of border on both sides. The box
//     and the padded grid are size-checked before anything is allocated.
//   - Stage 2: with WithInterpolation(true), fill gaps between consecutive
//     points (stroke.Fill).
//   - Stage 3: for every point set its cell and the window
//     [p-SplatRadius, p+SplatRadius) on both axes to Ink, clipped to the grid.
//
// Errors:
//   - ErrEmptyPath, ErrBadBox (degenerate box or a point outside it),
//     ErrTooLarge.
//
// Complexity:
//   - Time O(rows·cols + len(path)·SplatRadius²), Space O(rows·cols).
func Rasterize(path []stroke.Point, box stroke.BoundingBox, opts ...Option) (*Grid, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	if box.Width() < 1 || box.Height() < 1 {
		return nil, fmt.Errorf("rasterize %v-%v: %w", box.Min, box.Max, ErrBadBox)
	}
	if box.Width() > MaxBoxSide || box.Height() > MaxBoxSide {
		return nil, fmt.Errorf("rasterize %dx%d box: %w", box.Width(), box.Height(), ErrTooLarge)
	}
	o := gatherOptions(opts...)

	g := &Grid{opts: o}
	g.rowPad = o.paddingCells * box.Height() / o.edgeLength
	g.colPad = o.paddingCells * box.Width() / o.edgeLength
	g.rows = box.Height() + 2*g.rowPad
	g.cols = box.Width() + 2*g.colPad
	if g.rows <= 0 || g.cols <= 0 || g.rows > MaxGridCells/g.cols {
		return nil, fmt.Errorf("rasterize %dx%d grid: %w", g.rows, g.cols, ErrTooLarge)
	}
	g.cells = make([]float64, g.rows*g.cols)

	if o.interpolate {
		path = stroke.Fill(path)
	}
	r := o.splatRadius
	for _, p := range path {
		if !box.Contains(p) {
			return nil, fmt.Errorf("rasterize: point %v outside %v-%v: %w", p, box.Min, box.Max, ErrBadBox)
		}
		row := g.rowPad + p.Y - box.Min.Y
		col := g.colPad + p.X - box.Min.X
		g.cells[row*g.cols+col] = Ink
		for i := max(0, row-r); i < min(g.rows, row+r); i++ {
			for j := max(0, col-r); j < min(g.cols, col+r); j++ {
				g.cells[i*g.cols+j] = Ink
			}
		}
	}

	return g, nil
}

// Rows returns the padded row count.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the padded column count.
func (g *Grid) Cols() int { return g.cols }

// Padding returns the border width on the row and column axes.
func (g *Grid) Padding() (rowPad, colPad int) { return g.rowPad, g.colPad }

// At returns cell (i, j) or matrix.ErrOutOfRange.
func (g *Grid) At(i, j int) (float64, error) {
	if i < 0 || i >= g.rows || j < 0 || j >= g.cols {
		return 0, fmt.Errorf("Grid.At(%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}

	return g.cells[i*g.cols+j], nil
}

// Matrix returns a copy of the full padded grid.
func (g *Grid) Matrix() (*matrix.Dense, error) {
	return matrix.NewDenseFrom(g.rows, g.cols, g.cells)
}

// EmulateWriting spreads mass from every ink cell into its non-ink
// neighbours: a cell at distance d inside [p-EmulationRadius,
// p+EmulationRadius) gains gauss(d) + 1/d per ink source.
//
// Ink cells are collected before any mass is added, so the result does not
// depend on traversal order. Ink cells themselves never change.
//
// Complexity:
//   - Time O(ink·EmulationRadius²), Space O(rows·cols) for the ink mask.
func (g *Grid) EmulateWriting() {
	ink := make([]bool, len(g.cells))
	sources := make([]int, 0, len(g.cells)/4)
	for idx, v := range g.cells {
		if v == Ink {
			ink[idx] = true
			sources = append(sources, idx)
		}
	}

	r := g.opts.emulationRadius
	var i, j, k, l, off int
	var d float64
	for _, idx := range sources {
		i, j = idx/g.cols, idx%g.cols
		for k = max(0, i-r); k < min(g.rows, i+r); k++ {
			for l = max(0, j-r); l < min(g.cols, j+r); l++ {
				off = k*g.cols + l
				if ink[off] {
					continue
				}
				d = math.Hypot(float64(k-i), float64(l-j))
				g.cells[off] += g.opts.gauss(d) + 1.0/d
			}
		}
	}
}
