// SPDX-License-Identifier: MIT

// Package synth draws synthetic stroke paths: rings and straight lines.
// It backs the end-to-end tests and the CLI's demo data.
package synth

import (
	"math"

	"github.com/katalvlaran/strokenet/stroke"
)

// Ring samples n points on a circle of radius r around (cx, cy), starting at
// angle 0 and closing back on the first point. Coordinates are rounded.
func Ring(cx, cy, r, n int) []stroke.Point {
	if n < 1 {
		return nil
	}
	out := make([]stroke.Point, 0, n+1)
	for k := 0; k <= n; k++ {
		a := 2 * math.Pi * float64(k) / float64(n)
		out = append(out, stroke.Point{
			X: cx + int(math.Round(float64(r)*math.Cos(a))),
			Y: cy + int(math.Round(float64(r)*math.Sin(a))),
		})
	}

	return out
}

// Line returns every unit step from `from` to `to`, both ends included.
func Line(from, to stroke.Point) []stroke.Point {
	return append([]stroke.Point{from}, stroke.Interpolate(from, to)...)
}

// Cross returns two diagonals of a w×h box at (x, y), drawn as one path:
// top-left to bottom-right, then top-right to bottom-left.
func Cross(x, y, w, h int) []stroke.Point {
	a := Line(stroke.Point{X: x, Y: y}, stroke.Point{X: x + w, Y: y + h})
	b := Line(stroke.Point{X: x + w, Y: y}, stroke.Point{X: x, Y: y + h})

	return append(a, b...)
}
