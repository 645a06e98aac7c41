// SPDX-License-Identifier: MIT

package raster

import (
	"math"

	"github.com/katalvlaran/strokenet/internal/parallel"
	"github.com/katalvlaran/strokenet/matrix"
)

// Downscale samples g into an EdgeLength×EdgeLength matrix.
//
// Implementation:
//   - Stage 1: rowStep = max(1, rows/EdgeLength), colStep likewise.
//   - Stage 2: output (i, j) is centred on (i·rowStep, j·colStep) and sums
//     gauss(distance to centre)·value over the block window, skipping cells
//     in the padding band. A window of even width w spans [c-w/2, c+w/2);
//     a window narrower than two cells covers the centre alone.
//   - Stage 3: output rows are independent and computed in parallel.
//
// Output shape never depends on the grid size. Grids smaller than the edge
// length on an axis fill only the leading part of that axis.
//
// Complexity:
//   - Time O(EdgeLength²·rowStep·colStep) ≈ O(rows·cols), Space O(EdgeLength²).
func (g *Grid) Downscale() (*matrix.Dense, error) {
	e := g.opts.edgeLength
	rowStep := max(1, g.rows/e)
	colStep := max(1, g.cols/e)

	out := make([]float64, e*e)
	parallel.For(e, parallel.DefaultConfig(), func(i int) {
		for j := 0; j < e; j++ {
			out[i*e+j] = g.blockSum(i*rowStep, j*colStep, rowStep, colStep)
		}
	})

	return matrix.NewDenseFrom(e, e, out)
}

// blockSum is the Gaussian-weighted sum of the block centred on (ci, cj).
func (g *Grid) blockSum(ci, cj, rowStep, colStep int) float64 {
	kLo, kHi := window(ci, rowStep)
	lLo, lHi := window(cj, colStep)

	var sum float64
	for k := max(kLo, g.rowPad, 0); k < min(kHi, g.rows); k++ {
		if k > g.rows-g.rowPad {
			break
		}
		for l := max(lLo, g.colPad, 0); l < min(lHi, g.cols); l++ {
			if l > g.cols-g.colPad {
				break
			}
			v := g.cells[k*g.cols+l]
			if v == 0 {
				continue
			}
			sum += g.opts.gauss(math.Hypot(float64(k-ci), float64(l-cj))) * v
		}
	}

	return sum
}

func window(c, step int) (lo, hi int) {
	lo, hi = c-step/2, c+step/2
	if hi <= lo {
		hi = lo + 1
	}

	return lo, hi
}
