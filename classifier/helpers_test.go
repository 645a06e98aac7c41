// SPDX-License-Identifier: MIT

package classifier_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strokenet/internal/synth"
	"github.com/katalvlaran/strokenet/matrix"
	"github.com/katalvlaran/strokenet/raster"
	"github.com/katalvlaran/strokenet/stroke"
)

// debugWeights fills a rows×cols matrix with sin(k)/10, k = 1..rows·cols,
// a fixed pattern that keeps every unit away from saturation.
func debugWeights(t *testing.T, rows, cols int) *matrix.Dense {
	t.Helper()
	data := make([]float64, rows*cols)
	for k := range data {
		data[k] = math.Sin(float64(k+1)) / 10
	}
	m, err := matrix.NewDenseFrom(rows, cols, data)
	require.NoError(t, err)
	return m
}

// tinyData is a 6-example, 4-feature, 3-label set.
func tinyData(t *testing.T) (x, y *matrix.Dense) {
	t.Helper()
	x, err := matrix.NewDenseRows([][]float64{
		{1, 0, 0, 0.5},
		{0.9, 0.1, 0, 0.4},
		{0, 1, 0.2, 0},
		{0.1, 0.8, 0.3, 0},
		{0, 0, 1, 1},
		{0.2, 0, 0.9, 0.8},
	})
	require.NoError(t, err)
	y, err = matrix.NewDenseFrom(6, 1, []float64{0, 0, 1, 1, 2, 2})
	require.NoError(t, err)
	return x, y
}

func features(t *testing.T, path []stroke.Point) *matrix.Dense {
	t.Helper()
	row, err := raster.Features(path)
	require.NoError(t, err)
	return row
}

// strokeData rasterizes two rings (label 0) and two diagonals (label 1).
func strokeData(t *testing.T) (x, y *matrix.Dense) {
	t.Helper()
	paths := [][]stroke.Point{
		synth.Ring(200, 200, 100, 90),
		synth.Ring(150, 180, 70, 72),
		synth.Line(stroke.Point{X: 10, Y: 10}, stroke.Point{X: 210, Y: 210}),
		synth.Line(stroke.Point{X: 40, Y: 20}, stroke.Point{X: 190, Y: 200}),
	}
	x, err := matrix.NewDense(len(paths), raster.DefaultEdgeLength*raster.DefaultEdgeLength)
	require.NoError(t, err)
	for i, p := range paths {
		row := features(t, p)
		for j, v := range row.RawData() {
			require.NoError(t, x.Set(i, j, v))
		}
	}
	y, err = matrix.NewDenseFrom(4, 1, []float64{0, 0, 1, 1})
	require.NoError(t, err)
	return x, y
}
