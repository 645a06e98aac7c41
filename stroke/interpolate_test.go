// SPDX-License-Identifier: MIT

package stroke_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strokenet/stroke"
)

func TestInterpolate_Diagonal(t *testing.T) {
	t.Parallel()

	got := stroke.Interpolate(stroke.Point{X: 0, Y: 0}, stroke.Point{X: 3, Y: 3})
	require.Equal(t, pts(1, 1, 2, 2, 3, 3), got)
}

func TestInterpolate_AxesMoveIndependently(t *testing.T) {
	t.Parallel()

	got := stroke.Interpolate(stroke.Point{X: 0, Y: 0}, stroke.Point{X: 4, Y: -2})
	require.Equal(t, pts(1, -1, 2, -2, 3, -2, 4, -2), got)
}

func TestInterpolate_SamePoint(t *testing.T) {
	t.Parallel()

	require.Nil(t, stroke.Interpolate(stroke.Point{X: 2, Y: 2}, stroke.Point{X: 2, Y: 2}))
}

func TestInterpolate_UnitSteps(t *testing.T) {
	t.Parallel()

	from, to := stroke.Point{X: 17, Y: -3}, stroke.Point{X: -9, Y: 40}
	got := stroke.Interpolate(from, to)
	require.Equal(t, to, got[len(got)-1])

	prev := from
	for _, p := range got {
		require.LessOrEqual(t, max(absInt(p.X-prev.X), absInt(p.Y-prev.Y)), 1)
		prev = p
	}
}

func TestFill(t *testing.T) {
	t.Parallel()

	require.Nil(t, stroke.Fill(nil))
	require.Equal(t, pts(5, 5), stroke.Fill(pts(5, 5)))
	require.Equal(t, pts(0, 0, 1, 0, 2, 0, 2, 1), stroke.Fill(pts(0, 0, 2, 0, 2, 1)))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
