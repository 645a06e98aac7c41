// SPDX-License-Identifier: MIT

package stroke

// step moves v one unit toward target, or leaves it when already there.
func step(v, target int) int {
	switch {
	case v < target:
		return v + 1
	case v > target:
		return v - 1
	default:
		return v
	}
}

// Interpolate returns the points visited when walking from `from` to `to`
// one unit per step on each axis independently, excluding `from` and
// including `to`. Both axes move together until one arrives, then the other
// continues alone, so consecutive points are never more than one cell apart.
// Equal endpoints yield nil.
func Interpolate(from, to Point) []Point {
	if from == to {
		return nil
	}
	n := max(abs(to.X-from.X), abs(to.Y-from.Y))
	out := make([]Point, 0, n)
	cur := from
	for cur != to {
		cur = Point{X: step(cur.X, to.X), Y: step(cur.Y, to.Y)}
		out = append(out, cur)
	}

	return out
}

// Fill returns path with the Interpolate points inserted between every
// consecutive pair. The first point is kept; order is preserved.
func Fill(path []Point) []Point {
	if len(path) == 0 {
		return nil
	}
	out := make([]Point, 0, len(path))
	out = append(out, path[0])
	for i := 1; i < len(path); i++ {
		out = append(out, Interpolate(path[i-1], path[i])...)
	}

	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
