// SPDX-License-Identifier: MIT

package stroke

import (
	"fmt"
	"math"
)

// Point is an integer pixel coordinate from stroke capture.
type Point struct {
	X, Y int
}

// String implements fmt.Stringer.
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(float64(q.X-p.X), float64(q.Y-p.Y))
}

// BoundingBox is the inclusive extent of a set of points:
// Min holds the smallest X and Y, Max the largest.
type BoundingBox struct {
	Min, Max Point
}

// Width is the number of pixel columns covered, Max.X-Min.X+1.
func (b BoundingBox) Width() int { return b.Max.X - b.Min.X + 1 }

// Height is the number of pixel rows covered, Max.Y-Min.Y+1.
func (b BoundingBox) Height() int { return b.Max.Y - b.Min.Y + 1 }

// Contains reports whether p lies inside b (edges included).
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// BoundsOf computes the bounding box of path.
// Returns ErrEmptyPath for an empty path.
func BoundsOf(path []Point) (BoundingBox, error) {
	if len(path) == 0 {
		return BoundingBox{}, ErrEmptyPath
	}
	box := BoundingBox{Min: path[0], Max: path[0]}
	for _, p := range path[1:] {
		box.Min.X = min(box.Min.X, p.X)
		box.Min.Y = min(box.Min.Y, p.Y)
		box.Max.X = max(box.Max.X, p.X)
		box.Max.Y = max(box.Max.Y, p.Y)
	}

	return box, nil
}
