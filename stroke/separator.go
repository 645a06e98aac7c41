// SPDX-License-Identifier: MIT

package stroke

import "fmt"

// Mode selects how Separate splits a path.
type Mode int

const (
	// SingleShape treats the whole path as one shape.
	SingleShape Mode = iota
	// TwoShapes splits the path at the largest consecutive jump.
	TwoShapes
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case SingleShape:
		return "single"
	case TwoShapes:
		return "two"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Shape is one separated sub-path with its bounding box.
type Shape struct {
	Points []Point
	Box    BoundingBox
}

// Distances returns the Euclidean distance between each consecutive pair;
// element i is the distance from path[i] to path[i+1].
func Distances(path []Point) []float64 {
	if len(path) < 2 {
		return nil
	}
	out := make([]float64, len(path)-1)
	for i := 1; i < len(path); i++ {
		out[i-1] = path[i-1].Distance(path[i])
	}

	return out
}

// LargestGap returns the index of the point that follows the largest jump,
// so path[:idx] and path[idx:] are the two sides of the split.
//
// Distances are truncated to whole pixels before comparison and the first
// maximum wins. A path with no jump of at least one pixel yields 0.
func LargestGap(path []Point) int {
	var best, idx int
	for i := 1; i < len(path); i++ {
		d := int(path[i-1].Distance(path[i]))
		if d > best {
			best, idx = d, i
		}
	}

	return idx
}

// Separate splits path according to mode and computes a fresh bounding box
// for every shape. The returned shapes share no storage with path.
//
// Errors:
//   - ErrEmptyPath for an empty path.
//   - ErrTooFewPoints (TwoShapes with fewer than two points).
//   - ErrNoGap (TwoShapes when every step is shorter than one pixel).
func Separate(path []Point, mode Mode) ([]Shape, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}

	switch mode {
	case SingleShape:
		s, err := newShape(path)
		if err != nil {
			return nil, err
		}
		return []Shape{s}, nil

	case TwoShapes:
		if len(path) < 2 {
			return nil, fmt.Errorf("separate %s: %w", mode, ErrTooFewPoints)
		}
		idx := LargestGap(path)
		if idx == 0 {
			return nil, fmt.Errorf("separate %s: %w", mode, ErrNoGap)
		}
		first, err := newShape(path[:idx])
		if err != nil {
			return nil, err
		}
		second, err := newShape(path[idx:])
		if err != nil {
			return nil, err
		}
		return []Shape{first, second}, nil

	default:
		return nil, fmt.Errorf("separate: unknown %s", mode)
	}
}

func newShape(points []Point) (Shape, error) {
	box, err := BoundsOf(points)
	if err != nil {
		return Shape{}, err
	}
	cp := make([]Point, len(points))
	copy(cp, points)

	return Shape{Points: cp, Box: box}, nil
}
