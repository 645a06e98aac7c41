// SPDX-License-Identifier: MIT

package stroke

// Recorder accumulates pointer drag events into a capture path.
//
// Every dragged point is stored once; the gap from the previous drag point
// of the same line is filled with Interpolate. Release ends the current line
// so the next drag does not connect back to it.
//
// A Recorder is not safe for concurrent use.
type Recorder struct {
	points []Point
	seen   map[Point]struct{}
	prev   *Point
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{seen: make(map[Point]struct{})}
}

// Drag records the pointer at p.
func (r *Recorder) Drag(p Point) {
	r.add(p)
	if r.prev != nil {
		for _, q := range Interpolate(*r.prev, p) {
			r.add(q)
		}
	}
	r.prev = &p
}

// Release ends the current line.
func (r *Recorder) Release() { r.prev = nil }

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.points = r.points[:0]
	clear(r.seen)
	r.prev = nil
}

// Len returns the number of distinct points recorded.
func (r *Recorder) Len() int { return len(r.points) }

// Points returns a copy of the recorded path in capture order.
func (r *Recorder) Points() []Point {
	out := make([]Point, len(r.points))
	copy(out, r.points)

	return out
}

func (r *Recorder) add(p Point) {
	if _, ok := r.seen[p]; ok {
		return
	}
	r.seen[p] = struct{}{}
	r.points = append(r.points, p)
}
