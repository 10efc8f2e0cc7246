package geom

import "fmt"

// Point is an integer coordinate pair.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Rect is an axis-aligned rectangle with inclusive integer bounds.
// The zero value is the degenerate rectangle at the origin.
type Rect struct {
	minX int
	maxX int
	minY int
	maxY int
}

// Set is an ordered collection of rectangles read from one source.
type Set struct {
	Rects    []Rect
	Envelope Rect // zero when Rects is empty
}

func (s *Set) add(r Rect) {
	if len(s.Rects) == 0 {
		s.Envelope = r
	} else {
		s.Envelope = s.Envelope.Union(r)
	}
	s.Rects = append(s.Rects, r)
}

// Overlap is one intersecting pair of a rectangle list, I < J.
type Overlap struct {
	I    int
	J    int
	Rect Rect
}
