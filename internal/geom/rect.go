package geom

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned by queries that need at least one rectangle.
var ErrEmpty = errors.New("geom: no rectangles")

// NewRect returns the rectangle spanned by two opposite corners.
// The corners may be given in any order and may coincide.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		minX: min(p1.X, p2.X),
		maxX: max(p1.X, p2.X),
		minY: min(p1.Y, p2.Y),
		maxY: max(p1.Y, p2.Y),
	}
}

// R builds a rectangle from raw corner coordinates.
func R(x1, y1, x2, y2 int) Rect { return NewRect(Pt(x1, y1), Pt(x2, y2)) }

// Bounds returns (minX, maxX, minY, maxY).
func (r Rect) Bounds() (minX, maxX, minY, maxY int) {
	return r.minX, r.maxX, r.minY, r.maxY
}

func (r Rect) MinX() int { return r.minX }
func (r Rect) MaxX() int { return r.maxX }
func (r Rect) MinY() int { return r.minY }
func (r Rect) MaxY() int { return r.maxY }

func (r Rect) Width() int  { return r.maxX - r.minX }
func (r Rect) Height() int { return r.maxY - r.minY }

// Area is width times height; zero for degenerate rectangles.
func (r Rect) Area() int { return r.Width() * r.Height() }

// Degenerate reports whether r is a segment or a single point.
func (r Rect) Degenerate() bool { return r.minX == r.maxX || r.minY == r.maxY }

// Corners returns the corners counter-clockwise from (minX, minY).
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.minX, r.minY},
		{r.maxX, r.minY},
		{r.maxX, r.maxY},
		{r.minX, r.maxY},
	}
}

// ContainsPoint reports whether p lies in r. Edges and corners count.
func (r Rect) ContainsPoint(p Point) bool {
	return r.minX <= p.X && p.X <= r.maxX && r.minY <= p.Y && p.Y <= r.maxY
}

// ContainsRect reports whether every point of o lies in r.
func (r Rect) ContainsRect(o Rect) bool {
	return r.minX <= o.minX && o.maxX <= r.maxX && r.minY <= o.minY && o.maxY <= r.maxY
}

// Intersects reports whether r and o share at least one point, which is
// the case exactly when both their x-ranges and their y-ranges overlap.
func (r Rect) Intersects(o Rect) bool {
	return !(r.maxX < o.minX || o.maxX < r.minX || r.maxY < o.minY || o.maxY < r.minY)
}

// Intersection returns the overlap of r and o. ok is false when they are
// disjoint. The overlap of rectangles that only touch is degenerate.
func (r Rect) Intersection(o Rect) (Rect, bool) {
	if !r.Intersects(o) {
		return Rect{}, false
	}
	return Rect{
		minX: max(r.minX, o.minX),
		maxX: min(r.maxX, o.maxX),
		minY: max(r.minY, o.minY),
		maxY: min(r.maxY, o.maxY),
	}, true
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		minX: min(r.minX, o.minX),
		maxX: max(r.maxX, o.maxX),
		minY: min(r.minY, o.minY),
		maxY: max(r.maxY, o.maxY),
	}
}

// Equal reports whether r and o have the same bounds. It is the same as r == o.
func (r Rect) Equal(o Rect) bool { return r == o }

func (r Rect) String() string {
	return fmt.Sprintf("Rect([%d,%d],[%d,%d])", r.minX, r.minY, r.maxX, r.maxY)
}

// LargestIndex returns the index of the rectangle with the greatest area.
// Ties go to the first occurrence.
func LargestIndex(rects []Rect) (int, error) {
	if len(rects) == 0 {
		return -1, ErrEmpty
	}
	best := 0
	for i := 1; i < len(rects); i++ {
		if rects[i].Area() > rects[best].Area() {
			best = i
		}
	}
	return best, nil
}

// Largest returns the rectangle with the greatest area, the first one on ties.
func Largest(rects []Rect) (Rect, error) {
	i, err := LargestIndex(rects)
	if err != nil {
		return Rect{}, fmt.Errorf("largest rectangle: %w", err)
	}
	return rects[i], nil
}

// Envelope returns the smallest rectangle containing all of rects.
func Envelope(rects []Rect) (Rect, bool) {
	if len(rects) == 0 {
		return Rect{}, false
	}
	env := rects[0]
	for _, r := range rects[1:] {
		env = env.Union(r)
	}
	return env, true
}

// Intersections lists every intersecting pair in index order.
func Intersections(rects []Rect) []Overlap {
	var out []Overlap
	for i := 0; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			if ov, ok := rects[i].Intersection(rects[j]); ok {
				out = append(out, Overlap{I: i, J: j, Rect: ov})
			}
		}
	}
	return out
}
