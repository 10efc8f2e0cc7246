package geom

import (
	"errors"
	"testing"
)

func TestNewRectBounds(t *testing.T) {
	r := NewRect(Pt(100, 20), Pt(80, 31))
	minX, maxX, minY, maxY := r.Bounds()
	if minX != 80 || maxX != 100 || minY != 20 || maxY != 31 {
		t.Fatalf("bounds = (%d,%d,%d,%d), want (80,100,20,31)", minX, maxX, minY, maxY)
	}
	if got := r.Area(); got != 220 {
		t.Fatalf("area = %d, want 220", got)
	}
	if got := r.String(); got != "Rect([80,20],[100,31])" {
		t.Fatalf("String() = %q", got)
	}
}

func TestNewRectCornerOrder(t *testing.T) {
	want := R(0, 0, 4, 3)
	for name, r := range map[string]Rect{
		"ll-ur": NewRect(Pt(0, 0), Pt(4, 3)),
		"ur-ll": NewRect(Pt(4, 3), Pt(0, 0)),
		"ul-lr": NewRect(Pt(0, 3), Pt(4, 0)),
		"lr-ul": NewRect(Pt(4, 0), Pt(0, 3)),
	} {
		if !r.Equal(want) {
			t.Errorf("%s: got %v, want %v", name, r, want)
		}
		if r != want {
			t.Errorf("%s: == disagrees with Equal", name)
		}
	}
}

func TestContainsConstructorCorners(t *testing.T) {
	pairs := [][2]Point{
		{Pt(0, 0), Pt(10, 10)},
		{Pt(10, -3), Pt(-7, 4)},
		{Pt(5, 5), Pt(5, 5)},
		{Pt(2, 9), Pt(2, -9)},
	}
	for _, p := range pairs {
		r := NewRect(p[0], p[1])
		if !r.ContainsPoint(p[0]) || !r.ContainsPoint(p[1]) {
			t.Fatalf("%v does not contain its corners %v %v", r, p[0], p[1])
		}
		for _, c := range r.Corners() {
			if !r.ContainsPoint(c) {
				t.Fatalf("%v does not contain corner %v", r, c)
			}
		}
	}
}

func TestContainsPointBoundary(t *testing.T) {
	r := R(0, 0, 10, 5)
	type tc struct {
		p    Point
		want bool
	}
	tests := map[string]tc{
		"inside":       {Pt(3, 3), true},
		"left edge":    {Pt(0, 2), true},
		"top edge":     {Pt(7, 5), true},
		"corner":       {Pt(10, 5), true},
		"right of":     {Pt(11, 2), false},
		"below":        {Pt(4, -1), false},
		"diagonal out": {Pt(11, 6), false},
	}
	for name, tt := range tests {
		if got := r.ContainsPoint(tt.p); got != tt.want {
			t.Errorf("%s: ContainsPoint(%v) = %v, want %v", name, tt.p, got, tt.want)
		}
	}
}

func TestDegenerateArea(t *testing.T) {
	for _, r := range []Rect{R(3, 3, 3, 3), R(1, 4, 9, 4), R(2, 0, 2, 8), {}} {
		if !r.Degenerate() {
			t.Errorf("%v should be degenerate", r)
		}
		if r.Area() != 0 {
			t.Errorf("%v area = %d, want 0", r, r.Area())
		}
	}
	if R(0, 0, 1, 1).Degenerate() {
		t.Fatalf("unit square reported degenerate")
	}
}

func TestIntersectionOverlapping(t *testing.T) {
	a := R(0, 0, 10, 10)
	b := R(5, 5, 15, 15)
	if !a.Intersects(b) {
		t.Fatalf("expected %v and %v to intersect", a, b)
	}
	got, ok := a.Intersection(b)
	if !ok {
		t.Fatalf("expected an intersection")
	}
	if want := R(5, 5, 10, 10); got != want {
		t.Fatalf("intersection = %v, want %v", got, want)
	}
	if got.Area() != 25 {
		t.Fatalf("intersection area = %d, want 25", got.Area())
	}
}

func TestIntersectionDisjoint(t *testing.T) {
	a := R(0, 0, 1, 1)
	b := R(5, 5, 6, 6)
	if a.Intersects(b) {
		t.Fatalf("expected %v and %v to be disjoint", a, b)
	}
	if _, ok := a.Intersection(b); ok {
		t.Fatalf("expected no intersection")
	}
}

func TestIntersectionCross(t *testing.T) {
	// neither rectangle has a corner inside the other
	wide := R(0, 4, 20, 6)
	tall := R(9, 0, 11, 10)
	for _, c := range tall.Corners() {
		if wide.ContainsPoint(c) {
			t.Fatalf("fixture broken: %v contains %v", wide, c)
		}
	}
	got, ok := wide.Intersection(tall)
	if !ok {
		t.Fatalf("cross configuration should intersect")
	}
	if want := R(9, 4, 11, 6); got != want {
		t.Fatalf("intersection = %v, want %v", got, want)
	}
}

func TestIntersectionTouching(t *testing.T) {
	a := R(0, 0, 5, 5)
	edge, ok := a.Intersection(R(5, 1, 8, 3))
	if !ok || edge != R(5, 1, 5, 3) {
		t.Fatalf("shared edge = %v ok=%v", edge, ok)
	}
	corner, ok := a.Intersection(R(5, 5, 9, 9))
	if !ok || corner != R(5, 5, 5, 5) || corner.Area() != 0 {
		t.Fatalf("shared corner = %v ok=%v", corner, ok)
	}
}

func TestIntersectsSymmetricAndContained(t *testing.T) {
	rects := []Rect{
		R(0, 0, 10, 10), R(5, 5, 15, 15), R(0, 0, 1, 1), R(5, 5, 6, 6),
		R(0, 4, 20, 6), R(9, 0, 11, 10), R(3, 3, 3, 3), R(-5, 2, 2, 2),
		R(10, 10, 12, 12), R(-4, -4, 40, 40),
	}
	for _, a := range rects {
		for _, b := range rects {
			if a.Intersects(b) != b.Intersects(a) {
				t.Fatalf("Intersects not symmetric for %v, %v", a, b)
			}
			ov, ok := a.Intersection(b)
			if ok != a.Intersects(b) {
				t.Fatalf("Intersection ok=%v disagrees with Intersects for %v, %v", ok, a, b)
			}
			if !ok {
				continue
			}
			for _, c := range ov.Corners() {
				if !a.ContainsPoint(c) || !b.ContainsPoint(c) {
					t.Fatalf("corner %v of %v not in both %v and %v", c, ov, a, b)
				}
			}
			if !a.ContainsRect(ov) || !b.ContainsRect(ov) {
				t.Fatalf("%v not contained in %v and %v", ov, a, b)
			}
		}
	}
}

func TestLargest(t *testing.T) {
	only := R(1, 1, 2, 5)
	got, err := Largest([]Rect{only})
	if err != nil || got != only {
		t.Fatalf("Largest single = %v, %v", got, err)
	}

	rects := []Rect{R(0, 0, 2, 2), R(0, 0, 4, 1), R(10, 10, 13, 12), R(0, 0, 6, 1), R(0, 0, 3, 2)}
	i, err := LargestIndex(rects)
	if err != nil {
		t.Fatalf("LargestIndex: %v", err)
	}
	if i != 2 {
		t.Fatalf("LargestIndex = %d, want 2 (first of the area-6 ties)", i)
	}

	if _, err := Largest(nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("Largest(nil) err = %v, want ErrEmpty", err)
	}
	if _, err := LargestIndex([]Rect{}); !errors.Is(err, ErrEmpty) {
		t.Fatalf("LargestIndex(empty) err = %v, want ErrEmpty", err)
	}
}

func TestEnvelopeAndIntersections(t *testing.T) {
	if _, ok := Envelope(nil); ok {
		t.Fatalf("empty envelope should not be ok")
	}
	rects := []Rect{R(0, 0, 10, 10), R(5, 5, 15, 15), R(20, -3, 21, 0)}
	env, ok := Envelope(rects)
	if !ok || env != R(0, -3, 21, 15) {
		t.Fatalf("envelope = %v ok=%v", env, ok)
	}
	ovs := Intersections(rects)
	if len(ovs) != 1 {
		t.Fatalf("intersections = %v, want one pair", ovs)
	}
	if ovs[0].I != 0 || ovs[0].J != 1 || ovs[0].Rect != R(5, 5, 10, 10) {
		t.Fatalf("overlap = %+v", ovs[0])
	}
}
