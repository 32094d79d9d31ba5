package geom

import "testing"

func TestPointEqualTo(t *testing.T) {
	cfg := DefaultConfig()
	p := NewPoint(1, 2)
	q := NewPoint(1+1e-12, 2-1e-12)
	r := NewPoint(1.5, 2)

	if !p.EqualTo(q, cfg) {
		t.Error("points within epsilon should be equal")
	}
	if p.EqualTo(r, cfg) {
		t.Error("points outside epsilon should not be equal")
	}
}

func TestCross2(t *testing.T) {
	o := NewPoint(0, 0)
	p := NewPoint(1, 0)
	q := NewPoint(0, 1)

	if got := Cross2(o, p, q); got <= 0 {
		t.Errorf("Cross2 for a left turn should be positive, got %v", got)
	}
	if got := Cross2(o, q, p); got >= 0 {
		t.Errorf("Cross2 for a right turn should be negative, got %v", got)
	}
	if got := Cross2(o, p, NewPoint(2, 0)); got != 0 {
		t.Errorf("Cross2 for collinear points should be zero, got %v", got)
	}
}

func TestBoxIntersects(t *testing.T) {
	a := Box{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}
	b := Box{MinX: 1, MinY: 1, MaxX: 3, MaxY: 3}
	c := Box{MinX: 5, MinY: 5, MaxX: 6, MaxY: 6}

	if !a.Intersects(b) {
		t.Error("overlapping boxes should intersect")
	}
	if a.Intersects(c) {
		t.Error("disjoint boxes should not intersect")
	}

	u := a.Union(c)
	if u.MinX != 0 || u.MinY != 0 || u.MaxX != 6 || u.MaxY != 6 {
		t.Errorf("Union bounds wrong: %+v", u)
	}
}
