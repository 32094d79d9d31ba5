package geom

import (
	"math"
	"testing"
)

func TestArcStartEnd(t *testing.T) {
	cfg := DefaultConfig()
	a := NewArc(NewPoint(0, 0), 1, 0, math.Pi/2)

	if !a.Start().EqualTo(NewPoint(1, 0), cfg) {
		t.Errorf("Start wrong: %v", a.Start())
	}
	if !a.End().EqualTo(NewPoint(0, 1), cfg) {
		t.Errorf("End wrong: %v", a.End())
	}
}

func TestArcLength(t *testing.T) {
	a := NewArc(NewPoint(0, 0), 2, 0, math.Pi)
	if got, want := a.Length(), 2*math.Pi; math.Abs(got-want) > 1e-9 {
		t.Errorf("Length() = %v, want %v", got, want)
	}
}

func TestArcContainsPoint(t *testing.T) {
	cfg := DefaultConfig()
	a := NewArc(NewPoint(0, 0), 1, 0, math.Pi/2)

	if !a.ContainsPoint(NewPoint(math.Sqrt2/2, math.Sqrt2/2), cfg) {
		t.Error("point on the arc's sweep should be contained")
	}
	if a.ContainsPoint(NewPoint(-1, 0), cfg) {
		t.Error("point on the circle but outside the sweep should not be contained")
	}
	if a.ContainsPoint(NewPoint(2, 0), cfg) {
		t.Error("point off the circle should not be contained")
	}
}

func TestArcSplit(t *testing.T) {
	cfg := DefaultConfig()
	a := NewArc(NewPoint(0, 0), 1, 0, math.Pi/2)

	mid := NewPoint(math.Sqrt2/2, math.Sqrt2/2)
	before, after := a.Split(mid, cfg)
	if before == nil || after == nil {
		t.Fatal("splitting mid-arc should yield both pieces")
	}
	if !before.End().EqualTo(mid, cfg) || !after.Start().EqualTo(mid, cfg) {
		t.Errorf("split pieces should meet at the split point")
	}
}

func TestSegmentArcIntersect(t *testing.T) {
	cfg := DefaultConfig()
	a := NewArc(NewPoint(0, 0), 1, 0, math.Pi)
	s := NewSegment(NewPoint(-2, 0.5), NewPoint(2, 0.5))

	pts := s.Intersect(a, cfg)
	if len(pts) != 2 {
		t.Fatalf("expected 2 intersection points, got %d: %v", len(pts), pts)
	}
}

func TestArcArcIntersect(t *testing.T) {
	cfg := DefaultConfig()
	a1 := NewArc(NewPoint(0, 0), 1, 0, 2*math.Pi)
	a2 := NewArc(NewPoint(1, 0), 1, 0, 2*math.Pi)

	pts := a1.Intersect(a2, cfg)
	if len(pts) != 2 {
		t.Fatalf("expected 2 circle-circle intersections, got %d: %v", len(pts), pts)
	}
}

func TestArcArcConcentricNoIntersect(t *testing.T) {
	cfg := DefaultConfig()
	a1 := NewArc(NewPoint(0, 0), 1, 0, 2*math.Pi)
	a2 := NewArc(NewPoint(0, 0), 2, 0, 2*math.Pi)

	if pts := a1.Intersect(a2, cfg); len(pts) != 0 {
		t.Errorf("concentric circles should not report isolated crossings, got %v", pts)
	}
}
