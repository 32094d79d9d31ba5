package geom

import "testing"

func TestSegmentIntersectCross(t *testing.T) {
	cfg := DefaultConfig()
	s1 := NewSegment(NewPoint(0, 0), NewPoint(10, 10))
	s2 := NewSegment(NewPoint(0, 10), NewPoint(10, 0))

	pts := s1.Intersect(s2, cfg)
	if len(pts) != 1 {
		t.Fatalf("expected 1 intersection point, got %d", len(pts))
	}
	if !pts[0].EqualTo(NewPoint(5, 5), cfg) {
		t.Errorf("expected (5,5), got %v", pts[0])
	}
}

func TestSegmentIntersectParallel(t *testing.T) {
	cfg := DefaultConfig()
	s1 := NewSegment(NewPoint(0, 0), NewPoint(10, 0))
	s2 := NewSegment(NewPoint(0, 5), NewPoint(10, 5))

	if pts := s1.Intersect(s2, cfg); len(pts) != 0 {
		t.Errorf("parallel non-collinear segments should not intersect, got %v", pts)
	}
}

func TestSegmentIntersectEndpointTouch(t *testing.T) {
	cfg := DefaultConfig()
	s1 := NewSegment(NewPoint(0, 0), NewPoint(10, 0))
	s2 := NewSegment(NewPoint(10, 0), NewPoint(10, 10))

	pts := s1.Intersect(s2, cfg)
	if len(pts) != 1 || !pts[0].EqualTo(NewPoint(10, 0), cfg) {
		t.Errorf("expected single touch at (10,0), got %v", pts)
	}
}

func TestSegmentIntersectCollinearOverlap(t *testing.T) {
	cfg := DefaultConfig()
	s1 := NewSegment(NewPoint(0, 0), NewPoint(10, 0))
	s2 := NewSegment(NewPoint(5, 0), NewPoint(15, 0))

	pts := s1.Intersect(s2, cfg)
	if len(pts) != 2 {
		t.Fatalf("expected 2 overlap bound points, got %d: %v", len(pts), pts)
	}
	if !pts[0].EqualTo(NewPoint(5, 0), cfg) || !pts[1].EqualTo(NewPoint(10, 0), cfg) {
		t.Errorf("expected overlap bounds (5,0)-(10,0), got %v", pts)
	}
}

func TestSegmentIntersectCollinearNoOverlap(t *testing.T) {
	cfg := DefaultConfig()
	s1 := NewSegment(NewPoint(0, 0), NewPoint(5, 0))
	s2 := NewSegment(NewPoint(10, 0), NewPoint(15, 0))

	if pts := s1.Intersect(s2, cfg); len(pts) != 0 {
		t.Errorf("disjoint collinear segments should not intersect, got %v", pts)
	}
}

func TestSegmentSplit(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSegment(NewPoint(0, 0), NewPoint(10, 0))

	before, after := s.Split(NewPoint(4, 0), cfg)
	if before == nil || after == nil {
		t.Fatal("splitting mid-segment should yield both pieces")
	}
	if !before.End().EqualTo(NewPoint(4, 0), cfg) || !after.Start().EqualTo(NewPoint(4, 0), cfg) {
		t.Errorf("split pieces should meet at the split point: before=%v after=%v", before, after)
	}

	before, after = s.Split(NewPoint(0, 0), cfg)
	if before != nil || after == nil {
		t.Error("splitting at Start should yield (nil, whole)")
	}

	before, after = s.Split(NewPoint(10, 0), cfg)
	if before == nil || after != nil {
		t.Error("splitting at End should yield (whole, nil)")
	}
}

func TestSegmentContainsPoint(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSegment(NewPoint(0, 0), NewPoint(10, 0))

	if !s.ContainsPoint(NewPoint(5, 0), cfg) {
		t.Error("midpoint should be contained")
	}
	if s.ContainsPoint(NewPoint(5, 1), cfg) {
		t.Error("off-line point should not be contained")
	}
	if s.ContainsPoint(NewPoint(15, 0), cfg) {
		t.Error("collinear point outside segment extent should not be contained")
	}
}

func TestSegmentReverse(t *testing.T) {
	s := NewSegment(NewPoint(0, 0), NewPoint(10, 0))
	r := s.Reverse()
	if r.Start() != s.End() || r.End() != s.Start() {
		t.Error("Reverse should swap Start/End")
	}
}
