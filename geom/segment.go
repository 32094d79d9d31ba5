package geom

import "math"

// Segment is a straight line shape, the float/epsilon counterpart of the
// teacher's Point64-pair segment handling in port/geometry.go.
type Segment struct {
	A, B Point
}

// NewSegment builds a Segment from its endpoints.
func NewSegment(a, b Point) Segment { return Segment{A: a, B: b} }

func (s Segment) Start() Point { return s.A }
func (s Segment) End() Point   { return s.B }

func (s Segment) Length() float64 { return s.A.Dist(s.B) }

func (s Segment) Box() Box { return BoxOf(s.A, s.B) }

func (s Segment) Midpoint() Point {
	v := s.B.Sub(s.A)
	return s.A.Add(v.Mul(0.5))
}

func (s Segment) Reverse() Shape { return Segment{A: s.B, B: s.A} }

// ContainsPoint mirrors the teacher's isPointOnSegment, ported to epsilon
// comparisons instead of exact integer equality.
func (s Segment) ContainsPoint(pt Point, cfg Config) bool {
	if !cfg.IsZero(Cross2(s.A, s.B, pt)) {
		return false
	}
	return cfg.GTE(pt.X(), min(s.A.X(), s.B.X())) && cfg.LTE(pt.X(), max(s.A.X(), s.B.X())) &&
		cfg.GTE(pt.Y(), min(s.A.Y(), s.B.Y())) && cfg.LTE(pt.Y(), max(s.A.Y(), s.B.Y()))
}

// Split implements §6.2's shape.split(pt): nil before/after signal
// coincidence with Start/End.
func (s Segment) Split(pt Point, cfg Config) (before, after Shape) {
	if pt.EqualTo(s.A, cfg) {
		return nil, s
	}
	if pt.EqualTo(s.B, cfg) {
		return s, nil
	}
	return Segment{A: s.A, B: pt}, Segment{A: pt, B: s.B}
}

// Intersect finds 0..2 crossing points between s and other, dispatching on
// the other shape's concrete type. The segment-segment case is the teacher's
// SegmentIntersection reworked for float epsilon instead of Int128 exactness.
func (s Segment) Intersect(other Shape, cfg Config) []Point {
	switch o := other.(type) {
	case Segment:
		return segmentSegmentIntersect(s, o, cfg)
	case Arc:
		return segmentArcIntersect(s, o, cfg)
	default:
		return nil
	}
}

func segmentSegmentIntersect(s1, s2 Segment, cfg Config) []Point {
	d1 := Cross2(s2.A, s2.B, s1.A)
	d2 := Cross2(s2.A, s2.B, s1.B)
	d3 := Cross2(s1.A, s1.B, s2.A)
	d4 := Cross2(s1.A, s1.B, s2.B)

	if cfg.IsZero(d1) && cfg.IsZero(d2) && cfg.IsZero(d3) && cfg.IsZero(d4) {
		return collinearOverlapPoints(s1, s2, cfg)
	}

	if ((d1 < 0) != (d2 < 0)) && !cfg.IsZero(d1) && !cfg.IsZero(d2) &&
		((d3 < 0) != (d4 < 0)) && !cfg.IsZero(d3) && !cfg.IsZero(d4) {
		denom := d1 - d2
		if cfg.IsZero(denom) {
			return nil
		}
		t := d1 / denom
		x := s1.A.X() + t*(s1.B.X()-s1.A.X())
		y := s1.A.Y() + t*(s1.B.Y()-s1.A.Y())
		return []Point{NewPoint(x, y)}
	}

	// Touching at an endpoint (T-intersections).
	var pts []Point
	addIfOn := func(p Point, onA, onB Point) {
		if (Segment{A: onA, B: onB}).ContainsPoint(p, cfg) {
			pts = appendUnique(pts, p, cfg)
		}
	}
	if cfg.IsZero(d1) {
		addIfOn(s1.A, s2.A, s2.B)
	}
	if cfg.IsZero(d2) {
		addIfOn(s1.B, s2.A, s2.B)
	}
	if cfg.IsZero(d3) {
		addIfOn(s2.A, s1.A, s1.B)
	}
	if cfg.IsZero(d4) {
		addIfOn(s2.B, s1.A, s1.B)
	}
	return pts
}

// collinearOverlapPoints handles the case in the spec's DegenerateCrossing /
// overlap path: when two segments are collinear, report the 0, 1 or 2 points
// bounding their shared extent.
func collinearOverlapPoints(s1, s2 Segment, cfg Config) []Point {
	dx := math.Abs(s1.B.X() - s1.A.X())
	dy := math.Abs(s1.B.Y() - s1.A.Y())

	var lo1, hi1, lo2, hi2 float64
	projectX := dx >= dy
	if projectX {
		lo1, hi1 = minMax(s1.A.X(), s1.B.X())
		lo2, hi2 = minMax(s2.A.X(), s2.B.X())
	} else {
		lo1, hi1 = minMax(s1.A.Y(), s1.B.Y())
		lo2, hi2 = minMax(s2.A.Y(), s2.B.Y())
	}

	lo := math.Max(lo1, lo2)
	hi := math.Min(hi1, hi2)
	if cfg.GT(lo, hi) {
		return nil
	}

	pointAt := func(v float64) Point {
		if projectX {
			if cfg.IsZero(s1.B.X() - s1.A.X()) {
				return NewPoint(v, s1.A.Y())
			}
			t := (v - s1.A.X()) / (s1.B.X() - s1.A.X())
			return NewPoint(v, s1.A.Y()+t*(s1.B.Y()-s1.A.Y()))
		}
		if cfg.IsZero(s1.B.Y() - s1.A.Y()) {
			return NewPoint(s1.A.X(), v)
		}
		t := (v - s1.A.Y()) / (s1.B.Y() - s1.A.Y())
		return NewPoint(s1.A.X()+t*(s1.B.X()-s1.A.X()), v)
	}

	if cfg.EQ(lo, hi) {
		return []Point{pointAt(lo)}
	}
	return []Point{pointAt(lo), pointAt(hi)}
}

func appendUnique(pts []Point, p Point, cfg Config) []Point {
	for _, q := range pts {
		if p.EqualTo(q, cfg) {
			return pts
		}
	}
	return append(pts, p)
}

func minMax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}
