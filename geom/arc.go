package geom

import "math"

// Arc is a circular arc shape: spec.md's "each a set of faces bounded by
// oriented chains of line segments and circular arcs" (§1). There is no arc
// support in the teacher (Clipper2 is segment-only), so this is modeled
// fresh from standard circular parametrization, kept consistent with
// Segment's Shape capability set (§9).
type Arc struct {
	Center      Point
	Radius      float64
	StartAngle  float64 // radians, not normalized (Reverse stores the old end angle)
	SweepAngle  float64 // signed; positive = counter-clockwise
}

// NewArc builds an Arc from its center, radius and angular sweep.
func NewArc(center Point, radius, startAngle, sweepAngle float64) Arc {
	return Arc{Center: center, Radius: radius, StartAngle: startAngle, SweepAngle: sweepAngle}
}

func (a Arc) pointAt(angle float64) Point {
	return NewPoint(
		a.Center.X()+a.Radius*math.Cos(angle),
		a.Center.Y()+a.Radius*math.Sin(angle),
	)
}

func (a Arc) endAngle() float64 { return a.StartAngle + a.SweepAngle }

func (a Arc) Start() Point { return a.pointAt(a.StartAngle) }
func (a Arc) End() Point   { return a.pointAt(a.endAngle()) }

func (a Arc) Length() float64 { return math.Abs(a.SweepAngle) * a.Radius }

func (a Arc) Box() Box {
	// Conservative box: the bounding box of the full circle is always safe
	// for the spatial index (§6.3 "edges.search(box)" only needs a superset).
	return Box{
		MinX: a.Center.X() - a.Radius, MinY: a.Center.Y() - a.Radius,
		MaxX: a.Center.X() + a.Radius, MaxY: a.Center.Y() + a.Radius,
	}
}

func (a Arc) Midpoint() Point {
	return a.pointAt(a.StartAngle + a.SweepAngle/2)
}

func (a Arc) Reverse() Shape {
	return Arc{Center: a.Center, Radius: a.Radius, StartAngle: a.endAngle(), SweepAngle: -a.SweepAngle}
}

// angleOf returns the angle of pt around the arc's center, normalized so it
// is reachable from StartAngle by walking SweepAngle's direction.
func (a Arc) angleOf(pt Point) float64 {
	angle := math.Atan2(pt.Y()-a.Center.Y(), pt.X()-a.Center.X())
	if a.SweepAngle >= 0 {
		for angle < a.StartAngle {
			angle += 2 * math.Pi
		}
	} else {
		for angle > a.StartAngle {
			angle -= 2 * math.Pi
		}
	}
	return angle
}

func (a Arc) ContainsPoint(pt Point, cfg Config) bool {
	if !cfg.EQ(a.Center.Dist(pt), a.Radius) {
		return false
	}
	angle := a.angleOf(pt)
	if a.SweepAngle >= 0 {
		return cfg.GTE(angle, a.StartAngle) && cfg.LTE(angle, a.endAngle())
	}
	return cfg.LTE(angle, a.StartAngle) && cfg.GTE(angle, a.endAngle())
}

func (a Arc) Split(pt Point, cfg Config) (before, after Shape) {
	if pt.EqualTo(a.Start(), cfg) {
		return nil, a
	}
	if pt.EqualTo(a.End(), cfg) {
		return a, nil
	}
	angle := a.angleOf(pt)
	sweep1 := angle - a.StartAngle
	sweep2 := a.SweepAngle - sweep1
	return Arc{Center: a.Center, Radius: a.Radius, StartAngle: a.StartAngle, SweepAngle: sweep1},
		Arc{Center: a.Center, Radius: a.Radius, StartAngle: angle, SweepAngle: sweep2}
}

func (a Arc) Intersect(other Shape, cfg Config) []Point {
	switch o := other.(type) {
	case Segment:
		return segmentArcIntersect(o, a, cfg)
	case Arc:
		return arcArcIntersect(a, o, cfg)
	default:
		return nil
	}
}

// segmentArcIntersect finds where a line segment crosses a circle, then
// filters candidates to those actually lying within both the segment's
// extent and the arc's angular sweep.
func segmentArcIntersect(s Segment, a Arc, cfg Config) []Point {
	dx := s.B.X() - s.A.X()
	dy := s.B.Y() - s.A.Y()
	fx := s.A.X() - a.Center.X()
	fy := s.A.Y() - a.Center.Y()

	qa := dx*dx + dy*dy
	qb := 2 * (fx*dx + fy*dy)
	qc := fx*fx + fy*fy - a.Radius*a.Radius

	if cfg.IsZero(qa) {
		return nil
	}

	disc := qb*qb - 4*qa*qc
	if disc < 0 && !cfg.IsZero(disc) {
		return nil
	}
	if disc < 0 {
		disc = 0
	}
	sq := math.Sqrt(disc)

	var pts []Point
	for _, t := range []float64{(-qb - sq) / (2 * qa), (-qb + sq) / (2 * qa)} {
		if cfg.LT(t, 0) || cfg.GT(t, 1) {
			continue
		}
		pt := NewPoint(s.A.X()+t*dx, s.A.Y()+t*dy)
		if a.ContainsPoint(pt, cfg) {
			pts = appendUnique(pts, pt, cfg)
		}
	}
	return pts
}

// arcArcIntersect finds the up-to-two points where two circles meet, then
// filters to those within both arcs' angular sweeps.
func arcArcIntersect(a1, a2 Arc, cfg Config) []Point {
	d := a1.Center.Dist(a2.Center)
	if cfg.IsZero(d) {
		return nil // concentric: no isolated crossing points
	}
	if cfg.GT(d, a1.Radius+a2.Radius) || cfg.LT(d, math.Abs(a1.Radius-a2.Radius)) {
		return nil
	}

	aDist := (a1.Radius*a1.Radius - a2.Radius*a2.Radius + d*d) / (2 * d)
	hSq := a1.Radius*a1.Radius - aDist*aDist
	if hSq < 0 && !cfg.IsZero(hSq) {
		return nil
	}
	if hSq < 0 {
		hSq = 0
	}
	h := math.Sqrt(hSq)

	ux := (a2.Center.X() - a1.Center.X()) / d
	uy := (a2.Center.Y() - a1.Center.Y()) / d
	mx := a1.Center.X() + aDist*ux
	my := a1.Center.Y() + aDist*uy

	candidates := []Point{
		NewPoint(mx-h*uy, my+h*ux),
		NewPoint(mx+h*uy, my-h*ux),
	}

	var pts []Point
	for _, pt := range candidates {
		if a1.ContainsPoint(pt, cfg) && a2.ContainsPoint(pt, cfg) {
			pts = appendUnique(pts, pt, cfg)
		}
	}
	return pts
}
