package polystore

import "github.com/go-polybool/polybool/geom"

// PointInPolygon classifies pt against every face of p using a ray-casting
// crossing count (the teacher's WindingNumber in port/geometry.go, adapted
// from exact-integer Point64 chords to float/epsilon Shape chords). Each
// edge contributes its Start()-End() chord; this is exact for segment edges
// and an approximation for arcs, acceptable under the oracle's non-goal of
// "robust exact arithmetic" (§1).
func (p *Polygon) PointInPolygon(pt geom.Point) BoundaryValue {
	crossings := 0
	for _, face := range p.Faces() {
		for _, id := range p.EdgesOf(face) {
			e := p.edges[id]
			a, b := e.Shape.Start(), e.Shape.End()
			if crossesRay(a, b, pt) {
				crossings++
			}
		}
	}
	if crossings%2 != 0 {
		return Inside
	}
	return Outside
}

// crossesRay reports whether the chord a->b crosses a horizontal ray cast
// rightward from pt, using the standard even-odd ray-casting test.
func crossesRay(a, b, pt geom.Point) bool {
	if (a.Y() > pt.Y()) == (b.Y() > pt.Y()) {
		return false
	}
	xAtY := a.X() + (pt.Y()-a.Y())/(b.Y()-a.Y())*(b.X()-a.X())
	return pt.X() < xAtY
}

// SetInclusionFace classifies every edge of a non-intersected face against
// other (§4.5 step 1): the whole face shares one bv since it was never
// crossed, so a single representative point (the first edge's start)
// decides it for every edge in the face.
func (p *Polygon) SetInclusionFace(face FaceID, other *Polygon) {
	first := p.faces[face].First
	if first == NoEdge {
		return
	}
	bv := other.PointInPolygon(p.edges[first].Shape.Start())
	for _, id := range p.EdgesOf(face) {
		e := p.edges[id]
		e.BV, e.BVStart, e.BVEnd, e.Overlap = bv, bv, bv, OverlapNone
		p.edges[id] = e
	}
}

// Classify decides pt's boundary value against p: BOUNDARY if pt lies on
// one of p's own edges (within epsilon), else the PointInPolygon parity
// result. This is what lets an edge whose midpoint sits exactly on the
// other polygon's boundary (a coincident/overlapping edge) resolve to
// BOUNDARY rather than an arbitrary INSIDE/OUTSIDE from ray-casting noise.
func (p *Polygon) Classify(pt geom.Point) BoundaryValue {
	cfg := p.cfg
	margin := cfg.Epsilon * 4
	box := geom.Box{MinX: pt.X() - margin, MinY: pt.Y() - margin, MaxX: pt.X() + margin, MaxY: pt.Y() + margin}
	for _, id := range p.index.Search(box) {
		if p.edges[id].deleted {
			continue
		}
		if p.edges[id].Shape.ContainsPoint(pt, cfg) {
			return Boundary
		}
	}
	return p.PointInPolygon(pt)
}

// SetInclusionEdge classifies a single edge incident to a crossing against
// other (§4.5 step 2): bvStart/bvEnd are assumed already set by the caller
// (BOUNDARY at the crossing endpoint), and bv is derived from a midpoint
// test against other, consistent with those endpoints.
func (p *Polygon) SetInclusionEdge(id EdgeID, other *Polygon) {
	e := p.edges[id]
	e.BV = other.Classify(e.Shape.Midpoint())
	p.edges[id] = e
}

// SetOverlap compares the direction of edge a (on p) against edge b (on
// other), setting both edges' Overlap flag to SAME or OPPOSITE depending on
// whether their chords point the same way (§4.5 step 3, §6.3
// "setOverlap(otherEdge)").
func (p *Polygon) SetOverlap(a EdgeID, other *Polygon, b EdgeID) Overlap {
	ea := p.edges[a]
	eb := other.edges[b]

	da := ea.Shape.End().Sub(ea.Shape.Start())
	db := eb.Shape.End().Sub(eb.Shape.Start())
	dot := da[0]*db[0] + da[1]*db[1]

	flag := OverlapOpposite
	if dot > 0 {
		flag = OverlapSame
	}

	ea.Overlap = flag
	p.edges[a] = ea
	eb.Overlap = flag
	other.edges[b] = eb
	return flag
}
