package boolcore

import (
	"github.com/go-polybool/polybool/geom"
	"github.com/go-polybool/polybool/polystore"
)

// Collect walks every edge of a against b's spatial index and emits paired
// crossing records into the returned Crossings (§4.1 IntersectionCollector).
func Collect(a, b *polystore.Polygon) Crossings {
	cfg := a.Config()
	var cr Crossings

	for _, face := range a.Faces() {
		for _, eid := range a.EdgesOf(face) {
			e := a.Edge(eid)
			candidates := b.Index().Search(e.Shape.Box())
			for _, cid := range candidates {
				ce := b.Edge(cid)
				pts := e.Shape.Intersect(ce.Shape, cfg)
				for _, pt := range pts {
					pr, ok := buildRecord(a, eid, pt, face, cfg)
					if !ok {
						debugLog("degenerate crossing at %v on A edge %d; dropped", pt, eid)
						continue
					}
					qr, ok := buildRecord(b, cid, pt, ce.Face, cfg)
					if !ok {
						debugLog("degenerate crossing at %v on B edge %d; dropped", pt, cid)
						continue
					}
					pr.ID = len(cr.P)
					qr.ID = len(cr.Q)
					cr.P = append(cr.P, pr)
					cr.Q = append(cr.Q, qr)
				}
			}
		}
	}

	debugLog("collected %d crossing pairs", len(cr.P))
	return cr
}

// buildRecord constructs one polygon's IntersectionRecord at pt on edgeID,
// following §4.1's split-and-classify recipe and §3's arc-length wrap
// tie-break. It reports false when the oracle cannot locate pt on the
// edge's shape at all (§7 DegenerateCrossing) — the caller must not emit
// the pair in that case.
func buildRecord(poly *polystore.Polygon, edgeID polystore.EdgeID, pt geom.Point, face polystore.FaceID, cfg geom.Config) (IntersectionRecord, bool) {
	e := poly.Edge(edgeID)
	before, after := e.Shape.Split(pt, cfg)
	if before == nil && after == nil {
		return IntersectionRecord{}, false
	}

	var length float64
	var kind VertexKind
	switch {
	case before == nil:
		length = 0
		kind = StartVertex
	case after == nil:
		length = e.Shape.Length()
		kind = EndVertex
	default:
		length = before.Length()
		if cfg.IsZero(length) {
			kind |= StartVertex
		}
		if cfg.EQ(length, e.Shape.Length()) {
			kind |= EndVertex
		}
	}

	arcLength := e.ArcLength + length
	if next := poly.Edge(e.Next); pt.EqualTo(next.Shape.Start(), cfg) && cfg.IsZero(next.ArcLength) {
		arcLength = 0
	}

	return IntersectionRecord{
		Pt:         pt,
		EdgeBefore: edgeID,
		EdgeAfter:  polystore.NoEdge,
		Face:       face,
		ArcLength:  arcLength,
		IsVertex:   kind,
	}, true
}
