package boolcore

import "github.com/go-polybool/polybool/polystore"

// Classify tags every edge of a's and b's non-intersected faces, and every
// edge incident to a crossing, with a boundary value relative to the other
// polygon, then sets overlap flags on single-edge boundary chains (§4.5
// InclusionClassifier). Other edges of crossed faces are not tagged. sc.P holds
// a's crossings and sc.Q holds b's, paired 1:1 by index.
func Classify(a, b *polystore.Polygon, sc SortedCrossings) {
	classifyNonIntersectedFaces(a, b, sc.P)
	classifyNonIntersectedFaces(b, a, sc.Q)

	classifyIncidentEdges(a, b, sc.P)
	classifyIncidentEdges(b, a, sc.Q)

	classifyOverlaps(a, b, sc)
}

// classifyNonIntersectedFaces implements §4.5 step 1: faces of poly that
// never appear as a crossing's Face get a single whole-face bv.
func classifyNonIntersectedFaces(poly, other *polystore.Polygon, records []IntersectionRecord) {
	crossed := make(map[polystore.FaceID]bool, len(records))
	for _, r := range records {
		crossed[r.Face] = true
	}
	for _, face := range poly.Faces() {
		if crossed[face] {
			continue
		}
		poly.SetInclusionFace(face, other)
	}
}

// classifyIncidentEdges implements §4.5 step 2: every edge_before/edge_after
// of a crossing on poly gets bvStart/bvEnd forced to BOUNDARY at the
// crossing-adjacent endpoint, and bv resolved by a midpoint test.
func classifyIncidentEdges(poly, other *polystore.Polygon, records []IntersectionRecord) {
	seen := make(map[polystore.EdgeID]bool)
	touch := func(id polystore.EdgeID) {
		if id == polystore.NoEdge || seen[id] {
			return
		}
		seen[id] = true
		e := poly.Edge(id)
		e.BV, e.BVStart, e.BVEnd, e.Overlap = polystore.BVUndefined, polystore.BVUndefined, polystore.BVUndefined, polystore.OverlapNone
		poly.SetEdge(id, e)
	}
	for _, r := range records {
		touch(r.EdgeBefore)
		touch(r.EdgeAfter)
	}
	for _, r := range records {
		if r.EdgeBefore != polystore.NoEdge {
			e := poly.Edge(r.EdgeBefore)
			e.BVEnd = polystore.Boundary
			poly.SetEdge(r.EdgeBefore, e)
		}
		if r.EdgeAfter != polystore.NoEdge {
			e := poly.Edge(r.EdgeAfter)
			e.BVStart = polystore.Boundary
			poly.SetEdge(r.EdgeAfter, e)
		}
	}
	for id := range seen {
		poly.SetInclusionEdge(id, other)
	}
}

// classifyOverlaps implements §4.5 step 3: adjacent crossing pairs on the
// same face whose single connecting edge is BOUNDARY at both ends get an
// overlap flag, propagated to the matching chain on the other polygon.
func classifyOverlaps(a, b *polystore.Polygon, sa SortedCrossings) {
	cfg := a.Config()
	n := len(sa.SortedP)
	for i := 0; i < n; i++ {
		curIdx := sa.SortedP[i]
		cur := sa.P[curIdx]
		nextIdx := sa.SortedP[nextFacePos(sa.P, sa.SortedP, i, cfg)]
		next := sa.P[nextIdx]
		if nextIdx == curIdx {
			continue // single-crossing face; no chain to pair
		}

		chainEdge := cur.EdgeAfter
		if chainEdge == polystore.NoEdge || chainEdge != next.EdgeBefore {
			continue
		}
		edge := a.Edge(chainEdge)
		if edge.BVStart != polystore.Boundary || edge.BVEnd != polystore.Boundary {
			continue
		}

		qCur := sa.Q[cur.ID]
		qNext := sa.Q[next.ID]
		if tryOverlapPair(a, b, chainEdge, qCur, qNext) {
			continue
		}
		tryOverlapPair(a, b, chainEdge, qNext, qCur)
	}
}

// tryOverlapPair attempts to pair a's single-edge boundary chain against the
// chain running from first to second on b; it sets the overlap flag on
// success and reports whether it did.
func tryOverlapPair(a, b *polystore.Polygon, aEdge polystore.EdgeID, first, second IntersectionRecord) bool {
	bChain := first.EdgeAfter
	if bChain == polystore.NoEdge || bChain != second.EdgeBefore {
		return false
	}
	edge := b.Edge(bChain)
	if edge.BVStart != polystore.Boundary || edge.BVEnd != polystore.Boundary {
		return false
	}
	a.SetOverlap(aEdge, b, bChain)
	return true
}
