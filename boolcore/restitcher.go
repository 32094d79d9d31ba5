package boolcore

import (
	"github.com/go-polybool/polybool/geom"
	"github.com/go-polybool/polybool/polystore"
)

// Restitch merges b's surviving edges into a, cross-links the two polygons'
// excised boundaries at every paired crossing, and rebuilds closed faces
// over the result (§4.7 Restitcher). a is mutated in place and becomes the
// output polygon; b is left partially consumed. It reports
// ErrUnresolvedTouching if any crossing still lacks an edge_after once
// restitching has run to completion.
func Restitch(a, b *polystore.Polygon, sc SortedCrossings) error {
	remap := mergeEdges(a, b, sc.Q)
	remapRecords(sc.Q, remap)

	swapLinks(a, sc)
	spliceTouchingPoints(a, sc.P)
	spliceTouchingPoints(a, sc.Q)

	discardCrossedFaces(a, sc.P)
	restoreFaces(a, sc)

	for i := range sc.P {
		if sc.P[i].EdgeAfter == polystore.NoEdge || sc.Q[i].EdgeAfter == polystore.NoEdge {
			return ErrUnresolvedTouching
		}
	}
	return nil
}

// mergeEdges copies every edge of every surviving face of b into a's arena
// (§4.7 step 1), and additionally registers b's whole non-crossed faces as
// new faces of a. It returns the old-to-new edge id mapping the caller must
// use to translate b-side crossing records into a's arena.
func mergeEdges(a, b *polystore.Polygon, qRecords []IntersectionRecord) map[polystore.EdgeID]polystore.EdgeID {
	crossed := make(map[polystore.FaceID]bool, len(qRecords))
	for _, r := range qRecords {
		crossed[r.Face] = true
	}

	remap := make(map[polystore.EdgeID]polystore.EdgeID)
	for _, face := range b.Faces() {
		for _, id := range b.EdgesOf(face) {
			remap[id] = a.AdoptEdge(b.Edge(id))
		}
	}

	for _, created := range remap {
		e := a.Edge(created)
		if e.Prev != polystore.NoEdge {
			e.Prev = remap[e.Prev]
		}
		if e.Next != polystore.NoEdge {
			e.Next = remap[e.Next]
		}
		e.Face = polystore.NoFace
		a.SetEdge(created, e)
	}

	for _, face := range b.Faces() {
		if crossed[face] {
			continue
		}
		ids := b.EdgesOf(face)
		if len(ids) == 0 {
			continue
		}
		a.AddFace(remap[ids[0]], remap[ids[len(ids)-1]])
	}

	return remap
}

// remapRecords translates a crossing list's edge handles from b's old arena
// into a's, after mergeEdges has adopted every edge they could reference.
// Face is reset; it is reassigned by restoreFaces.
func remapRecords(list []IntersectionRecord, remap map[polystore.EdgeID]polystore.EdgeID) {
	for i := range list {
		if list[i].EdgeBefore != polystore.NoEdge {
			list[i].EdgeBefore = remap[list[i].EdgeBefore]
		}
		if list[i].EdgeAfter != polystore.NoEdge {
			list[i].EdgeAfter = remap[list[i].EdgeAfter]
		}
		list[i].Face = polystore.NoFace
	}
}

// swapLinks implements §4.7 step 2's cross-linking cases: whichever side (A
// or B) was excised past the crossing gets spliced onto the side that
// survived. A third case handles a pure point-tangency, where neither
// polygon's chain was excised at the crossing (e.g. two rings that only
// touch at a vertex, with both abutting edges classified OUTSIDE under
// UNION): P[i] and Q[i] are the same crossing by pairing, so the two rings
// are pinched together directly at that shared point instead of being left
// as two independent cycles that merely happen to pass through the same
// coordinate.
func swapLinks(a *polystore.Polygon, sc SortedCrossings) {
	for i := range sc.P {
		p := &sc.P[i]
		q := &sc.Q[i]

		switch {
		case p.EdgeBefore != polystore.NoEdge && p.EdgeAfter == polystore.NoEdge &&
			q.EdgeBefore == polystore.NoEdge && q.EdgeAfter != polystore.NoEdge:
			link(a, p.EdgeBefore, q.EdgeAfter)
			p.EdgeAfter = q.EdgeAfter
			q.EdgeBefore = p.EdgeBefore

		case p.EdgeAfter != polystore.NoEdge && p.EdgeBefore == polystore.NoEdge &&
			q.EdgeAfter == polystore.NoEdge && q.EdgeBefore != polystore.NoEdge:
			link(a, q.EdgeBefore, p.EdgeAfter)
			q.EdgeAfter = p.EdgeAfter
			p.EdgeBefore = q.EdgeBefore

		case p.EdgeBefore != polystore.NoEdge && p.EdgeAfter != polystore.NoEdge &&
			q.EdgeBefore != polystore.NoEdge && q.EdgeAfter != polystore.NoEdge:
			pBefore, qBefore := p.EdgeBefore, q.EdgeBefore
			link(a, pBefore, q.EdgeAfter)
			link(a, qBefore, p.EdgeAfter)
			p.EdgeBefore = qBefore
			q.EdgeBefore = pBefore
		}
	}
}

func link(a *polystore.Polygon, before, after polystore.EdgeID) {
	b := a.Edge(before)
	b.Next = after
	a.SetEdge(before, b)

	af := a.Edge(after)
	af.Prev = before
	a.SetEdge(after, af)
}

// spliceTouchingPoints implements §4.7 step 2's same-polygon touching case:
// when a crossing still has one side undefined after swapLinks, the
// continuation lives back on the same polygon at another record with the
// identical point (a pinch point where one polygon touches itself).
func spliceTouchingPoints(a *polystore.Polygon, list []IntersectionRecord) {
	cfg := a.Config()
	for i := range list {
		cur := &list[i]
		if cur.EdgeAfter == polystore.NoEdge && cur.EdgeBefore != polystore.NoEdge {
			if j := findTouchingPartner(list, i, cfg, true); j != -1 {
				other := &list[j]
				link(a, cur.EdgeBefore, other.EdgeAfter)
				cur.EdgeAfter = other.EdgeAfter
				other.EdgeBefore = cur.EdgeBefore
			}
			continue
		}
		if cur.EdgeBefore == polystore.NoEdge && cur.EdgeAfter != polystore.NoEdge {
			if j := findTouchingPartner(list, i, cfg, false); j != -1 {
				other := &list[j]
				link(a, other.EdgeBefore, cur.EdgeAfter)
				cur.EdgeBefore = other.EdgeBefore
				other.EdgeAfter = cur.EdgeAfter
			}
		}
	}
}

// findTouchingPartner scans list for another record at the same point as
// list[i], missing the complementary side. wantAfter asks for a partner
// supplying edge_after (list[i] is missing it); otherwise a partner
// supplying edge_before.
func findTouchingPartner(list []IntersectionRecord, i int, cfg geom.Config, wantAfter bool) int {
	for j := range list {
		if j == i {
			continue
		}
		r := list[j]
		if !r.Pt.EqualTo(list[i].Pt, cfg) {
			continue
		}
		if wantAfter && r.EdgeBefore == polystore.NoEdge && r.EdgeAfter != polystore.NoEdge {
			return j
		}
		if !wantAfter && r.EdgeAfter == polystore.NoEdge && r.EdgeBefore != polystore.NoEdge {
			return j
		}
	}
	return -1
}

// discardCrossedFaces implements §4.7 step 3 for a's own original faces:
// every face any crossing on A pointed into is invalidated, freeing its
// surviving edges to be reassigned by restoreFaces.
func discardCrossedFaces(a *polystore.Polygon, pRecords []IntersectionRecord) {
	seen := make(map[polystore.FaceID]bool)
	for _, r := range pRecords {
		if r.Face == polystore.NoFace || seen[r.Face] {
			continue
		}
		seen[r.Face] = true
		a.DiscardFace(r.Face)
	}
}

// restoreFaces implements §4.7 step 4: walk A's crossings then B's, and for
// every crossing with both sides defined and no face assigned yet, close a
// new face starting at edge_after and ending at edge_before.
func restoreFaces(a *polystore.Polygon, sc SortedCrossings) {
	assign := func(records []IntersectionRecord) {
		for i := range records {
			r := &records[i]
			if r.EdgeBefore == polystore.NoEdge || r.EdgeAfter == polystore.NoEdge {
				continue
			}
			after := a.Edge(r.EdgeAfter)
			if after.Face != polystore.NoFace {
				r.Face = after.Face
				continue
			}
			r.Face = a.AddFace(r.EdgeAfter, r.EdgeBefore)
		}
	}
	assign(sc.P)
	assign(sc.Q)
}
