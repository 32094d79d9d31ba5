package boolcore

import "github.com/go-polybool/polybool/polystore"

// Split processes one polygon's crossings in arc order, inserting new
// vertices at each crossing point and retargeting edge_before accordingly
// (§4.3 EdgeSplitter). list/sorted must be the polygon's own record slice
// and sorted-index permutation (P/SortedP for A, Q/SortedQ for B).
func Split(poly *polystore.Polygon, list []IntersectionRecord, sorted []int) {
	// Pass 1: insert vertices / retarget edge_before. Must run to
	// completion before pass 2 reads .Next, because earlier splits in this
	// same pass mutate the .Next pointers later records depend on (§4.3:
	// "these two passes must not be fused").
	for _, idx := range sorted {
		rec := &list[idx]
		eb := poly.Edge(rec.EdgeBefore)

		switch {
		case rec.Pt.EqualTo(eb.Shape.Start(), poly.Config()):
			rec.EdgeBefore = eb.Prev
			rec.IsVertex = EndVertex
		case rec.Pt.EqualTo(eb.Shape.End(), poly.Config()):
			rec.IsVertex = EndVertex
		default:
			rec.EdgeBefore = poly.AddVertex(rec.Pt, rec.EdgeBefore)
		}
	}

	// Pass 2: stamp edge_after now that every edge_before is final.
	for _, idx := range sorted {
		rec := &list[idx]
		rec.EdgeAfter = poly.Edge(rec.EdgeBefore).Next
	}
}
