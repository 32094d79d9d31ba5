package boolcore

import "github.com/go-polybool/polybool/polystore"

// Excise implements the ChainExcisor (§4.6) for one polygon's side of the
// pipeline. list/sorted must be the polygon's own crossing records and sort
// permutation (P/SortedP for A, Q/SortedQ for B); isRes is true when poly is
// the result-carrying polygon.
func Excise(poly *polystore.Polygon, op BooleanOp, list []IntersectionRecord, sorted []int, isRes bool) {
	cfg := poly.Config()
	n := len(sorted)

	for i := 0; i < n; {
		fromPull := pullRun(list, sorted, i, cfg)
		cur := list[sorted[i]]

		nextPos := nextFacePos(list, sorted, i, cfg)
		toPull := pullRun(list, sorted, nextPos, cfg)
		next := list[sorted[nextPos]]

		edgeFrom := cur.EdgeAfter
		edgeTo := next.EdgeBefore

		if edgeFrom != polystore.NoEdge && edgeTo != polystore.NoEdge &&
			shouldDeleteChain(poly, op, isRes, edgeFrom, edgeTo) {
			poly.RemoveChain(cur.Face, edgeFrom, edgeTo)
			for _, pos := range fromPull {
				list[sorted[pos]].EdgeAfter = polystore.NoEdge
			}
			for _, pos := range toPull {
				list[sorted[pos]].EdgeBefore = polystore.NoEdge
			}
		}

		i += len(fromPull)
	}

	deleteIrrelevantFaces(poly, op, isRes, list)
}

// shouldDeleteChain decides whether the open arc from edgeFrom to edgeTo is
// irrelevant to the result under op (§4.6's deletion rules).
func shouldDeleteChain(poly *polystore.Polygon, op BooleanOp, isRes bool, edgeFrom, edgeTo polystore.EdgeID) bool {
	from := poly.Edge(edgeFrom)
	to := poly.Edge(edgeTo)

	switch {
	case op == OpUnion && from.BV == polystore.Inside && to.BV == polystore.Inside:
		return true
	case op == OpIntersect && from.BV == polystore.Outside && to.BV == polystore.Outside:
		return true
	case op == OpSubtract && !isRes && (from.BV == polystore.Outside || to.BV == polystore.Outside):
		return true
	case op == OpSubtract && isRes && (from.BV == polystore.Inside || to.BV == polystore.Inside):
		return true
	}

	if from.BV == polystore.Boundary && to.BV == polystore.Boundary {
		sameOverlap := from.Overlap == polystore.OverlapSame && to.Overlap == polystore.OverlapSame
		oppOverlap := from.Overlap == polystore.OverlapOpposite && to.Overlap == polystore.OverlapOpposite
		if oppOverlap {
			return true // opposite-direction overlap cancels in every op
		}
		if sameOverlap && isRes {
			return true // keep exactly one copy, on the non-result polygon
		}
	}

	return false
}

// deleteIrrelevantFaces drops whole faces that were never crossed and whose
// single whole-face bv (set by classifyNonIntersectedFaces) makes them
// irrelevant to op's result (§4.6 final step).
func deleteIrrelevantFaces(poly *polystore.Polygon, op BooleanOp, isRes bool, list []IntersectionRecord) {
	crossed := make(map[polystore.FaceID]bool, len(list))
	for _, r := range list {
		crossed[r.Face] = true
	}

	for _, face := range poly.Faces() {
		if crossed[face] || poly.IsEmpty(face) {
			continue
		}
		first := poly.Face(face).First
		bv := poly.Edge(first).BV

		del := false
		switch {
		case op == OpUnion && bv == polystore.Inside:
			del = true
		case op == OpSubtract && isRes && bv == polystore.Inside:
			del = true
		case op == OpSubtract && !isRes && bv == polystore.Outside:
			del = true
		case op == OpIntersect && bv == polystore.Outside:
			del = true
		}
		if del {
			poly.DeleteFace(face)
		}
	}
}
