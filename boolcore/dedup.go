package boolcore

import "github.com/go-polybool/polybool/geom"

// Dedup removes crossing pairs that collapse to the same (face, edge_before,
// edge_after, point) fingerprint on both sides — arising when an
// intersection point coincides with a polygon vertex and gets reported once
// per incident edge (§4.4 DuplicateFilter).
func Dedup(sc SortedCrossings, cfg geom.Config) SortedCrossings {
	marked := make([]bool, len(sc.P))

	sweep(sc.P, sc.SortedP, sc.Q, marked, cfg, false)
	sweep(sc.Q, sc.SortedQ, sc.P, marked, cfg, true)

	anyMarked := false
	for _, m := range marked {
		if m {
			anyMarked = true
			break
		}
	}
	if !anyMarked {
		return sc
	}

	// Open Question 2: rebuild from scratch rather than the source's
	// empty-then-resort dance.
	newP := make([]IntersectionRecord, 0, len(sc.P))
	newQ := make([]IntersectionRecord, 0, len(sc.Q))
	for i := range sc.P {
		if marked[i] {
			continue
		}
		newP = append(newP, sc.P[i])
		newQ = append(newQ, sc.Q[i])
	}
	for i := range newP {
		newP[i].ID = i
		newQ[i].ID = i
	}

	return Sort(Crossings{P: newP, Q: newQ}, cfg)
}

// sweep implements one direction of §4.4's two-scan pass: walk list in
// sorted order, keep a rolling reference, and mark every later record of a
// pull (its P and Q sides together) whose counterpart shares (edge_before,
// edge_after) with the reference's counterpart; the reference itself is
// kept, so one copy of each duplicated crossing survives. When skipMarked is
// true (the Q pass), records already marked by the P pass are skipped
// rather than treated as candidate references.
func sweep(list []IntersectionRecord, sorted []int, counterpart []IntersectionRecord, marked []bool, cfg geom.Config, skipMarked bool) {
	refIdx := -1
	for _, idx := range sorted {
		if skipMarked && marked[list[idx].ID] {
			continue
		}
		if refIdx == -1 {
			refIdx = idx
			continue
		}
		cur := list[idx]
		ref := list[refIdx]
		if !cfg.EQ(cur.ArcLength, ref.ArcLength) || cur.FaceSeq != ref.FaceSeq {
			refIdx = idx
			continue
		}

		curCp := counterpart[cur.ID]
		refCp := counterpart[ref.ID]
		if curCp.EdgeBefore == refCp.EdgeBefore && curCp.EdgeAfter == refCp.EdgeAfter {
			marked[cur.ID] = true
		}
	}
}
