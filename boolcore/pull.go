package boolcore

import "github.com/go-polybool/polybool/geom"

// pullRun returns the sorted-order positions (starting at start, inclusive)
// sharing the same (Pt, EdgeBefore, EdgeAfter) as sorted[start] — a "pull":
// duplicated crossing records produced when an intersection point coincides
// with a polygon vertex touched by more than one edge (§4.6).
func pullRun(list []IntersectionRecord, sorted []int, start int, cfg geom.Config) []int {
	base := list[sorted[start]]
	out := []int{start}
	for j := start + 1; j < len(sorted); j++ {
		r := list[sorted[j]]
		if r.EdgeBefore != base.EdgeBefore || r.EdgeAfter != base.EdgeAfter || !r.Pt.EqualTo(base.Pt, cfg) {
			break
		}
		out = append(out, j)
	}
	return out
}

// nextFacePos returns the sorted-order position of the next crossing on the
// same face as sorted[pos], skipping past pos's own pull and wrapping to the
// face's first crossing when pos's pull runs to the end of the face's group.
func nextFacePos(list []IntersectionRecord, sorted []int, pos int, cfg geom.Config) int {
	pull := pullRun(list, sorted, pos, cfg)
	pullEnd := pull[len(pull)-1]
	face := list[sorted[pos]].FaceSeq

	if pullEnd+1 < len(sorted) && list[sorted[pullEnd+1]].FaceSeq == face {
		return pullEnd + 1
	}
	for j := 0; j <= pullEnd; j++ {
		if list[sorted[j]].FaceSeq == face {
			return j
		}
	}
	return pos
}
