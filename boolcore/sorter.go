package boolcore

import (
	"sort"

	"github.com/go-polybool/polybool/geom"
	"github.com/go-polybool/polybool/polystore"
)

// SortedP and SortedQ are index permutations into Crossings.P/.Q, giving the
// (FaceSeq, ArcLength) order the rest of the pipeline walks. SortedCrossings
// carries them beside the Crossings so every phase after Sort shares one view.
type SortedCrossings struct {
	Crossings
	SortedP []int
	SortedQ []int
}

// Sort assigns a dense per-list FaceSeq to every record in first-seen order
// and produces the (FaceSeq, ArcLength) stable-sorted index permutations for
// both lists (§4.2 IntersectionSorter). The unsorted P/Q slices are left
// untouched aside from the FaceSeq stamp.
func Sort(cr Crossings, cfg geom.Config) SortedCrossings {
	assignFaceSeq(cr.P)
	assignFaceSeq(cr.Q)
	return SortedCrossings{
		Crossings: cr,
		SortedP:   sortedIndices(cr.P, cfg),
		SortedQ:   sortedIndices(cr.Q, cfg),
	}
}

func assignFaceSeq(list []IntersectionRecord) {
	seen := make(map[polystore.FaceID]int)
	next := 0
	for i := range list {
		f := list[i].Face
		id, ok := seen[f]
		if !ok {
			id = next
			seen[f] = id
			next++
		}
		list[i].FaceSeq = id
	}
}

func stableSortIndices(idx []int, less func(a, b int) bool) {
	sort.SliceStable(idx, func(i, j int) bool {
		return less(idx[i], idx[j])
	})
}
