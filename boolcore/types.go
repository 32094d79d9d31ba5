// Package boolcore implements the core topological Boolean engine described
// by the specification: intersection detection between two polygons,
// splitting of edges at crossings, classification of the resulting
// fragments as inside/outside/boundary, excision of irrelevant fragments,
// and restitching of the survivors into a new set of closed faces.
//
// The engine treats geom.Shape/geom.Point (the PrimitiveOracle) and
// polystore.Polygon (the PolygonStore) as narrow, already-built
// collaborators; it owns none of their implementation and mutates polygons
// only through the methods polystore exposes.
package boolcore

import (
	"github.com/go-polybool/polybool/geom"
	"github.com/go-polybool/polybool/polystore"
)

// BooleanOp identifies the requested set operation (§6.4).
type BooleanOp uint8

const (
	OpUnion     BooleanOp = 1
	OpIntersect BooleanOp = 2
	OpSubtract  BooleanOp = 3
)

// VertexKind flags whether a crossing point coincides with one of its
// edge's endpoints (§3 `is_vertex`).
type VertexKind uint8

const (
	NotVertex   VertexKind = 0
	StartVertex VertexKind = 1 << 0
	EndVertex   VertexKind = 1 << 1
)

// IntersectionRecord is one polygon's view of a single A/B crossing (§3).
// P[i] and Q[i] describe the same geometric crossing from A's and B's
// perspective respectively (invariant I1).
type IntersectionRecord struct {
	ID int // index in its list; -1 marks a record scheduled for deletion

	Pt geom.Point

	EdgeBefore polystore.EdgeID
	EdgeAfter  polystore.EdgeID
	Face       polystore.FaceID

	ArcLength float64
	IsVertex  VertexKind

	FaceSeq int // dense per-list face ordinal assigned by the sorter
}

// Crossings is the structure-of-arrays pairing of a Boolean call's two
// crossing lists (spec §9 "Pairing of P and Q"), indexed in lockstep by the
// same i throughout Split, Dedup and Restitch.
type Crossings struct {
	P []IntersectionRecord
	Q []IntersectionRecord
}

// sortedIndices returns indices into list sorted by (FaceSeq, ArcLength), stable,
// using the polygon's epsilon comparisons for arc length ties (§4.2).
func sortedIndices(list []IntersectionRecord, cfg geom.Config) []int {
	idx := make([]int, len(list))
	for i := range idx {
		idx[i] = i
	}
	stableSortIndices(idx, func(a, b int) bool {
		ra, rb := list[a], list[b]
		if ra.FaceSeq != rb.FaceSeq {
			return ra.FaceSeq < rb.FaceSeq
		}
		return cfg.LT(ra.ArcLength, rb.ArcLength)
	})
	return idx
}
