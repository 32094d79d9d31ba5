// Package polystore implements the reference PolygonStore (spec §6.3): an
// arena-indexed Face/Edge container with an R-tree spatial index over edge
// bounding boxes, plus the inclusion/overlap predicates (setInclusion,
// setOverlap) that require that index.
//
// Edges and faces are referenced by integer handle rather than pointer (spec
// §9 "prefer arena storage with integer edge handles ... this eliminates
// cycles-as-ownership problems and makes 'swap links' an O(1) index
// rewrite"), following the teacher's vertex-chain idiom but index-based
// instead of pointer-based.
package polystore

import "github.com/go-polybool/polybool/geom"

// EdgeID is an arena handle for an Edge. Handles start at 0; NoEdge marks
// an absent reference.
type EdgeID int

// NoEdge is the sentinel for "no edge" (spec's `undefined`).
const NoEdge EdgeID = -1

// FaceID is an arena handle for a Face.
type FaceID int

// NoFace is the sentinel for "no face".
const NoFace FaceID = -1

// BoundaryValue classifies an edge relative to the other polygon (§3's `bv`).
type BoundaryValue uint8

const (
	BVUndefined BoundaryValue = iota
	Inside
	Outside
	Boundary
)

// Overlap flags a BOUNDARY edge's direction relative to its counterpart on
// the other polygon (§3's `overlap`).
type Overlap uint8

const (
	OverlapNone Overlap = iota
	OverlapSame
	OverlapOpposite
)

// Edge is a single oriented boundary element (§3). Prev/Next/Face are arena
// handles rather than pointers.
type Edge struct {
	Shape geom.Shape

	Prev, Next EdgeID
	Face       FaceID

	ArcLength float64

	BV      BoundaryValue
	BVStart BoundaryValue
	BVEnd   BoundaryValue
	Overlap Overlap

	deleted bool
}

// Face is a closed cyclic edge list (§3). Orientation (outer CCW, hole CW)
// is the caller's responsibility to establish; the store does not infer it.
type Face struct {
	First EdgeID

	deleted bool
}

// Polygon is a collection of Faces backed by an edge/face arena and an
// EdgeIndex spatial index (§6.3).
type Polygon struct {
	cfg   geom.Config
	edges []Edge
	faces []Face
	index *EdgeIndex
}

// New creates an empty Polygon using the given epsilon configuration.
func New(cfg geom.Config) *Polygon {
	return &Polygon{cfg: cfg, index: NewEdgeIndex()}
}

// Config returns the polygon's epsilon configuration.
func (p *Polygon) Config() geom.Config { return p.cfg }

// Edge returns a copy of the edge at id.
func (p *Polygon) Edge(id EdgeID) Edge { return p.edges[id] }

// SetEdge overwrites the edge at id.
func (p *Polygon) SetEdge(id EdgeID, e Edge) { p.edges[id] = e }

// Face returns a copy of the face at id.
func (p *Polygon) Face(id FaceID) Face { return p.faces[id] }

// AddFaceFromShapes builds a new closed face from an ordered, already-closed
// ring of shapes (shapes[i].End() must equal shapes[i+1].Start(), wrapping),
// registers its edges in the spatial index, and returns the new FaceID. This
// is the construction entry point tests and cmd/polybool use to build input
// polygons; it is not part of §6.3's mutation surface (which concerns
// mutating an already-built polygon) but is the obvious counterpart needed
// to get a Polygon to run the engine against in the first place.
func (p *Polygon) AddFaceFromShapes(shapes []geom.Shape) FaceID {
	if len(shapes) == 0 {
		return NoFace
	}
	ids := make([]EdgeID, len(shapes))
	arc := 0.0
	for i, sh := range shapes {
		id := p.newEdge(sh)
		e := p.edges[id]
		e.ArcLength = arc
		p.edges[id] = e
		arc += sh.Length()
		ids[i] = id
	}
	n := len(ids)
	faceID := FaceID(len(p.faces))
	for i, id := range ids {
		e := p.edges[id]
		e.Next = ids[(i+1)%n]
		e.Prev = ids[(i-1+n)%n]
		e.Face = faceID
		p.edges[id] = e
		p.index.Add(id, sh2box(p, id))
	}
	p.faces = append(p.faces, Face{First: ids[0]})
	return faceID
}

func (p *Polygon) newEdge(sh geom.Shape) EdgeID {
	id := EdgeID(len(p.edges))
	p.edges = append(p.edges, Edge{Shape: sh, Prev: NoEdge, Next: NoEdge, Face: NoFace})
	return id
}

func sh2box(p *Polygon, id EdgeID) geom.Box {
	return p.edges[id].Shape.Box()
}

// Faces returns the handles of every non-deleted face.
func (p *Polygon) Faces() []FaceID {
	out := make([]FaceID, 0, len(p.faces))
	for i, f := range p.faces {
		if !f.deleted {
			out = append(out, FaceID(i))
		}
	}
	return out
}

// IsEmpty reports whether the face has been fully removed.
func (p *Polygon) IsEmpty(id FaceID) bool {
	return p.faces[id].deleted || p.faces[id].First == NoEdge
}

// EdgesOf walks the face's cyclic edge list starting at First and returns
// every edge handle in order. If the ring has been opened by RemoveChain,
// the run starting at First comes first, followed by the face's other
// non-deleted edges in arena order.
func (p *Polygon) EdgesOf(face FaceID) []EdgeID {
	first := p.faces[face].First
	if first == NoEdge {
		return nil
	}
	var out []EdgeID
	e := first
	for {
		out = append(out, e)
		e = p.edges[e].Next
		if e == first || e == NoEdge {
			break
		}
	}
	if e == NoEdge {
		in := make(map[EdgeID]bool, len(out))
		for _, id := range out {
			in[id] = true
		}
		for i, edge := range p.edges {
			if id := EdgeID(i); !edge.deleted && edge.Face == face && !in[id] {
				out = append(out, id)
			}
		}
	}
	return out
}

// Index returns the polygon's spatial index over its edges.
func (p *Polygon) Index() *EdgeIndex { return p.index }

// Clone deep-copies the polygon, including a freshly rebuilt spatial index
// (spec §6.3 "clone() (deep)"; §3 "Polygons given to the driver are cloned;
// the originals are untouched").
func (p *Polygon) Clone() *Polygon {
	out := &Polygon{
		cfg:   p.cfg,
		edges: append([]Edge(nil), p.edges...),
		faces: append([]Face(nil), p.faces...),
		index: NewEdgeIndex(),
	}
	for _, face := range out.Faces() {
		for _, id := range out.EdgesOf(face) {
			out.index.Add(id, out.edges[id].Shape.Box())
		}
	}
	return out
}

// Reverse flips the orientation of every face by reversing each edge's
// shape and swapping Prev/Next (spec §6.3 "reverse() (flip orientation of
// every face)"; used by BooleanDriver before SUBTRACT, §4.6).
func (p *Polygon) Reverse() {
	for i := range p.edges {
		if p.edges[i].deleted {
			continue
		}
		p.edges[i].Shape = p.edges[i].Shape.Reverse()
		p.edges[i].Prev, p.edges[i].Next = p.edges[i].Next, p.edges[i].Prev
	}
	// Arc lengths must still run from each face's origin in the new
	// traversal direction.
	for _, face := range p.Faces() {
		p.recomputeArcLengths(face)
	}
}

func (p *Polygon) recomputeArcLengths(face FaceID) {
	first := p.faces[face].First
	if first == NoEdge {
		return
	}
	arc := 0.0
	e := first
	for {
		edge := p.edges[e]
		edge.ArcLength = arc
		p.edges[e] = edge
		arc += edge.Shape.Length()
		e = p.edges[e].Next
		if e == first || e == NoEdge {
			break
		}
	}
}
