package polystore

import "github.com/go-polybool/polybool/geom"

// AddVertex inserts a new vertex at pt after edgeBefore's current shape
// (§6.3 "addVertex(pt, edge) -> newEdge"; §4.3 step 4). The existing edge is
// truncated to the tail piece (starting at pt); a new edge holding the head
// piece (ending at pt) is spliced in immediately before it, registered in
// the spatial index, and returned.
func (p *Polygon) AddVertex(pt geom.Point, edgeBefore EdgeID) EdgeID {
	e := p.edges[edgeBefore]
	before, after := e.Shape.Split(pt, p.cfg)
	if before == nil || after == nil {
		// pt coincides with an endpoint; callers are expected to have
		// already handled that case (§4.3 steps 2-3) and not reach here.
		return edgeBefore
	}

	p.index.Remove(edgeBefore, e.Shape.Box())

	newID := EdgeID(len(p.edges))
	newEdge := Edge{
		Shape:     before,
		ArcLength: e.ArcLength,
		Face:      e.Face,
		Prev:      e.Prev,
		Next:      edgeBefore,
	}
	p.edges = append(p.edges, newEdge)

	if e.Prev != NoEdge {
		prev := p.edges[e.Prev]
		prev.Next = newID
		p.edges[e.Prev] = prev
	}

	e.Shape = after
	e.ArcLength = newEdge.ArcLength + before.Length()
	e.Prev = newID
	p.edges[edgeBefore] = e

	p.index.Add(newID, before.Box())
	p.index.Add(edgeBefore, after.Box())

	return newID
}

// AddFace closes a ring running from firstEdge to lastEdge (lastEdge.Next
// must already equal firstEdge) into a new face and assigns .Face on every
// edge in the ring (§6.3 "addFace(firstEdge, lastEdge) -> face ... verifies
// connectivity and assigns .face to every edge").
func (p *Polygon) AddFace(firstEdge, lastEdge EdgeID) FaceID {
	faceID := FaceID(len(p.faces))
	p.faces = append(p.faces, Face{First: firstEdge})

	e := firstEdge
	for {
		edge := p.edges[e]
		edge.Face = faceID
		p.edges[e] = edge
		if e == lastEdge {
			break
		}
		e = edge.Next
	}
	return faceID
}

// RemoveChain deletes the open chain of edges running from "from" through
// "to" (inclusive, walking .Next) out of face, disconnecting the chain's
// neighbors on either side so later restitching can splice in a
// replacement (§6.3 "removeChain(face, from, to)"; §4.6).
func (p *Polygon) RemoveChain(face FaceID, from, to EdgeID) {
	before := p.edges[from].Prev
	after := p.edges[to].Next

	e := from
	for {
		edge := p.edges[e]
		next := edge.Next
		edge.deleted = true
		p.index.Remove(e, edge.Shape.Box())
		p.edges[e] = edge
		if e == to {
			break
		}
		e = next
	}

	if before != NoEdge {
		b := p.edges[before]
		b.Next = NoEdge
		p.edges[before] = b
	}
	if after != NoEdge {
		a := p.edges[after]
		a.Prev = NoEdge
		p.edges[after] = a
	}

	f := p.faces[face]
	if f.First == NoEdge {
		return
	}
	// Re-point First off the deleted chain if it fell inside it.
	e = from
	for {
		if f.First == e {
			f.First = after
			p.faces[face] = f
			break
		}
		if e == to {
			break
		}
		e = p.edges[e].Next
	}
}

// AdoptEdge copies an edge from another polygon's arena into p's, registering
// it in p's spatial index unless already deleted. Prev/Next/Face still
// reference the source arena's handles; callers must remap them afterward
// (§4.7 Restitcher step 1 "merge edges").
func (p *Polygon) AdoptEdge(src Edge) EdgeID {
	id := EdgeID(len(p.edges))
	p.edges = append(p.edges, src)
	if !src.deleted {
		p.index.Add(id, src.Shape.Box())
	}
	return id
}

// DiscardFace invalidates an old face entry without marking its edges
// deleted, leaving them free to be reassigned to a newly restitched face
// (§4.7 step 3 "discard old faces"). Contrast with DeleteFace, which removes
// a face's edges outright because they are irrelevant to the result.
func (p *Polygon) DiscardFace(face FaceID) {
	for i := range p.edges {
		if p.edges[i].Face == face {
			p.edges[i].Face = NoFace
		}
	}
	f := p.faces[face]
	f.deleted = true
	f.First = NoEdge
	p.faces[face] = f
}

// DeleteFace removes a face and every edge it owns (§6.3 "deleteFace(face)").
func (p *Polygon) DeleteFace(face FaceID) {
	for _, id := range p.EdgesOf(face) {
		edge := p.edges[id]
		if edge.deleted {
			continue
		}
		edge.deleted = true
		p.index.Remove(id, edge.Shape.Box())
		p.edges[id] = edge
	}
	f := p.faces[face]
	f.deleted = true
	f.First = NoEdge
	p.faces[face] = f
}
