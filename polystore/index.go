package polystore

import (
	"github.com/dhconnelly/rtreego"
	"github.com/go-polybool/polybool/geom"
)

// EdgeIndex is the spatial index over a polygon's edges (§6.3 "bulk edge
// index `.edges` with `.add(edge)` and `.search(box) -> [edge]`"), backed by
// an R-tree the same way beetlebugorg-s57's ChartIndex wraps rtreego.Rtree
// for spatial chart lookups.
type EdgeIndex struct {
	tree *rtreego.Rtree
}

// NewEdgeIndex creates an empty spatial index (2D, matching ChartIndex's
// branching factors).
func NewEdgeIndex() *EdgeIndex {
	return &EdgeIndex{tree: rtreego.NewTree(2, 25, 50)}
}

// edgeItem adapts an EdgeID/Box pair to rtreego.Spatial.
type edgeItem struct {
	id  EdgeID
	box geom.Box
}

func (it edgeItem) Bounds() rtreego.Rect {
	point := rtreego.Point{it.box.MinX, it.box.MinY}
	w := it.box.MaxX - it.box.MinX
	h := it.box.MaxY - it.box.MinY
	// rtreego requires strictly positive extents; degenerate (point-like or
	// axis-aligned) boxes get a hairline margin.
	const eps = 1e-12
	if w <= 0 {
		w = eps
	}
	if h <= 0 {
		h = eps
	}
	rect, _ := rtreego.NewRect(point, []float64{w, h})
	return rect
}

// Add registers an edge's bounding box in the index.
func (idx *EdgeIndex) Add(id EdgeID, box geom.Box) {
	idx.tree.Insert(edgeItem{id: id, box: box})
}

// Remove drops an edge's bounding box from the index.
func (idx *EdgeIndex) Remove(id EdgeID, box geom.Box) {
	idx.tree.Delete(edgeItem{id: id, box: box})
}

// Search returns the handles of every edge whose box intersects box,
// (§4.1 "query B's spatial index with e1.box to obtain candidate edges e2").
func (idx *EdgeIndex) Search(box geom.Box) []EdgeID {
	point := rtreego.Point{box.MinX, box.MinY}
	w := box.MaxX - box.MinX
	h := box.MaxY - box.MinY
	const eps = 1e-12
	if w <= 0 {
		w = eps
	}
	if h <= 0 {
		h = eps
	}
	rect, _ := rtreego.NewRect(point, []float64{w, h})

	hits := idx.tree.SearchIntersect(rect)
	out := make([]EdgeID, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(edgeItem).id)
	}
	return out
}
