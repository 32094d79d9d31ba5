package polystore

import (
	"testing"

	"github.com/go-polybool/polybool/geom"
)

func square(cfg geom.Config, x0, y0, x1, y1 float64) *Polygon {
	p := New(cfg)
	a := geom.NewPoint(x0, y0)
	b := geom.NewPoint(x1, y0)
	c := geom.NewPoint(x1, y1)
	d := geom.NewPoint(x0, y1)
	p.AddFaceFromShapes([]geom.Shape{
		geom.NewSegment(a, b),
		geom.NewSegment(b, c),
		geom.NewSegment(c, d),
		geom.NewSegment(d, a),
	})
	return p
}

func TestAddFaceFromShapes(t *testing.T) {
	cfg := geom.DefaultConfig()
	p := square(cfg, 0, 0, 10, 10)

	faces := p.Faces()
	if len(faces) != 1 {
		t.Fatalf("expected 1 face, got %d", len(faces))
	}
	edges := p.EdgesOf(faces[0])
	if len(edges) != 4 {
		t.Fatalf("expected 4 edges, got %d", len(edges))
	}

	// cyclic: last edge's Next must be the first
	last := p.Edge(edges[3])
	if last.Next != edges[0] {
		t.Error("face should be a closed cycle")
	}
}

func TestPointInPolygon(t *testing.T) {
	cfg := geom.DefaultConfig()
	p := square(cfg, 0, 0, 10, 10)

	if got := p.PointInPolygon(geom.NewPoint(5, 5)); got != Inside {
		t.Errorf("center point should be Inside, got %v", got)
	}
	if got := p.PointInPolygon(geom.NewPoint(20, 20)); got != Outside {
		t.Errorf("far point should be Outside, got %v", got)
	}
}

func TestClassifyBoundary(t *testing.T) {
	cfg := geom.DefaultConfig()
	p := square(cfg, 0, 0, 10, 10)

	if got := p.Classify(geom.NewPoint(5, 0)); got != Boundary {
		t.Errorf("point on an edge should classify as Boundary, got %v", got)
	}
}

func TestAddVertexSplitsEdge(t *testing.T) {
	cfg := geom.DefaultConfig()
	p := square(cfg, 0, 0, 10, 10)
	faces := p.Faces()
	edges := p.EdgesOf(faces[0])
	bottom := edges[0] // (0,0)->(10,0)

	newID := p.AddVertex(geom.NewPoint(4, 0), bottom)

	headEdge := p.Edge(newID)
	tailEdge := p.Edge(bottom)

	if !headEdge.Shape.End().EqualTo(geom.NewPoint(4, 0), cfg) {
		t.Errorf("head piece should end at split point, got %v", headEdge.Shape.End())
	}
	if !tailEdge.Shape.Start().EqualTo(geom.NewPoint(4, 0), cfg) {
		t.Errorf("tail piece should start at split point, got %v", tailEdge.Shape.Start())
	}
	if headEdge.Next != bottom {
		t.Error("head piece should link forward to the tail piece")
	}
	if tailEdge.Prev != newID {
		t.Error("tail piece should link back to the head piece")
	}
}

func TestRemoveChainAndDeleteFace(t *testing.T) {
	cfg := geom.DefaultConfig()
	p := square(cfg, 0, 0, 10, 10)
	face := p.Faces()[0]
	edges := p.EdgesOf(face)

	p.RemoveChain(face, edges[1], edges[2])

	before := p.Edge(edges[0])
	after := p.Edge(edges[3])
	if before.Next != NoEdge {
		t.Error("edge before the removed chain should have Next cleared")
	}
	if after.Prev != NoEdge {
		t.Error("edge after the removed chain should have Prev cleared")
	}

	p.DeleteFace(face)
	if !p.IsEmpty(face) {
		t.Error("deleted face should report empty")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	cfg := geom.DefaultConfig()
	p := square(cfg, 0, 0, 10, 10)
	clone := p.Clone()

	face := clone.Faces()[0]
	clone.DeleteFace(face)

	if !clone.IsEmpty(face) {
		t.Error("DeleteFace on the clone should take effect on the clone")
	}
	if p.IsEmpty(p.Faces()[0]) {
		t.Error("deleting a face in the clone should not affect the original")
	}
}

func TestReverseFlipsOrientation(t *testing.T) {
	cfg := geom.DefaultConfig()
	p := square(cfg, 0, 0, 10, 10)
	face := p.Faces()[0]
	firstID := p.Face(face).First
	startBefore := p.Edge(firstID).Shape.Start()
	endBefore := p.Edge(firstID).Shape.End()

	p.Reverse()

	edge := p.Edge(firstID)
	if !edge.Shape.Start().EqualTo(endBefore, cfg) || !edge.Shape.End().EqualTo(startBefore, cfg) {
		t.Error("Reverse should swap each edge's Start/End")
	}

	// the cycle must still close after reversal
	edges := p.EdgesOf(face)
	if len(edges) != 4 {
		t.Errorf("expected 4 edges after reverse, got %d", len(edges))
	}
}

func TestSetOverlap(t *testing.T) {
	cfg := geom.DefaultConfig()
	a := New(cfg)
	af := a.AddFaceFromShapes([]geom.Shape{geom.NewSegment(geom.NewPoint(0, 0), geom.NewPoint(10, 0))})
	_ = af
	aEdge := a.EdgesOf(a.Faces()[0])[0]

	b := New(cfg)
	b.AddFaceFromShapes([]geom.Shape{geom.NewSegment(geom.NewPoint(0, 0), geom.NewPoint(10, 0))})
	bEdge := b.EdgesOf(b.Faces()[0])[0]

	flag := a.SetOverlap(aEdge, b, bEdge)
	if flag != OverlapSame {
		t.Errorf("identical direction edges should overlap SAME, got %v", flag)
	}
	if a.Edge(aEdge).Overlap != OverlapSame || b.Edge(bEdge).Overlap != OverlapSame {
		t.Error("SetOverlap should stamp both edges")
	}

	bOpp := New(cfg)
	bOpp.AddFaceFromShapes([]geom.Shape{geom.NewSegment(geom.NewPoint(10, 0), geom.NewPoint(0, 0))})
	bOppEdge := bOpp.EdgesOf(bOpp.Faces()[0])[0]

	flag = a.SetOverlap(aEdge, bOpp, bOppEdge)
	if flag != OverlapOpposite {
		t.Errorf("opposite direction edges should overlap OPPOSITE, got %v", flag)
	}
}
