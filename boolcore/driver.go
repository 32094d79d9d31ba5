package boolcore

import (
	"github.com/go-polybool/polybool/geom"
	"github.com/go-polybool/polybool/polystore"
)

// Unify returns the union of a and b as a new polygon; a and b are left
// untouched (§4.8 BooleanDriver "unify").
func Unify(a, b *polystore.Polygon) (*polystore.Polygon, error) {
	return runFull(a, b, OpUnion)
}

// Intersect returns the intersection of a and b as a new polygon (§4.8
// "intersect").
func Intersect(a, b *polystore.Polygon) (*polystore.Polygon, error) {
	return runFull(a, b, OpIntersect)
}

// Subtract returns a with b's area removed, as a new polygon (§4.8
// "subtract"). The clipped copy of b is reversed before the pipeline runs.
func Subtract(a, b *polystore.Polygon) (*polystore.Polygon, error) {
	return runFull(a, b, OpSubtract)
}

func runFull(a, b *polystore.Polygon, op BooleanOp) (*polystore.Polygon, error) {
	ca := a.Clone()
	cb := b.Clone()
	if op == OpSubtract {
		cb.Reverse()
	}

	sc := runToClassify(ca, cb)

	debugLogPhase("excise")
	Excise(ca, op, sc.P, sc.SortedP, true)
	Excise(cb, op, sc.Q, sc.SortedQ, false)

	debugLogPhase("restitch")
	if err := Restitch(ca, cb, sc); err != nil {
		return nil, err
	}
	return ca, nil
}

// InnerClip runs the pipeline as an INTERSECT without restitching, returning
// the surviving clipped edges of a and of b separately (§4.8 "innerClip").
func InnerClip(a, b *polystore.Polygon) ([]polystore.EdgeID, []polystore.EdgeID) {
	ca := a.Clone()
	cb := b.Clone()

	sc := runToClassify(ca, cb)
	Excise(ca, OpIntersect, sc.P, sc.SortedP, true)
	Excise(cb, OpIntersect, sc.Q, sc.SortedQ, false)

	return survivingEdges(ca), survivingEdges(cb)
}

// OuterClip runs the pipeline as a SUBTRACT without restitching, returning
// a's surviving clipped edges (§4.8 "outerClip").
func OuterClip(a, b *polystore.Polygon) []polystore.EdgeID {
	ca := a.Clone()
	cb := b.Clone()
	cb.Reverse()

	sc := runToClassify(ca, cb)
	Excise(ca, OpSubtract, sc.P, sc.SortedP, true)
	Excise(cb, OpSubtract, sc.Q, sc.SortedQ, false)

	return survivingEdges(ca)
}

// CalculateIntersections stops after DuplicateFilter and returns each
// polygon's crossing points in sorted order (§4.8 "calculateIntersections").
func CalculateIntersections(a, b *polystore.Polygon) ([]geom.Point, []geom.Point) {
	ca := a.Clone()
	cb := b.Clone()
	cfg := ca.Config()

	debugLogPhase("collect")
	cr := Collect(ca, cb)

	debugLogPhase("sort")
	sc := Sort(cr, cfg)

	debugLogPhase("split")
	Split(ca, sc.P, sc.SortedP)
	Split(cb, sc.Q, sc.SortedQ)

	debugLogPhase("dedup")
	sc = Dedup(sc, cfg)

	return pointsInOrder(sc.P, sc.SortedP), pointsInOrder(sc.Q, sc.SortedQ)
}

func pointsInOrder(list []IntersectionRecord, sorted []int) []geom.Point {
	out := make([]geom.Point, len(sorted))
	for i, idx := range sorted {
		out[i] = list[idx].Pt
	}
	return out
}

// runToClassify runs Collect through Classify, the common prefix every
// full-pipeline entry point needs before Excise can read resolved bv/overlap
// flags.
func runToClassify(a, b *polystore.Polygon) SortedCrossings {
	cfg := a.Config()

	debugLogPhase("collect")
	cr := Collect(a, b)

	debugLogPhase("sort")
	sc := Sort(cr, cfg)

	debugLogPhase("split")
	Split(a, sc.P, sc.SortedP)
	Split(b, sc.Q, sc.SortedQ)

	debugLogPhase("dedup")
	sc = Dedup(sc, cfg)

	debugLogPhase("classify")
	Classify(a, b, sc)

	return sc
}

func survivingEdges(p *polystore.Polygon) []polystore.EdgeID {
	var out []polystore.EdgeID
	for _, face := range p.Faces() {
		out = append(out, p.EdgesOf(face)...)
	}
	return out
}
