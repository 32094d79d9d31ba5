package geom

import "github.com/go-gl/mathgl/mgl64"

// Point is a 2D point. It wraps mgl64.Vec2 so the oracle's vector algebra
// (direction comparison, cross/dot products for overlap and ray-midpoint
// classification) reuses mathgl's vector ops rather than hand-rolled ones.
type Point struct {
	V mgl64.Vec2
}

// NewPoint builds a Point from raw coordinates.
func NewPoint(x, y float64) Point {
	return Point{V: mgl64.Vec2{x, y}}
}

// X returns the point's X coordinate.
func (p Point) X() float64 { return p.V[0] }

// Y returns the point's Y coordinate.
func (p Point) Y() float64 { return p.V[1] }

// Sub returns p - q as a direction vector.
func (p Point) Sub(q Point) mgl64.Vec2 { return p.V.Sub(q.V) }

// Add returns the point translated by v.
func (p Point) Add(v mgl64.Vec2) Point { return Point{V: p.V.Add(v)} }

// EqualTo reports whether p and q coincide under the oracle's epsilon (§6.2
// "point.equalTo(other) under epsilon").
func (p Point) EqualTo(q Point, cfg Config) bool {
	return cfg.EQ(p.X(), q.X()) && cfg.EQ(p.Y(), q.Y())
}

// Cross2 returns the 2D cross product (p-o) x (q-o), used for left/right and
// collinearity tests.
func Cross2(o, p, q Point) float64 {
	u := p.Sub(o)
	v := q.Sub(o)
	return u[0]*v[1] - u[1]*v[0]
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return p.Sub(q).Len()
}

// Box is an axis-aligned bounding box, used both as the oracle's
// `shape.box` (§6.2) and as the spatial-index key in polystore.
type Box struct {
	MinX, MinY, MaxX, MaxY float64
}

// Union returns the smallest Box containing both b and other.
func (b Box) Union(other Box) Box {
	return Box{
		MinX: min(b.MinX, other.MinX),
		MinY: min(b.MinY, other.MinY),
		MaxX: max(b.MaxX, other.MaxX),
		MaxY: max(b.MaxY, other.MaxY),
	}
}

// Intersects reports whether b and other overlap (touching counts as overlap).
func (b Box) Intersects(other Box) bool {
	return b.MinX <= other.MaxX && other.MinX <= b.MaxX &&
		b.MinY <= other.MaxY && other.MinY <= b.MaxY
}

// BoxOf returns the bounding box of two points.
func BoxOf(a, b Point) Box {
	return Box{
		MinX: min(a.X(), b.X()),
		MinY: min(a.Y(), b.Y()),
		MaxX: max(a.X(), b.X()),
		MaxY: max(a.Y(), b.Y()),
	}
}
