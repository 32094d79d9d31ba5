package geom

// Shape is the capability set the engine needs from a geometric primitive
// (spec §9 "Shape polymorphism"): segments and arcs differ in intersect,
// split, length and direction, so they are modeled as a small interface
// rather than a class hierarchy.
type Shape interface {
	Start() Point
	End() Point
	Length() float64
	Box() Box
	// Split divides the shape at pt, returning the before/after pieces.
	// Either return is nil when pt coincides with Start/End respectively
	// (§6.2 "shape.split(pt) -> (shape|null, shape|null) where null
	// indicates coincidence with start/end").
	Split(pt Point, cfg Config) (before, after Shape)
	// Intersect returns every point where s and other cross or touch.
	Intersect(other Shape, cfg Config) []Point
	// Reverse returns the same geometric shape with Start/End swapped.
	Reverse() Shape
	// ContainsPoint reports whether pt lies on the shape within epsilon.
	ContainsPoint(pt Point, cfg Config) bool
	// Midpoint returns a point strictly between Start and End, used by
	// setInclusion's midpoint-ray test (§4.5 step 2).
	Midpoint() Point
}
