package geometry

// Bounded is anything with a center and an axis-aligned bounding box.
// Broad-phase culling only needs this much.
type Bounded interface {
	Center() Vector
	Box() Rectangle
}

// Shape is a Bounded shape with a discrete boundary. Every edge carries its
// outward unit normal as its facing, and vertices are listed in boundary
// order. Circle is deliberately not a Shape.
type Shape interface {
	Bounded
	Edges() []Line
	Vertices() []Vector
}
