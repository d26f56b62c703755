package geometry

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

var _ Shape = Polygon{}

// Polygon is a convex, consistently wound vertex loop. The centroid, edges
// and bounding box are derived once at construction.
type Polygon struct {
	vertices []Vector
	center   Vector
	edges    []Line
	box      Rectangle
}

// NewPolygon validates the vertex loop and derives its geometry. A loop
// whose winding changes direction fails with ErrInvalidPolygon.
func NewPolygon(vertices ...Vector) (Polygon, error) {
	if len(vertices) == 0 {
		return Polygon{}, fmt.Errorf("%w: no vertices", ErrInvalidPolygon)
	}
	if err := checkConvex(vertices); err != nil {
		return Polygon{}, err
	}

	vs := slices.Clone(vertices)
	center := centroid(vs)
	return Polygon{
		vertices: vs,
		center:   center,
		edges:    outwardEdges(vs, center),
		box:      boundingBox(vs),
	}, nil
}

// RegularPolygon places sides vertices evenly on the circle of the given
// radius, starting angle radians from the positive x axis.
func RegularPolygon(center Vector, radius float64, sides int, angle float64) (Polygon, error) {
	if sides < 1 {
		return Polygon{}, fmt.Errorf("%w: %d sides", ErrInvalidPolygon, sides)
	}

	vertices := make([]Vector, sides)
	for i := range vertices {
		theta := 2*math.Pi*float64(i)/float64(sides) + angle
		vertices[i] = center.Add(FromRadians(theta).Mul(radius))
	}
	return NewPolygon(vertices...)
}

func (p Polygon) Vertices() []Vector { return slices.Clone(p.vertices) }
func (p Polygon) Edges() []Line      { return slices.Clone(p.edges) }
func (p Polygon) Center() Vector     { return p.center }
func (p Polygon) Box() Rectangle     { return p.box }

func (p Polygon) String() string {
	parts := make([]string, len(p.vertices))
	for i, v := range p.vertices {
		parts[i] = v.String()
	}
	return "Polygon: " + strings.Join(parts, " ")
}

// checkConvex walks every cyclic triple (a, b, c) and requires the perp
// product of (a-b, c-b) to keep one sign. Zero products fit either sign.
func checkConvex(vertices []Vector) error {
	n := len(vertices)
	if n < 3 {
		return nil
	}

	var expected float64
	for i := range n {
		a, b, c := vertices[i], vertices[(i+1)%n], vertices[(i+2)%n]
		current := a.Sub(b).Perp(c.Sub(b))
		if current*expected < 0 {
			return fmt.Errorf("%w: winding changes at vertex %d", ErrInvalidPolygon, (i+1)%n)
		}
		if current != 0 {
			expected = current
		}
	}
	return nil
}

func centroid(vertices []Vector) Vector {
	var sum Vector
	for _, v := range vertices {
		sum = sum.Add(v)
	}
	n := float64(len(vertices))
	return Vec(sum.x/n, sum.y/n)
}

// outwardEdges builds one edge per cyclic vertex pair, with its facing turned
// away from center.
func outwardEdges(vertices []Vector, center Vector) []Line {
	n := len(vertices)
	edges := make([]Line, n)
	for i := range n {
		head, tail := vertices[i], vertices[(i+1)%n]

		normal, err := head.Sub(tail).Orthonormal()
		if err != nil {
			edges[i] = NewLine(head, tail)
			continue
		}
		if normal.Dot(center.Sub(midpoint(head, tail))) > 0 {
			normal = normal.Neg()
		}
		edges[i] = NewLine(head, tail, WithFacing(normal))
	}
	return edges
}

func boundingBox(vertices []Vector) Rectangle {
	left, top := vertices[0].XY()
	right, bottom := left, top
	for _, v := range vertices[1:] {
		left = math.Min(left, v.x)
		right = math.Max(right, v.x)
		top = math.Min(top, v.y)
		bottom = math.Max(bottom, v.y)
	}
	return NewRectangle(left, top, right, bottom)
}
