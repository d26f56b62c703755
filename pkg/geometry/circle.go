package geometry

import (
	"fmt"
	"math"
)

var _ Bounded = Circle{}

// Circle is a center and a non-negative radius. Its bounding box is derived
// once at construction and never transformed on its own.
type Circle struct {
	center Vector
	radius float64
	box    Rectangle
}

// NewCircle builds a circle. A negative radius is clamped to zero.
func NewCircle(center Vector, radius float64) Circle {
	radius = math.Max(radius, 0)
	return Circle{
		center: center,
		radius: radius,
		box: NewRectangle(
			center.x-radius, center.y-radius,
			center.x+radius, center.y+radius,
		),
	}
}

func (c Circle) Center() Vector  { return c.center }
func (c Circle) Radius() float64 { return c.radius }
func (c Circle) Box() Rectangle  { return c.box }

// Grow changes the radius only.
func (c Circle) Grow(padding float64) Circle   { return NewCircle(c.center, c.radius+padding) }
func (c Circle) Shrink(padding float64) Circle { return c.Grow(-padding) }

// Move translates the center only.
func (c Circle) Move(displacement Vector) Circle {
	return NewCircle(c.center.Add(displacement), c.radius)
}

func (c Circle) Equal(other Circle) bool {
	return c.center == other.center && c.radius == other.radius
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle: %s, r=%g", c.center, c.radius)
}
