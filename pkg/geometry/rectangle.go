package geometry

import (
	"fmt"
	"math"
)

// Outward normals of the rectangle edges, in screen coordinates.
var (
	upward    = Vec(0, -1)
	downward  = Vec(0, 1)
	leftward  = Vec(-1, 0)
	rightward = Vec(1, 0)
)

var _ Shape = Rectangle{}

// Rectangle is an axis-aligned box with left <= right and top <= bottom.
type Rectangle struct {
	left, top, right, bottom float64
}

// NewRectangle builds a rectangle from its sides, swapping any pair given in
// reverse order.
func NewRectangle(left, top, right, bottom float64) Rectangle {
	return Rectangle{
		left:   math.Min(left, right),
		top:    math.Min(top, bottom),
		right:  math.Max(left, right),
		bottom: math.Max(top, bottom),
	}
}

// RectFromCorners builds the rectangle spanned by two opposite corners.
func RectFromCorners(first, second Vector) Rectangle {
	return NewRectangle(first.x, first.y, second.x, second.y)
}

func RectFromCenter(center Vector, width, height float64) Rectangle {
	hw, hh := width/2, height/2
	return NewRectangle(center.x-hw, center.y-hh, center.x+hw, center.y+hh)
}

// RectFromSize anchors the rectangle at the origin.
func RectFromSize(width, height float64) Rectangle {
	return NewRectangle(0, 0, width, height)
}

func RectFromTopLeft(corner Vector, width, height float64) Rectangle {
	return NewRectangle(corner.x, corner.y, corner.x+width, corner.y+height)
}

// RectFromPoint returns the zero-area rectangle at p.
func RectFromPoint(p Vector) Rectangle { return RectFromCorners(p, p) }

func RectFromCircle(c Circle) Rectangle { return c.Box() }

// RectFromShape returns the bounding box of any bounded shape.
func RectFromShape(b Bounded) Rectangle { return b.Box() }

func (r Rectangle) Left() float64   { return r.left }
func (r Rectangle) Top() float64    { return r.top }
func (r Rectangle) Right() float64  { return r.right }
func (r Rectangle) Bottom() float64 { return r.bottom }

func (r Rectangle) Width() float64  { return r.right - r.left }
func (r Rectangle) Height() float64 { return r.bottom - r.top }

func (r Rectangle) Size() (width, height float64) { return r.Width(), r.Height() }

// Dimensions returns top, left, width and height.
func (r Rectangle) Dimensions() (top, left, width, height float64) {
	return r.top, r.left, r.Width(), r.Height()
}

func (r Rectangle) TopLeft() Vector     { return Vec(r.left, r.top) }
func (r Rectangle) TopRight() Vector    { return Vec(r.right, r.top) }
func (r Rectangle) BottomLeft() Vector  { return Vec(r.left, r.bottom) }
func (r Rectangle) BottomRight() Vector { return Vec(r.right, r.bottom) }

// Corners returns the top-left and bottom-right corners.
func (r Rectangle) Corners() (topLeft, bottomRight Vector) {
	return r.TopLeft(), r.BottomRight()
}

func (r Rectangle) TopEdge() Line {
	return NewLine(r.TopLeft(), r.TopRight(), WithFacing(upward))
}

func (r Rectangle) BottomEdge() Line {
	return NewLine(r.BottomLeft(), r.BottomRight(), WithFacing(downward))
}

func (r Rectangle) LeftEdge() Line {
	return NewLine(r.TopLeft(), r.BottomLeft(), WithFacing(leftward))
}

func (r Rectangle) RightEdge() Line {
	return NewLine(r.TopRight(), r.BottomRight(), WithFacing(rightward))
}

// Edges returns the top, bottom, left and right edges.
func (r Rectangle) Edges() []Line {
	return []Line{r.TopEdge(), r.BottomEdge(), r.LeftEdge(), r.RightEdge()}
}

// Vertices returns the corners clockwise from the top-left.
func (r Rectangle) Vertices() []Vector {
	return []Vector{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()}
}

func (r Rectangle) Center() Vector {
	return Vec((r.left+r.right)/2, (r.top+r.bottom)/2)
}

// Box returns r itself.
func (r Rectangle) Box() Rectangle { return r }

// Grow pushes every side outwards by padding. When a negative padding would
// make opposite sides cross, both collapse onto their midpoint.
func (r Rectangle) Grow(padding float64) Rectangle {
	left, right := r.left-padding, r.right+padding
	top, bottom := r.top-padding, r.bottom+padding

	if left > right {
		left = (left + right) / 2
		right = left
	}
	if top > bottom {
		top = (top + bottom) / 2
		bottom = top
	}

	return NewRectangle(left, top, right, bottom)
}

func (r Rectangle) Shrink(padding float64) Rectangle { return r.Grow(-padding) }

func (r Rectangle) Move(displacement Vector) Rectangle {
	dx, dy := displacement.XY()
	return NewRectangle(r.left+dx, r.top+dy, r.right+dx, r.bottom+dy)
}

func (r Rectangle) Equal(other Rectangle) bool { return r == other }

// Overlaps reports whether the two boxes share any point, edges included.
func (r Rectangle) Overlaps(other Rectangle) bool {
	return r.left <= other.right && other.left <= r.right &&
		r.top <= other.bottom && other.top <= r.bottom
}

// Contains reports whether p lies inside r or on its boundary.
func (r Rectangle) Contains(p Vector) bool {
	return p.x >= r.left && p.x <= r.right && p.y >= r.top && p.y <= r.bottom
}

func (r Rectangle) String() string {
	top, left, width, height := r.Dimensions()
	return fmt.Sprintf("<T:%g L:%g W:%g H:%g>", top, left, width, height)
}
