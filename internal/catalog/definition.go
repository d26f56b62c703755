package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/zeusync/geometry/pkg/geometry"
)

// Kind names a shape constructor.
type Kind string

const (
	KindCircle    Kind = "circle"
	KindRectangle Kind = "rectangle"
	KindPoint     Kind = "point"
	KindPolygon   Kind = "polygon"
	KindRegular   Kind = "regular"
)

func (p Point) vector() geometry.Vector { return geometry.Vec(p.X, p.Y) }

// Build constructs the shape described by d.
func (d Definition) Build() (geometry.Bounded, error) {
	switch Kind(strings.ToLower(string(d.Kind))) {
	case KindCircle:
		if d.Center == nil {
			return nil, fmt.Errorf("%w: circle needs center", ErrMissingField)
		}
		if d.Radius <= 0 {
			return nil, fmt.Errorf("%w: circle needs a positive radius", ErrMissingField)
		}
		return geometry.NewCircle(d.Center.vector(), d.Radius), nil

	case KindRectangle:
		return d.rectangle()

	case KindPoint:
		if d.Center == nil {
			return nil, fmt.Errorf("%w: point needs center", ErrMissingField)
		}
		return geometry.RectFromPoint(d.Center.vector()), nil

	case KindPolygon:
		if len(d.Vertices) == 0 {
			return nil, fmt.Errorf("%w: polygon needs vertices", ErrMissingField)
		}
		vs := make([]geometry.Vector, len(d.Vertices))
		for i, p := range d.Vertices {
			vs[i] = p.vector()
		}
		return geometry.NewPolygon(vs...)

	case KindRegular:
		if d.Center == nil {
			return nil, fmt.Errorf("%w: regular polygon needs center", ErrMissingField)
		}
		if d.Radius <= 0 {
			return nil, fmt.Errorf("%w: regular polygon needs a positive radius", ErrMissingField)
		}
		return geometry.RegularPolygon(d.Center.vector(), d.Radius, d.Sides, d.Angle*math.Pi/180)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind)
	}
}

func (d Definition) rectangle() (geometry.Rectangle, error) {
	switch {
	case len(d.Corners) == 2:
		return geometry.RectFromCorners(d.Corners[0].vector(), d.Corners[1].vector()), nil
	case len(d.Corners) != 0:
		return geometry.Rectangle{}, fmt.Errorf("%w: rectangle needs exactly 2 corners, got %d", ErrMissingField, len(d.Corners))
	case d.Width == 0 && d.Height == 0:
		// Zero-size boxes are spelled kind: point.
		return geometry.Rectangle{}, fmt.Errorf("%w: rectangle needs corners or a width and height", ErrMissingField)
	case d.Center != nil:
		return geometry.RectFromCenter(d.Center.vector(), d.Width, d.Height), nil
	case d.TopLeft != nil:
		return geometry.RectFromTopLeft(d.TopLeft.vector(), d.Width, d.Height), nil
	default:
		return geometry.RectFromSize(d.Width, d.Height), nil
	}
}
