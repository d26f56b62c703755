// Package display converts geometry values into integer and 26.6 fixed-point
// screen coordinates for renderers.
package display

import (
	"image"
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/zeusync/geometry/pkg/geometry"
)

// Point truncates both components towards zero.
func Point(v geometry.Vector) image.Point {
	return image.Pt(int(v.X()), int(v.Y()))
}

func FromPoint(p image.Point) geometry.Vector {
	return geometry.Vec(float64(p.X), float64(p.Y))
}

// Fixed rounds v to the nearest 1/64 pixel.
func Fixed(v geometry.Vector) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(v.X()), Y: toFixed(v.Y())}
}

func FromFixed(p fixed.Point26_6) geometry.Vector {
	return geometry.Vec(fromFixed(p.X), fromFixed(p.Y))
}

// Rect returns the smallest integer rectangle covering r.
func Rect(r geometry.Rectangle) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Left())), int(math.Floor(r.Top())),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	)
}

func FixedRect(r geometry.Rectangle) fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: Fixed(r.TopLeft()),
		Max: Fixed(r.BottomRight()),
	}
}

func toFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(f * 64))
}

func fromFixed(i fixed.Int26_6) float64 {
	return float64(i) / 64
}
