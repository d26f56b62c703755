package geometry

import (
	"fmt"
	"iter"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats/scalar"
)

// Vector is an immutable 2D vector. It doubles as a point in the
// screen coordinate system used by every shape (y grows downwards).
type Vector struct {
	x, y float64
}

// Vec creates a Vector from its components.
func Vec(x, y float64) Vector { return Vector{x: x, y: y} }

// Null returns the zero vector.
func Null() Vector { return Vector{} }

// Random returns a unit vector pointing in a uniformly random direction.
func Random() Vector {
	return FromRadians(rand.Float64() * 2 * math.Pi)
}

// FromRadians returns the unit vector at the given angle.
func FromRadians(angle float64) Vector {
	return Vector{x: math.Cos(angle), y: math.Sin(angle)}
}

// FromDegrees returns the unit vector at the given angle in degrees.
func FromDegrees(angle float64) Vector {
	return FromRadians(angle * math.Pi / 180)
}

// Scale multiplies v by c. It is the scalar-first form of Vector.Mul.
func Scale(c float64, v Vector) Vector { return v.Mul(c) }

func (v Vector) X() float64 { return v.x }
func (v Vector) Y() float64 { return v.y }

// XY returns both components.
func (v Vector) XY() (x, y float64) { return v.x, v.y }

// All yields x and then y.
func (v Vector) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if !yield(v.x) {
			return
		}
		yield(v.y)
	}
}

func (v Vector) Add(w Vector) Vector { return Vector{x: v.x + w.x, y: v.y + w.y} }
func (v Vector) Sub(w Vector) Vector { return Vector{x: v.x - w.x, y: v.y - w.y} }
func (v Vector) Neg() Vector         { return Vector{x: -v.x, y: -v.y} }
func (v Vector) Abs() Vector         { return Vector{x: math.Abs(v.x), y: math.Abs(v.y)} }
func (v Vector) Mul(c float64) Vector {
	return Vector{x: c * v.x, y: c * v.y}
}

// Div divides both components by c.
func (v Vector) Div(c float64) (Vector, error) {
	if c == 0 {
		return Vector{}, ErrDivisionByZero
	}
	return Vector{x: v.x / c, y: v.y / c}, nil
}

// FloorDiv divides both components by c and rounds each towards negative
// infinity.
func (v Vector) FloorDiv(c float64) (Vector, error) {
	if c == 0 {
		return Vector{}, ErrDivisionByZero
	}
	return Vector{x: math.Floor(v.x / c), y: math.Floor(v.y / c)}, nil
}

// Equal reports exact component-wise equality.
func (v Vector) Equal(w Vector) bool { return v.x == w.x && v.y == w.y }

// ApproxEqual reports whether both components differ by at most tol.
func (v Vector) ApproxEqual(w Vector, tol float64) bool {
	return scalar.EqualWithinAbs(v.x, w.x, tol) && scalar.EqualWithinAbs(v.y, w.y, tol)
}

// IsNull reports whether v is the zero vector.
func (v Vector) IsNull() bool { return v.x == 0 && v.y == 0 }

// Magnitude is computed with math.Hypot so that very large or very small
// components neither overflow nor underflow.
func (v Vector) Magnitude() float64 { return math.Hypot(v.x, v.y) }

// MagnitudeSquared avoids the square root when only comparing lengths.
func (v Vector) MagnitudeSquared() float64 { return v.x*v.x + v.y*v.y }

// Normal returns the unit vector pointing the same way as v.
func (v Vector) Normal() (Vector, error) {
	m := v.Magnitude()
	if m == 0 {
		return Vector{}, ErrNullVector
	}
	return Vector{x: v.x / m, y: v.y / m}, nil
}

// NormalScaled returns v's direction with the given length.
func (v Vector) NormalScaled(magnitude float64) (Vector, error) {
	n, err := v.Normal()
	if err != nil {
		return Vector{}, err
	}
	return n.Mul(magnitude), nil
}

// Orthogonal rotates v by 90 degrees: (x, y) -> (-y, x).
func (v Vector) Orthogonal() Vector { return Vector{x: -v.y, y: v.x} }

// Orthonormal returns the unit vector orthogonal to v.
func (v Vector) Orthonormal() (Vector, error) { return v.Orthogonal().Normal() }

// OrthonormalScaled returns the orthogonal direction with the given length.
func (v Vector) OrthonormalScaled(magnitude float64) (Vector, error) {
	return v.Orthogonal().NormalScaled(magnitude)
}

// Components splits v into the part perpendicular to ref and the part
// parallel to it. ref is expected to be a unit vector.
func (v Vector) Components(ref Vector) (normal, tangent Vector) {
	tangent = ref.Mul(v.Dot(ref))
	normal = v.Sub(tangent)
	return normal, tangent
}

func (v Vector) Dot(w Vector) float64 { return v.x*w.x + v.y*w.y }

// Perp is the 2D cross product. Positive when w turns counter-clockwise
// from v in a y-up frame.
func (v Vector) Perp(w Vector) float64 { return v.x*w.y - v.y*w.x }

// Radians returns the unsigned angle between v and w.
func (v Vector) Radians(w Vector) (float64, error) {
	vn, err := v.Normal()
	if err != nil {
		return 0, err
	}
	wn, err := w.Normal()
	if err != nil {
		return 0, err
	}
	return angleFromCosine(vn.Dot(wn)), nil
}

// angleFromCosine maps a cosine to its angle. Rounding can push the cosine of
// parallel unit vectors just past ±1, where math.Acos would return NaN.
func angleFromCosine(ratio float64) float64 {
	switch {
	case ratio > 1:
		return 0
	case ratio < -1:
		return math.Pi
	}
	return math.Acos(ratio)
}

// Degrees returns the unsigned angle between v and w in degrees.
func (v Vector) Degrees(w Vector) (float64, error) {
	r, err := v.Radians(w)
	if err != nil {
		return 0, err
	}
	return r * 180 / math.Pi, nil
}

func (v Vector) Distance(w Vector) float64 { return v.Sub(w).Magnitude() }

func (v Vector) Manhattan(w Vector) float64 {
	d := w.Sub(v)
	return math.Abs(d.x) + math.Abs(d.y)
}

func (v Vector) String() string {
	return fmt.Sprintf("<%f, %f>", v.x, v.y)
}

// midpoint is (a + b) / 2 without the error return of Div.
func midpoint(a, b Vector) Vector {
	return Vector{x: (a.x + b.x) / 2, y: (a.y + b.y) / 2}
}
