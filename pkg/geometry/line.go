package geometry

import "fmt"

// Line is a segment from tail to head. It is either an OrientedLine, which
// has a geometric normal, or a DegenerateLine whose endpoints coincide.
// Callers that need the normal type-switch on the concrete variant.
type Line interface {
	Head() Vector
	Tail() Vector
	Points() (head, tail Vector)
	Center() Vector
	Direction() Vector

	// Facing returns the caller-supplied normal, if any. It only takes part
	// in equality and is independent of the geometric normal.
	Facing() (Vector, bool)
	Degenerate() bool

	Equal(other Line) bool
	String() string
}

var (
	_ Line = OrientedLine{}
	_ Line = DegenerateLine{}
)

// LineOption configures a Line at construction.
type LineOption func(*segment)

// WithFacing attaches a facing normal. A null facing is ignored.
func WithFacing(facing Vector) LineOption {
	return func(s *segment) {
		if facing.IsNull() {
			return
		}
		s.facing = facing
		s.hasFacing = true
	}
}

// NewLine builds the segment from tail to head.
func NewLine(head, tail Vector, opts ...LineOption) Line {
	s := segment{head: head, tail: tail}
	for _, opt := range opts {
		opt(&s)
	}

	normal, err := head.Sub(tail).Orthonormal()
	if err != nil {
		return DegenerateLine{segment: s}
	}
	return OrientedLine{segment: s, normal: normal}
}

// LineFromPoints is an alias of NewLine.
func LineFromPoints(head, tail Vector, opts ...LineOption) Line {
	return NewLine(head, tail, opts...)
}

// LineFromDirection builds the segment starting at tail and spanning
// direction, so that Direction() == direction.
func LineFromDirection(tail, direction Vector, opts ...LineOption) Line {
	return NewLine(tail.Add(direction), tail, opts...)
}

type segment struct {
	head, tail Vector
	facing     Vector
	hasFacing  bool
}

func (s segment) Head() Vector                { return s.head }
func (s segment) Tail() Vector                { return s.tail }
func (s segment) Points() (head, tail Vector) { return s.head, s.tail }
func (s segment) Center() Vector              { return midpoint(s.head, s.tail) }
func (s segment) Direction() Vector           { return s.head.Sub(s.tail) }
func (s segment) Facing() (Vector, bool)      { return s.facing, s.hasFacing }

// Equal treats segments as undirected. Facings are compared only when both
// lines carry one.
func (s segment) Equal(other Line) bool {
	if other == nil {
		return false
	}
	if f, ok := other.Facing(); ok && s.hasFacing && f != s.facing {
		return false
	}

	head, tail := other.Points()
	return (s.head == head && s.tail == tail) || (s.head == tail && s.tail == head)
}

func (s segment) String() string {
	line := fmt.Sprintf("Line: %s to %s", s.head, s.tail)
	if s.hasFacing {
		return line + fmt.Sprintf(", facing %s", s.facing)
	}
	return line
}

// OrientedLine is a segment with distinct endpoints.
type OrientedLine struct {
	segment
	normal Vector
}

func (OrientedLine) Degenerate() bool { return false }

// Normal is the unit vector orthogonal to Direction().
func (l OrientedLine) Normal() Vector { return l.normal }

// DegenerateLine is a segment whose head and tail coincide. It has no
// direction and therefore no normal.
type DegenerateLine struct {
	segment
}

func (DegenerateLine) Degenerate() bool { return true }
