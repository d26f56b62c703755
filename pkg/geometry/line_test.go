package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine_FromPoints(t *testing.T) {
	head, tail := Vec(10, 0), Vec(0, 0)
	facing := Vec(0, 1)

	line := LineFromPoints(head, tail, WithFacing(facing))

	assert.Equal(t, head, line.Head())
	assert.Equal(t, tail, line.Tail())
	assert.Equal(t, Vec(5, 0), line.Center())
	assert.Equal(t, Vec(10, 0), line.Direction())
	assert.False(t, line.Degenerate())

	h, tl := line.Points()
	assert.Equal(t, head, h)
	assert.Equal(t, tail, tl)

	f, ok := line.Facing()
	require.True(t, ok)
	assert.Equal(t, facing, f)

	oriented, ok := line.(OrientedLine)
	require.True(t, ok)
	assert.True(t, oriented.Normal().Equal(Vec(0, 1)))
}

func TestLine_NormalIsOrthonormal(t *testing.T) {
	pairs := [][2]Vector{
		{Vec(3, 4), Vec(0, 0)},
		{Vec(-2, 5), Vec(7, 1)},
		{Vec(0, -9), Vec(0, 3)},
	}
	for _, p := range pairs {
		line, ok := NewLine(p[0], p[1]).(OrientedLine)
		require.True(t, ok)
		assert.InDelta(t, 1.0, line.Normal().Magnitude(), tolerance)
		assert.InDelta(t, 0.0, line.Normal().Dot(line.Direction()), tolerance)
	}
}

func TestLine_FromDirection(t *testing.T) {
	tail, direction := Vec(0, 0), Vec(10, 0)
	facing := Vec(0, 1)

	line := LineFromDirection(tail, direction, WithFacing(facing))
	assert.Equal(t, direction, line.Direction())
	assert.Equal(t, Vec(10, 0), line.Head())
	assert.Equal(t, tail, line.Tail())

	assert.True(t, line.Equal(LineFromPoints(Vec(10, 0), tail, WithFacing(facing))))
	assert.False(t, line.Equal(LineFromPoints(Vec(10, 0), tail, WithFacing(Vec(0, -1)))))
}

func TestLine_Equality(t *testing.T) {
	a := NewLine(Vec(0, 0), Vec(10, 0))
	b := NewLine(Vec(10, 0), Vec(0, 0))

	t.Run("undirected", func(t *testing.T) {
		assert.True(t, a.Equal(b))
		assert.True(t, b.Equal(a))
	})

	t.Run("different endpoints", func(t *testing.T) {
		assert.False(t, a.Equal(NewLine(Vec(0, 0), Vec(5, 5))))
	})

	t.Run("facing compared only when both set", func(t *testing.T) {
		up := NewLine(Vec(0, 0), Vec(10, 0), WithFacing(Vec(0, -1)))
		down := NewLine(Vec(10, 0), Vec(0, 0), WithFacing(Vec(0, 1)))

		assert.False(t, up.Equal(down))
		assert.True(t, up.Equal(a))
		assert.True(t, a.Equal(down))
	})

	t.Run("nil", func(t *testing.T) {
		assert.False(t, a.Equal(nil))
	})
}

func TestLine_Degenerate(t *testing.T) {
	p := Vec(4, 4)
	line := NewLine(p, p, WithFacing(Vec(1, 0)))

	assert.True(t, line.Degenerate())
	assert.Equal(t, p, line.Center())
	assert.True(t, line.Direction().IsNull())

	_, oriented := line.(OrientedLine)
	assert.False(t, oriented)
	_, degenerate := line.(DegenerateLine)
	assert.True(t, degenerate)

	f, ok := line.Facing()
	assert.True(t, ok)
	assert.Equal(t, Vec(1, 0), f)

	assert.True(t, line.Equal(NewLine(p, p)))
}

func TestLine_NullFacingIgnored(t *testing.T) {
	line := NewLine(Vec(1, 1), Vec(2, 2), WithFacing(Null()))
	_, ok := line.Facing()
	assert.False(t, ok)
}

func TestLine_ExtremeLengths(t *testing.T) {
	tests := []struct {
		name       string
		head, tail Vector
	}{
		{name: "tiny", head: Vec(1e-170, 0), tail: Vec(0, 0)},
		{name: "huge", head: Vec(1e200, 1e200), tail: Vec(-1e200, -1e200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := NewLine(tt.head, tt.tail)
			require.False(t, line.Degenerate())

			oriented, ok := line.(OrientedLine)
			require.True(t, ok)
			assert.InDelta(t, 1.0, oriented.Normal().Magnitude(), tolerance)

			dir, err := line.Direction().Normal()
			require.NoError(t, err)
			assert.InDelta(t, 0.0, oriented.Normal().Dot(dir), tolerance)
		})
	}
}

func TestLine_String(t *testing.T) {
	line := NewLine(Vec(1, 0), Vec(0, 0))
	assert.Equal(t, "Line: <1.000000, 0.000000> to <0.000000, 0.000000>", line.String())

	faced := NewLine(Vec(1, 0), Vec(0, 0), WithFacing(Vec(0, 1)))
	assert.Contains(t, faced.String(), "facing <0.000000, 1.000000>")
}
