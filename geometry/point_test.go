package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromPolar(t *testing.T) {
	p := FromPolar(1, math.Pi/4)
	assert.InDelta(t, math.Sqrt2/2, p.X, Tolerance)
	assert.InDelta(t, math.Sqrt2/2, p.Y, Tolerance)

	p = FromPolar(2, math.Pi)
	assert.InDelta(t, -2.0, p.X, Tolerance)
	assert.InDelta(t, 0.0, p.Y, Tolerance)
}

func TestPointRotate(t *testing.T) {
	// Positive angles turn clockwise
	p := Point{1, 0}.Rotate(math.Pi / 2)
	assert.InDelta(t, 0.0, p.X, Tolerance)
	assert.InDelta(t, -1.0, p.Y, Tolerance)

	p = Point{0, 1}.Rotate(math.Pi / 2)
	assert.InDelta(t, 1.0, p.X, Tolerance)
	assert.InDelta(t, 0.0, p.Y, Tolerance)

	// A full turn in odd steps comes back to the start
	orig := Point{3, -2}
	p = orig
	for i := 0; i < 14; i++ {
		p = p.Rotate(math.Pi / 7)
	}
	assert.True(t, orig.Equal(p), "expected %v, got %v", orig, p)
	assert.Equal(t, Point{3, -2}, orig, "rotation must not modify the receiver")
}

func TestPointOffset(t *testing.T) {
	orig := Point{1, 2}
	p := orig.Offset(-3, 0.5)
	assert.Equal(t, Point{-2, 2.5}, p)
	assert.Equal(t, Point{1, 2}, orig)
}

func TestPointDistance(t *testing.T) {
	assert.Equal(t, 5.0, Point{0, 0}.Distance(Point{3, 4}))
	assert.Equal(t, 5.0, Point{3, 4}.Distance(Point{0, 0}))
	assert.Equal(t, 0.0, Point{7, 7}.Distance(Point{7, 7}))
}

func TestPointSlopeTo(t *testing.T) {
	assert.Equal(t, 1.0, Point{}.SlopeTo(Point{1, 1}))
	assert.Equal(t, -2.0, Point{1, 3}.SlopeTo(Point{2, 1}))
	assert.Equal(t, 0.0, Point{1, 3}.SlopeTo(Point{5, 3}))

	t.Run("vertical", func(t *testing.T) {
		var slope float64
		assert.NotPanics(t, func() {
			slope = Point{0, 0}.SlopeTo(Point{0, 1})
		})
		assert.Equal(t, -1/MinNormalFloat64, slope)
		assert.False(t, math.IsInf(slope, 0))

		// The sign follows the rise
		assert.Equal(t, 1/MinNormalFloat64, Point{0, 1}.SlopeTo(Point{0, 0}))

		// Larger rises overflow rather than panic
		assert.NotPanics(t, func() {
			slope = Point{0, 0}.SlopeTo(Point{0, 5})
		})
		assert.True(t, slope < -1/MinNormalFloat64)
		assert.True(t, Point{0, 5}.SlopeTo(Point{0, 0}) > 1/MinNormalFloat64)
	})

	t.Run("coincident", func(t *testing.T) {
		assert.Equal(t, 0.0, Point{2, 2}.SlopeTo(Point{2, 2}))
	})
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "(1.000000, -2.500000)", Point{1, -2.5}.String())
	assert.Equal(t, "(0.000000, 0.000000)", Point{}.String())
}

func TestPointIsFinite(t *testing.T) {
	assert.True(t, Point{1, 2}.IsFinite())
	assert.False(t, Point{math.NaN(), 2}.IsFinite())
	assert.False(t, Point{1, math.Inf(-1)}.IsFinite())
	assert.False(t, PointList{{1, 2}, {math.Inf(1), 0}}.IsFinite())
	assert.True(t, PointList{}.IsFinite())
}

func TestPointListBounds(t *testing.T) {
	lower, upper := PointList{{1, 5}, {-2, 3}, {4, -1}}.Bounds()
	assert.Equal(t, Point{-2, -1}, lower)
	assert.Equal(t, Point{4, 5}, upper)
}

func TestPointListSignedArea(t *testing.T) {
	square := PointList{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	assert.Equal(t, 4.0, square.SignedArea())

	reversed := PointList{{0, 2}, {2, 2}, {2, 0}, {0, 0}}
	assert.Equal(t, -4.0, reversed.SignedArea())

	// Area survives rotation and translation
	triangle := PointList{{0, -1}, {1, 0}, {0, 1}}
	assert.InDelta(t, 1.0, triangle.SignedArea(), Tolerance)
	for i := range triangle {
		triangle[i] = triangle[i].Rotate(math.Pi / 7).Offset(5, 3)
	}
	assert.InDelta(t, 1.0, triangle.SignedArea(), Tolerance)

	assert.Equal(t, 0.0, PointList{}.SignedArea())
}
