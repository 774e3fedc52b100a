package geometry

import (
	"fmt"
	"math"
)

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Create a point from a polar coordinate. The angle is in radians.
func FromPolar(magnitude, angle float64) Point {
	return Point{
		X: magnitude * math.Cos(angle),
		Y: magnitude * math.Sin(angle),
	}
}

// Rotate the point about the origin by an angle in radians. Note the sign
// convention: a positive angle turns the point clockwise.
func (p Point) Rotate(angle float64) Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point{
		X: p.X*cos + p.Y*sin,
		Y: -p.X*sin + p.Y*cos,
	}
}

func (p Point) Offset(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Slope of the line through p and other. If the two points share an X
// value, the run is replaced with MinNormalFloat64 rather than dividing by
// zero, so this never panics.
func (p Point) SlopeTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dy / nonZeroDenominator(dx)
}

// Tolerance based equality. Use == for exact comparison.
func (p Point) Equal(other Point) bool {
	return Equal(p.X, other.X) && Equal(p.Y, other.Y)
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("(%f, %f)", p.X, p.Y)
}
