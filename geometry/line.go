package geometry

import (
	"fmt"
	"math"
)

func NewLine(slope, yintercept float64) Line {
	return Line{Slope: slope, YIntercept: yintercept}
}

// The line y = x.
func DefaultLine() Line {
	return Line{Slope: 1}
}

func LineFromTwoPoints(p1, p2 Point) Line {
	return LineFromPointSlope(p1.SlopeTo(p2), p1)
}

// y = mx - m*x1 + y1, so the intercept is -m*x1 + y1
func LineFromPointSlope(slope float64, p Point) Line {
	return Line{
		Slope:      slope,
		YIntercept: -(slope * p.X) + p.Y,
	}
}

func (l Line) YAt(x float64) float64 {
	return l.Slope*x + l.YIntercept
}

// Exact test for whether the point lies on the line. Rounding means points
// computed from other values will rarely pass; see IncludesPointWithin.
func (l Line) IncludesPoint(p Point) bool {
	return l.YAt(p.X) == p.Y
}

func (l Line) IncludesPointWithin(p Point, tolerance float64) bool {
	return math.Abs(l.YAt(p.X)-p.Y) <= tolerance
}

// True if the line passes strictly above the point. For a near vertical line
// this degenerates into a left/right test: points left of a steeply falling
// line are "below" it, as are points right of a steeply rising one.
func (l Line) IsAbovePoint(p Point) bool {
	return l.YAt(p.X) > p.Y
}

func (l Line) IsPerpendicularTo(other Line) bool {
	return 1+l.Slope*other.Slope == 0
}

// Angle in radians from other to l, in (-π/2, π/2]. Because this only looks
// at slopes, it can't tell a direction from its opposite. Perpendicular lines
// would need a zero denominator, so they get ±π/2 with the sign of the slope
// difference.
func (l Line) AngleBetween(other Line) float64 {
	num := l.Slope - other.Slope
	if l.IsPerpendicularTo(other) {
		return math.Copysign(math.Pi/2, num)
	}
	return math.Atan(num / (1 + l.Slope*other.Slope))
}

func (l Line) String() string {
	return fmt.Sprintf("y = %2fx + %f", l.Slope, l.YIntercept)
}
