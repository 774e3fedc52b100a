package geometry

import "math"

const Tolerance = 1e-9

// The smallest positive normal float64. When a slope would need a zero
// denominator (a vertical line), this is substituted instead, which gives a
// huge slope whose sign follows the numerator. For rises larger than about 4
// the quotient overflows to ±Inf.
const MinNormalFloat64 = 0x1p-1022

// Floats drift by an ulp or two through the trig in a conversion, so
// comparisons of derived values are tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Replace an exactly zero denominator with MinNormalFloat64.
func nonZeroDenominator(d float64) float64 {
	if d == 0 {
		return MinNormalFloat64
	}
	return d
}

// Bounds gives the bottom left and top right corners of the box containing
// every point in the list. An empty list gives infinite, inverted bounds.
func (pl PointList) Bounds() (lower, upper Point) {
	lower = Point{math.Inf(1), math.Inf(1)}
	upper = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range pl {
		lower.X = math.Min(lower.X, p.X)
		lower.Y = math.Min(lower.Y, p.Y)
		upper.X = math.Max(upper.X, p.X)
		upper.Y = math.Max(upper.Y, p.Y)
	}
	return
}

// True if every coordinate in the list is a real number.
func (pl PointList) IsFinite() bool {
	for _, p := range pl {
		if !p.IsFinite() {
			return false
		}
	}
	return true
}

// Shoelace area of the polygon formed by the list, positive when the points
// wind counterclockwise. A conversion that mirrors exactly one axis flips the
// sign.
func (pl PointList) SignedArea() float64 {
	var sum float64
	for i, p := range pl {
		next := pl[(i+1)%len(pl)]
		sum += p.X*next.Y - next.X*p.Y
	}
	return sum / 2
}
