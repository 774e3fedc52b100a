package geometry

// Points and lines are plain values. Every operation returns a new value
// rather than modifying its receiver, so a point can be shared between a
// converter's references and its results without aliasing surprises.
type Point struct {
	X float64
	Y float64
}

// An infinite line in slope-intercept form, y = Slope*x + YIntercept. Vertical
// lines can't be represented exactly; see MinNormalFloat64.
type Line struct {
	Slope      float64
	YIntercept float64
}

type PointList []Point
