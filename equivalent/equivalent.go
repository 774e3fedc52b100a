// Package equivalent converts points from one 2D cartesian coordinate system
// to a scaled, reoriented or reflected equivalent of it, given two reference
// points in each system.
package equivalent

import (
	"fmt"
	"math"

	"github.com/osuushi/equivcoord/geometry"
	"github.com/pkg/errors"
)

// A Coordinate holds its own copies of the reference points, and nothing in it
// changes after New. It's safe to share between goroutines.
//
// Mapping a point never displaces the first equivalent reference. (Converters
// that offset that reference in place drift a little further with every call;
// this one returns a fresh point each time instead.)
type Coordinate struct {
	origRef1, origRef2 geometry.Point
	equiRef1, equiRef2 geometry.Point

	distanceScale float64
	origLine      geometry.Line
	origPerpSlope float64
	// Only kept for inspection; orientation comes from origLine
	equiLine geometry.Line

	reflectHorizontal bool
	reflectVertical   bool
}

// New derives a converter from the original system, with references origRef1
// and origRef2, to the equivalent system, where the same locations are
// equiRef1 and equiRef2.
//
// The original references must be distinct, or a *ZeroDistanceError is
// returned. Coincident equivalent references are not checked: they give a
// scale of zero, which maps every point onto equiRef1.
func New(origRef1, origRef2, equiRef1, equiRef2 geometry.Point) (*Coordinate, error) {
	origDistance := origRef1.Distance(origRef2)
	if origDistance == 0 {
		return nil, errors.WithStack(&ZeroDistanceError{origRef1})
	}

	c := &Coordinate{
		origRef1: origRef1,
		origRef2: origRef2,
		equiRef1: equiRef1,
		equiRef2: equiRef2,
	}
	c.distanceScale = equiRef1.Distance(equiRef2) / origDistance
	c.origLine = geometry.LineFromTwoPoints(origRef1, origRef2)
	c.origPerpSlope = perpendicularSlope(c.origLine.Slope)
	c.equiLine = geometry.LineFromTwoPoints(equiRef1, equiRef2)

	// Reflection only looks at how the equivalent pair is ordered
	c.reflectHorizontal = equiRef1.X > equiRef2.X
	c.reflectVertical = equiRef1.Y > equiRef2.Y
	return c, nil
}

// Like New, but panics with the error. Use HandlePanicRecover to get it back.
func MustNew(origRef1, origRef2, equiRef1, equiRef2 geometry.Point) *Coordinate {
	c, err := New(origRef1, origRef2, equiRef1, equiRef2)
	if err != nil {
		panic(ConversionError{err})
	}
	return c
}

// Negative reciprocal, with the same zero substitution that SlopeTo uses for
// vertical lines.
func perpendicularSlope(slope float64) float64 {
	if slope == 0 {
		return -1 / geometry.MinNormalFloat64
	}
	return -1 / slope
}

// Get the point in the equivalent system corresponding to orig.
//
// The point's distance from origRef1 is scaled, and its direction relative to
// the reference line is carried over to the equivalent system, then the
// reflections are applied. References whose X values coincide rely on the
// vertical slope approximation, and large rises there overflow into NaN.
func (c *Coordinate) MapPoint(orig geometry.Point) geometry.Point {
	distance := c.origRef1.Distance(orig)
	line := geometry.LineFromTwoPoints(c.origRef1, orig)
	angle := c.angleFromReference(orig, line)

	relative := geometry.FromPolar(c.distanceScale*distance, angle)
	relative = relative.Rotate(math.Atan(-c.origLine.Slope))

	if c.reflectHorizontal {
		relative.X = -relative.X
	}
	if c.reflectVertical {
		relative.Y = -relative.Y
	}

	return c.equiRef1.Offset(relative.X, relative.Y)
}

func (c *Coordinate) MapPoints(points ...geometry.Point) geometry.PointList {
	result := make(geometry.PointList, len(points))
	for i, p := range points {
		result[i] = c.MapPoint(p)
	}
	return result
}

// Angle from the origRef1->origRef2 direction to the origRef1->orig direction.
//
// The slope angle alone is only known modulo π, so the side of the
// perpendicular through origRef1 decides between the two candidates: points on
// the far side from origRef2 are turned around. The side comes from the sign of
// a dot product rather than from the perpendicular line's equation, which
// overflows when the references are level.
func (c *Coordinate) angleFromReference(orig geometry.Point, line geometry.Line) float64 {
	along := c.dot(orig)
	if along == 0 || line.IsPerpendicularTo(c.origLine) {
		// orig is on the perpendicular itself, so there is no side to test.
		// Which way it turns comes from the orientation of the two directions.
		if c.cross(orig) < 0 {
			return -math.Pi / 2
		}
		return math.Pi / 2
	}

	angle := line.AngleBetween(c.origLine)
	if along < 0 {
		angle += math.Pi
	}
	return angle
}

// (origRef2 - origRef1) . (p - origRef1)
func (c *Coordinate) dot(p geometry.Point) float64 {
	ax := c.origRef2.X - c.origRef1.X
	ay := c.origRef2.Y - c.origRef1.Y
	bx := p.X - c.origRef1.X
	by := p.Y - c.origRef1.Y
	return ax*bx + ay*by
}

// z component of (origRef2 - origRef1) x (p - origRef1)
func (c *Coordinate) cross(p geometry.Point) float64 {
	ax := c.origRef2.X - c.origRef1.X
	ay := c.origRef2.Y - c.origRef1.Y
	bx := p.X - c.origRef1.X
	by := p.Y - c.origRef1.Y
	return ax*by - ay*bx
}

func (c *Coordinate) DistanceScale() float64 {
	return c.distanceScale
}

func (c *Coordinate) OriginalLine() geometry.Line {
	return c.origLine
}

func (c *Coordinate) OriginalPerpendicularSlope() float64 {
	return c.origPerpSlope
}

func (c *Coordinate) EquivalentLine() geometry.Line {
	return c.equiLine
}

func (c *Coordinate) ReflectsHorizontally() bool {
	return c.reflectHorizontal
}

func (c *Coordinate) ReflectsVertically() bool {
	return c.reflectVertical
}

// The reference points, in the order they were given to New.
func (c *Coordinate) References() (origRef1, origRef2, equiRef1, equiRef2 geometry.Point) {
	return c.origRef1, c.origRef2, c.equiRef1, c.equiRef2
}

func (c *Coordinate) String() string {
	return fmt.Sprintf("%v→%v, %v→%v (scale %f, reflect x: %t, y: %t)",
		c.origRef1, c.equiRef1,
		c.origRef2, c.equiRef2,
		c.distanceScale,
		c.reflectHorizontal,
		c.reflectVertical,
	)
}
