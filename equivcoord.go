// Convert points between two related 2D cartesian coordinate systems, such as
// raw survey coordinates and a local drawing frame.
//
// No transform matrix is needed. Two locations known in both systems are
// enough to work out the scale, orientation and any mirroring of the axes.
package equivcoord

import (
	"github.com/osuushi/equivcoord/equivalent"
	"github.com/osuushi/equivcoord/geometry"
	"github.com/pkg/errors"
)

type Point = geometry.Point
type Line = geometry.Line
type Coordinate = equivalent.Coordinate
type ZeroDistanceError = equivalent.ZeroDistanceError

// Returned by Convert when a point can't be represented in the equivalent
// system. This happens when the original references share an X value and are
// far apart vertically, which overflows the vertical slope approximation.
var ErrNonFinite = errors.New("converted point is not finite")

// References are the two original points followed by the same two locations in
// the equivalent system.
type References [4]Point

func (r References) Coordinate() (*Coordinate, error) {
	return equivalent.New(r[0], r[1], r[2], r[3])
}

// Convert each point from the original system into the equivalent one.
func Convert(refs References, points ...Point) (result []Point, err error) {
	defer func() {
		recoveredErr := equivalent.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	converter := equivalent.MustNew(refs[0], refs[1], refs[2], refs[3])
	converted := converter.MapPoints(points...)
	for i, p := range converted {
		if !p.IsFinite() {
			return nil, errors.Wrapf(ErrNonFinite, "converting %v gave %v", points[i], p)
		}
	}
	return []Point(converted), nil
}
