package equivalent

import (
	"github.com/osuushi/equivcoord/geometry"
	"github.com/pkg/errors"
)

// Returned when the two original reference points are the same location. The
// distance between them is the divisor of the scale factor, so no conversion
// can be derived.
type ZeroDistanceError struct {
	Location geometry.Point
}

func (e *ZeroDistanceError) Error() string {
	return "two points corresponding to a single location involved in division process: " + e.Location.String()
}

func IsZeroDistance(err error) bool {
	var zde *ZeroDistanceError
	return errors.As(err, &zde)
}
