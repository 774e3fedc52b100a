package equivalent

import (
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/equivcoord/dbg"
)

// DbgName gives the converter a readable name for logs, labeled with its scale.
// It's red when the equivalent references coincide, yellow when any axis is
// reflected, and green otherwise.
func (c *Coordinate) DbgName() string {
	name := dbg.Labeled(c, "×%g", c.distanceScale)
	if c.distanceScale == 0 {
		return aurora.Red(name).String()
	}
	if c.reflectHorizontal || c.reflectVertical {
		return aurora.Yellow(name).String()
	}
	return aurora.Green(name).String()
}
