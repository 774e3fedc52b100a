// Package svgpoints pulls point lists out of SVG documents. It is not a full
// SVG reader: it collects the points attribute of every polygon and polyline
// element, and ignores transforms and every other shape.
package svgpoints

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/equivcoord/geometry"
	"github.com/pkg/errors"
)

var shapeElements = []string{"polygon", "polyline"}

func Load(r io.Reader) ([]geometry.PointList, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var result []geometry.PointList
	for _, name := range shapeElements {
		for _, el := range rootEl.FindAll(name) {
			points, err := ParsePoints(el.Attributes["points"])
			if err != nil {
				return nil, errors.Wrapf(err, "in <%s>", name)
			}
			if len(points) > 0 {
				result = append(result, points)
			}
		}
	}
	if len(result) == 0 {
		return nil, errors.New("no polygons or polylines found")
	}
	return result, nil
}

func LoadFile(path string) ([]geometry.PointList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %q", path)
	}
	defer f.Close()
	lists, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", path)
	}
	return lists, nil
}

// Parse an SVG points attribute. Coordinates may be separated by commas,
// whitespace or both, so "1,2 3,4" and "1 2 3 4" are the same list.
func ParsePoints(attr string) (geometry.PointList, error) {
	fields := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", attr)
	}
	points := make(geometry.PointList, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, geometry.Point{X: x, Y: y})
	}
	return points, nil
}
