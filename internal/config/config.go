// Package config reads reference point pairs from YAML:
//
//	original:
//	  - {x: 865377, y: 113203}
//	  - {x: 864100.1, y: 112931.6}
//	equivalent:
//	  - {x: 418.8, y: 411.8}
//	  - {x: -854.2, y: 143.3}
package config

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/equivcoord/geometry"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Point) Geometry() geometry.Point {
	return geometry.Point{X: p.X, Y: p.Y}
}

type References struct {
	Original   []Point `yaml:"original"`
	Equivalent []Point `yaml:"equivalent"`
}

func Load(r io.Reader) (*References, error) {
	var refs References
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&refs); err != nil {
		return nil, errors.Wrap(err, "decoding references")
	}
	return &refs, nil
}

func LoadFile(path string) (*References, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening reference file %q", path)
	}
	defer f.Close()
	refs, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", path)
	}
	return refs, nil
}

func (r *References) Validate() error {
	if len(r.Original) != 2 {
		return errors.Errorf("need exactly 2 original reference points, got %d", len(r.Original))
	}
	if len(r.Equivalent) != 2 {
		return errors.Errorf("need exactly 2 equivalent reference points, got %d", len(r.Equivalent))
	}
	return nil
}

// Points returns the references in the order equivalent.New takes them. The
// references must be valid.
func (r *References) Points() (origRef1, origRef2, equiRef1, equiRef2 geometry.Point) {
	return r.Original[0].Geometry(), r.Original[1].Geometry(),
		r.Equivalent[0].Geometry(), r.Equivalent[1].Geometry()
}

// Override replaces individual references with the flags that were given,
// filling in missing entries so a reference set can come from flags alone.
func (r *References) Override(orig1, orig2, equi1, equi2 *PointFlag) {
	grow := func(list []Point) []Point {
		for len(list) < 2 {
			list = append(list, Point{})
		}
		return list
	}
	set := func(list *[]Point, i int, f *PointFlag) {
		if f == nil || !f.IsSet {
			return
		}
		*list = grow(*list)
		(*list)[i] = f.Point
	}
	set(&r.Original, 0, orig1)
	set(&r.Original, 1, orig2)
	set(&r.Equivalent, 0, equi1)
	set(&r.Equivalent, 1, equi2)
}

// A point given on the command line as "x,y". It satisfies kingpin.Value.
type PointFlag struct {
	Point
	IsSet bool
}

func (f *PointFlag) Set(s string) error {
	p, err := ParsePoint(s)
	if err != nil {
		return err
	}
	f.Point = p
	f.IsSet = true
	return nil
}

func (f *PointFlag) String() string {
	if !f.IsSet {
		return ""
	}
	return strconv.FormatFloat(f.X, 'g', -1, 64) + "," + strconv.FormatFloat(f.Y, 'g', -1, 64)
}

// Parse "x,y" or "x y".
func ParsePoint(s string) (Point, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) != 2 {
		return Point{}, errors.Errorf("invalid point %q, expected \"x,y\"", s)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return Point{x, y}, nil
}
