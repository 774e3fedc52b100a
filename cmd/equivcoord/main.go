package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/equivcoord"
	"github.com/osuushi/equivcoord/equivalent"
	"github.com/osuushi/equivcoord/geometry"
	"github.com/osuushi/equivcoord/internal/config"
	"github.com/osuushi/equivcoord/internal/draw"
	"github.com/osuushi/equivcoord/internal/logging"
	"github.com/osuushi/equivcoord/internal/svgpoints"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	app := kingpin.New("equivcoord", "Convert points between equivalent cartesian coordinate systems")
	app.HelpFlag.Short('h')

	verbose := app.Flag("verbose", "Log the derived conversion").Short('v').Bool()
	configPath := app.Flag("config", "YAML file with the reference points").Short('c').ExistingFile()
	var orig1, orig2, equi1, equi2 config.PointFlag
	app.Flag("orig1", "First original reference point, as x,y").SetValue(&orig1)
	app.Flag("orig2", "Second original reference point, as x,y").SetValue(&orig2)
	app.Flag("equi1", "First equivalent reference point, as x,y").SetValue(&equi1)
	app.Flag("equi2", "Second equivalent reference point, as x,y").SetValue(&equi2)

	mapCmd := app.Command("map", "Convert \"x y\" lines from stdin").Default()

	svgCmd := app.Command("svg", "Convert the polygons in an SVG file and draw both systems")
	var (
		svgPath = svgCmd.Arg("file", "SVG file in original coordinates").Required().ExistingFile()
		outPath = svgCmd.Flag("out", "PNG file to write").Short('o').Default("/tmp/equivcoord.png").String()
		size    = svgCmd.Flag("size", "Size of each panel in pixels").Default(strconv.Itoa(draw.DefaultPanelSize)).Int()
		show    = svgCmd.Flag("imgcat", "Print the image in the terminal (iTerm only)").Bool()
	)

	demoCmd := app.Command("demo", "Run a worked example")

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	level := logging.LevelWarning
	if *verbose {
		level = logging.LevelDebug
	}
	logger := logging.MustNew(level)
	defer logger.Sync()

	var err error
	switch command {
	case mapCmd.FullCommand():
		var c *equivalent.Coordinate
		c, err = setupCoordinate(*configPath, logger, &orig1, &orig2, &equi1, &equi2)
		if err == nil {
			err = doMap(c, os.Stdin, os.Stdout, logger)
		}
	case svgCmd.FullCommand():
		var c *equivalent.Coordinate
		c, err = setupCoordinate(*configPath, logger, &orig1, &orig2, &equi1, &equi2)
		if err == nil {
			err = doSVG(c, *svgPath, *outPath, *size, *show, logger)
		}
	case demoCmd.FullCommand():
		err = doDemo(os.Stdout)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		logger.Error("conversion failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func setupCoordinate(configPath string, logger *zap.Logger, flags ...*config.PointFlag) (*equivalent.Coordinate, error) {
	refs := &config.References{}
	if configPath != "" {
		var err error
		refs, err = config.LoadFile(configPath)
		if err != nil {
			return nil, err
		}
	}
	refs.Override(flags[0], flags[1], flags[2], flags[3])
	if err := refs.Validate(); err != nil {
		return nil, errors.Wrap(err, "use --config or the --orig/--equi flags")
	}

	c, err := equivalent.New(refs.Points())
	if err != nil {
		return nil, err
	}
	logger.Debug("derived conversion",
		zap.String("name", c.DbgName()),
		zap.Float64("scale", c.DistanceScale()),
		zap.Stringer("originalLine", c.OriginalLine()),
		zap.Float64("perpendicularSlope", c.OriginalPerpendicularSlope()),
		zap.Stringer("equivalentLine", c.EquivalentLine()),
		zap.Bool("reflectX", c.ReflectsHorizontally()),
		zap.Bool("reflectY", c.ReflectsVertically()),
	)
	return c, nil
}

// Input is one point per line, as "x y" or "x,y". Blank lines and lines
// starting with # are skipped. Every other line produces one output line.
func doMap(c *equivalent.Coordinate, in io.Reader, out io.Writer, logger *zap.Logger) error {
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p, err := config.ParsePoint(line)
		if err != nil {
			return errors.Wrapf(err, "line %d", lineNumber)
		}
		converted := c.MapPoint(p.Geometry())
		if !converted.IsFinite() {
			logger.Warn("point has no finite equivalent",
				zap.Int("line", lineNumber),
				zap.Stringer("point", p.Geometry()),
			)
		}
		logger.Debug("converted", zap.Stringer("from", p.Geometry()), zap.Stringer("to", converted))
		if _, err := fmt.Fprintln(out, converted); err != nil {
			return err
		}
	}
	return errors.Wrap(scanner.Err(), "reading points")
}

func doSVG(c *equivalent.Coordinate, svgPath, outPath string, size int, show bool, logger *zap.Logger) error {
	shapes, err := svgpoints.LoadFile(svgPath)
	if err != nil {
		return err
	}

	origRef1, origRef2, equiRef1, equiRef2 := c.References()
	converted := make([]geometry.PointList, len(shapes))
	for i, shape := range shapes {
		converted[i] = c.MapPoints(shape...)
		if !converted[i].IsFinite() {
			return errors.Wrapf(equivcoord.ErrNonFinite, "shape %d", i)
		}
	}
	logger.Info("converted shapes", zap.Int("count", len(shapes)), zap.String("svg", svgPath))

	ctx := draw.Comparison(size,
		draw.Panel{Title: "original", Shapes: shapes, References: [2]geometry.Point{origRef1, origRef2}},
		draw.Panel{Title: "equivalent", Shapes: converted, References: [2]geometry.Point{equiRef1, equiRef2}},
	)
	if err := draw.Save(ctx, outPath); err != nil {
		return err
	}
	logger.Info("wrote comparison", zap.String("png", outPath))
	if show {
		draw.Print(outPath)
	}
	return nil
}

// The survey references used by the demo
var demoReferences = equivcoord.References{
	{X: 865377, Y: 113203},
	{X: 864100.1, Y: 112931.6},
	{X: 418.8, Y: 411.8},
	{X: -854.2, Y: 143.3},
}

func doDemo(out io.Writer) error {
	point1 := geometry.Point{}
	point2 := geometry.NewPoint(1, 1)
	fmt.Fprintf(out, "Slope of the two points: %v\n", point1.SlopeTo(point2))
	fmt.Fprintf(out, "Point with a polar coordinate: %v\n", geometry.FromPolar(1, math.Pi/4))

	line := geometry.DefaultLine()
	fmt.Fprintf(out, "Example line: %v\n", line)
	fmt.Fprintf(out, "Is line above first point?: %t\n", line.IsAbovePoint(point1))
	fmt.Fprintf(out, "Is first point on line?: %t\n", line.IncludesPoint(point1))

	sample := geometry.NewPoint(864533.8, 112912.8)
	converted, err := equivcoord.Convert(demoReferences, sample)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Equivalent point: %v\n", converted[0])
	return err
}
