package equivalent

import (
	"embed"
	"testing"

	"github.com/osuushi/equivcoord/geometry"
	"github.com/osuushi/equivcoord/internal/config"
	"github.com/osuushi/equivcoord/internal/svgpoints"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Fixtures are YAML reference files (the same format the command line tool
// reads) with an extra list of expected conversions, plus SVG shapes in the
// original coordinate system. They're available by file name in fixtures/.

//go:embed fixtures
var fixtures embed.FS

type fixtureCase struct {
	From config.Point `yaml:"from"`
	To   config.Point `yaml:"to"`
}

type fixture struct {
	config.References `yaml:",inline"`
	Cases             []fixtureCase `yaml:"cases"`
}

func loadFixture(t *testing.T, name string) fixture {
	data, err := fixtures.ReadFile("fixtures/" + name)
	require.NoError(t, err, "could not load fixture %q", name)

	var f fixture
	require.NoError(t, yaml.Unmarshal(data, &f), "failed to parse fixture %q", name)
	require.NoError(t, f.Validate(), "invalid fixture %q", name)
	return f
}

func (f fixture) coordinate(t *testing.T) *Coordinate {
	c, err := New(f.Points())
	require.NoError(t, err)
	return c
}

func loadShapes(t *testing.T, name string) []geometry.PointList {
	file, err := fixtures.Open("fixtures/" + name)
	require.NoError(t, err, "could not load fixture %q", name)
	defer file.Close()

	shapes, err := svgpoints.Load(file)
	require.NoError(t, err, "failed to parse fixture %q", name)
	return shapes
}
