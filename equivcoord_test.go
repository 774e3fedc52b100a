package equivcoord

import (
	"testing"

	"github.com/osuushi/equivcoord/equivalent"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestConvert(t *testing.T) {
	refs := References{
		{X: 865377, Y: 113203},
		{X: 864100.1, Y: 112931.6},
		{X: 418.8, Y: 411.8},
		{X: -854.2, Y: 143.3},
	}

	points, err := Convert(refs, Point{X: 864533.8, Y: 112912.8}, refs[0])
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.InDelta(t, -421.5475365536791, points[0].X, 1e-8)
	assert.InDelta(t, 122.58171832555894, points[0].Y, 1e-8)
	assert.Equal(t, refs[2], points[1])

	c, err := refs.Coordinate()
	require.NoError(t, err)
	assert.Equal(t, points[0], c.MapPoint(Point{X: 864533.8, Y: 112912.8}))
}

func TestConvert_Errors(t *testing.T) {
	t.Run("zero distance", func(t *testing.T) {
		refs := References{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}}
		points, err := Convert(refs, Point{X: 2, Y: 2})
		assert.Nil(t, points)
		assert.True(t, equivalent.IsZeroDistance(err))

		var zde *ZeroDistanceError
		require.True(t, errors.As(err, &zde))
		assert.Equal(t, Point{X: 1, Y: 1}, zde.Location)
	})

	t.Run("vertical references", func(t *testing.T) {
		refs := References{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 0, Y: 0}, {X: 0, Y: 10}}
		points, err := Convert(refs, Point{X: 3, Y: 4})
		assert.Nil(t, points)
		assert.Equal(t, ErrNonFinite, errors.Cause(err))
	})

	t.Run("level references", func(t *testing.T) {
		refs := References{{X: 865377, Y: 113203}, {X: 866000, Y: 113203}, {X: 0, Y: 0}, {X: 623, Y: 0}}
		points, err := Convert(refs, Point{X: 865372, Y: 113206})
		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.InDelta(t, -5, points[0].X, 1e-8)
		assert.InDelta(t, 3, points[0].Y, 1e-8)
	})

	t.Run("no points", func(t *testing.T) {
		refs := References{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}, {X: 2, Y: 0}}
		points, err := Convert(refs)
		assert.NoError(t, err)
		assert.Empty(t, points)
	})
}
