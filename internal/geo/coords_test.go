package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordString(t *testing.T) {
	// colon separator, latitude first, no rounding
	assert.Equal(t, "41.60668:-87.304729", CoordString(41.60668, -87.304729))
	assert.Equal(t, "0:0", CoordString(0, 0))
	assert.Equal(t, "-33.8688:151.2093", CoordString(-33.8688, 151.2093))
}

func TestValidateLatLon(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{"valid", 41.60668, -87.304729, false},
		{"equator meridian", 0, 0, false},
		{"lat boundary", 90, 180, false},
		{"lat too high", 90.1, 0, true},
		{"lat too low", -90.1, 0, true},
		{"lon too high", 0, 180.5, true},
		{"lon too low", 0, -181, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLatLon(tt.lat, tt.lon)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBoundsOf(t *testing.T) {
	_, ok := BoundsOf(nil)
	assert.False(t, ok)

	b, ok := BoundsOf([][2]float64{
		{41.60668, -87.304729},
		{41.687222, -87.539722},
		{41.639167, -87.493056},
	})
	require.True(t, ok)
	assert.Equal(t, 41.60668, b.MinLat)
	assert.Equal(t, 41.687222, b.MaxLat)
	assert.Equal(t, -87.539722, b.MinLon)
	assert.Equal(t, -87.304729, b.MaxLon)
}

func TestBoundsPad(t *testing.T) {
	b := Bounds{MinLat: 41, MaxLat: 42, MinLon: -88, MaxLon: -87}
	p := b.Pad(0.1)
	assert.InDelta(t, 40.9, p.MinLat, 1e-9)
	assert.InDelta(t, 42.1, p.MaxLat, 1e-9)
	assert.InDelta(t, -88.1, p.MinLon, 1e-9)
	assert.InDelta(t, -86.9, p.MaxLon, 1e-9)

	// a single point still gets a margin to render against
	single := Bounds{MinLat: 41.6, MaxLat: 41.6, MinLon: -87.3, MaxLon: -87.3}
	p = single.Pad(0.2)
	assert.Greater(t, p.MaxLat, p.MinLat)
	assert.Greater(t, p.MaxLon, p.MinLon)
}

func TestTileFloat(t *testing.T) {
	// Null Island sits at the exact center of the tile plane.
	x, y := TileFloat(0, 0, 1)
	assert.InDelta(t, 1.0, x, 1e-9)
	assert.InDelta(t, 1.0, y, 1e-9)

	// latitudes beyond the Mercator clamp collapse to the plane edge
	_, yTop := TileFloat(89, 0, 0)
	_, yClamp := TileFloat(MaxLat, 0, 0)
	assert.InDelta(t, yClamp, yTop, 1e-9)

	// x grows east, y grows south
	x2, y2 := TileFloat(41.6, -87.3, 11)
	xE, _ := TileFloat(41.6, -87.2, 11)
	_, yS := TileFloat(41.5, -87.3, 11)
	assert.Greater(t, xE, x2)
	assert.Greater(t, yS, y2)
}

func TestZoomFor(t *testing.T) {
	b := Bounds{MinLat: 41.6, MaxLat: 41.7, MinLon: -87.55, MaxLon: -87.3}

	z := ZoomFor(b, 1024, 256, 17)
	require.GreaterOrEqual(t, z, 1)
	require.LessOrEqual(t, z, 17)

	// the box must actually fit at the chosen zoom
	x0, y0 := TileFloat(b.MaxLat, b.MinLon, z)
	x1, y1 := TileFloat(b.MinLat, b.MaxLon, z)
	assert.LessOrEqual(t, (x1-x0)*256, 1024.0)
	assert.LessOrEqual(t, (y1-y0)*256, 1024.0)

	// and not fit at the next one
	if z < 17 {
		x0, y0 = TileFloat(b.MaxLat, b.MinLon, z+1)
		x1, y1 = TileFloat(b.MinLat, b.MaxLon, z+1)
		larger := (x1-x0)*256 > 1024.0 || (y1-y0)*256 > 1024.0
		assert.True(t, larger)
	}
}
