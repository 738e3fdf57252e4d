package geo

import (
	"fmt"
	"math"
	"strconv"
)

// MaxLat is the Web Mercator latitude clamp.
const MaxLat = 85.05112878

// CoordString formats a coordinate pair as "lat:lon" for map widget tooltips.
// Values are rendered with the shortest exact representation, no rounding.
func CoordString(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + ":" + strconv.FormatFloat(lon, 'f', -1, 64)
}

// ValidateLatLon checks that a coordinate pair is a well-formed geographic
// position: finite numbers, latitude in [-90, 90], longitude in [-180, 180].
func ValidateLatLon(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return fmt.Errorf("coordinates not finite: %v, %v", lat, lon)
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", lon)
	}
	return nil
}

// Bounds is a geographic bounding box.
type Bounds struct {
	MinLat, MinLon float64
	MaxLat, MaxLon float64
}

// BoundsOf computes the bounding box of a point list given as (lat, lon)
// pairs. The second return is false for an empty list.
func BoundsOf(points [][2]float64) (Bounds, bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}

	b := Bounds{
		MinLat: points[0][0], MaxLat: points[0][0],
		MinLon: points[0][1], MaxLon: points[0][1],
	}
	for _, p := range points[1:] {
		b.MinLat = math.Min(b.MinLat, p[0])
		b.MaxLat = math.Max(b.MaxLat, p[0])
		b.MinLon = math.Min(b.MinLon, p[1])
		b.MaxLon = math.Max(b.MaxLon, p[1])
	}

	return b, true
}

// Pad grows the box by a fraction of its own span on every side.
// Degenerate boxes (single point) get a small fixed margin instead.
func (b Bounds) Pad(frac float64) Bounds {
	dLat := (b.MaxLat - b.MinLat) * frac
	dLon := (b.MaxLon - b.MinLon) * frac
	if dLat == 0 {
		dLat = 0.01
	}
	if dLon == 0 {
		dLon = 0.01
	}

	return Bounds{
		MinLat: math.Max(b.MinLat-dLat, -MaxLat),
		MaxLat: math.Min(b.MaxLat+dLat, MaxLat),
		MinLon: math.Max(b.MinLon-dLon, -180),
		MaxLon: math.Min(b.MaxLon+dLon, 180),
	}
}

// Center returns the middle of the box.
func (b Bounds) Center() (lat, lon float64) {
	return (b.MinLat + b.MaxLat) / 2, (b.MinLon + b.MaxLon) / 2
}

// TileFloat converts WGS84 (Lat/Lon) to fractional XYZ tile coordinates
// at the given zoom using the Web Mercator projection. The integer parts
// address a tile, the fractional parts a position inside it.
func TileFloat(lat, lon float64, zoom int) (x, y float64) {
	if lat > MaxLat {
		lat = MaxLat
	} else if lat < -MaxLat {
		lat = -MaxLat
	}

	n := float64(int(1) << zoom)
	x = (lon + 180.0) / 360.0 * n

	latRad := lat * (math.Pi / 180.0)
	y = (1.0 - math.Log(math.Tan(latRad)+1.0/math.Cos(latRad))/math.Pi) / 2.0 * n

	return x, y
}

// ZoomFor picks the highest zoom at which the box still fits into a square
// canvas of the given pixel size, assuming square tiles of tileSize pixels.
func ZoomFor(b Bounds, canvasPx, tileSize, maxZoom int) int {
	for z := maxZoom; z > 0; z-- {
		x0, y0 := TileFloat(b.MaxLat, b.MinLon, z)
		x1, y1 := TileFloat(b.MinLat, b.MaxLon, z)

		w := (x1 - x0) * float64(tileSize)
		h := (y1 - y0) * float64(tileSize)
		if w <= float64(canvasPx) && h <= float64(canvasPx) {
			return z
		}
	}

	return 1
}
