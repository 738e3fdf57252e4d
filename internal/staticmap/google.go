package staticmap

import (
	"context"
	"fmt"
	"image"

	"github.com/rs/zerolog/log"
	"googlemaps.github.io/maps"
)

// GoogleProvider renders through the Google Static Maps API instead of
// composing tiles locally. The region selector is resolved with the
// Geocoding API so administrative names ("Lake County, IN") work directly.
type GoogleProvider struct {
	client *maps.Client
}

// NewGoogleProvider creates a provider with the given API key.
func NewGoogleProvider(apiKey string) (*GoogleProvider, error) {
	c, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &GoogleProvider{client: c}, nil
}

// Render requests a static map with one marker per point. When region is
// non-empty its geocoded viewport is forced into view, so all markers are
// shown in their administrative context.
func (g *GoogleProvider) Render(ctx context.Context, region string, points []Point, width, height int) (image.Image, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no points to render")
	}
	if width <= 0 {
		width = 640
	}
	if height <= 0 {
		height = 640
	}

	req := &maps.StaticMapRequest{
		Size:    fmt.Sprintf("%dx%d", width, height),
		Format:  maps.PNG8,
		MapType: maps.RoadMap,
	}

	marker := maps.Marker{Color: "red", Size: "mid"}
	for _, p := range points {
		marker.Location = append(marker.Location, maps.LatLng{Lat: p.Lat, Lng: p.Lon})
	}
	req.Markers = []maps.Marker{marker}

	if region != "" {
		viewport, err := g.geocodeRegion(ctx, region)
		if err != nil {
			return nil, err
		}
		req.Visible = []maps.LatLng{viewport.NorthEast, viewport.SouthWest}
	}

	return g.client.StaticMap(ctx, req)
}

// geocodeRegion resolves an administrative boundary name to its viewport.
func (g *GoogleProvider) geocodeRegion(ctx context.Context, region string) (maps.LatLngBounds, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: region})
	if err != nil {
		return maps.LatLngBounds{}, fmt.Errorf("geocode %q: %w", region, err)
	}
	if len(results) == 0 {
		return maps.LatLngBounds{}, fmt.Errorf("region %q not found", region)
	}

	log.Debug().
		Str("region", region).
		Str("resolved", results[0].FormattedAddress).
		Msg("Region geocoded")

	return results[0].Geometry.Viewport, nil
}
