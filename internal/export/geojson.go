// Package export converts site and measurement tables to GeoJSON artifacts.
package export

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/calumet-air/aqmap/internal/dataset"
	"github.com/calumet-air/aqmap/internal/geo"
	"github.com/calumet-air/aqmap/internal/projection"

	"github.com/rs/zerolog/log"
)

// SitesToFeatureCollection converts the monitor table to GeoJSON Point
// features. The tooltip property carries the combined "lat:lon" string
// used by hosted map widgets.
func SitesToFeatureCollection(sites []dataset.Site) geo.FeatureCollection {
	fc := geo.NewFeatureCollection()
	for _, s := range sites {
		fc.Features = append(fc.Features, geo.NewPointFeature(s.Lon, s.Lat, map[string]interface{}{
			"id":      s.ID,
			"name":    s.Name,
			"datum":   s.Datum,
			"tooltip": s.CoordString(),
		}))
	}

	return fc
}

// MeasurementsToFeatureCollection reprojects a chemistry table from UTM
// to geographic coordinates and converts it to GeoJSON Point features.
// Rows that fail to transform are dropped with a warning.
func MeasurementsToFeatureCollection(ms []dataset.Measurement, zone int, northern bool) (geo.FeatureCollection, error) {
	fc := geo.NewFeatureCollection()
	for _, m := range ms {
		lon, lat, err := projection.UTMToLonLat(m.Easting, m.Northing, zone, northern)
		if err != nil {
			return fc, err
		}
		if err := geo.ValidateLatLon(lat, lon); err != nil {
			log.Warn().
				Str("sample", m.SampleID).
				Err(err).
				Msg("Dropping sample outside geographic range")
			continue
		}

		fc.Features = append(fc.Features, geo.NewPointFeature(lon, lat, map[string]interface{}{
			"sample_id": m.SampleID,
			"site":      m.SiteName,
			"parameter": m.Parameter,
			"value":     m.Value,
			"unit":      m.Unit,
			"tooltip":   geo.CoordString(lat, lon),
		}))
	}

	return fc, nil
}

// SaveGeoJSON marshals the feature collection and writes it to disk,
// creating parent directories as needed.
func SaveGeoJSON(path string, fc geo.FeatureCollection) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	// We care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
		}
	}()

	return json.NewEncoder(f).Encode(fc)
}
