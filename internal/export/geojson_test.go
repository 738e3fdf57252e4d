package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/calumet-air/aqmap/internal/dataset"
	"github.com/calumet-air/aqmap/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitesToFeatureCollection(t *testing.T) {
	fc := SitesToFeatureCollection(dataset.SampleSites)

	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, len(dataset.SampleSites))

	first := fc.Features[0]
	require.Len(t, first.Geometry.Coordinates, 2)
	assert.Equal(t, -87.304729, first.Geometry.Coordinates[0])
	assert.Equal(t, 41.60668, first.Geometry.Coordinates[1])
	assert.Equal(t, "41.60668:-87.304729", first.Properties["tooltip"])
	assert.Equal(t, "Gary-IITRI", first.Properties["name"])
	assert.Equal(t, "WGS84", first.Properties["datum"])
}

func TestMeasurementsToFeatureCollection(t *testing.T) {
	ms := []dataset.Measurement{
		{
			SampleID:  "CH-1",
			SiteName:  "Gary-IITRI",
			Parameter: "PM2.5",
			Unit:      "ug/m3",
			Easting:   474608.242,
			Northing:  4606152.693,
			Value:     12.4,
		},
	}

	fc, err := MeasurementsToFeatureCollection(ms, 16, true)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)

	coords := fc.Features[0].Geometry.Coordinates
	require.Len(t, coords, 2)
	assert.InDelta(t, -87.304729, coords[0], 1e-5)
	assert.InDelta(t, 41.60668, coords[1], 1e-5)
	assert.Equal(t, 12.4, fc.Features[0].Properties["value"])
}

func TestMeasurementsInvalidZone(t *testing.T) {
	ms := []dataset.Measurement{{SampleID: "CH-1", Easting: 474608, Northing: 4606152}}

	_, err := MeasurementsToFeatureCollection(ms, 0, true)
	assert.Error(t, err)
}

func TestSaveGeoJSON(t *testing.T) {
	fc := SitesToFeatureCollection(dataset.SampleSites)
	path := filepath.Join(t.TempDir(), "out", "sites.geojson")

	require.NoError(t, SaveGeoJSON(path, fc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded geo.FeatureCollection
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "FeatureCollection", decoded.Type)
	assert.Len(t, decoded.Features, len(dataset.SampleSites))
}
