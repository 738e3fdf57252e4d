// Package dataset holds the monitor site table and the chemistry
// measurement loader.
package dataset

import (
	"fmt"

	"github.com/calumet-air/aqmap/internal/geo"
)

// Site is a single air-quality monitoring location.
type Site struct {
	Name  string  `yaml:"name" json:"name"`
	Datum string  `yaml:"datum" json:"datum"`
	ID    int     `yaml:"id" json:"id"`
	Lat   float64 `yaml:"lat" json:"lat"`
	Lon   float64 `yaml:"lon" json:"lon"`
}

// Validate checks the coordinate pair of the site.
func (s Site) Validate() error {
	if err := geo.ValidateLatLon(s.Lat, s.Lon); err != nil {
		return fmt.Errorf("site %d (%s): %w", s.ID, s.Name, err)
	}
	return nil
}

// CoordString renders the "lat:lon" tooltip field for map widgets.
func (s Site) CoordString() string {
	return geo.CoordString(s.Lat, s.Lon)
}

// SampleSites is the running example table: six monitors around the
// Calumet industrial corridor, coordinates in WGS84 decimal degrees.
var SampleSites = []Site{
	{ID: 1001, Lat: 41.60668, Lon: -87.304729, Datum: "WGS84", Name: "Gary-IITRI"},
	{ID: 1002, Lat: 41.639167, Lon: -87.493056, Datum: "WGS84", Name: "Hammond-141st St"},
	{ID: 1003, Lat: 41.651389, Lon: -87.435556, Datum: "WGS84", Name: "East Chicago-Marina"},
	{ID: 1004, Lat: 41.681944, Lon: -87.494722, Datum: "WGS84", Name: "Whiting-High School"},
	{ID: 1005, Lat: 41.687222, Lon: -87.539722, Datum: "WGS84", Name: "Chicago-Washington HS"},
	{ID: 1006, Lat: 41.606389, Lon: -87.529444, Datum: "WGS84", Name: "Calumet City"},
}

// ValidateSites checks every site and reports the first failure.
func ValidateSites(sites []Site) error {
	for _, s := range sites {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
