// Package projection converts between UTM and geographic WGS84 coordinates.
//
// The projection mathematics is delegated to the wgs84 geodesy library;
// this package only fixes the axis order and zone handling used elsewhere
// in the repository.
package projection

import (
	"fmt"
	"math"

	"github.com/wroge/wgs84"
)

// UTMToLonLat transforms a UTM easting/northing pair in the given zone to
// geographic WGS84 longitude/latitude in decimal degrees.
func UTMToLonLat(easting, northing float64, zone int, northern bool) (lon, lat float64, err error) {
	if zone < 1 || zone > 60 {
		return 0, 0, fmt.Errorf("invalid UTM zone %d", zone)
	}

	lon, lat, _ = wgs84.UTM(float64(zone), northern).To(wgs84.LonLat())(easting, northing, 0)
	if math.IsNaN(lon) || math.IsNaN(lat) {
		return 0, 0, fmt.Errorf("transform failed for E=%v N=%v zone=%d", easting, northing, zone)
	}

	return lon, lat, nil
}

// LonLatToUTM transforms geographic WGS84 longitude/latitude to UTM
// easting/northing in the given zone.
func LonLatToUTM(lon, lat float64, zone int, northern bool) (easting, northing float64, err error) {
	if zone < 1 || zone > 60 {
		return 0, 0, fmt.Errorf("invalid UTM zone %d", zone)
	}

	easting, northing, _ = wgs84.LonLat().To(wgs84.UTM(float64(zone), northern))(lon, lat, 0)
	if math.IsNaN(easting) || math.IsNaN(northing) {
		return 0, 0, fmt.Errorf("transform failed for lon=%v lat=%v zone=%d", lon, lat, zone)
	}

	return easting, northing, nil
}

// ZoneFor returns the standard UTM zone number for a longitude.
func ZoneFor(lon float64) int {
	zone := int(math.Floor((lon+180)/6)) + 1
	if zone < 1 {
		zone = 1
	} else if zone > 60 {
		zone = 60
	}

	return zone
}
