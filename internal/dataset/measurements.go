package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Measurement is one chemistry sample with its position given as UTM
// easting/northing, the way the source laboratory exports it.
type Measurement struct {
	SampleID  string
	SiteName  string
	Parameter string
	Unit      string
	Easting   float64
	Northing  float64
	Value     float64
}

// columns we require in the CSV header, matched case-insensitively
var measurementColumns = []string{"sample_id", "site", "easting", "northing", "parameter", "value", "unit"}

// LoadMeasurementsFile reads a chemistry CSV export from disk.
func LoadMeasurementsFile(path string) ([]Measurement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return LoadMeasurements(f)
}

// LoadMeasurements parses a chemistry CSV export. The first row must be a
// header naming at least sample_id, site, easting, northing, parameter,
// value and unit, in any order. Rows with unparsable coordinates are
// skipped with a warning rather than failing the whole file.
func LoadMeasurements(r io.Reader) ([]Measurement, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, want := range measurementColumns {
		if _, ok := idx[want]; !ok {
			return nil, fmt.Errorf("missing column %q in header", want)
		}
	}

	var out []Measurement
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		easting, err1 := strconv.ParseFloat(record[idx["easting"]], 64)
		northing, err2 := strconv.ParseFloat(record[idx["northing"]], 64)
		if err1 != nil || err2 != nil {
			log.Warn().
				Str("sample", record[idx["sample_id"]]).
				Msg("Skipping row with invalid coordinates")
			continue
		}

		value, err := strconv.ParseFloat(record[idx["value"]], 64)
		if err != nil {
			log.Warn().
				Str("sample", record[idx["sample_id"]]).
				Msg("Skipping row with invalid value")
			continue
		}

		out = append(out, Measurement{
			SampleID:  record[idx["sample_id"]],
			SiteName:  record[idx["site"]],
			Parameter: record[idx["parameter"]],
			Unit:      record[idx["unit"]],
			Easting:   easting,
			Northing:  northing,
			Value:     value,
		})
	}

	return out, nil
}
