package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/calumet-air/aqmap/internal/dataset"
	"github.com/calumet-air/aqmap/internal/export"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Input    string `short:"i" long:"in" description:"Input chemistry CSV path. Reads from stdin if empty"`
	Output   string `short:"o" long:"out" description:"Output file path. Writes to stdout if empty"`
	Format   string `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
	Zone     int    `short:"z" long:"zone" description:"UTM zone of the easting/northing columns" default:"16"`
	Southern bool   `short:"s" long:"southern" description:"Coordinates are in the southern hemisphere"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Read Input
	var measurements []dataset.Measurement
	var err error

	if opts.Input != "" {
		measurements, err = dataset.LoadMeasurementsFile(opts.Input)
	} else {
		measurements, err = dataset.LoadMeasurements(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	fc, err := export.MeasurementsToFeatureCollection(measurements, opts.Zone, !opts.Southern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reprojecting: %v\n", err)
		os.Exit(1)
	}

	// marshal
	var outputData []byte
	if opts.Format == "yaml" {
		outputData, err = yaml.Marshal(fc)
	} else {
		outputData, err = json.MarshalIndent(fc, "", "  ")
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling data: %v\n", err)
		os.Exit(1)
	}

	if opts.Output != "" {
		err = os.WriteFile(opts.Output, outputData, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Successfully converted %d samples to %s (format: %s)\n",
			len(fc.Features), opts.Output, opts.Format)
	} else {
		fmt.Println(string(outputData))
	}
}
