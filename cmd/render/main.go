package main

import (
	"context"
	"image"
	"net/http"
	"os"
	"time"

	"github.com/calumet-air/aqmap/internal/config"
	"github.com/calumet-air/aqmap/internal/logger"
	"github.com/calumet-air/aqmap/internal/staticmap"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"  env:"CONFIG_FILE" description:"Path to configuration file" default:"config.yaml"`
	Output     string `short:"o" long:"out"     description:"Output image path (.png or .webp)" default:"monitors.png"`
	Title      string `short:"t" long:"title"   description:"Map title drawn along the top edge"`
	Region     string `short:"r" long:"region"  description:"Administrative region name, resolved via the Google provider"`
	GoogleKey  string `short:"k" long:"api-key" env:"MAPS_API_KEY" description:"Google Maps API key, switches to the Static Maps provider"`
	Width      int    `short:"W" long:"width"   description:"Canvas width in pixels"  default:"1024"`
	Height     int    `short:"H" long:"height"  description:"Canvas height in pixels" default:"1024"`
	NoLabels   bool   `short:"n" long:"no-labels" description:"Skip site name labels"`
}

func main() {
	_ = godotenv.Load()

	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		cfg = config.Default()
	}

	title := opts.Title
	if title == "" {
		title = cfg.Title
	}

	points := make([]staticmap.Point, 0, len(cfg.Sites))
	for _, s := range cfg.Sites {
		points = append(points, staticmap.Point{Lat: s.Lat, Lon: s.Lon, Label: s.Name})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var img image.Image
	if opts.GoogleKey != "" {
		provider, err := staticmap.NewGoogleProvider(opts.GoogleKey)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create Google provider")
		}

		img, err = provider.Render(ctx, opts.Region, points, opts.Width, opts.Height)
		if err != nil {
			log.Fatal().Err(err).Msg("Static Maps request failed")
		}
	} else {
		if opts.Region != "" {
			log.Warn().Msg("Region selector needs the Google provider, ignoring (set --api-key)")
		}

		client := &http.Client{Timeout: 15 * time.Second}
		renderer := staticmap.NewRenderer(client, cfg.TileURL, cfg.TileSize, 8)

		img, err = renderer.Render(ctx, staticmap.Options{
			Points: points,
			Title:  title,
			Width:  opts.Width,
			Height: opts.Height,
			Labels: !opts.NoLabels,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Render failed")
		}
	}

	f, err := os.Create(opts.Output)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create output file")
	}
	defer func() { _ = f.Close() }()

	if err := staticmap.EncodeByExt(f, img, opts.Output); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode image")
	}

	log.Info().
		Str("path", opts.Output).
		Int("sites", len(points)).
		Msg("Map rendered")
}
