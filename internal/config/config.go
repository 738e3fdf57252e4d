// Package config handles configuration loading and shared data structures.
package config

import (
	"os"

	"github.com/calumet-air/aqmap/internal/dataset"

	"gopkg.in/yaml.v3"
)

// Defaults applied by Load when the file leaves fields empty.
const (
	DefaultTileURL  = "https://tile.openstreetmap.org/{z}/{x}/{y}.png"
	DefaultTileSize = 256
	DefaultZoom     = 11
)

// Config represents the root configuration file structure.
type Config struct {
	Title       string         `yaml:"title,omitempty" json:"title,omitempty"`
	Attribution string         `yaml:"attribution,omitempty" json:"attribution,omitempty"`
	TileURL     string         `yaml:"tile_url,omitempty" json:"tile_url,omitempty"`
	Sites       []dataset.Site `yaml:"sites" json:"sites"`
	TileSize    int            `yaml:"tile_size,omitempty" json:"-"`
	Zoom        int            `yaml:"zoom,omitempty" json:"zoom"`
}

// Load reads and parses the YAML configuration file from the specified path.
// Missing site lists fall back to the built-in sample table, and every
// coordinate pair is validated before the config is returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := dataset.ValidateSites(cfg.Sites); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a configuration built entirely from compile-time defaults
// and the sample site table.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Title == "" {
		c.Title = "Air Quality Monitors"
	}
	if c.Attribution == "" {
		c.Attribution = "&copy; OpenStreetMap contributors"
	}
	if c.TileURL == "" {
		c.TileURL = DefaultTileURL
	}
	if c.TileSize <= 0 {
		c.TileSize = DefaultTileSize
	}
	if c.Zoom <= 0 {
		c.Zoom = DefaultZoom
	}
	if len(c.Sites) == 0 {
		c.Sites = dataset.SampleSites
	}
}
