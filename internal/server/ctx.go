// Package server handles HTTP requests and middleware for the web map.
package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/calumet-air/aqmap/assets"
	"github.com/calumet-air/aqmap/internal/config"
	"github.com/calumet-air/aqmap/internal/export"
	"github.com/calumet-air/aqmap/internal/staticmap"

	"github.com/rs/zerolog/log"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config    *config.Config
	Renderer  *staticmap.Renderer
	IndexHTML []byte
	Favicon   []byte
	GeoJSON   []byte

	renderMu     sync.Mutex
	renderedWebP []byte
}

// NewServerContext initializes the context, pre-encoding the GeoJSON
// served to the Leaflet page.
func NewServerContext(cfg *config.Config, client *http.Client) (*ServerContext, error) {
	fc := export.SitesToFeatureCollection(cfg.Sites)

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(fc); err != nil {
		return nil, err
	}

	log.Info().
		Int("sites", len(cfg.Sites)).
		Str("tile_url", cfg.TileURL).
		Msg("Server context initialized")

	return &ServerContext{
		Config:    cfg,
		Renderer:  staticmap.NewRenderer(client, cfg.TileURL, cfg.TileSize, 8),
		IndexHTML: assets.Index,
		Favicon:   assets.Favicon,
		GeoJSON:   buf.Bytes(),
	}, nil
}
