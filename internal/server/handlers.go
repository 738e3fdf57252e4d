package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/calumet-air/aqmap/internal/staticmap"

	"github.com/rs/zerolog/log"
)

// HandleIndex serves the main HTML application.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && strings.Contains(r.URL.Path, ".") {
		http.NotFound(w, r)
		return
	}

	etag := fmt.Sprintf(`"%x"`, len(s.IndexHTML))

	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(s.IndexHTML)
}

// HandleFavicon serves the site favicon.
func (s *ServerContext) HandleFavicon(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/favicon.ico" {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/x-icon")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(s.Favicon)
}

// HandleSites serves the monitor table as JSON for the widget API.
func (s *ServerContext) HandleSites(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(s.Config.Sites)
}

// HandleGeoJSON serves the pre-encoded site FeatureCollection.
func (s *ServerContext) HandleGeoJSON(w http.ResponseWriter, r *http.Request) {
	etag := fmt.Sprintf(`"%x"`, len(s.GeoJSON))

	if match := r.Header.Get("If-None-Match"); match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(s.GeoJSON)
}

// HandleRender serves a static WebP snapshot of the configured sites.
// The image is rendered once on first request and cached in memory.
func (s *ServerContext) HandleRender(w http.ResponseWriter, r *http.Request) {
	s.renderMu.Lock()
	cached := s.renderedWebP
	s.renderMu.Unlock()

	if cached == nil {
		points := make([]staticmap.Point, 0, len(s.Config.Sites))
		for _, site := range s.Config.Sites {
			points = append(points, staticmap.Point{Lat: site.Lat, Lon: site.Lon, Label: site.Name})
		}

		img, err := s.Renderer.Render(r.Context(), staticmap.Options{
			Points: points,
			Title:  s.Config.Title,
			Labels: true,
		})
		if err != nil {
			log.Error().Err(err).Msg("Static render failed")
			http.Error(w, "render failed", http.StatusBadGateway)
			return
		}

		var buf bytes.Buffer
		if err := staticmap.EncodeWebP(&buf, img, 85); err != nil {
			log.Error().Err(err).Msg("WebP encode failed")
			http.Error(w, "encode failed", http.StatusInternalServerError)
			return
		}

		s.renderMu.Lock()
		s.renderedWebP = buf.Bytes()
		cached = s.renderedWebP
		s.renderMu.Unlock()
	}

	w.Header().Set("Content-Type", "image/webp")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(cached)
}
