// Package staticmap renders point overlays onto basemap images.
package staticmap

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/calumet-air/aqmap/internal/geo"

	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/webp"
)

// Point is a single marker to draw, with an optional text label.
type Point struct {
	Label string
	Lat   float64
	Lon   float64
}

// Options control a single Render call.
type Options struct {
	Title   string
	Points  []Point
	Width   int
	Height  int
	MaxZoom int
	Labels  bool
}

// Renderer composes XYZ basemap tiles into a single image and overlays
// markers. It is safe for concurrent use.
type Renderer struct {
	Client      *http.Client
	TileURL     string
	TileSize    int
	Concurrency int
}

// NewRenderer returns a Renderer with sane fallbacks applied.
func NewRenderer(client *http.Client, tileURL string, tileSize, concurrency int) *Renderer {
	if client == nil {
		client = http.DefaultClient
	}
	if tileSize <= 0 {
		tileSize = 256
	}
	if concurrency <= 0 {
		concurrency = 8
	}

	return &Renderer{
		Client:      client,
		TileURL:     tileURL,
		TileSize:    tileSize,
		Concurrency: concurrency,
	}
}

type tileJob struct {
	X, Y, Z int
}

type tileResult struct {
	Img  image.Image
	X, Y int
}

// Render downloads the tiles covering the point set and draws the overlay.
// Tiles that fail to download are left as background fill rather than
// failing the whole render.
func (r *Renderer) Render(ctx context.Context, opts Options) (image.Image, error) {
	if len(opts.Points) == 0 {
		return nil, fmt.Errorf("no points to render")
	}
	if opts.Width <= 0 {
		opts.Width = 1024
	}
	if opts.Height <= 0 {
		opts.Height = 1024
	}
	if opts.MaxZoom <= 0 {
		opts.MaxZoom = 17
	}

	pairs := make([][2]float64, 0, len(opts.Points))
	for _, p := range opts.Points {
		if err := geo.ValidateLatLon(p.Lat, p.Lon); err != nil {
			return nil, err
		}
		pairs = append(pairs, [2]float64{p.Lat, p.Lon})
	}

	bounds, _ := geo.BoundsOf(pairs)
	bounds = bounds.Pad(0.2)

	minSide := opts.Width
	if opts.Height < minSide {
		minSide = opts.Height
	}
	zoom := geo.ZoomFor(bounds, minSide, r.TileSize, opts.MaxZoom)

	// pixel origin of the canvas in the global tile plane
	cLat, cLon := bounds.Center()
	cx, cy := geo.TileFloat(cLat, cLon, zoom)
	originX := int(cx*float64(r.TileSize)) - opts.Width/2
	originY := int(cy*float64(r.TileSize)) - opts.Height/2

	canvas := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.RGBA{221, 221, 221, 255}), image.Point{}, draw.Src)

	r.fetchAndCompose(ctx, canvas, originX, originY, zoom)

	for _, p := range opts.Points {
		px, py := geo.TileFloat(p.Lat, p.Lon, zoom)
		x := int(px*float64(r.TileSize)) - originX
		y := int(py*float64(r.TileSize)) - originY

		drawMarker(canvas, x, y)
		if opts.Labels && p.Label != "" {
			drawLabel(canvas, x, y, p.Label)
		}
	}

	if opts.Title != "" {
		drawTitle(canvas, opts.Title)
	}

	return canvas, nil
}

// fetchAndCompose downloads every tile intersecting the canvas with a
// bounded worker pool and draws them at their pixel offsets.
func (r *Renderer) fetchAndCompose(ctx context.Context, canvas *image.RGBA, originX, originY, zoom int) {
	maxTile := (1 << zoom) - 1
	tx0, ty0 := originX/r.TileSize, originY/r.TileSize
	tx1 := (originX + canvas.Bounds().Dx()) / r.TileSize
	ty1 := (originY + canvas.Bounds().Dy()) / r.TileSize

	var tiles []tileJob
	for tx := tx0; tx <= tx1; tx++ {
		for ty := ty0; ty <= ty1; ty++ {
			if tx < 0 || ty < 0 || tx > maxTile || ty > maxTile {
				continue
			}
			tiles = append(tiles, tileJob{X: tx, Y: ty, Z: zoom})
		}
	}

	log.Debug().
		Int("zoom", zoom).
		Int("count", len(tiles)).
		Msg("Fetching basemap tiles")

	jobs := make(chan tileJob, len(tiles))
	results := make(chan tileResult, len(tiles))

	go func() {
		for _, t := range tiles {
			jobs <- t
		}
		close(jobs)
	}()

	var wg sync.WaitGroup
	for i := 0; i < r.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				img, err := r.fetchTile(ctx, j)
				if err != nil {
					log.Trace().
						Err(err).
						Str("url", buildTileURL(r.TileURL, j)).
						Msg("Failed to fetch tile")
					continue
				}
				results <- tileResult{Img: img, X: j.X, Y: j.Y}
			}
		}()
	}
	wg.Wait()
	close(results)

	for res := range results {
		offset := image.Pt(res.X*r.TileSize-originX, res.Y*r.TileSize-originY)
		rect := image.Rectangle{Min: offset, Max: offset.Add(image.Pt(r.TileSize, r.TileSize))}
		draw.Draw(canvas, rect, res.Img, image.Point{}, draw.Over)
	}
}

func (r *Renderer) fetchTile(ctx context.Context, j tileJob) (image.Image, error) {
	url := buildTileURL(r.TileURL, j)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "aqmap/1.0")

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("status code %d", resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}

	return img, nil
}

// buildTileURL substitutes {z}/{x}/{y} (and TMS {tms_y}) in a template.
func buildTileURL(tpl string, j tileJob) string {
	s := strings.ReplaceAll(tpl, "{z}", fmt.Sprintf("%d", j.Z))
	s = strings.ReplaceAll(s, "{x}", fmt.Sprintf("%d", j.X))
	s = strings.ReplaceAll(s, "{y}", fmt.Sprintf("%d", j.Y))

	if strings.Contains(s, "{tms_y}") {
		maxCoord := (1 << j.Z) - 1
		tmsY := maxCoord - j.Y
		s = strings.ReplaceAll(s, "{tms_y}", fmt.Sprintf("%d", tmsY))
	}

	return s
}
