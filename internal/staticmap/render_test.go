package staticmap

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tileServer serves a solid white 256px PNG for every tile request.
func tileServer(t *testing.T) *httptest.Server {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 256, 256))
	for y := 0; y < 256; y++ {
		for x := 0; x < 256; x++ {
			img.Set(x, y, color.White)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	tile := buf.Bytes()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(tile)
	}))
}

func TestBuildTileURL(t *testing.T) {
	url := buildTileURL("https://tiles.example/{z}/{x}/{y}.png", tileJob{X: 3, Y: 5, Z: 4})
	assert.Equal(t, "https://tiles.example/4/3/5.png", url)

	// TMS flips the Y axis
	url = buildTileURL("https://tiles.example/{z}/{x}/{tms_y}.png", tileJob{X: 3, Y: 5, Z: 4})
	assert.Equal(t, "https://tiles.example/4/3/10.png", url)
}

func TestRenderNoPoints(t *testing.T) {
	r := NewRenderer(nil, "https://tiles.example/{z}/{x}/{y}.png", 256, 4)

	_, err := r.Render(context.Background(), Options{})
	assert.Error(t, err)
}

func TestRenderInvalidPoint(t *testing.T) {
	r := NewRenderer(nil, "https://tiles.example/{z}/{x}/{y}.png", 256, 4)

	_, err := r.Render(context.Background(), Options{
		Points: []Point{{Lat: 95, Lon: 0}},
	})
	assert.Error(t, err)
}

func TestRenderDrawsMarkerAtCenter(t *testing.T) {
	srv := tileServer(t)
	defer srv.Close()

	r := NewRenderer(srv.Client(), srv.URL+"/{z}/{x}/{y}.png", 256, 4)

	img, err := r.Render(context.Background(), Options{
		Points:  []Point{{Lat: 41.60668, Lon: -87.304729, Label: "Gary-IITRI"}},
		Width:   256,
		Height:  256,
		MaxZoom: 5,
	})
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 256, bounds.Dx())
	assert.Equal(t, 256, bounds.Dy())

	// a single point lands in the middle of the canvas
	cr, cg, cb, _ := img.At(128, 128).RGBA()
	want := markerFill
	assert.Equal(t, uint32(want.R)*0x101, cr)
	assert.Equal(t, uint32(want.G)*0x101, cg)
	assert.Equal(t, uint32(want.B)*0x101, cb)
}

func TestRenderSurvivesTileFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	r := NewRenderer(srv.Client(), srv.URL+"/{z}/{x}/{y}.png", 256, 4)

	img, err := r.Render(context.Background(), Options{
		Points:  []Point{{Lat: 41.60668, Lon: -87.304729}},
		Width:   128,
		Height:  128,
		MaxZoom: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestEncodeByExt(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))

	var buf bytes.Buffer
	require.NoError(t, EncodeByExt(&buf, img, "out.png"))
	_, format, err := image.DecodeConfig(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "png", format)

	buf.Reset()
	require.NoError(t, EncodeByExt(&buf, img, "out.webp"))
	assert.Equal(t, "RIFF", string(buf.Bytes()[:4]))
}
