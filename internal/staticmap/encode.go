package staticmap

import (
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
)

// EncodeWebP writes the image as lossy WebP.
func EncodeWebP(w io.Writer, img image.Image, quality float32) error {
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	return webp.Encode(w, img, &webp.Options{Lossless: false, Quality: quality})
}

// EncodePNG writes the image as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// EncodeByExt picks the encoder from the output file extension.
// Unknown extensions fall back to PNG.
func EncodeByExt(w io.Writer, img image.Image, path string) error {
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		return EncodeWebP(w, img, 85)
	}
	return EncodePNG(w, img)
}
