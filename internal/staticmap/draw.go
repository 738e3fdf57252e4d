package staticmap

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	markerFill = color.RGBA{204, 0, 0, 255}
	markerRing = color.RGBA{255, 255, 255, 255}
	labelInk   = color.RGBA{17, 17, 17, 255}
)

const (
	markerRadius = 6
	titleMargin  = 10
)

// drawMarker paints a filled circle with a white ring at the pixel position.
func drawMarker(img *image.RGBA, cx, cy int) {
	drawDisc(img, cx, cy, markerRadius+2, markerRing)
	drawDisc(img, cx, cy, markerRadius, markerFill)
}

func drawDisc(img *image.RGBA, cx, cy, radius int, c color.Color) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				img.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

// drawLabel writes the site name to the right of a marker, with a 1px
// white halo so it stays readable on dark basemaps.
func drawLabel(img *image.RGBA, x, y int, text string) {
	baseX, baseY := x+markerRadius+6, y+4

	for _, off := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		drawString(img, baseX+off[0], baseY+off[1], text, markerRing)
	}
	drawString(img, baseX, baseY, text, labelInk)
}

// drawTitle centers a title along the top edge of the canvas.
func drawTitle(img *image.RGBA, title string) {
	d := &font.Drawer{Face: basicfont.Face7x13}
	width := d.MeasureString(title).Ceil()

	x := (img.Bounds().Dx() - width) / 2
	y := titleMargin + basicfont.Face7x13.Ascent

	for _, off := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		drawString(img, x+off[0], y+off[1], title, markerRing)
	}
	drawString(img, x, y, title, labelInk)
}

func drawString(img *image.RGBA, x, y int, text string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
