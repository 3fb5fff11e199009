package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
)

// alphaOpaque is the threshold above which a pixel is considered visible.
// Sprite art uses binary transparency; the midpoint keeps scaled edge
// pixels stable.
const alphaOpaque = 0x80

// Sprite renders the image as unicode half-blocks scaled to targetWidth
// columns and centered within the report width. Each text row carries two
// pixel rows: the upper half block's foreground is the top pixel, its
// background the bottom pixel. Transparent pixels stay unpainted.
func (p *Printer) Sprite(img image.Image, targetWidth int) {
	if targetWidth <= 0 || targetWidth > p.width {
		targetWidth = p.width
	}

	scaled := scaleToWidth(img, targetWidth)
	bounds := scaled.Bounds()

	margin := strings.Repeat(" ", (p.width-targetWidth)/2)

	p.blank()
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		var line strings.Builder
		line.WriteString(margin)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			line.WriteString(p.cell(scaled, x, y))
		}
		fmt.Fprintln(p.w, strings.TrimRight(line.String(), " "))
	}
}

// cell renders one character covering the pixel at (x, y) and the one below it.
func (p *Printer) cell(img *image.RGBA, x, y int) string {
	top, topOK := visible(img, x, y)
	bottom, bottomOK := visible(img, x, y+1)

	switch {
	case topOK && bottomOK:
		return p.profile.String("▀").
			Foreground(p.profile.FromColor(top)).
			Background(p.profile.FromColor(bottom)).
			String()
	case topOK:
		return p.profile.String("▀").Foreground(p.profile.FromColor(top)).String()
	case bottomOK:
		return p.profile.String("▄").Foreground(p.profile.FromColor(bottom)).String()
	default:
		return " "
	}
}

// visible returns the pixel color and whether it is opaque enough to draw.
func visible(img *image.RGBA, x, y int) (color.Color, bool) {
	if y >= img.Bounds().Max.Y {
		return nil, false
	}
	c := img.RGBAAt(x, y)
	if c.A < alphaOpaque {
		return nil, false
	}
	return c, true
}

// scaleToWidth resizes to the given width with nearest-neighbor sampling,
// which keeps pixel art edges hard. Height follows the aspect ratio.
func scaleToWidth(img image.Image, width int) *image.RGBA {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	height := (b.Dy()*width + b.Dx()/2) / b.Dx()
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
