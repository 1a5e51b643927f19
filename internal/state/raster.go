package state

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
)

// Raster is the authoritative pixel grid of a canvas. Its size is fixed when
// it is created and every pixel is opaque.
type Raster struct {
	img        *image.RGBA
	background color.RGBA
}

// NewRaster creates a width x height raster filled with background.
func NewRaster(width, height int, background color.Color) *Raster {
	r := &Raster{
		img:        image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1))),
		background: opaque(background),
	}
	r.Fill(r.background)
	return r
}

// Width returns the width of the raster.
func (r *Raster) Width() int { return r.img.Rect.Dx() }

// Height returns the height of the raster.
func (r *Raster) Height() int { return r.img.Rect.Dy() }

// Bounds returns the pixel rectangle of the raster.
func (r *Raster) Bounds() image.Rectangle { return r.img.Rect }

// Background returns the color the raster is cleared and erased to.
func (r *Raster) Background() color.RGBA { return r.background }

// Image exposes the live pixels. Callers must not retain it across an undo
// if they need a stable copy; use a Snapshot for that.
func (r *Raster) Image() *image.RGBA { return r.img }

// At returns the color of pixel (x, y), or the background outside bounds.
func (r *Raster) At(x, y int) color.RGBA {
	if !image.Pt(x, y).In(r.img.Rect) {
		return r.background
	}
	return r.img.RGBAAt(x, y)
}

// Fill sets every pixel to c.
func (r *Raster) Fill(c color.Color) {
	draw.Draw(r.img, r.img.Rect, image.NewUniform(opaque(c)), image.Point{}, draw.Src)
}

// Reset fills the raster with its background color.
func (r *Raster) Reset() { r.Fill(r.background) }

// Equal reports whether r and o hold identical pixels.
func (r *Raster) Equal(o *Raster) bool {
	return r.img.Rect == o.img.Rect && bytes.Equal(r.img.Pix, o.img.Pix)
}

// Count returns how many pixels equal c.
func (r *Raster) Count(c color.Color) int {
	want := opaque(c)
	n := 0
	pix := r.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		if pix[i] == want.R && pix[i+1] == want.G && pix[i+2] == want.B {
			n++
		}
	}
	return n
}
