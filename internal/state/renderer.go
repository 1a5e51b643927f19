package state

import (
	"image"
	"image/color"
	"image/draw"

	"honnef.co/go/curve"
)

// Display is the live on-screen view of a canvas.
type Display interface {
	// Surface returns the image strokes are mirrored onto while they are
	// drawn, or nil if the display reads the raster directly.
	Surface() draw.Image
	// Invalidate asks for rect to be redrawn.
	Invalidate(rect image.Rectangle)
	// Redisplay replaces the whole view with src.
	Redisplay(src image.Image)
}

type nopDisplay struct{}

func (nopDisplay) Surface() draw.Image        { return nil }
func (nopDisplay) Invalidate(image.Rectangle) {}
func (nopDisplay) Redisplay(image.Image)      {}

// Renderer turns pointer samples into pixels on a Raster and its Display.
type Renderer struct {
	raster  *Raster
	display Display

	prior    Point
	hasPrior bool
	inked    bool
}

// NewRenderer creates a renderer drawing onto r. A nil display is allowed.
func NewRenderer(r *Raster, d Display) *Renderer {
	rd := &Renderer{raster: r}
	rd.SetDisplay(d)
	return rd
}

// SetDisplay replaces the display strokes are mirrored onto.
func (rd *Renderer) SetDisplay(d Display) {
	if d == nil {
		d = nopDisplay{}
	}
	rd.display = d
}

// BeginStroke records the first sample of a stroke without drawing.
func (rd *Renderer) BeginStroke(p Point) {
	rd.prior = p
	rd.hasPrior = true
	rd.inked = false
}

// ExtendStroke draws from the previous sample to p. When there is no
// previous sample, or p repeats it, a dot of radius width/2 is stamped at p
// instead so a stationary pointer still leaves ink. Only the touched
// rectangle is invalidated on the display.
func (rd *Renderer) ExtendStroke(p Point, c color.Color, width int) {
	var (
		seg curve.Line
		r   float64
	)
	if rd.hasPrior && rd.prior != p {
		seg, r = curve.Line{P0: rd.prior.vec(), P1: p.vec()}, segmentRadius(width)
	} else {
		seg, r = curve.Line{P0: p.vec(), P1: p.vec()}, dotRadius(width)
	}
	dirty := ink(rd.surfaces(), rd.raster.Bounds(), seg, r, opaque(c))

	rd.prior = p
	rd.hasPrior = true
	rd.inked = true
	if !dirty.Empty() {
		rd.display.Invalidate(dirty)
	}
}

// EndStroke forgets the previous sample so the next stroke starts fresh.
// It reports whether a stroke was in progress.
func (rd *Renderer) EndStroke() bool {
	active := rd.hasPrior
	rd.hasPrior = false
	rd.inked = false
	return active
}

// Active reports whether a stroke is in progress.
func (rd *Renderer) Active() bool { return rd.hasPrior }

// Inked reports whether the stroke in progress has drawn anything yet.
func (rd *Renderer) Inked() bool { return rd.inked }

// Prior returns the previous sample of the stroke in progress.
func (rd *Renderer) Prior() (Point, bool) { return rd.prior, rd.hasPrior }

func (rd *Renderer) surfaces() []draw.Image {
	s := []draw.Image{rd.raster.img}
	if v := rd.display.Surface(); v != nil {
		s = append(s, v)
	}
	return s
}
