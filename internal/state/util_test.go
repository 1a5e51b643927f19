package state

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	black = color.RGBA{A: 255}
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// recordingDisplay mirrors strokes onto its own image and records what it
// was asked to refresh.
type recordingDisplay struct {
	view        *image.RGBA
	invalidated []image.Rectangle
	redisplays  int
}

func newRecordingDisplay(w, h int) *recordingDisplay {
	return &recordingDisplay{view: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (d *recordingDisplay) Surface() draw.Image { return d.view }

func (d *recordingDisplay) Invalidate(r image.Rectangle) {
	d.invalidated = append(d.invalidated, r)
}

func (d *recordingDisplay) Redisplay(src image.Image) {
	d.redisplays++
	draw.Draw(d.view, d.view.Bounds(), src, image.Point{}, draw.Src)
}

// snapshotPixels copies the raster for later comparison.
func snapshotPixels(r *Raster) []byte {
	return append([]byte(nil), r.Image().Pix...)
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(DefaultOptions())
}

// stroke draws a complete stroke through pts.
func stroke(s *Session, pts ...Point) {
	s.PointerDown(pts[0])
	for _, p := range pts[1:] {
		s.PointerMove(p)
	}
	s.PointerUp()
}
