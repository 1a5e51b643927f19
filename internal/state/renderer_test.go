package state

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtendWithoutPriorStampsDot(t *testing.T) {
	r := NewRaster(40, 40, White)
	rd := NewRenderer(r, nil)

	rd.ExtendStroke(Pt(10, 10), red, 5)

	// radius 2: the 13 pixels whose centers are within 2 of (10,10)
	assert.Equal(t, 13, r.Count(red))
	for _, p := range []Point{{10, 10}, {12, 10}, {8, 10}, {10, 12}, {10, 8}, {11, 11}, {9, 9}} {
		assert.Equal(t, red, r.At(p.X, p.Y), "pixel %v", p)
	}
	for _, p := range []Point{{13, 10}, {12, 11}, {12, 12}, {10, 13}} {
		assert.Equal(t, White, r.At(p.X, p.Y), "pixel %v", p)
	}
}

func TestExtendRepeatedPointStampsDot(t *testing.T) {
	r := NewRaster(40, 40, White)
	rd := NewRenderer(r, nil)
	rd.BeginStroke(Pt(10, 10))
	rd.ExtendStroke(Pt(10, 10), red, 5)
	assert.Equal(t, 13, r.Count(red))
	assert.True(t, rd.Inked())
}

func TestBeginStrokeDoesNotDraw(t *testing.T) {
	r := NewRaster(20, 20, White)
	rd := NewRenderer(r, nil)
	rd.BeginStroke(Pt(5, 5))
	assert.Equal(t, 400, r.Count(White))
	assert.True(t, rd.Active())
	assert.False(t, rd.Inked())
}

func TestExtendDrawsRoundCappedSegment(t *testing.T) {
	r := NewRaster(60, 40, White)
	rd := NewRenderer(r, nil)
	rd.BeginStroke(Pt(10, 20))
	rd.ExtendStroke(Pt(40, 20), black, 5)

	// body of the segment, 2.5 px either side of y=20
	for x := 10; x <= 40; x++ {
		for y := 18; y <= 22; y++ {
			assert.Equal(t, black, r.At(x, y), "pixel (%d,%d)", x, y)
		}
		assert.Equal(t, White, r.At(x, 17))
		assert.Equal(t, White, r.At(x, 23))
	}
	// round caps extend past both ends
	assert.Equal(t, black, r.At(8, 20))
	assert.Equal(t, black, r.At(42, 20))
	assert.Equal(t, White, r.At(7, 20))
	assert.Equal(t, White, r.At(43, 20))
	// but not into the corners
	assert.Equal(t, White, r.At(8, 18))
}

func TestExtendChainsFromPriorPoint(t *testing.T) {
	r := NewRaster(50, 50, White)
	rd := NewRenderer(r, nil)
	rd.BeginStroke(Pt(5, 5))
	rd.ExtendStroke(Pt(5, 25), black, 1)
	rd.ExtendStroke(Pt(25, 25), black, 1)

	p, ok := rd.Prior()
	require.True(t, ok)
	assert.Equal(t, Pt(25, 25), p)
	for y := 5; y <= 25; y++ {
		assert.Equal(t, black, r.At(5, y))
	}
	for x := 5; x <= 25; x++ {
		assert.Equal(t, black, r.At(x, 25))
	}
	assert.Equal(t, 41, r.Count(black))
}

func TestWidthOneDotIsSinglePixel(t *testing.T) {
	r := NewRaster(10, 10, White)
	rd := NewRenderer(r, nil)
	rd.ExtendStroke(Pt(3, 4), red, 1)
	assert.Equal(t, 1, r.Count(red))
	assert.Equal(t, red, r.At(3, 4))
}

func TestWidthBelowOneIsTolerated(t *testing.T) {
	r := NewRaster(10, 10, White)
	rd := NewRenderer(r, nil)
	rd.ExtendStroke(Pt(3, 4), red, 0)
	assert.Equal(t, 1, r.Count(red))
}

func TestEndStrokeClearsPrior(t *testing.T) {
	r := NewRaster(30, 30, White)
	rd := NewRenderer(r, nil)
	rd.BeginStroke(Pt(2, 2))
	rd.ExtendStroke(Pt(4, 2), black, 1)
	assert.True(t, rd.EndStroke())
	assert.False(t, rd.Active())
	assert.False(t, rd.EndStroke())

	// A new sample after EndStroke is a dot, not a line from (4,2).
	before := r.Count(black)
	rd.ExtendStroke(Pt(20, 20), black, 1)
	assert.Equal(t, before+1, r.Count(black))
	assert.Equal(t, White, r.At(12, 11))
}

func TestOffCanvasSegmentsAreClipped(t *testing.T) {
	r := NewRaster(20, 20, White)
	rd := NewRenderer(r, nil)
	rd.BeginStroke(Pt(10, 10))
	rd.ExtendStroke(Pt(-500, 10), black, 3)
	rd.ExtendStroke(Pt(-500, 1_000_000), black, 3)

	for x := 0; x <= 10; x++ {
		assert.Equal(t, black, r.At(x, 10))
	}
	assert.Equal(t, White, r.At(15, 10))
}

func TestFullyOffCanvasSampleDoesNotInvalidate(t *testing.T) {
	r := NewRaster(20, 20, White)
	d := newRecordingDisplay(20, 20)
	rd := NewRenderer(r, d)
	rd.ExtendStroke(Pt(-100, -100), black, 5)
	assert.Empty(t, d.invalidated)
	assert.Equal(t, 400, r.Count(White))
}

func TestDisplayMirrorsRasterAndOnlyInvalidatesSegment(t *testing.T) {
	r := NewRaster(100, 100, White)
	d := newRecordingDisplay(100, 100)
	d.Redisplay(r.Image())
	rd := NewRenderer(r, d)

	rd.BeginStroke(Pt(10, 10))
	rd.ExtendStroke(Pt(20, 10), red, 4)
	rd.ExtendStroke(Pt(20, 30), red, 4)

	assert.Equal(t, r.Image().Pix, d.view.Pix)
	require.Len(t, d.invalidated, 2)
	assert.Equal(t, image.Rect(8, 8, 23, 13), d.invalidated[0])
	assert.True(t, d.invalidated[1].In(image.Rect(0, 0, 100, 100)))
	assert.Less(t, d.invalidated[1].Dx()*d.invalidated[1].Dy(), 100*100)
}

func TestCoverageIsClipped(t *testing.T) {
	r := NewRaster(10, 10, White)
	rd := NewRenderer(r, nil)
	rd.ExtendStroke(Pt(0, 0), black, 20)
	assert.Equal(t, black, r.At(0, 0))
	assert.Equal(t, black, r.At(9, 0))
	assert.Equal(t, White, r.At(9, 9))
}

func TestSegmentDirectionDoesNotMatter(t *testing.T) {
	fwd := NewRaster(60, 60, White)
	rd := NewRenderer(fwd, nil)
	rd.BeginStroke(Pt(10, 15))
	rd.ExtendStroke(Pt(45, 40), black, 7)

	rev := NewRaster(60, 60, White)
	rd = NewRenderer(rev, nil)
	rd.BeginStroke(Pt(45, 40))
	rd.ExtendStroke(Pt(10, 15), black, 7)

	assert.True(t, fwd.Equal(rev))
	assert.Equal(t, black, rev.At(7, 15), "cap past the end point")
}
