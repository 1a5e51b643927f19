package state

import (
	"image"
	"image/color"
	"image/draw"

	"honnef.co/go/curve"
)

// segmentRadius is the pen radius of a line segment drawn at width.
func segmentRadius(width int) float64 {
	return float64(max(width, 1)) / 2
}

// dotRadius is the radius of the dot a stationary sample leaves. It uses
// whole pixels, so a width 5 brush leaves a radius 2 dot.
func dotRadius(width int) float64 {
	return float64(max(width, 1) / 2)
}

// coverage returns the pixels a pen of radius r can reach while travelling
// along seg, clipped to clip.
func coverage(seg curve.Line, r float64, clip image.Rectangle) image.Rectangle {
	box := seg.BoundingBox().Abs().Inflate(r, r).Expand()
	area := image.Rect(int(box.X0), int(box.Y0), int(box.X1)+1, int(box.Y1)+1)
	return area.Intersect(clip)
}

// ink paints every pixel whose center lies within r of seg onto each
// surface and returns the rectangle it examined. Pixels are either set to c
// or left alone; there is no anti-aliasing.
func ink(surfaces []draw.Image, clip image.Rectangle, seg curve.Line, r float64, c color.RGBA) image.Rectangle {
	area := coverage(seg, r, clip)
	if area.Empty() {
		return image.Rectangle{}
	}
	limit := r * r
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if d, _ := seg.Nearest(curve.Pt(float64(x), float64(y)), 0); d > limit {
				continue
			}
			for _, s := range surfaces {
				if rgba, ok := s.(*image.RGBA); ok {
					rgba.SetRGBA(x, y, c)
				} else {
					s.Set(x, y, c)
				}
			}
		}
	}
	return area
}
