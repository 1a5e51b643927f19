package state

import (
	"fmt"
	"image"
	"image/color"

	"honnef.co/go/curve"
)

// Point is a pointer sample in canvas pixel coordinates.
type Point struct{ X, Y int }

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

func (p Point) vec() curve.Point { return curve.Pt(float64(p.X), float64(p.Y)) }

// In reports whether p lies inside r.
func (p Point) In(r image.Rectangle) bool { return image.Pt(p.X, p.Y).In(r) }

// ToolMode selects what a stroke paints.
type ToolMode int

const (
	ModeBrush ToolMode = iota
	ModeEraser
)

func (m ToolMode) String() string {
	switch m {
	case ModeBrush:
		return "brush"
	case ModeEraser:
		return "eraser"
	default:
		return fmt.Sprintf("ToolMode(%d)", int(m))
	}
}

// Brush size bounds.
const (
	MinBrushSize     = 1
	MaxBrushSize     = 20
	DefaultBrushSize = 5
)

// Action labels the change a snapshot records.
type Action string

const (
	ActionInitial Action = "initial"
	ActionStroke  Action = "stroke"
	ActionClear   Action = "clear"
	ActionFill    Action = "fill"
)

// White is the default canvas background.
var White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// opaque converts c to a fully opaque RGBA value. The canvas has no alpha
// channel, so translucent picks are flattened to their straight color.
func opaque(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{A: 255}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 255}
}
