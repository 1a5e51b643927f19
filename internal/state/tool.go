package state

import "image/color"

// Tool is the brush configuration a stroke is drawn with. It is a value:
// changing the tool produces a new Tool, and a Session reads it once when a
// stroke starts.
type Tool struct {
	Mode  ToolMode
	Color color.RGBA
	Size  int
}

// DefaultTool is a black brush of DefaultBrushSize.
func DefaultTool() Tool {
	return Tool{Mode: ModeBrush, Color: color.RGBA{A: 255}, Size: DefaultBrushSize}
}

// WithMode returns t switched to mode m.
func (t Tool) WithMode(m ToolMode) Tool {
	t.Mode = m
	return t
}

// WithColor returns t painting c. Picking a color leaves eraser mode.
func (t Tool) WithColor(c color.Color) Tool {
	t.Color = opaque(c)
	t.Mode = ModeBrush
	return t
}

// WithSize returns t with its size clamped to [MinBrushSize, MaxBrushSize].
func (t Tool) WithSize(n int) Tool {
	t.Size = ClampSize(n)
	return t
}

// Ink is the color a stroke made with t leaves on a canvas with the given
// background. The eraser paints background; it does not make pixels
// transparent.
func (t Tool) Ink(background color.Color) color.RGBA {
	if t.Mode == ModeEraser {
		return opaque(background)
	}
	return t.Color
}

// ClampSize forces n into the supported brush size range.
func ClampSize(n int) int {
	return min(max(n, MinBrushSize), MaxBrushSize)
}
