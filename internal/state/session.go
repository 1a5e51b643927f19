package state

import (
	"image"
	"image/color"
)

// Options configures a new Session.
type Options struct {
	Width, Height int
	Background    color.Color
	HistoryLimit  int
	Tool          Tool
}

// DefaultOptions is an 800x600 white canvas with a 50 entry history and a
// black brush.
func DefaultOptions() Options {
	return Options{
		Width:        800,
		Height:       600,
		Background:   White,
		HistoryLimit: DefaultHistoryLimit,
		Tool:         DefaultTool(),
	}
}

// Session is one drawing session: it owns the raster, the renderer drawing
// onto it, the undo history and the current tool. All methods must be called
// from the same goroutine, normally the UI event loop.
type Session struct {
	id       string
	raster   *Raster
	renderer *Renderer
	history  *History

	tool   Tool
	stroke Tool // tool captured when the current stroke started
}

// NewSession creates a blank canvas and records it as the undo floor.
func NewSession(opts Options) *Session {
	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.Background == nil {
		opts.Background = White
	}
	if opts.Tool.Size == 0 {
		opts.Tool = DefaultTool()
	}
	r := NewRaster(opts.Width, opts.Height, opts.Background)
	s := &Session{
		id:       newSessionID(),
		raster:   r,
		renderer: NewRenderer(r, nil),
		history:  NewHistory(r, nil, opts.HistoryLimit),
		tool:     opts.Tool.WithSize(opts.Tool.Size),
	}
	s.history.Commit(ActionInitial)

	Logger().Info("session started", "id", s.id,
		"width", r.Width(), "height", r.Height(), "history", s.history.Limit())
	return s
}

// Attach connects the live display and shows the current canvas on it.
func (s *Session) Attach(d Display) {
	s.renderer.SetDisplay(d)
	s.history.SetDisplay(d)
	if d != nil {
		d.Redisplay(s.raster.Image())
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Tool returns the current tool.
func (s *Session) Tool() Tool { return s.tool }

// SetTool replaces the current tool. A stroke in progress keeps the tool it
// started with.
func (s *Session) SetTool(t Tool) {
	s.tool = t.WithSize(t.Size)
}

// Drawing reports whether a stroke is in progress.
func (s *Session) Drawing() bool { return s.renderer.Active() }

// PointerDown starts a stroke at p.
func (s *Session) PointerDown(p Point) {
	if s.renderer.Active() {
		s.PointerUp()
	}
	s.stroke = s.tool
	s.renderer.BeginStroke(p)
}

// PointerMove extends the stroke in progress to p. Moves without a stroke
// are ignored.
func (s *Session) PointerMove(p Point) {
	if !s.renderer.Active() {
		return
	}
	s.renderer.ExtendStroke(p, s.stroke.Ink(s.raster.Background()), s.stroke.Size)
}

// PointerUp finishes the stroke in progress and commits it. A stroke with no
// moves leaves a dot at its start point.
func (s *Session) PointerUp() {
	if !s.renderer.Active() {
		return
	}
	if !s.renderer.Inked() {
		start, _ := s.renderer.Prior()
		s.renderer.ExtendStroke(start, s.stroke.Ink(s.raster.Background()), s.stroke.Size)
	}
	s.renderer.EndStroke()
	s.history.Commit(ActionStroke)
}

// Undo restores the previous canvas. A stroke in progress is committed
// first, so it is what gets undone.
func (s *Session) Undo() error {
	s.PointerUp()
	return s.history.Undo()
}

// Redo restores the most recently undone canvas.
func (s *Session) Redo() error {
	s.PointerUp()
	return s.history.Redo()
}

// Clear resets the canvas to its background and commits it.
func (s *Session) Clear() {
	s.PointerUp()
	s.history.ClearCanvas()
}

// Fill paints the whole canvas c and commits it.
func (s *Session) Fill(c color.Color) {
	s.PointerUp()
	s.history.FillCanvas(c, ActionFill)
}

// Image returns the live raster for display.
func (s *Session) Image() image.Image { return s.raster.Image() }

// Raster returns the session's raster.
func (s *Session) Raster() *Raster { return s.raster }

// History returns the session's undo history.
func (s *Session) History() *History { return s.history }

// Bounds returns the canvas rectangle.
func (s *Session) Bounds() image.Rectangle { return s.raster.Bounds() }
