package ui

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"MyLocalPaint/internal/state"
)

// BoardWidget shows a drawing session and feeds it pointer input. It is the
// session's live display: strokes are mirrored onto its own image as they
// are drawn, and undo, redo and clear replace that image wholesale.
type BoardWidget struct {
	widget.BaseWidget
	session   *state.Session
	view      *image.RGBA
	image     *canvas.Image
	statusBar *widget.Label

	OnToolChanged    func(state.Tool)
	OnHistoryChanged func(state.Stats)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ state.Display = (*BoardWidget)(nil)

func NewBoardWidget(s *state.Session) *BoardWidget {
	b := &BoardWidget{
		session:   s,
		view:      image.NewRGBA(s.Bounds()),
		statusBar: widget.NewLabel("Ready"),
	}
	b.image = canvas.NewImageFromImage(b.view)
	b.image.FillMode = canvas.ImageFillOriginal
	b.image.ScaleMode = canvas.ImageScalePixels
	b.ExtendBaseWidget(b)
	s.Attach(b)
	return b
}

// Session returns the drawing session behind the board.
func (b *BoardWidget) Session() *state.Session { return b.session }

// StatusBar returns the label the board reports results on.
func (b *BoardWidget) StatusBar() *widget.Label { return b.statusBar }

func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

// Surface is the image strokes are mirrored onto.
func (b *BoardWidget) Surface() draw.Image { return b.view }

// Invalidate refreshes the board after a stroke segment. Only rect changed;
// fyne re-uploads the image as a whole.
func (b *BoardWidget) Invalidate(rect image.Rectangle) {
	if rect.Empty() {
		return
	}
	b.image.Refresh()
}

// Redisplay copies src over the whole board.
func (b *BoardWidget) Redisplay(src image.Image) {
	draw.Draw(b.view, b.view.Rect, src, src.Bounds().Min, draw.Src)
	b.image.Refresh()
}

// Tool returns the current tool.
func (b *BoardWidget) Tool() state.Tool { return b.session.Tool() }

func (b *BoardWidget) SetColor(c color.Color) {
	b.setTool(b.session.Tool().WithColor(c))
}

func (b *BoardWidget) SetSize(n int) {
	b.setTool(b.session.Tool().WithSize(n))
}

func (b *BoardWidget) UseBrush() {
	b.setTool(b.session.Tool().WithMode(state.ModeBrush))
}

func (b *BoardWidget) UseEraser() {
	b.setTool(b.session.Tool().WithMode(state.ModeEraser))
}

func (b *BoardWidget) setTool(t state.Tool) {
	b.session.SetTool(t)
	t = b.session.Tool()
	state.Logger().Debug("tool changed", "mode", t.Mode, "size", t.Size)
	if b.OnToolChanged != nil {
		b.OnToolChanged(t)
	}
}

func (b *BoardWidget) Undo() {
	if err := b.session.Undo(); err != nil {
		b.report(err)
		return
	}
	b.historyChanged("Undo")
}

func (b *BoardWidget) Redo() {
	if err := b.session.Redo(); err != nil {
		b.report(err)
		return
	}
	b.historyChanged("Redo")
}

// Clear wipes the canvas to its background.
func (b *BoardWidget) Clear() {
	b.session.Clear()
	b.historyChanged("Cleared")
}

// Fill paints the whole canvas c.
func (b *BoardWidget) Fill(c color.Color) {
	b.session.Fill(c)
	b.historyChanged("Filled")
}

func (b *BoardWidget) report(err error) {
	switch {
	case errors.Is(err, state.ErrNothingToUndo):
		b.SetStatus("Nothing to undo")
	case errors.Is(err, state.ErrNothingToRedo):
		b.SetStatus("Nothing to redo")
	default:
		state.Logger().Warn("board action failed", "err", err)
		b.SetStatus(fmt.Sprintf("Error: %v", err))
	}
}

func (b *BoardWidget) historyChanged(what string) {
	st := b.session.History().Stats()
	if what != "" {
		b.SetStatus(fmt.Sprintf("%s (%d/%d)", what, st.Depth-1, st.Limit-1))
	}
	if b.OnHistoryChanged != nil {
		b.OnHistoryChanged(st)
	}
}

func toPoint(p fyne.Position) state.Point {
	return state.Pt(int(math.Floor(float64(p.X))), int(math.Floor(float64(p.Y))))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.session.PointerDown(toPoint(e.Position))
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.endStroke()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.session.Drawing() {
		b.session.PointerMove(toPoint(e.Position))
	}
}

func (b *BoardWidget) DragEnd() {
	b.endStroke()
}

func (b *BoardWidget) endStroke() {
	if !b.session.Drawing() {
		return
	}
	b.session.PointerUp()
	b.historyChanged("")
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) Cursor() desktop.Cursor {
	return desktop.CrosshairCursor
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.board.image}
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.image.Move(fyne.NewPos(0, 0))
	r.board.image.Resize(r.MinSize())
}

// MinSize is the canvas size; the board never scales its pixels.
func (r *boardWidgetRenderer) MinSize() fyne.Size {
	bounds := r.board.session.Bounds()
	return fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy()))
}

func (r *boardWidgetRenderer) Refresh() {
	r.background.FillColor = theme.Color(theme.ColorNameInputBackground)
	r.background.Refresh()
	r.board.image.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}
