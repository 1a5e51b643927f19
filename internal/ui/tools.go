package ui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"MyLocalPaint/internal/config"
	"MyLocalPaint/internal/state"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

var palette = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},         // Red
	color.NRGBA{G: 255, A: 255},         // Green
	color.NRGBA{B: 255, A: 255},         // Blue
	color.NRGBA{R: 255, G: 255, A: 255}, // Yellow
}

// Toolbar holds the controls that drive a BoardWidget.
type Toolbar struct {
	widget.BaseWidget
	board   *BoardWidget
	content fyne.CanvasObject

	current  *canvas.Rectangle
	colorHex  *widget.Label
	mode      *widget.Label
	size      *widget.Slider
	sizeLabel *widget.Label
	undo      *widget.Button
	redo      *widget.Button
}

// NewToolbar builds the toolbar for board. Dialogs open on win.
func NewToolbar(board *BoardWidget, win fyne.Window) *Toolbar {
	t := &Toolbar{board: board}
	tool := board.Tool()

	// --- Current color + picker ---
	t.current = canvas.NewRectangle(tool.Color)
	t.current.SetMinSize(fyne.NewSize(24, 24))
	t.colorHex = widget.NewLabel(config.FormatColor(tool.Color))
	colorBtn := widget.NewButtonWithIcon("Color", theme.ColorPaletteIcon(), func() {
		picker := dialog.NewColorPicker("Brush Color", "Choose the brush color", board.SetColor, win)
		picker.Advanced = true
		picker.SetColor(board.Tool().Color)
		picker.Show()
	})

	swatches := container.NewHBox()
	for _, c := range palette {
		swatches.Add(newColorSwatch(c, board.SetColor))
	}

	// --- Brush size ---
	t.sizeLabel = widget.NewLabel(strconv.Itoa(tool.Size))
	t.size = widget.NewSlider(state.MinBrushSize, state.MaxBrushSize)
	t.size.Step = 1
	t.size.SetValue(float64(tool.Size))
	t.size.OnChanged = func(v float64) {
		board.SetSize(int(v))
	}
	sizeBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.size)

	// --- Modes and history ---
	t.mode = widget.NewLabel(tool.Mode.String())
	brushBtn := widget.NewButtonWithIcon("Brush", theme.DocumentCreateIcon(), board.UseBrush)
	eraserBtn := widget.NewButtonWithIcon("Eraser", theme.ContentClearIcon(), board.UseEraser)
	t.undo = widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), board.Undo)
	t.redo = widget.NewButtonWithIcon("Redo", theme.ContentRedoIcon(), board.Redo)
	clearBtn := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), board.Clear)
	fillBtn := widget.NewButtonWithIcon("Fill", theme.ColorChromaticIcon(), func() {
		board.Fill(board.Tool().Color)
	})

	board.OnToolChanged = t.showTool
	board.OnHistoryChanged = t.showHistory
	t.showHistory(board.Session().History().Stats())

	t.ExtendBaseWidget(t)
	t.content = container.NewVBox(
		container.NewHBox(
			colorBtn, t.current, t.colorHex, swatches,
			widget.NewSeparator(),
			widget.NewLabel("Brush Size:"), sizeBox, t.sizeLabel,
			layout.NewSpacer(),
		),
		container.NewHBox(
			brushBtn, eraserBtn, t.mode,
			widget.NewSeparator(),
			t.undo, t.redo, clearBtn, fillBtn,
			layout.NewSpacer(),
		),
	)
	return t
}

func (t *Toolbar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(t.content)
}

// UndoButton and RedoButton are enabled only while there is something to
// step to.
func (t *Toolbar) UndoButton() *widget.Button { return t.undo }
func (t *Toolbar) RedoButton() *widget.Button { return t.redo }

func (t *Toolbar) showTool(tool state.Tool) {
	t.current.FillColor = tool.Color
	t.current.Refresh()
	t.colorHex.SetText(config.FormatColor(tool.Color))
	t.mode.SetText(tool.Mode.String())
	t.sizeLabel.SetText(strconv.Itoa(tool.Size))
	if int(t.size.Value) != tool.Size {
		t.size.SetValue(float64(tool.Size))
	}
}

func (t *Toolbar) showHistory(st state.Stats) {
	if st.Depth > 1 {
		t.undo.Enable()
	} else {
		t.undo.Disable()
	}
	if st.RedoDepth > 0 {
		t.redo.Enable()
	} else {
		t.redo.Disable()
	}
}
