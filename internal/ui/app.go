package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"MyLocalPaint/internal/config"
	"MyLocalPaint/internal/state"
)

// keyBinding maps a keyboard shortcut to a board action.
type keyBinding struct {
	shortcut *desktop.CustomShortcut
	action   func()
}

func keyBindings(b *BoardWidget) []keyBinding {
	return []keyBinding{
		{&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl}, b.Undo},
		{&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierControl}, b.Redo},
	}
}

// NewWindow lays out a paint window for s on a.
func NewWindow(a fyne.App, cfg config.Config, s *state.Session) (fyne.Window, *BoardWidget) {
	w := a.NewWindow(cfg.Title)
	if icon := loadIcon(FindIcon(cfg.Icon, iconDirs()...)); icon != nil {
		w.SetIcon(icon)
	}

	// Create the interactive board widget
	board := NewBoardWidget(s)

	// Create the toolbar and pass it a reference to the board
	toolbar := NewToolbar(board, w)

	for _, kb := range keyBindings(board) {
		action := kb.action
		w.Canvas().AddShortcut(kb.shortcut, func(fyne.Shortcut) { action() })
	}

	// Set up the main layout
	content := container.NewBorder(toolbar, board.StatusBar(), nil, nil, container.NewScroll(board))
	w.SetContent(content)

	bounds := s.Bounds()
	w.Resize(fyne.NewSize(float32(bounds.Dx())+40, float32(bounds.Dy())+140))
	return w, board
}

// RunApp opens the paint window and blocks until it is closed.
func RunApp(cfg config.Config, s *state.Session) {
	myApp := app.New()
	myWindow, _ := NewWindow(myApp, cfg, s)
	state.Logger().Info("window ready", "title", cfg.Title, "session", s.ID())
	myWindow.ShowAndRun()
}
