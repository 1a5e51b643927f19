package ui

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"

	"MyLocalPaint/internal/state"
)

// iconNames are tried in order.
var iconNames = []string{"PaintIcon.png", "painticon.png", "icon.png", "Icon.png"}

// iconDirs returns the working directory and the executable's directory.
func iconDirs() []string {
	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	return dirs
}

// FindIcon returns the path of the window icon. An explicit path wins when
// it exists; otherwise each known name is looked up in dirs, in order. It
// returns "" when nothing is found.
func FindIcon(explicit string, dirs ...string) string {
	if explicit != "" {
		if fileExists(explicit) {
			return explicit
		}
		state.Logger().Warn("icon not found", "path", explicit)
	}
	for _, name := range iconNames {
		for _, dir := range dirs {
			p := filepath.Join(dir, name)
			if fileExists(p) {
				return p
			}
		}
	}
	return ""
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// loadIcon reads the icon at path; a failed load leaves the window without one.
func loadIcon(path string) fyne.Resource {
	if path == "" {
		return nil
	}
	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		state.Logger().Warn("loading icon", "path", path, "err", err)
		return nil
	}
	return res
}
