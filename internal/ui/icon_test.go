package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o600))
}

func TestFindIconPrefersNameOrder(t *testing.T) {
	wd, exe := t.TempDir(), t.TempDir()
	touch(t, filepath.Join(wd, "icon.png"))
	touch(t, filepath.Join(exe, "PaintIcon.png"))

	assert.Equal(t, filepath.Join(exe, "PaintIcon.png"), FindIcon("", wd, exe))
}

func TestFindIconPrefersFirstDir(t *testing.T) {
	wd, exe := t.TempDir(), t.TempDir()
	touch(t, filepath.Join(wd, "painticon.png"))
	touch(t, filepath.Join(exe, "painticon.png"))

	assert.Equal(t, filepath.Join(wd, "painticon.png"), FindIcon("", wd, exe))
}

func TestFindIconExplicit(t *testing.T) {
	dir := t.TempDir()
	custom := filepath.Join(dir, "custom.png")
	touch(t, custom)
	touch(t, filepath.Join(dir, "PaintIcon.png"))

	assert.Equal(t, custom, FindIcon(custom, dir))
	assert.Equal(t, filepath.Join(dir, "PaintIcon.png"), FindIcon(filepath.Join(dir, "gone.png"), dir))
}

func TestFindIconNone(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "icon.png"), 0o700))
	assert.Equal(t, "", FindIcon("", dir))
	assert.Nil(t, loadIcon(""))
}
