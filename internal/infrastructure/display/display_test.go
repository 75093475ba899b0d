package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeBackend is a test double for the window system
type fakeBackend struct {
	windowW, windowH int
	fullscreen       bool
	fullW, fullH     int
	cursorVisible    bool
	cursorCalls      int
}

func (b *fakeBackend) SetWindowSize(w, h int) {
	b.windowW, b.windowH = w, h
}

func (b *fakeBackend) SetFullscreen(fullscreen bool) {
	b.fullscreen = fullscreen
}

func (b *fakeBackend) FullscreenSize() (int, int) {
	return b.fullW, b.fullH
}

func (b *fakeBackend) SetCursorVisible(visible bool) {
	b.cursorVisible = visible
	b.cursorCalls++
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{fullW: 1920, fullH: 1080}
}

func TestNew_SizesWindow(t *testing.T) {
	b := newFakeBackend()
	s := New(b, 800, 600)

	w, h := s.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
	assert.Equal(t, 800, b.windowW)
	assert.Equal(t, 600, b.windowH)
	assert.False(t, s.IsFullscreen())
}

func TestSurface_FullscreenRoundTrip(t *testing.T) {
	b := newFakeBackend()
	s := New(b, 800, 600)

	s.EnterFullscreen()
	assert.True(t, s.IsFullscreen())
	assert.True(t, b.fullscreen)
	w, h := s.Size()
	assert.Equal(t, 1920, w, "fullscreen reports the monitor resolution")
	assert.Equal(t, 1080, h)

	s.ExitFullscreen()
	assert.False(t, s.IsFullscreen())
	w, h = s.Size()
	assert.Equal(t, 800, w, "exit restores the exact pre-fullscreen size")
	assert.Equal(t, 600, h)
}

func TestSurface_FullscreenIdempotent(t *testing.T) {
	b := newFakeBackend()
	s := New(b, 800, 600)

	s.EnterFullscreen()
	s.EnterFullscreen()
	s.ExitFullscreen()

	w, h := s.Size()
	assert.Equal(t, 800, w, "double enter must not capture the fullscreen size")
	assert.Equal(t, 600, h)

	s.ExitFullscreen() // already windowed
	w, h = s.Size()
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}

func TestSurface_ResizeUpdatesRestoreSize(t *testing.T) {
	b := newFakeBackend()
	s := New(b, 800, 600)

	s.ResizeTo(1024, 768)
	s.EnterFullscreen()
	s.ExitFullscreen()

	w, h := s.Size()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)
}

func TestSurface_ResizeToIgnoredWhileFullscreen(t *testing.T) {
	b := newFakeBackend()
	s := New(b, 800, 600)

	s.EnterFullscreen()
	s.ResizeTo(100, 100)

	w, h := s.Size()
	assert.Equal(t, 1920, w)
	assert.Equal(t, 1080, h)

	s.ExitFullscreen()
	w, h = s.Size()
	assert.Equal(t, 800, w, "ignored resize must not corrupt the restore size")
	assert.Equal(t, 600, h)
}

func TestSurface_NoteOutsideSize(t *testing.T) {
	b := newFakeBackend()
	s := New(b, 800, 600)
	s.ConsumeResize()

	s.NoteOutsideSize(900, 700)
	assert.True(t, s.ConsumeResize())
	assert.False(t, s.ConsumeResize(), "flag is cleared after consumption")

	w, h := s.Size()
	assert.Equal(t, 900, w)
	assert.Equal(t, 700, h)

	// While fullscreen, the OS-reported size must not leak into the
	// windowed restore size.
	s.EnterFullscreen()
	s.NoteOutsideSize(1920, 1080)
	s.ExitFullscreen()
	w, h = s.Size()
	assert.Equal(t, 900, w)
	assert.Equal(t, 700, h)
}

func TestSurface_NoteOutsideSizeNoChange(t *testing.T) {
	b := newFakeBackend()
	s := New(b, 800, 600)
	s.ConsumeResize()

	s.NoteOutsideSize(800, 600)
	assert.False(t, s.ConsumeResize())

	s.NoteOutsideSize(0, 0)
	assert.False(t, s.ConsumeResize())
}

func TestSurface_ToggleFullscreen(t *testing.T) {
	b := newFakeBackend()
	s := New(b, 800, 600)

	s.ToggleFullscreen()
	assert.True(t, s.IsFullscreen())
	s.ToggleFullscreen()
	assert.False(t, s.IsFullscreen())
}

func TestSurface_Cursor(t *testing.T) {
	b := newFakeBackend()
	s := New(b, 800, 600)

	s.HideCursor()
	assert.False(t, b.cursorVisible)
	s.ShowCursor()
	assert.True(t, b.cursorVisible)
	assert.Equal(t, 2, b.cursorCalls)
}
