// Package display owns the window geometry: current size, fullscreen state
// and the windowed size to restore when leaving fullscreen.
package display

import "github.com/hajimehoshi/ebiten/v2"

// Backend abstracts the window system calls so Surface can be tested
// without a running game loop.
type Backend interface {
	SetWindowSize(w, h int)
	SetFullscreen(fullscreen bool)
	FullscreenSize() (int, int)
	SetCursorVisible(visible bool)
}

// Ebiten is the production backend over ebiten's window functions.
type Ebiten struct{}

func (Ebiten) SetWindowSize(w, h int) {
	ebiten.SetWindowSize(w, h)
}

func (Ebiten) SetFullscreen(fullscreen bool) {
	ebiten.SetFullscreen(fullscreen)
}

func (Ebiten) FullscreenSize() (int, int) {
	return ebiten.Monitor().Size()
}

func (Ebiten) SetCursorVisible(visible bool) {
	mode := ebiten.CursorModeHidden
	if visible {
		mode = ebiten.CursorModeVisible
	}
	ebiten.SetCursorMode(mode)
}

// Surface tracks the live window geometry.
//
// Invariant: entering and then leaving fullscreen restores exactly the
// windowed size captured at the moment fullscreen was entered, never a
// monitor-reported size.
type Surface struct {
	backend Backend

	width, height                int
	lastWindowedW, lastWindowedH int
	fullscreen                   bool
	resized                      bool
}

// New creates a surface and sizes the window to w x h.
func New(backend Backend, w, h int) *Surface {
	s := &Surface{
		backend:       backend,
		width:         w,
		height:        h,
		lastWindowedW: w,
		lastWindowedH: h,
	}
	backend.SetWindowSize(w, h)
	return s
}

// Size returns the current surface size.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// IsFullscreen reports whether the surface is in fullscreen mode.
func (s *Surface) IsFullscreen() bool {
	return s.fullscreen
}

// ResizeTo resizes the window programmatically. Ignored while fullscreen.
func (s *Surface) ResizeTo(w, h int) {
	if s.fullscreen {
		return
	}
	s.width, s.height = w, h
	s.lastWindowedW, s.lastWindowedH = w, h
	s.backend.SetWindowSize(w, h)
	s.resized = true
}

// NoteOutsideSize records a size reported by the window system (a user
// drag-resize or the fullscreen resolution). While windowed it also
// updates the size restored when fullscreen is later toggled off.
func (s *Surface) NoteOutsideSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h
	if !s.fullscreen {
		s.lastWindowedW, s.lastWindowedH = w, h
	}
	s.resized = true
}

// ConsumeResize reports whether the geometry changed since the last call
// and clears the flag.
func (s *Surface) ConsumeResize() bool {
	r := s.resized
	s.resized = false
	return r
}

// EnterFullscreen switches to fullscreen, capturing the current windowed
// size first. No-op if already fullscreen.
func (s *Surface) EnterFullscreen() {
	if s.fullscreen {
		return
	}
	s.lastWindowedW, s.lastWindowedH = s.width, s.height
	s.fullscreen = true
	s.backend.SetFullscreen(true)
	s.width, s.height = s.backend.FullscreenSize()
	s.resized = true
}

// ExitFullscreen returns to windowed mode at the captured windowed size.
// No-op if not fullscreen.
func (s *Surface) ExitFullscreen() {
	if !s.fullscreen {
		return
	}
	s.fullscreen = false
	s.backend.SetFullscreen(false)
	s.width, s.height = s.lastWindowedW, s.lastWindowedH
	s.backend.SetWindowSize(s.width, s.height)
	s.resized = true
}

// ToggleFullscreen flips between windowed and fullscreen mode.
func (s *Surface) ToggleFullscreen() {
	if s.fullscreen {
		s.ExitFullscreen()
	} else {
		s.EnterFullscreen()
	}
}

// ShowCursor makes the mouse cursor visible.
func (s *Surface) ShowCursor() {
	s.backend.SetCursorVisible(true)
}

// HideCursor hides the mouse cursor.
func (s *Surface) HideCursor() {
	s.backend.SetCursorVisible(false)
}
