// Package view defines the View interface for top-level presentation modes.
//
// Each mode (main menu, settings, gameplay) implements the View
// interface. Exactly one view is current at any time; switching is
// requested through a SwitchFunc and resolved by the orchestrator.
package view

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/awaking/internal/application/system"
)

// View represents a top-level presentation mode.
//
// Views that have no time-based state implement Update as a no-op; the
// set of operations is fixed so callers never probe for capabilities.
type View interface {
	// HandleInput consumes the per-tick input snapshot.
	HandleInput(in system.Input)

	// Update advances time-based state. dt is the delta time in seconds.
	Update(dt float64)

	// Draw renders the view to the screen.
	Draw(screen *ebiten.Image)

	// HandleResize repositions internal elements for a new window size.
	// Layout scales uniformly from the design size (see Scale).
	HandleResize(w, h int)
}

// Resumable marks a view that can be paused behind another view and
// later restored as current without reconstruction.
type Resumable interface {
	View
	Pause()
	Resume()
}

// SwitchFunc routes a view switch request to the orchestrator.
type SwitchFunc func(Request)

// Request identifies the view to switch to
type Request int

const (
	RequestMainMenu Request = iota
	RequestGame
	RequestSettings
	RequestGameSettings
	RequestExit
)

// String returns the string representation of the request
func (r Request) String() string {
	switch r {
	case RequestMainMenu:
		return "MainMenu"
	case RequestGame:
		return "Game"
	case RequestSettings:
		return "Settings"
	case RequestGameSettings:
		return "GameSettings"
	case RequestExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Flags is the snapshot of app state the settings view renders.
type Flags struct {
	Fullscreen bool
	ShowFPS    bool
}

// Scale returns the uniform layout scale for a window size against the
// design size. Using the smaller axis ratio preserves the aspect ratio
// of UI art.
func Scale(w, h, designW, designH int) float64 {
	sx := float64(w) / float64(designW)
	sy := float64(h) / float64(designH)
	if sx < sy {
		return sx
	}
	return sy
}
