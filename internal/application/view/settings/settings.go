// Package settings provides the settings view, in two flavors: standalone
// (entered from the main menu) and embedded (entered from gameplay, able
// to resume the paused game).
package settings

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/awaking/internal/application/system"
	"github.com/younwookim/awaking/internal/application/view"
	"github.com/younwookim/awaking/internal/ui"
)

var colorBG = color.RGBA{30, 30, 30, 255}

// Options carries the settings view's collaborators.
//
// ToggleFullscreen must be nil in embedded mode: display mode changes
// are not allowed while a game is paused underneath. A non-nil
// ReturnToGame selects embedded mode.
type Options struct {
	SwitchView       view.SwitchFunc
	Flags            func() view.Flags
	ToggleFullscreen func()
	ToggleFPS        func()
	ReturnToGame     func()

	DesignW    int
	DesignH    int
	ButtonArt  *ebiten.Image
	BorderSize int
}

// Settings is the settings menu view.
type Settings struct {
	opts     Options
	embedded bool

	width, height int

	back       *ui.Button
	menu       *ui.Button // embedded only
	fullscreen *ui.Button
	fps        *ui.Button
	buttons    []*ui.Button
}

// New creates a settings view.
func New(opts Options) *Settings {
	s := &Settings{
		opts:     opts,
		embedded: opts.ReturnToGame != nil,
		width:    opts.DesignW,
		height:   opts.DesignH,
	}

	dw := float64(opts.DesignW)
	dh := float64(opts.DesignH)

	backLabel := "Back"
	backAction := func() { opts.SwitchView(view.RequestMainMenu) }
	if s.embedded {
		backLabel = "Resume"
		backAction = opts.ReturnToGame
	}
	s.back = ui.NewButton(backLabel, 50, dh-80, 200, 60, backAction)

	if s.embedded {
		s.menu = ui.NewButton("Menu", dw-250, dh-80, 200, 60,
			func() { opts.SwitchView(view.RequestMainMenu) })
	}

	if s.embedded {
		s.fullscreen = ui.NewButton("Fullscreen", dw/2-150, 200, 300, 60, nil)
		s.fullscreen.Disabled = true
	} else {
		s.fullscreen = ui.NewButton(fullscreenLabel(opts.Flags()), dw/2-150, 200, 300, 60, s.toggleFullscreen)
	}

	s.fps = ui.NewButton(fpsLabel(opts.Flags()), dw/2-150, 300, 300, 60, s.toggleFPS)

	s.buttons = []*ui.Button{s.back, s.fullscreen, s.fps}
	if s.menu != nil {
		s.buttons = append(s.buttons, s.menu)
	}
	for _, b := range s.buttons {
		if opts.ButtonArt != nil {
			b.SetArt(opts.ButtonArt, opts.BorderSize)
		}
	}

	return s
}

func fullscreenLabel(f view.Flags) string {
	if f.Fullscreen {
		return "Fullscreen: ON"
	}
	return "Fullscreen: OFF"
}

func fpsLabel(f view.Flags) string {
	if f.ShowFPS {
		return "Show FPS: ON"
	}
	return "Show FPS: OFF"
}

func (s *Settings) toggleFullscreen() {
	if s.opts.ToggleFullscreen != nil {
		s.opts.ToggleFullscreen()
	}
	s.fullscreen.Label = fullscreenLabel(s.opts.Flags())
}

func (s *Settings) toggleFPS() {
	if s.opts.ToggleFPS != nil {
		s.opts.ToggleFPS()
	}
	s.fps.Label = fpsLabel(s.opts.Flags())
}

// Embedded reports whether this settings view resumes into gameplay.
func (s *Settings) Embedded() bool {
	return s.embedded
}

// HandleInput processes mouse and escape input (implements view.View)
func (s *Settings) HandleInput(in system.Input) {
	for _, b := range s.buttons {
		b.Hover(in.MouseX, in.MouseY)
	}
	if in.Click {
		for _, b := range s.buttons {
			if b.Click(in.MouseX, in.MouseY) {
				break
			}
		}
	}
	if in.Escape {
		if s.embedded {
			s.opts.ReturnToGame()
		} else {
			s.opts.SwitchView(view.RequestMainMenu)
		}
	}
}

// Update is a no-op; settings has no time-based state.
func (s *Settings) Update(_ float64) {}

// Draw renders the settings screen (implements view.View)
func (s *Settings) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	ebitenutil.DebugPrintAt(screen, "Settings", s.width/2-24, 50)
	for _, b := range s.buttons {
		b.Draw(screen)
	}
}

// HandleResize rescales and re-anchors the layout (implements view.View)
func (s *Settings) HandleResize(w, h int) {
	s.width, s.height = w, h
	scale := view.Scale(w, h, s.opts.DesignW, s.opts.DesignH)

	for _, b := range s.buttons {
		b.Resize(scale)
	}

	// Bottom-anchored buttons track the window edges, not the scaled
	// design position.
	s.back.MoveTo(50*scale, float64(h)-80*scale)
	if s.menu != nil {
		s.menu.MoveTo(float64(w)-250*scale, float64(h)-80*scale)
	}
	s.fullscreen.CenterX(float64(w) / 2)
	s.fps.CenterX(float64(w) / 2)
}
