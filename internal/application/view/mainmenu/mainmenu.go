// Package mainmenu provides the title screen view.
package mainmenu

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/awaking/internal/application/system"
	"github.com/younwookim/awaking/internal/application/view"
	"github.com/younwookim/awaking/internal/ui"
)

var colorBG = color.RGBA{20, 20, 28, 255}

// Menu is the main menu view: a column of buttons on the left.
type Menu struct {
	switchView view.SwitchFunc

	designW, designH int
	width, height    int
	buttons          []*ui.Button
}

// Config carries the menu's construction parameters.
type Config struct {
	SwitchView view.SwitchFunc
	DesignW    int
	DesignH    int
	ButtonArt  *ebiten.Image // Optional 9-slice border
	BorderSize int
}

// New creates the main menu.
func New(cfg Config) *Menu {
	m := &Menu{
		switchView: cfg.SwitchView,
		designW:    cfg.DesignW,
		designH:    cfg.DesignH,
		width:      cfg.DesignW,
		height:     cfg.DesignH,
	}

	const (
		buttonW = 200
		buttonH = 60
		spacing = 10
	)

	entries := []struct {
		label   string
		request view.Request
	}{
		{"Play", view.RequestGame},
		{"Settings", view.RequestSettings},
		{"Exit", view.RequestExit},
	}

	total := buttonH*len(entries) + spacing*(len(entries)-1)
	startY := (cfg.DesignH - total) / 2

	for i, e := range entries {
		req := e.request
		b := ui.NewButton(e.label, 50, float64(startY+i*(buttonH+spacing)), buttonW, buttonH,
			func() { m.switchView(req) })
		if cfg.ButtonArt != nil {
			b.SetArt(cfg.ButtonArt, cfg.BorderSize)
		}
		m.buttons = append(m.buttons, b)
	}

	return m
}

// HandleInput processes mouse clicks and hover (implements view.View)
func (m *Menu) HandleInput(in system.Input) {
	for _, b := range m.buttons {
		b.Hover(in.MouseX, in.MouseY)
	}
	if in.Click {
		for _, b := range m.buttons {
			if b.Click(in.MouseX, in.MouseY) {
				return
			}
		}
	}
}

// Update is a no-op; the menu has no time-based state.
func (m *Menu) Update(_ float64) {}

// Draw renders the menu (implements view.View)
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	ebitenutil.DebugPrintAt(screen, "AWAKING", m.width/2-20, m.height/6)
	for _, b := range m.buttons {
		b.Draw(screen)
	}
}

// HandleResize rescales the button layout (implements view.View)
func (m *Menu) HandleResize(w, h int) {
	m.width, m.height = w, h
	scale := view.Scale(w, h, m.designW, m.designH)
	for _, b := range m.buttons {
		b.Resize(scale)
	}
}

// Buttons exposes the button list for tests.
func (m *Menu) Buttons() []*ui.Button {
	return m.buttons
}
