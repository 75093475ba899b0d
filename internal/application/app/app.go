// Package app wires the views, the display surface and the transition
// controller into the ebiten game loop. Exactly one view is active at a
// time; switching into gameplay goes through a fade-and-load transition.
package app

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/awaking/internal/application/clock"
	"github.com/younwookim/awaking/internal/application/system"
	"github.com/younwookim/awaking/internal/application/transition"
	"github.com/younwookim/awaking/internal/application/view"
	"github.com/younwookim/awaking/internal/application/view/gameview"
	"github.com/younwookim/awaking/internal/application/view/mainmenu"
	"github.com/younwookim/awaking/internal/application/view/settings"
	"github.com/younwookim/awaking/internal/domain/entity"
	"github.com/younwookim/awaking/internal/infrastructure/assets"
	"github.com/younwookim/awaking/internal/infrastructure/config"
	"github.com/younwookim/awaking/internal/infrastructure/display"
)

// InputSource supplies the per-tick input snapshot. The production
// implementation reads the live keyboard and mouse.
type InputSource interface {
	Snapshot() system.Input
}

// Options carries the app's collaborators.
type Options struct {
	Config  *config.AppConfig
	Configs *config.Loader
	Assets  *assets.Library
	Display *display.Surface
	Input   InputSource
}

// App is the top-level ebiten.Game: it owns the current view, drives
// transitions and broadcasts resizes.
type App struct {
	cfg     *config.AppConfig
	configs *config.Loader
	assets  *assets.Library
	display *display.Surface
	input   InputSource
	clock   *clock.FrameClock

	current view.View
	paused  view.Resumable // game held behind the in-game settings menu
	trans   *transition.Controller

	showFPS   bool
	exiting   bool
	buttonArt *ebiten.Image

	// Screen size captured when a transition starts. The loader goroutine
	// reads these instead of the live surface, which the game loop keeps
	// mutating.
	loadW, loadH int

	// load builds the game view on the transition goroutine. Tests swap
	// in a stub to avoid touching the asset pipeline.
	load transition.LoadFunc
}

// New creates the app showing the main menu.
func New(opts Options) *App {
	a := &App{
		cfg:     opts.Config,
		configs: opts.Configs,
		assets:  opts.Assets,
		display: opts.Display,
		input:   opts.Input,
		clock:   clock.New(opts.Config.Display.Framerate),
		showFPS: opts.Config.UI.ShowFPS,
	}
	if opts.Assets != nil && opts.Config.UI.ButtonBorder != "" {
		a.buttonArt = opts.Assets.Image(opts.Config.UI.ButtonBorder)
	}
	a.load = a.loadGame
	a.showMainMenu()
	return a
}

// Clock exposes the frame clock so main can install its tick rate.
func (a *App) Clock() *clock.FrameClock {
	return a.clock
}

// Flags reports the toggles the settings view displays.
func (a *App) Flags() view.Flags {
	return view.Flags{
		Fullscreen: a.display.IsFullscreen(),
		ShowFPS:    a.showFPS,
	}
}

// SwitchView replaces the current view. Switching to the main menu or
// standalone settings cancels any in-flight transition and discards a
// paused game.
func (a *App) SwitchView(req view.Request) {
	switch req {
	case view.RequestMainMenu:
		a.trans = nil
		a.paused = nil
		a.showMainMenu()
	case view.RequestGame:
		a.startGameTransition()
	case view.RequestSettings:
		a.trans = nil
		a.paused = nil
		a.showSettings(false)
	case view.RequestGameSettings:
		if r, ok := a.current.(view.Resumable); ok {
			a.paused = r
			r.Pause()
			a.showSettings(true)
		} else {
			a.showSettings(false)
		}
	case view.RequestExit:
		a.exiting = true
	}
	log.Printf("app: switch view: %s", req)
}

func (a *App) showMainMenu() {
	a.setView(mainmenu.New(mainmenu.Config{
		SwitchView: a.SwitchView,
		DesignW:    a.cfg.Display.Width,
		DesignH:    a.cfg.Display.Height,
		ButtonArt:  a.buttonArt,
		BorderSize: a.cfg.UI.BorderSize,
	}))
	a.display.ShowCursor()
}

func (a *App) showSettings(embedded bool) {
	opts := settings.Options{
		SwitchView: a.SwitchView,
		Flags:      a.Flags,
		ToggleFPS:  func() { a.showFPS = !a.showFPS },
		DesignW:    a.cfg.Display.Width,
		DesignH:    a.cfg.Display.Height,
		ButtonArt:  a.buttonArt,
		BorderSize: a.cfg.UI.BorderSize,
	}
	if embedded {
		opts.ReturnToGame = a.returnToGame
	} else {
		opts.ToggleFullscreen = a.display.ToggleFullscreen
	}
	a.setView(settings.New(opts))
	a.display.ShowCursor()
}

// returnToGame resumes the exact game session paused behind the
// embedded settings menu.
func (a *App) returnToGame() {
	if a.paused == nil {
		a.showMainMenu()
		return
	}
	game := a.paused
	a.paused = nil
	game.Resume()
	a.setView(game)
	a.display.HideCursor()
}

func (a *App) startGameTransition() {
	a.loadW, a.loadH = a.display.Size()
	a.trans = transition.New(a.loadW, a.loadH, a.cfg.Loading.FadeStep)
	a.trans.StartLoad(a.load)
}

func (a *App) setView(v view.View) {
	a.current = v
	v.HandleResize(a.display.Size())
}

// Update runs one tick (implements ebiten.Game)
func (a *App) Update() error {
	if a.exiting {
		return ebiten.Termination
	}

	dt := a.clock.Tick()

	if a.display.ConsumeResize() {
		w, h := a.display.Size()
		a.current.HandleResize(w, h)
		if a.paused != nil {
			a.paused.HandleResize(w, h)
		}
		if a.trans != nil {
			a.trans.Resize(w, h)
		}
	}

	if a.trans != nil {
		a.driveTransition()
		return nil
	}

	in := a.input.Snapshot()
	if _, inGame := a.current.(view.Resumable); inGame {
		in = in.WithoutPointer()
	}
	a.current.HandleInput(in)
	a.current.Update(dt)

	if a.exiting {
		return ebiten.Termination
	}
	return nil
}

// driveTransition ticks the fade controller. The loaded view is
// installed the moment fading out begins, so the fade reveals the new
// view. A failed load falls back to the main menu rather than crashing.
func (a *App) driveTransition() {
	a.trans.Update()

	switch a.trans.State() {
	case transition.StateFadingOut:
		if v := a.trans.TakeResult(); v != nil {
			a.paused = nil
			a.setView(v)
			a.display.HideCursor()
		}
	case transition.StateComplete:
		a.trans = nil
	case transition.StateFailed:
		log.Printf("app: game load failed, returning to menu: %v", a.trans.Err())
		a.trans = nil
		a.showMainMenu()
	}
}

// Draw renders the current view, then the transition overlay on top
// (implements ebiten.Game)
func (a *App) Draw(screen *ebiten.Image) {
	a.current.Draw(screen)
	if a.trans != nil {
		a.trans.Draw(screen)
	}
	if a.showFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()), 8, 8)
	}
}

// Layout reports the logical screen size and records window resizes
// (implements ebiten.Game)
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.display.NoteOutsideSize(outsideWidth, outsideHeight)
	return a.display.Size()
}

// loadGame is the production loader: it runs the staged pipeline on the
// transition goroutine, pausing after each step so the loading screen is
// visible even on fast disks.
func (a *App) loadGame(report func(pct int)) (view.View, error) {
	delay := time.Duration(a.cfg.Loading.StepDelayMs) * time.Millisecond
	step := func(pct int) {
		report(pct)
		time.Sleep(delay)
	}

	mapCfg, err := a.configs.LoadMap(a.cfg.Map)
	if err != nil {
		return nil, fmt.Errorf("load map %q: %w", a.cfg.Map, err)
	}
	step(20)

	world := system.LoadWorld(mapCfg)
	step(40)

	playerAnims := make(map[string]*assets.Animation, len(a.cfg.Player.Animations))
	for name, dir := range a.cfg.Player.Animations {
		playerAnims[name] = a.assets.Animation(dir, a.cfg.Player.Scale, a.cfg.Player.FrameTimes[name])
	}
	step(60)

	npcAnims := make(map[string]*assets.Animation, len(a.cfg.NPC.Animations))
	for name, dir := range a.cfg.NPC.Animations {
		npcAnims[name] = a.assets.Animation(dir, a.cfg.NPC.Scale, a.cfg.NPC.FrameTime)
	}
	step(80)

	w, h := a.loadW, a.loadH
	player := entity.NewPlayer(float64(world.SpawnX), float64(world.SpawnY), a.cfg.Player.Speed, playerAnims)
	npcs := entity.NewNPCManager(npcAnims, a.cfg.NPC.Speed, a.cfg.NPC.MaxCount,
		a.cfg.NPC.SpawnInterval, w, h, rand.New(rand.NewSource(time.Now().UnixNano())))

	gv := gameview.New(gameview.Config{
		SwitchView: a.SwitchView,
		World:      world,
		Player:     player,
		NPCs:       npcs,
		Width:      w,
		Height:     h,
	})
	report(100)

	return gv, nil
}
