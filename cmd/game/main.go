// Command game runs Awaking, a top-down town exploration game.
package main

import (
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/awaking/internal/application/app"
	"github.com/younwookim/awaking/internal/application/system"
	"github.com/younwookim/awaking/internal/infrastructure/assets"
	"github.com/younwookim/awaking/internal/infrastructure/config"
	"github.com/younwookim/awaking/internal/infrastructure/display"
)

func main() {
	assetDir := flag.String("assets", "assets", "Asset directory")
	fullscreen := flag.Bool("fullscreen", false, "Start in fullscreen")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadApp()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	surface := display.New(display.Ebiten{}, cfg.Display.Width, cfg.Display.Height)

	a := app.New(app.Options{
		Config:  cfg,
		Configs: loader,
		Assets:  assets.NewLibrary(os.DirFS(*assetDir)),
		Display: surface,
		Input:   system.NewInputSystem(),
	})

	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(a.Clock().TPS())

	if cfg.Display.Fullscreen || *fullscreen {
		surface.EnterFullscreen()
	}

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
