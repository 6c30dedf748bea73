package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/rosette-field/internal/config"
	"github.com/iburimskiy/rosette-field/internal/game"
	"github.com/iburimskiy/rosette-field/internal/ornament"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("[Main] %v", err)
		_ = zenity.Error(err.Error(), zenity.Title("Rosettes: configuration error"), zenity.ErrorIcon)
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[Main] Seed %d", seed)

	store, err := game.OpenSettingsStore()
	if err != nil {
		log.Printf("[Main] Warning: %v (preferences will not be saved)", err)
		store = nil
	}
	settings := game.NewSettingsManager(store, game.DefaultPreferences(cfg))

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(settings.Preferences().Fullscreen)

	g := game.NewGame(cfg, settings, ornament.NewRand(seed))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
