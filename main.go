package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"driftfield/app"
	"driftfield/field"
	"driftfield/theme"
)

func main() {
	cfg, err := field.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	themes, err := theme.New(cfg.BackgroundDark, cfg.BackgroundLight)
	if err != nil {
		log.Fatal(err)
	}

	a, err := app.New(cfg, themes)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Drift Field")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// The field fades the previous frame instead of clearing it; Ebiten's
	// default per-frame clear would erase the motion trails.
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
