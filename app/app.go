// Package app runs the field simulation under Ebiten's frame loop. It owns
// everything outside the simulation itself: pointer and resize forwarding,
// theme toggling, pause, fullscreen, and the HUD overlay.
package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"driftfield/field"
	"driftfield/theme"
)

// themeFadeTicks is how many frames the background takes to cross-fade
// after a theme toggle.
const themeFadeTicks = 30

// App implements ebiten.Game, driving one field tick per frame.
type App struct {
	field  *field.Field
	themes *theme.Set

	width  int
	height int

	paused  bool
	showHUD bool

	// previous key states for edge-triggered toggles
	prevTheme    bool
	prevPause    bool
	prevHUD      bool
	prevAltEnter bool

	// previous cursor position, so SetPointer only fires on real movement
	prevCursorX int
	prevCursorY int
	haveCursor  bool

	// background cross-fade state after a theme toggle
	fadeFrom  color.NRGBA
	fadeTo    color.NRGBA
	fadeTicks int
}

// New creates the app and its field sized to the initial window.
func New(cfg field.Config, themes *theme.Set) (*App, error) {
	f, err := field.New(cfg, float64(cfg.ScreenWidth), float64(cfg.ScreenHeight), nil)
	if err != nil {
		return nil, err
	}
	f.SetBackground(themes.Background())

	return &App{
		field:   f,
		themes:  themes,
		width:   cfg.ScreenWidth,
		height:  cfg.ScreenHeight,
		showHUD: false,
	}, nil
}

// Update advances the simulation by one tick. Input is sampled first so a
// toggle and its effect land on the same frame.
func (a *App) Update() error {
	a.handleKeys()

	mx, my := ebiten.CursorPosition()
	if !a.haveCursor || mx != a.prevCursorX || my != a.prevCursorY {
		if mx >= 0 && my >= 0 && mx < a.width && my < a.height {
			a.field.SetPointer(float64(mx), float64(my))
		}
		a.prevCursorX = mx
		a.prevCursorY = my
		a.haveCursor = true
	}

	if a.fadeTicks > 0 {
		a.fadeTicks--
		t := 1.0 - float64(a.fadeTicks)/themeFadeTicks
		a.field.SetBackground(theme.Blend(a.fadeFrom, a.fadeTo, t))
	}

	if !a.paused {
		a.field.Advance()
	}
	return nil
}

// handleKeys processes edge-triggered toggles: T for theme, P for pause,
// H for the HUD, Alt+Enter for fullscreen.
func (a *App) handleKeys() {
	themePressed := ebiten.IsKeyPressed(ebiten.KeyT)
	if themePressed && !a.prevTheme {
		a.fadeFrom = a.themes.Background()
		a.fadeTo = a.themes.Toggle()
		a.fadeTicks = themeFadeTicks
	}
	a.prevTheme = themePressed

	pausePressed := ebiten.IsKeyPressed(ebiten.KeyP)
	if pausePressed && !a.prevPause {
		a.paused = !a.paused
	}
	a.prevPause = pausePressed

	hudPressed := ebiten.IsKeyPressed(ebiten.KeyH)
	if hudPressed && !a.prevHUD {
		a.showHUD = !a.showHUD
	}
	a.prevHUD = hudPressed

	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
	altEnterPressed := altPressed && ebiten.IsKeyPressed(ebiten.KeyEnter)
	if altEnterPressed && !a.prevAltEnter {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	a.prevAltEnter = altEnterPressed
}

// Draw renders the current frame. The field paints its own translucent
// background fill, so the screen must not be cleared between frames (see
// main's SetScreenClearedEveryFrame) or the motion trails disappear.
func (a *App) Draw(screen *ebiten.Image) {
	a.field.Render(&canvas{dst: screen})

	if a.showHUD {
		msg := fmt.Sprintf("FPS %.0f  TPS %.0f  particles %d  dots %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			a.field.ParticleCount(), a.field.DotCount())
		if a.paused {
			msg += "  [paused]"
		}
		ebitenutil.DebugPrintAt(screen, msg, 8, 8)
	}
}

// Layout reports the drawing surface size and forwards changes to the
// field. Particles left outside after a shrink are recaptured by the bounce
// rule on the next tick.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width = outsideWidth
		a.height = outsideHeight
		a.field.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}
