package field

import (
	"image/color"
	"math/rand"

	"golang.org/x/image/colornames"
)

// PaletteColor enumerates the fixed color palette shared by particles and
// cursor dots. Keeping this an enum (rather than raw color values picked
// ad hoc) makes extending the palette a one-constant change.
type PaletteColor int

const (
	PaletteAqua PaletteColor = iota
	PaletteViolet
	PaletteWhite

	paletteSize // must stay last
)

// NRGBA returns the display color for a palette entry at full alpha.
func (c PaletteColor) NRGBA() color.NRGBA {
	var rgba color.RGBA
	switch c {
	case PaletteAqua:
		rgba = colornames.Aquamarine
	case PaletteViolet:
		rgba = colornames.Mediumpurple
	case PaletteWhite:
		rgba = colornames.White
	default:
		rgba = colornames.White
	}
	return color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: 255}
}

// String returns the palette entry name, mainly for test failure messages.
func (c PaletteColor) String() string {
	switch c {
	case PaletteAqua:
		return "aqua"
	case PaletteViolet:
		return "violet"
	case PaletteWhite:
		return "white"
	}
	return "unknown"
}

// randomPaletteColor draws a uniform palette entry.
func randomPaletteColor(rng *rand.Rand) PaletteColor {
	return PaletteColor(rng.Intn(int(paletteSize)))
}
