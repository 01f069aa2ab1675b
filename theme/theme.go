// Package theme manages the background colors the field clears with. The
// page around the animation owns theming; this package models the dark and
// light backgrounds it supplies and the fade between them on toggle.
package theme

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Mode selects which background is active.
type Mode int

const (
	Dark Mode = iota
	Light
)

// Set holds the two theme backgrounds and which one is active.
type Set struct {
	backgrounds [2]color.NRGBA
	mode        Mode
}

// New parses the dark and light background hex strings into a Set starting
// in dark mode.
func New(darkHex, lightHex string) (*Set, error) {
	dark, err := ParseHex(darkHex)
	if err != nil {
		return nil, fmt.Errorf("theme: dark background: %w", err)
	}
	light, err := ParseHex(lightHex)
	if err != nil {
		return nil, fmt.Errorf("theme: light background: %w", err)
	}
	return &Set{backgrounds: [2]color.NRGBA{dark, light}}, nil
}

// Mode returns the active mode.
func (s *Set) Mode() Mode {
	return s.mode
}

// Background returns the active background color.
func (s *Set) Background() color.NRGBA {
	return s.backgrounds[s.mode]
}

// Toggle switches between dark and light and returns the new background.
func (s *Set) Toggle() color.NRGBA {
	if s.mode == Dark {
		s.mode = Light
	} else {
		s.mode = Dark
	}
	return s.Background()
}

// ParseHex parses a "#rrggbb" string into an opaque NRGBA.
func ParseHex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// Blend interpolates between two colors in Lab space, which keeps the
// midpoint of a dark-to-light fade from looking muddy. t is clamped to
// [0, 1]; 0 returns from, 1 returns to.
func Blend(from, to color.NRGBA, t float64) color.NRGBA {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	a, _ := colorful.MakeColor(from)
	b, _ := colorful.MakeColor(to)
	r, g, bl := a.BlendLab(b, t).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: 255}
}
