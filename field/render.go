package field

import (
	"image/color"
	"math"
)

const (
	connectLineWidth = 1.0
	glowStrokeWidth  = 1.0
	glowStrokeAlpha  = 0.3 // outline opacity relative to the particle's own
	dotBlurScale     = 2.0 // halo size relative to dot size
)

// Render draws one frame onto dst. Must run after Advance each tick.
// Draw order matters: the translucent background fill first (producing the
// motion-trail fade), then connection lines underneath the particles, then
// the particles themselves, then cursor dots on top.
func (f *Field) Render(dst Surface) {
	bg := f.background
	bg.A = alpha8(f.cfg.FadeAlpha)
	dst.FillRect(0, 0, f.width, f.height, bg)

	f.renderConnections(dst)

	for i := range f.particles {
		p := &f.particles[i]
		base := p.color.NRGBA()
		dst.FillCircle(p.pos.x, p.pos.y, p.radius, withAlpha(base, p.opacity))
		dst.StrokeCircle(p.pos.x, p.pos.y, p.radius+1, glowStrokeWidth,
			withAlpha(base, p.opacity*glowStrokeAlpha))
	}

	for i := range f.dots {
		d := &f.dots[i]
		dst.GlowCircle(d.pos.x, d.pos.y, d.size, d.size*dotBlurScale,
			withAlpha(d.color.NRGBA(), d.life))
	}
}

// renderConnections draws a line between every unordered particle pair
// closer than the connection threshold. The full pairwise scan runs every
// frame; with the small fixed population this stays cheap enough that a
// spatial index would be overkill.
func (f *Field) renderConnections(dst Surface) {
	lineColor := withAlpha(PaletteAqua.NRGBA(), f.cfg.LineAlpha)
	for i := 0; i < len(f.particles); i++ {
		a := &f.particles[i]
		for j := i + 1; j < len(f.particles); j++ {
			b := &f.particles[j]
			if math.Hypot(a.pos.x-b.pos.x, a.pos.y-b.pos.y) < f.cfg.ConnectDist {
				dst.StrokeLine(a.pos.x, a.pos.y, b.pos.x, b.pos.y, connectLineWidth, lineColor)
			}
		}
	}
}

// withAlpha returns clr scaled to the given opacity in [0, 1].
func withAlpha(clr color.NRGBA, opacity float64) color.NRGBA {
	clr.A = alpha8(opacity)
	return clr
}

// alpha8 converts a [0, 1] opacity to an 8-bit alpha, clamped.
func alpha8(opacity float64) uint8 {
	if opacity <= 0 {
		return 0
	}
	if opacity >= 1 {
		return 255
	}
	return uint8(opacity * 255)
}
