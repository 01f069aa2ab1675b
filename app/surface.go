package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvas adapts an ebiten.Image to the field.Surface interface.
type canvas struct {
	dst *ebiten.Image
}

func (c *canvas) FillRect(x, y, w, h float64, clr color.NRGBA) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr, true)
}

func (c *canvas) StrokeLine(x1, y1, x2, y2, width float64, clr color.NRGBA) {
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), clr, true)
}

func (c *canvas) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), clr, true)
}

func (c *canvas) StrokeCircle(cx, cy, r, width float64, clr color.NRGBA) {
	vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(r), float32(width), clr, true)
}

// GlowCircle approximates a blurred glow with a few concentric translucent
// discs around the solid core. Ebiten has no canvas-style shadow blur, so
// the halo is layered by hand; three rings read as soft at dot sizes.
func (c *canvas) GlowCircle(cx, cy, r, blur float64, clr color.NRGBA) {
	const rings = 3
	for i := rings; i >= 1; i-- {
		haloR := r + blur*float64(i)/rings
		halo := clr
		halo.A = uint8(float64(clr.A) / float64(rings*(i+1)))
		vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(haloR), halo, true)
	}
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), clr, true)
}
