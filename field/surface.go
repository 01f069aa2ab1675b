package field

import "image/color"

// Surface is the drawing target the field renders into. Alpha rides in the
// color's A channel. The host supplies a real implementation backed by its
// canvas; tests supply a recording fake.
type Surface interface {
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, clr color.NRGBA)

	// StrokeLine draws a line segment with the given stroke width.
	StrokeLine(x1, y1, x2, y2, width float64, clr color.NRGBA)

	// FillCircle draws a filled disc.
	FillCircle(cx, cy, r float64, clr color.NRGBA)

	// StrokeCircle draws a circle outline with the given stroke width.
	StrokeCircle(cx, cy, r, width float64, clr color.NRGBA)

	// GlowCircle draws a filled disc with a soft halo extending blur
	// pixels beyond the radius.
	GlowCircle(cx, cy, r, blur float64, clr color.NRGBA)
}
