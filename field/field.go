// Package field implements the particle field simulation that renders the
// animated background: a fixed population of drifting particles connected by
// proximity lines, plus short-lived dots trailing the pointer.
//
// The field is driven externally: the host calls Advance once per frame,
// then Render with a drawing surface. Pointer and resize events come in
// through setters, so the field owns all of its mutable state.
package field

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"time"
)

// vec2 represents a 2D vector
type vec2 struct {
	x float64
	y float64
}

// Particle is one member of the fixed particle population. Particles are
// created once at startup and mutated in place every tick.
type Particle struct {
	pos         vec2
	vel         vec2
	radius      float64
	opacity     float64 // current, in [0, 1]
	baseOpacity float64 // opacity relaxes back to this when the pointer is far
	color       PaletteColor
}

// CursorDot is a short-lived dot spawned by pointer movement. Dots shrink
// and fade every tick and are removed once expired.
type CursorDot struct {
	pos   vec2
	vel   vec2
	size  float64
	life  float64 // in [0, 1], decays each tick
	color PaletteColor
}

// Field holds the full simulation state.
type Field struct {
	cfg    Config
	width  float64
	height float64

	particles []Particle
	dots      []CursorDot

	pointer    vec2
	hasPointer bool

	background color.NRGBA

	rng *rand.Rand
}

// New creates a field sized to the given surface dimensions and seeds the
// particle population. A nil rng gets a time-seeded source; tests inject a
// fixed seed for determinism.
func New(cfg Config, width, height float64, rng *rand.Rand) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("field: invalid surface size %gx%g", width, height)
	}
	if cfg.ParticleCount <= 0 {
		return nil, fmt.Errorf("field: particle count must be positive, got %d", cfg.ParticleCount)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	f := &Field{
		cfg:        cfg,
		width:      width,
		height:     height,
		particles:  make([]Particle, 0, cfg.ParticleCount),
		background: color.NRGBA{R: 8, G: 10, B: 20, A: 255},
		rng:        rng,
	}
	for i := 0; i < cfg.ParticleCount; i++ {
		f.particles = append(f.particles, f.newParticle())
	}
	return f, nil
}

// newParticle creates a single particle with randomized attributes.
func (f *Field) newParticle() Particle {
	baseOpacity := f.cfg.OpacityMin + f.rng.Float64()*(f.cfg.OpacityMax-f.cfg.OpacityMin)
	return Particle{
		pos: vec2{
			x: f.rng.Float64() * f.width,
			y: f.rng.Float64() * f.height,
		},
		vel: vec2{
			x: (f.rng.Float64() - 0.5) * 2 * f.cfg.SpeedInit,
			y: (f.rng.Float64() - 0.5) * 2 * f.cfg.SpeedInit,
		},
		radius:      f.cfg.RadiusMin + f.rng.Float64()*(f.cfg.RadiusMax-f.cfg.RadiusMin),
		opacity:     baseOpacity,
		baseOpacity: baseOpacity,
		color:       randomPaletteColor(f.rng),
	}
}

// Resize updates the stored surface dimensions. Existing particles are not
// reflowed; any that end up outside the new bounds are pulled back by the
// boundary bounce on the next tick.
func (f *Field) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	f.width = width
	f.height = height
}

// SetBackground updates the cached frame-clear color. The host calls this
// whenever its theme changes.
func (f *Field) SetBackground(clr color.NRGBA) {
	f.background = clr
}

// SetPointer records a new pointer position. Movement beyond the spawn
// threshold emits a burst of cursor dots, count proportional to the distance
// moved and capped at DotBurstMax.
func (f *Field) SetPointer(x, y float64) {
	if !f.hasPointer {
		f.pointer = vec2{x, y}
		f.hasPointer = true
		return
	}
	dist := math.Hypot(x-f.pointer.x, y-f.pointer.y)
	if dist > f.cfg.DotSpawnDist {
		n := int(dist/f.cfg.DotSpawnDivisor) + 1
		if n > f.cfg.DotBurstMax {
			n = f.cfg.DotBurstMax
		}
		for i := 0; i < n; i++ {
			f.spawnDot(x, y)
		}
	}
	f.pointer = vec2{x, y}
}

// spawnDot creates one cursor dot near the given position.
func (f *Field) spawnDot(x, y float64) {
	f.dots = append(f.dots, CursorDot{
		pos: vec2{
			x: x + (f.rng.Float64()-0.5)*2*f.cfg.DotJitter,
			y: y + (f.rng.Float64()-0.5)*2*f.cfg.DotJitter,
		},
		vel: vec2{
			x: (f.rng.Float64() - 0.5) * 2 * f.cfg.DotSpeed,
			y: (f.rng.Float64() - 0.5) * 2 * f.cfg.DotSpeed,
		},
		size:  f.cfg.DotSizeMin + f.rng.Float64()*(f.cfg.DotSizeMax-f.cfg.DotSizeMin),
		life:  1.0,
		color: randomPaletteColor(f.rng),
	})
}

// ParticleCount returns the size of the fixed particle population.
func (f *Field) ParticleCount() int {
	return len(f.particles)
}

// DotCount returns the number of currently live cursor dots.
func (f *Field) DotCount() int {
	return len(f.dots)
}
