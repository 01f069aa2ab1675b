package field

import "math"

// Advance runs one simulation tick: every particle is stepped through
// integration, drift, boundary bounce, pointer repulsion, damping, and the
// speed cap, then cursor dots are aged and expired ones removed. The host
// calls this exactly once per frame, before Render.
func (f *Field) Advance() {
	for i := range f.particles {
		f.stepParticle(&f.particles[i])
	}
	f.stepDots()
}

// stepParticle applies one tick of motion to a single particle in place.
func (f *Field) stepParticle(p *Particle) {
	p.pos.x += p.vel.x
	p.pos.y += p.vel.y

	// Ambient drift: independent random nudge per component per tick.
	p.vel.x += (f.rng.Float64() - 0.5) * f.cfg.Drift
	p.vel.y += (f.rng.Float64() - 0.5) * f.cfg.Drift

	// Bounce off the surface edges. Only the crossing axis reflects; the
	// position is clamped so a particle never lingers out of bounds. This
	// also recaptures particles stranded outside after a resize.
	if p.pos.x < 0 {
		p.pos.x = 0
		p.vel.x = -p.vel.x
	} else if p.pos.x > f.width {
		p.pos.x = f.width
		p.vel.x = -p.vel.x
	}
	if p.pos.y < 0 {
		p.pos.y = 0
		p.vel.y = -p.vel.y
	} else if p.pos.y > f.height {
		p.pos.y = f.height
		p.vel.y = -p.vel.y
	}

	// Pointer repulsion: inside the repel radius, push the particle away
	// from the pointer and brighten it; outside, relax opacity back toward
	// its base value.
	near := false
	if f.hasPointer {
		dx := p.pos.x - f.pointer.x
		dy := p.pos.y - f.pointer.y
		if math.Hypot(dx, dy) < f.cfg.RepelRadius {
			near = true
			angle := math.Atan2(dy, dx)
			p.vel.x += math.Cos(angle) * f.cfg.RepelForce
			p.vel.y += math.Sin(angle) * f.cfg.RepelForce
			p.opacity = math.Min(1.0, p.opacity+f.cfg.OpacityRise)
		}
	}
	if !near {
		p.opacity = math.Max(p.baseOpacity, p.opacity-f.cfg.OpacityDecay)
	}

	// Drag, then cap the speed with direction preserved.
	p.vel.x *= f.cfg.Damping
	p.vel.y *= f.cfg.Damping
	speed := math.Hypot(p.vel.x, p.vel.y)
	if speed > f.cfg.SpeedMax {
		scale := f.cfg.SpeedMax / speed
		p.vel.x *= scale
		p.vel.y *= scale
	}
}

// stepDots ages every cursor dot and drops the ones that have expired.
func (f *Field) stepDots() {
	for i := len(f.dots) - 1; i >= 0; i-- {
		d := &f.dots[i]
		d.pos.x += d.vel.x
		d.pos.y += d.vel.y
		d.life -= f.cfg.DotLifeDecay
		d.size *= f.cfg.DotShrink

		if d.life <= 0 || d.size <= f.cfg.DotMinSize {
			f.dots = append(f.dots[:i], f.dots[i+1:]...)
		}
	}
}
