package field

import (
	"math"
	"math/rand"
	"testing"
)

// testField builds a field with a fixed seed so every run sees the same
// random draws.
func testField(t *testing.T, cfg Config, w, h float64) *Field {
	t.Helper()
	f, err := New(cfg, w, h, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

func TestNewRejectsInvalidSize(t *testing.T) {
	cfg := DefaultConfig()
	if _, err := New(cfg, 0, 600, nil); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := New(cfg, 800, -1, nil); err == nil {
		t.Error("expected error for negative height")
	}
}

func TestNewRejectsZeroParticles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ParticleCount = 0
	if _, err := New(cfg, 800, 600, nil); err == nil {
		t.Error("expected error for zero particle count")
	}
}

func TestSeededPopulation(t *testing.T) {
	cfg := DefaultConfig()
	f := testField(t, cfg, 800, 600)

	if len(f.particles) != cfg.ParticleCount {
		t.Fatalf("expected %d particles, got %d", cfg.ParticleCount, len(f.particles))
	}
	for i, p := range f.particles {
		if p.pos.x < 0 || p.pos.x > 800 || p.pos.y < 0 || p.pos.y > 600 {
			t.Errorf("particle %d seeded out of bounds at (%g, %g)", i, p.pos.x, p.pos.y)
		}
		if math.Abs(p.vel.x) > cfg.SpeedInit || math.Abs(p.vel.y) > cfg.SpeedInit {
			t.Errorf("particle %d initial velocity (%g, %g) outside init range", i, p.vel.x, p.vel.y)
		}
		if p.radius < cfg.RadiusMin || p.radius > cfg.RadiusMax {
			t.Errorf("particle %d radius %g outside [%g, %g]", i, p.radius, cfg.RadiusMin, cfg.RadiusMax)
		}
		if p.opacity != p.baseOpacity {
			t.Errorf("particle %d opacity %g != base %g at creation", i, p.opacity, p.baseOpacity)
		}
		if p.baseOpacity < cfg.OpacityMin || p.baseOpacity > cfg.OpacityMax {
			t.Errorf("particle %d base opacity %g outside [%g, %g]", i, p.baseOpacity, cfg.OpacityMin, cfg.OpacityMax)
		}
		if p.color < 0 || p.color >= paletteSize {
			t.Errorf("particle %d has palette color %d outside the palette", i, p.color)
		}
	}
}

func TestPopulationSizeIsFixed(t *testing.T) {
	f := testField(t, DefaultConfig(), 800, 600)

	f.SetPointer(100, 100)
	for i := 0; i < 200; i++ {
		f.SetPointer(100+float64(i), 100)
		f.Advance()
	}
	if f.ParticleCount() != DefaultConfig().ParticleCount {
		t.Errorf("particle population changed to %d", f.ParticleCount())
	}
}

func TestResizeKeepsParticles(t *testing.T) {
	f := testField(t, DefaultConfig(), 800, 600)
	f.Resize(200, 150)

	if f.width != 200 || f.height != 150 {
		t.Fatalf("dimensions not updated: %gx%g", f.width, f.height)
	}
	// Positions are deliberately not reflowed on resize.
	outside := 0
	for _, p := range f.particles {
		if p.pos.x > 200 || p.pos.y > 150 {
			outside++
		}
	}
	if outside == 0 {
		t.Skip("seed produced no out-of-bounds particles to observe")
	}
	// One tick must clamp every stray particle back inside.
	f.Advance()
	for i, p := range f.particles {
		if p.pos.x < 0 || p.pos.x > 200 || p.pos.y < 0 || p.pos.y > 150 {
			t.Errorf("particle %d still outside after tick: (%g, %g)", i, p.pos.x, p.pos.y)
		}
	}
}

func TestResizeIgnoresInvalidDimensions(t *testing.T) {
	f := testField(t, DefaultConfig(), 800, 600)
	f.Resize(0, 0)
	if f.width != 800 || f.height != 600 {
		t.Errorf("invalid resize applied: %gx%g", f.width, f.height)
	}
}
