package field

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds every tunable constant of the simulation. The defaults are
// the values the effect was designed around; none of them encode a physical
// model, so they are exposed as configuration rather than hard-coded.
type Config struct {
	// ScreenWidth is the initial window width in pixels
	ScreenWidth int `toml:"screen_width"`

	// ScreenHeight is the initial window height in pixels
	ScreenHeight int `toml:"screen_height"`

	// ParticleCount is the fixed size of the particle population
	ParticleCount int `toml:"particle_count"`

	// SpeedInit bounds the initial velocity components, uniform in [-SpeedInit, SpeedInit]
	SpeedInit float64 `toml:"speed_init"`

	// SpeedMax caps the velocity magnitude after each update
	SpeedMax float64 `toml:"speed_max"`

	// Drift is the per-tick random velocity perturbation amplitude; each
	// component is nudged by a uniform delta in [-Drift/2, Drift/2]
	Drift float64 `toml:"drift"`

	// Damping multiplies both velocity components every tick
	Damping float64 `toml:"damping"`

	// RadiusMin and RadiusMax bound the per-particle disc radius
	RadiusMin float64 `toml:"radius_min"`
	RadiusMax float64 `toml:"radius_max"`

	// OpacityMin and OpacityMax bound the per-particle base opacity
	OpacityMin float64 `toml:"opacity_min"`
	OpacityMax float64 `toml:"opacity_max"`

	// RepelRadius is the distance within which the pointer pushes particles
	RepelRadius float64 `toml:"repel_radius"`

	// RepelForce is the velocity push applied inside RepelRadius
	RepelForce float64 `toml:"repel_force"`

	// OpacityRise is the per-tick opacity gain while near the pointer
	OpacityRise float64 `toml:"opacity_rise"`

	// OpacityDecay is the per-tick relaxation toward base opacity
	OpacityDecay float64 `toml:"opacity_decay"`

	// ConnectDist is the maximum pairwise distance for connection lines
	ConnectDist float64 `toml:"connect_dist"`

	// LineAlpha is the opacity of connection lines
	LineAlpha float64 `toml:"line_alpha"`

	// FadeAlpha is the opacity of the per-frame background fill; values
	// below 1 leave motion trails instead of a hard clear
	FadeAlpha float64 `toml:"fade_alpha"`

	// DotSpawnDist is the minimum pointer movement that spawns cursor dots
	DotSpawnDist float64 `toml:"dot_spawn_dist"`

	// DotSpawnDivisor scales movement distance into a dot count
	DotSpawnDivisor float64 `toml:"dot_spawn_divisor"`

	// DotBurstMax caps the dots spawned per pointer-move event
	DotBurstMax int `toml:"dot_burst_max"`

	// DotJitter bounds the random offset of a spawned dot from the pointer
	DotJitter float64 `toml:"dot_jitter"`

	// DotSpeed bounds the initial velocity components of a spawned dot
	DotSpeed float64 `toml:"dot_speed"`

	// DotSizeMin and DotSizeMax bound the initial dot size
	DotSizeMin float64 `toml:"dot_size_min"`
	DotSizeMax float64 `toml:"dot_size_max"`

	// DotLifeDecay is subtracted from a dot's life every tick
	DotLifeDecay float64 `toml:"dot_life_decay"`

	// DotShrink multiplies a dot's size every tick
	DotShrink float64 `toml:"dot_shrink"`

	// DotMinSize is the size below which a dot is removed
	DotMinSize float64 `toml:"dot_min_size"`

	// BackgroundDark and BackgroundLight are the theme clear colors as hex
	BackgroundDark  string `toml:"background_dark"`
	BackgroundLight string `toml:"background_light"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:     1024,
		ScreenHeight:    768,
		ParticleCount:   80,
		SpeedInit:       0.5,
		SpeedMax:        1.2,
		Drift:           0.02,
		Damping:         0.99,
		RadiusMin:       1.0,
		RadiusMax:       3.0,
		OpacityMin:      0.2,
		OpacityMax:      0.7,
		RepelRadius:     120.0,
		RepelForce:      0.08,
		OpacityRise:     0.02,
		OpacityDecay:    0.01,
		ConnectDist:     110.0,
		LineAlpha:       0.12,
		FadeAlpha:       0.18,
		DotSpawnDist:    1.0,
		DotSpawnDivisor: 5.0,
		DotBurstMax:     3,
		DotJitter:       4.0,
		DotSpeed:        1.0,
		DotSizeMin:      1.0,
		DotSizeMax:      3.5,
		DotLifeDecay:    0.03,
		DotShrink:       0.96,
		DotMinSize:      0.5,
		BackgroundDark:  "#080a14",
		BackgroundLight: "#f0f2f8",
	}
}

// LoadConfig returns DefaultConfig overlaid with the first driftfield.toml
// found in the search path. A missing file is not an error; a file that
// exists but fails to parse is.
func LoadConfig() (Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		return loadConfigFile(p)
	}
	return DefaultConfig(), nil
}

// loadConfigFile decodes one TOML file over the defaults.
func loadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// configSearchPaths lists candidate config locations: the working directory
// first, then the user config directory.
func configSearchPaths() []string {
	paths := []string{"driftfield.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "driftfield", "config.toml"))
	}
	return paths
}
