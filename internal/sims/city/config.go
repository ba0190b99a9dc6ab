package city

import (
	"strconv"

	"city-ca/internal/core"
)

// MaxRadius bounds the incremental pass window so a single event stays cheap.
const MaxRadius = 8

// Params holds the tunables for terrain seeding and the incremental pass.
type Params struct {
	NoiseScale        float64
	ResourceThreshold float64

	// Radius is the half-width of the window re-evaluated after each event.
	// Radius 1 is the 3x3 block around the changed cell. Cells outside the
	// window keep stale derived states until another event or a full pass
	// reaches them.
	Radius int
}

// Config controls the city world dimensions and seeding.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 256,
		Seed:   1337,
		Params: Params{
			NoiseScale:        core.DefaultNoiseScale,
			ResourceThreshold: core.DefaultResourceThreshold,
			Radius:            1,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.NoiseScale = parsed
		}
	}
	if v, ok := cfg["resource_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.ResourceThreshold = parsed
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Params.Radius = min(parsed, MaxRadius)
		}
	}
	return c
}
