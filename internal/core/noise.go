package core

import "math"

// Default seeding parameters: noise sampled at (x/20, y/20), Resource below 0.4.
const (
	DefaultNoiseScale        = 20.0
	DefaultResourceThreshold = 0.4
)

// ValueNoise2D returns smooth lattice value noise in [0,1] for (x, y). The
// same coordinates and salt always produce the same sample.
func ValueNoise2D(x, y float64, salt int64) float64 {
	xi := int(math.Floor(x))
	yi := int(math.Floor(y))
	xf := x - float64(xi)
	yf := y - float64(yi)

	// Hermite smoothstep.
	u := xf * xf * (3 - 2*xf)
	v := yf * yf * (3 - 2*yf)

	n00 := latticeValue(xi, yi, salt)
	n10 := latticeValue(xi+1, yi, salt)
	n01 := latticeValue(xi, yi+1, salt)
	n11 := latticeValue(xi+1, yi+1, salt)

	nx0 := n00*(1-u) + n10*u
	nx1 := n01*(1-u) + n11*u
	return nx0*(1-v) + nx1*v
}

func latticeValue(x, y int, salt int64) float64 {
	h := uint64(salt)
	h ^= uint64(x) * 0x517cc1b727220a95
	h ^= uint64(y) * 0x6c62272e07bb0142
	h = h*0x2545f4914f6cdd1d + 0x14057b7ef767814f
	h ^= h >> 16
	h *= 0xd6e8feb86659fd93
	h ^= h >> 16
	return float64(h&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

// NoiseSample returns the seed noise for cell (x, y) at the given scale.
func NoiseSample(x, y int, scale float64, salt int64) float64 {
	if scale <= 0 {
		scale = DefaultNoiseScale
	}
	return ValueNoise2D(float64(x)/scale, float64(y)/scale, salt)
}

// NoiseSeed returns the default terrain rule: cells whose noise sample falls
// below threshold become Resource, the rest Empty.
func NoiseSeed(scale, threshold float64, salt int64) SeedFunc {
	return func(x, y int) CellState {
		if NoiseSample(x, y, scale, salt) < threshold {
			return Resource
		}
		return Empty
	}
}
