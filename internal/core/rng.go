package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Salt draws a value suitable for salting ValueNoise2D.
func (r *RNG) Salt() int64 {
	return r.r.Int64()
}

// NoiseSalt maps a user-facing seed to the noise salt used for terrain.
func NoiseSalt(seed int64) int64 {
	return NewRNG(seed).Salt()
}
