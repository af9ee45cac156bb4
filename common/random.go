package common

import "math/rand"

// RNG is the subset of *rand.Rand the simulation draws from.
type RNG interface {
	Float64() float64
	Intn(n int) int
}

// NewRNG returns a deterministic source for the given seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RangeFloat returns a value in [min, max).
func RangeFloat(rng RNG, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// RangeInt returns a value in [min, max). max is exclusive.
func RangeInt(rng RNG, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min)
}
