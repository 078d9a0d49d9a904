package game

import (
	"math/rand"
	"time"
)

// Random wraps a seeded generator so every probabilistic outcome in a run
// (loot rolls, crits, spawn positions) can be reproduced from the seed.
type Random struct {
	rng  *rand.Rand
	seed int64
}

// NewRandom creates a generator. A zero seed picks one from the clock.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the generator was created with
func (r *Random) Seed() int64 {
	return r.seed
}

// Float64 returns a value in [0, 1)
func (r *Random) Float64() float64 {
	return r.rng.Float64()
}

// Intn returns a value in [0, n). n <= 0 yields 0.
func (r *Random) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// IntRange returns an integer in [min, max). If max <= min it returns min.
func (r *Random) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min)
}

// FloatRange returns a value in [min, max)
func (r *Random) FloatRange(min, max float64) float64 {
	return min + r.rng.Float64()*(max-min)
}

// Chance returns true with probability p
func (r *Random) Chance(p float64) bool {
	return r.rng.Float64() < p
}
