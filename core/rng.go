package core

import "math/rand/v2"

// Coin is a source of independent fair coin flips
type Coin interface {
	Flip() bool
}

// RNG is a thin wrapper around math/rand/v2 implementing Coin
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewUnseededRNG creates an RNG seeded from the runtime's random source
func NewUnseededRNG() *RNG {
	return &RNG{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Flip returns a random boolean value
func (r *RNG) Flip() bool {
	return r.r.IntN(2) == 1
}
