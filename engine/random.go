package engine

import (
	"math/rand/v2"
	"time"
)

// Random is the source of every randomized visual parameter
type Random interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
}

// NewRandom returns a PCG-backed source; the same seed yields the same sequence
func NewRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewTimeSeededRandom seeds from the wall clock
func NewTimeSeededRandom() *rand.Rand {
	return NewRandom(uint64(time.Now().UnixNano()))
}
