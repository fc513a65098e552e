package core

import (
	"math/rand"
	"time"
)

// Rand is the random source games draw from. *rand.Rand satisfies it;
// tests substitute fixed sequences.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a math/rand source seeded with seed, or with the current
// time when seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
