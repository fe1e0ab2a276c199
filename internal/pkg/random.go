package pkg

import (
	"math/rand"
	"time"
)

// Random is the source of every random choice the computer makes.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// NewRandom returns a seeded generator; seed 0 seeds from the clock.
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed)) //nolint: gosec // game randomness, not security
}
