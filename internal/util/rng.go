package util

import (
	"math/rand"
	"time"
)

// New returns a seeded source. Seed 0 means "now".
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Pick returns a uniformly chosen element of xs. xs must not be empty.
func Pick[T any](rng *rand.Rand, xs []T) T {
	return xs[rng.Intn(len(xs))]
}
