package core

import (
	"errors"
	"math/rand"
)

// ErrNoFreeCell is returned when every candidate cell is taken.
var ErrNoFreeCell = errors.New("core: no free cell")

// SampleFree picks a uniformly random index in [0, n) for which taken returns false.
// Rejection sampling is capped at maxAttempts; after that a linear scan finds
// the first free index, so the call always terminates.
func SampleFree(rng *rand.Rand, n, maxAttempts int, taken func(int) bool) (int, error) {
	if n <= 0 {
		return -1, ErrNoFreeCell
	}

	for range maxAttempts {
		idx := rng.Intn(n)
		if !taken(idx) {
			return idx, nil
		}
	}

	for idx := range n {
		if !taken(idx) {
			return idx, nil
		}
	}
	return -1, ErrNoFreeCell
}
