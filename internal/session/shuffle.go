package session

import "math/rand/v2"

// Rand is the randomness a shuffle needs. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Shuffle returns a uniformly random permutation of 0..n-1 (Fisher–Yates).
// A nil rng uses the global generator.
func Shuffle(n int, rng Rand) []int {
	if rng == nil {
		rng = globalRand{}
	}
	if n < 0 {
		n = 0
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}
