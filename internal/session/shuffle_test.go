package session

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

// lastRand always picks the highest index, which leaves the identity order
type lastRand struct{}

func (lastRand) IntN(n int) int { return n - 1 }

func TestShuffle_IsPermutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for _, n := range []int{0, 1, 2, 3, 10, 101} {
		order := Shuffle(n, rng)
		assert.Len(t, order, n)

		sorted := append([]int(nil), order...)
		sort.Ints(sorted)
		for i := range sorted {
			assert.Equal(t, i, sorted[i])
		}
	}
}

func TestShuffle_NegativeLength(t *testing.T) {
	assert.Empty(t, Shuffle(-3, nil))
}

func TestShuffle_NilRandUsesGlobal(t *testing.T) {
	order := Shuffle(5, nil)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, order)
}

func TestShuffle_UsesSource(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, Shuffle(4, lastRand{}))
}

func TestShuffle_Uniform(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	counts := map[[3]int]int{}
	const rounds = 6000

	for i := 0; i < rounds; i++ {
		o := Shuffle(3, rng)
		counts[[3]int{o[0], o[1], o[2]}]++
	}

	assert.Len(t, counts, 6)
	for perm, c := range counts {
		// 1000 expected per permutation
		assert.InDelta(t, rounds/6, c, 150, "permutation %v", perm)
	}
}
