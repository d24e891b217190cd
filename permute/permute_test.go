package permute

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// linearCost scores a permutation by the sum of position*value, giving a
// unique minimum permutation (descending order) cheap enough for exhaustive
// tests and small enough to validate exactly.
func linearCost(perm []int) (int, error) {
	cost := 0
	for i, v := range perm {
		cost += i * v
	}
	return cost, nil
}

func TestExhaustiveFindsGlobalMinimum(t *testing.T) {
	result, err := Search(4, linearCost, Options{Seed: 1})
	require.NoError(t, err)
	require.Len(t, result.Permutation, 4)

	// Brute-force reference minimum over all 4! permutations.
	best := infiniteScore
	perm := []int{0, 1, 2, 3}
	permute := func() {
		score, _ := linearCost(perm)
		if score < best {
			best = score
		}
	}
	var heap func(k int)
	heap = func(k int) {
		if k == 1 {
			permute()
			return
		}
		for i := 0; i < k; i++ {
			heap(k - 1)
			if k%2 == 0 {
				perm[i], perm[k-1] = perm[k-1], perm[i]
			} else {
				perm[0], perm[k-1] = perm[k-1], perm[0]
			}
		}
	}
	heap(4)

	require.Equal(t, best, result.Score)
}

func TestExhaustiveSkipsPoisonedCandidates(t *testing.T) {
	allPoisoned := func(perm []int) (int, error) {
		return 0, errPoison
	}
	_, err := Search(3, allPoisoned, Options{Seed: 1})
	require.ErrorIs(t, err, ErrEmptyPool)
}

func TestLargeKSearchDeterministicUnderSameSeed(t *testing.T) {
	const k = 12
	eval := func(perm []int) (int, error) { return linearCost(perm) }

	r1, err := Search(k, eval, Options{Seed: 42})
	require.NoError(t, err)
	r2, err := Search(k, eval, Options{Seed: 42})
	require.NoError(t, err)

	require.Equal(t, r1.Score, r2.Score)
	require.True(t, slices.Equal(r1.Permutation, r2.Permutation))
}

func TestLargeKSearchNeverRegressesPastSeedBest(t *testing.T) {
	const k = 20
	eval := func(perm []int) (int, error) { return linearCost(perm) }

	result, err := Search(k, eval, Options{Seed: 7})
	require.NoError(t, err)
	require.Len(t, result.Permutation, k)

	// largeKSearch draws its first seed from deriveRNG(rngFromSeed(seed), 0);
	// that seed's unrefined score bounds the best refined seed, and so the result.
	firstSeed := permRange(k, deriveRNG(rngFromSeed(7), 0))
	firstSeedScore, _ := linearCost(firstSeed)
	require.LessOrEqual(t, result.Score, firstSeedScore)
}

func TestAdmitToPoolEvictsWorst(t *testing.T) {
	rng := rngFromSeed(1)
	pool := []poolMember{
		{perm: []int{0}, score: 1},
		{perm: []int{1}, score: 2},
		{perm: []int{2}, score: 3},
		{perm: []int{3}, score: 4},
		{perm: []int{4}, score: 5},
	}
	pool = admitToPool(pool, poolMember{perm: []int{5}, score: 0}, rng)
	require.Len(t, pool, 5)
	for _, m := range pool {
		require.NotEqual(t, 5, m.score)
	}
}

type poisonErr struct{}

func (poisonErr) Error() string { return "poisoned" }

var errPoison = poisonErr{}
