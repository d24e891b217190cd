package permute

import "math/rand"

// Search orders k missing samples to minimise the Evaluator's score
// (spec.md §4.5), dispatching to exhaustiveSearch for k <= 5 and to
// largeKSearch otherwise.
func Search(k int, eval Evaluator, opts Options) (Result, error) {
	if k == 0 {
		return Result{}, ErrNoSamples
	}
	if k <= exhaustiveThreshold {
		return exhaustiveSearch(k, eval)
	}
	return largeKSearch(k, eval, opts)
}

// poolMember is one permutation retained across the seed and improvement
// phases of largeKSearch.
type poolMember struct {
	perm  []int
	score int
}

const (
	seedCount = 100
	poolCap   = 5
	noImproveCap = 10
)

// largeKSearch implements spec.md §4.5's large-k branch: a seed phase of
// 100 random permutations each refined by block-move local search, feeding
// a 5-member pool, followed by an improvement phase of adjacent-swap local
// search that runs until 10 consecutive pool updates yield no improvement.
func largeKSearch(k int, eval Evaluator, opts Options) (Result, error) {
	rng := rngFromSeed(opts.Seed)

	var pool []poolMember
	for s := 0; s < seedCount; s++ {
		streamRNG := deriveRNG(rng, uint64(s))
		seedPerm := permRange(k, streamRNG)
		score, err := eval(seedPerm)
		if err != nil {
			continue
		}
		refinedPerm, refinedScore := blockMoveLocalSearch(seedPerm, score, eval, streamRNG)
		pool = admitToPool(pool, poolMember{perm: refinedPerm, score: refinedScore}, streamRNG)
	}
	if len(pool) == 0 {
		return Result{}, ErrEmptyPool
	}
	seedBest := bestOfPool(pool)

	noImprove := 0
	for iter := 0; noImprove < noImproveCap; iter++ {
		member := pool[rng.Intn(len(pool))]
		memberRNG := deriveRNG(rng, uint64(seedCount+iter))
		refinedPerm, refinedScore := adjacentSwapLocalSearch(member.perm, member.score, eval, memberRNG)

		priorBest := bestOfPool(pool).score
		pool = admitToPool(pool, poolMember{perm: refinedPerm, score: refinedScore}, memberRNG)
		if bestOfPool(pool).score < priorBest {
			noImprove = 0
		} else {
			noImprove++
		}
	}

	final := bestOfPool(pool)
	// Testable Property 5: the improvement phase must never regress past the
	// best seed score. The pool only ever admits and evicts by score, so
	// seedBest survives unless strictly beaten; this is a defensive check,
	// not a expected code path.
	if final.score > seedBest.score {
		final = seedBest
	}
	return Result{Permutation: final.perm, Score: final.score}, nil
}

// admitToPool appends cand and, if the pool now exceeds poolCap, evicts one
// worst-scoring member, breaking ties among equally-worst members with a
// fair coin (spec.md §4.5: "evict the worst (ties broken by fair coin)").
func admitToPool(pool []poolMember, cand poolMember, rng *rand.Rand) []poolMember {
	pool = append(pool, cand)
	if len(pool) <= poolCap {
		return pool
	}
	worstScore := pool[0].score
	for _, m := range pool[1:] {
		if m.score > worstScore {
			worstScore = m.score
		}
	}
	var worstIdx []int
	for i, m := range pool {
		if m.score == worstScore {
			worstIdx = append(worstIdx, i)
		}
	}
	evict := worstIdx[0]
	if len(worstIdx) > 1 {
		evict = worstIdx[rng.Intn(len(worstIdx))]
	}
	return append(pool[:evict], pool[evict+1:]...)
}

func bestOfPool(pool []poolMember) poolMember {
	best := pool[0]
	for _, m := range pool[1:] {
		if m.score < best.score {
			best = m
		}
	}
	return best
}

// acceptMove implements the shared strict-improvement-or-reservoir-tie
// acceptance rule used by both local searches: strict improvements always
// accept; a tie accepts with probability 1/hitCount, where hitCount counts
// ties observed so far in this local-search run (spec.md §4.5).
func acceptMove(curScore, candScore int, hitCount *int, rng *rand.Rand) bool {
	switch {
	case candScore < curScore:
		return true
	case candScore == curScore:
		*hitCount++
		return rng.Intn(*hitCount) == 0
	default:
		return false
	}
}
