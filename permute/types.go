package permute

import "errors"

// ErrEmptyPool indicates every candidate was poisoned by a backend error (all
// k! orderings in the exhaustive branch, or every seed permutation in the
// large-k branch), so the search has nothing to return
// (spec.md §7: "if the pool empties, the search fails fatally").
var ErrEmptyPool = errors.New("permute: candidate pool exhausted")

// ErrNoSamples indicates Search was called with k == 0.
var ErrNoSamples = errors.New("permute: no samples to order")

// exhaustiveThreshold is the largest k handled by full enumeration
// (spec.md §4.5: "Small-k branch (k <= 5)").
const exhaustiveThreshold = 5

// Evaluator scores one permutation of sample indices [0..k) by running
// placement + SPR refinement (spec.md §4.6) and returning the resulting
// parsimony score. A non-nil error poisons the candidate with an infinite
// score rather than aborting the search (spec.md §7).
type Evaluator func(permutation []int) (int, error)

// Options configures Search.
type Options struct {
	// Seed makes the large-k branch's RNG-driven search deterministic.
	// Seed == 0 uses a fixed default stream.
	Seed int64
}

// Result is the outcome of Search: the best-scoring permutation found and
// its score.
type Result struct {
	Permutation []int
	Score       int
}

const infiniteScore = int(^uint(0) >> 1) // math.MaxInt, avoiding an import for one constant
