package permute

import "math/rand"

const blockMoveIterations = 10

// blockMoveLocalSearch implements spec.md §4.5's seed-phase refinement: up
// to 10 iterations, each picking a random contiguous block and trying to
// reinsert it near its original location, accepting strict improvements
// and reservoir-accepted ties.
func blockMoveLocalSearch(perm []int, score int, eval Evaluator, rng *rand.Rand) ([]int, int) {
	k := len(perm)
	cur := append([]int(nil), perm...)
	curScore := score
	hitCount := 0

	maxBlockLen := k / 20
	if maxBlockLen < 2 {
		maxBlockLen = 2
	}
	radius := k / 20
	if radius < 1 {
		radius = 1
	}

	for iter := 0; iter < blockMoveIterations; iter++ {
		blockLen := 2
		if maxBlockLen > 2 {
			blockLen = 2 + rng.Intn(maxBlockLen-1)
		}
		if blockLen > k {
			blockLen = k
		}
		l := rng.Intn(k - blockLen + 1)
		r := l + blockLen - 1

		for _, target := range insertionTargets(l, r, k, radius) {
			cand := moveBlock(cur, l, r, target)
			candScore, err := eval(cand)
			if err != nil {
				continue
			}
			if acceptMove(curScore, candScore, &hitCount, rng) {
				cur = cand
				curScore = candScore
			}
		}
	}
	return cur, curScore
}

// insertionTargets returns candidate reinsertion indices within radius of l
// or r, in the original (pre-removal) index space; moveBlock clips them
// into the post-removal index space.
func insertionTargets(l, r, k, radius int) []int {
	seen := make(map[int]bool)
	var out []int
	add := func(base int) {
		for d := -radius; d <= radius; d++ {
			i := base + d
			if i < 0 {
				i = 0
			}
			if i > k-1 {
				i = k - 1
			}
			if !seen[i] {
				seen[i] = true
				out = append(out, i)
			}
		}
	}
	add(l)
	add(r)
	return out
}

// moveBlock removes perm[l:r+1] and reinserts it immediately after index
// insertAfter of the remaining elements.
func moveBlock(perm []int, l, r, insertAfter int) []int {
	block := append([]int(nil), perm[l:r+1]...)
	rest := make([]int, 0, len(perm)-len(block))
	rest = append(rest, perm[:l]...)
	rest = append(rest, perm[r+1:]...)

	if insertAfter > len(rest) {
		insertAfter = len(rest)
	}
	if insertAfter < 0 {
		insertAfter = 0
	}

	out := make([]int, 0, len(perm))
	out = append(out, rest[:insertAfter]...)
	out = append(out, block...)
	out = append(out, rest[insertAfter:]...)
	return out
}

const adjacentSwapOuterIterations = 10

// adjacentSwapLocalSearch implements spec.md §4.5's improvement-phase
// refinement: up to 10 outer iterations scanning every position i and
// swapping it with every j within maxDist, accepting strict improvements
// and reservoir-accepted ties, rolling back everything else.
func adjacentSwapLocalSearch(perm []int, score int, eval Evaluator, rng *rand.Rand) ([]int, int) {
	k := len(perm)
	maxDist := k / 20
	if maxDist < 1 {
		maxDist = 1
	}
	cur := append([]int(nil), perm...)
	curScore := score
	hitCount := 0

	for outer := 0; outer < adjacentSwapOuterIterations; outer++ {
		for i := 0; i < k; i++ {
			upper := i + maxDist
			if upper > k-1 {
				upper = k - 1
			}
			for j := i + 1; j <= upper; j++ {
				cur[i], cur[j] = cur[j], cur[i]
				candScore, err := eval(cur)
				if err != nil {
					cur[i], cur[j] = cur[j], cur[i]
					continue
				}
				if acceptMove(curScore, candScore, &hitCount, rng) {
					curScore = candScore
				} else {
					cur[i], cur[j] = cur[j], cur[i]
				}
			}
		}
	}
	return cur, curScore
}
