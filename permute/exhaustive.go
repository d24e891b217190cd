package permute

// exhaustiveSearch enumerates all k! permutations of [0..k) via Heap's
// algorithm and returns the minimum-scoring one (spec.md §4.5 small-k
// branch). A poisoned candidate (eval error) is treated as infiniteScore
// and never wins.
func exhaustiveSearch(k int, eval Evaluator) (Result, error) {
	perm := make([]int, k)
	for i := range perm {
		perm[i] = i
	}

	best := Result{Score: infiniteScore}
	evaluate := func() error {
		score, err := eval(perm)
		if err != nil {
			return nil // poisoned candidate: skip, not fatal
		}
		if score < best.Score {
			best.Score = score
			best.Permutation = append([]int(nil), perm...)
		}
		return nil
	}

	c := make([]int, k)
	if err := evaluate(); err != nil {
		return Result{}, err
	}
	for i := 0; i < k; {
		if c[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[c[i]], perm[i] = perm[i], perm[c[i]]
			}
			if err := evaluate(); err != nil {
				return Result{}, err
			}
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}

	if best.Permutation == nil {
		return Result{}, ErrEmptyPool
	}
	return best, nil
}
