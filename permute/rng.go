// File: rng.go
// Role: deterministic RNG plumbing, adapted from the teacher's tsp/rng.go.
// Determinism: same seed => identical results across platforms, the
// contract spec.md §4.5 requires ("the implementer must accept a seed").
package permute

import "math/rand"

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 maps to defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed via a SplitMix64-style avalanche mix, so independent substreams (one
// per seed-phase candidate, say) never correlate.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG creates an independent deterministic RNG stream from base and a
// stream id, consuming one value from base first to decorrelate repeated
// stream ids.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := base.Int63()
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// shuffleIntsInPlace performs an in-place Fisher-Yates shuffle of a using rng.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// permRange returns a permutation of 0..n-1 generated deterministically from rng.
func permRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	shuffleIntsInPlace(p, rng)
	return p
}
