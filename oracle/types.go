package oracle

import (
	"errors"

	"github.com/katalvlaran/mutplace/placement"
	"github.com/katalvlaran/mutplace/tree"
)

// ErrNotImplemented is returned by ExternalOracle, the stub adapter for a
// pluggable likelihood/PLL backend this repository does not implement.
var ErrNotImplemented = errors.New("oracle: external backend not implemented")

// Params configures PlaceAndRefine's SPR refinement.
type Params struct {
	// MaxSPRPasses bounds the number of full-tree improvement passes.
	// Zero means DefaultMaxSPRPasses.
	MaxSPRPasses int
}

// DefaultMaxSPRPasses is used when Params.MaxSPRPasses is zero.
const DefaultMaxSPRPasses = 20

// Oracle scores a tree and runs placement + SPR refinement for one
// permutation of missing samples (spec.md §4.7). Any backend satisfying
// this contract is acceptable; callers never special-case the concrete
// implementation.
type Oracle interface {
	// Score returns the tree's parsimony score.
	Score(t *tree.Tree) int

	// PlaceAndRefine deep-copies t, places every sample in samples in the
	// order given by permutation (indices into samples), runs SPR
	// refinement, and returns the resulting parsimony score.
	PlaceAndRefine(t *tree.Tree, samples []placement.Sample, permutation []int, params Params) (int, error)
}
