package oracle

import (
	"github.com/katalvlaran/mutplace/placement"
	"github.com/katalvlaran/mutplace/tree"
)

// Backend is the interface a real likelihood/PLL-style collaborator would
// satisfy (spec.md §1's out-of-scope external engine). ExternalOracle
// adapts a Backend to the Oracle contract so the rest of this repository
// never special-cases "no real backend available" — it is free to be left
// nil, in which case PlaceAndRefine returns ErrNotImplemented and Score
// returns 0.
type Backend interface {
	Score(t *tree.Tree) int
	PlaceAndRefine(t *tree.Tree, samples []placement.Sample, permutation []int, params Params) (int, error)
}

// ExternalOracle adapts an optional Backend to the Oracle interface.
type ExternalOracle struct {
	Backend Backend
}

// Score implements Oracle.
func (o *ExternalOracle) Score(t *tree.Tree) int {
	if o.Backend == nil {
		return 0
	}
	return o.Backend.Score(t)
}

// PlaceAndRefine implements Oracle.
func (o *ExternalOracle) PlaceAndRefine(t *tree.Tree, samples []placement.Sample, permutation []int, params Params) (int, error) {
	if o.Backend == nil {
		return 0, ErrNotImplemented
	}
	return o.Backend.PlaceAndRefine(t, samples, permutation, params)
}
