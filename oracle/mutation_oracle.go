package oracle

import (
	"fmt"

	"github.com/katalvlaran/mutplace/placement"
	"github.com/katalvlaran/mutplace/tree"
	"github.com/rs/zerolog"
)

// MutationOracle is the default parsimony oracle backend: it scores trees
// by their mutation count alone and refines topology via a mutation-aware
// SPR local search (spec.md §4.6-4.7).
type MutationOracle struct {
	engine *placement.Engine
	logger zerolog.Logger
}

// NewMutationOracle returns a MutationOracle logging via logger.
func NewMutationOracle(logger zerolog.Logger) *MutationOracle {
	return &MutationOracle{engine: placement.NewEngine(logger), logger: logger}
}

// Score implements Oracle.
func (o *MutationOracle) Score(t *tree.Tree) int {
	return t.ComputeParsimonyScoreMutation()
}

// PlaceAndRefine implements Oracle: deep-copy, place every sample in
// permutation order, then SPR-refine (spec.md §4.6).
func (o *MutationOracle) PlaceAndRefine(t *tree.Tree, samples []placement.Sample, permutation []int, params Params) (int, error) {
	_, score, err := o.PlaceAndRefineTree(t, samples, permutation, params)
	return score, err
}

// PlaceOnly deep-copies t and places every sample in permutation order,
// without SPR refinement. cmd/mutplace uses this to render the
// pre-refinement "addedTree"/tree1 outputs.
func (o *MutationOracle) PlaceOnly(t *tree.Tree, samples []placement.Sample, permutation []int) (*tree.Tree, error) {
	working := t.Clone()
	ctx := placement.NewScanContext()

	for _, idx := range permutation {
		if idx < 0 || idx >= len(samples) {
			return nil, fmt.Errorf("oracle: PlaceOnly: permutation index %d out of range", idx)
		}
		steps, err := working.BreadthFirstExpansion()
		if err != nil {
			return nil, fmt.Errorf("oracle: PlaceOnly: %w", err)
		}
		if _, _, err := o.engine.PlaceSample(working, steps, samples[idx], ctx); err != nil {
			return nil, fmt.Errorf("oracle: PlaceOnly: addNewSample: %w", err)
		}
	}
	return working, nil
}

// PlaceAndRefineTree is PlaceAndRefine's CLI-facing counterpart: it returns
// the materialised working tree alongside its final score, for callers
// (cmd/mutplace) that need to serialise the winning permutation's tree
// rather than just compare scores.
func (o *MutationOracle) PlaceAndRefineTree(t *tree.Tree, samples []placement.Sample, permutation []int, params Params) (*tree.Tree, int, error) {
	working, err := o.PlaceOnly(t, samples, permutation)
	if err != nil {
		return nil, 0, err
	}

	maxPasses := params.MaxSPRPasses
	if maxPasses == 0 {
		maxPasses = DefaultMaxSPRPasses
	}
	before := o.Score(working)
	eng := &sprEngine{t: working, maxPasses: maxPasses}
	if err := eng.refine(); err != nil {
		return nil, 0, fmt.Errorf("oracle: PlaceAndRefine: SPR: %w", err)
	}
	after := o.Score(working)

	o.logger.Debug().
		Int("score_before_spr", before).
		Int("score_after_spr", after).
		Msg("oracle: placeAndRefine complete")

	return working, after, nil
}
