package ancestral

import (
	"errors"

	"github.com/katalvlaran/mutplace/mutation"
	"github.com/katalvlaran/mutplace/tree"
)

// ErrNoLeafCall indicates a site column is missing an allele for a leaf
// that InitMutation needs to resolve.
var ErrNoLeafCall = errors.New("ancestral: site column missing leaf call")

// SiteColumn is one compressed alignment column: the reference allele, and
// the observed call at every leaf node (SPEC_FULL.md §6.7's site-pattern
// collapsing feeds this in already deduplicated).
type SiteColumn struct {
	// Position is the representative uncollapsed alignment column recorded
	// on any Mutation produced for this site.
	Position int
	// CompressedPosition indexes this column after site-pattern collapsing.
	CompressedPosition int
	Ref                 mutation.Allele
	// LeafAllele maps every leaf NodeID present in the tree to its observed
	// allele at this site.
	LeafAllele map[tree.NodeID]mutation.Allele
}

// Input is the full alignment handed to InitMutation, one SiteColumn per
// compressed position, in ascending CompressedPosition order.
type Input struct {
	Columns []SiteColumn
}

// Result reports the Fitch score accumulated while assigning ancestral
// states, for the caller to check against Tree.ComputeParsimonyScoreMutation
// (spec.md §4.3 post-condition, Testable Property 1).
type Result struct {
	FitchScore int
}
