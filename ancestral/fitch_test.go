package ancestral

import (
	"testing"

	"github.com/katalvlaran/mutplace/mutation"
	"github.com/katalvlaran/mutplace/tree"
)

// buildStar creates root r with three leaves a, b, c, all edges initially
// carrying no mutations (InitMutation will populate them).
func buildStar(t *testing.T) (*tree.Tree, tree.NodeID, tree.NodeID, tree.NodeID, tree.NodeID) {
	t.Helper()
	tr := tree.New()
	r := tr.AddInternal(-1)
	a := tr.AddLeaf("A")
	b := tr.AddLeaf("B")
	c := tr.AddLeaf("C")
	if _, err := tr.AddEdge(r, a, 1, nil, tree.NewMovable(true)); err != nil {
		t.Fatalf("AddEdge r-a: %v", err)
	}
	if _, err := tr.AddEdge(r, b, 1, nil, tree.NewMovable(true)); err != nil {
		t.Fatalf("AddEdge r-b: %v", err)
	}
	if _, err := tr.AddEdge(r, c, 1, nil, tree.NewMovable(true)); err != nil {
		t.Fatalf("AddEdge r-c: %v", err)
	}
	tr.Root = r
	return tr, r, a, b, c
}

func TestInitMutationAllAgreeNoMutations(t *testing.T) {
	tr, _, a, b, c := buildStar(t)
	in := Input{Columns: []SiteColumn{
		{
			Position:           0,
			CompressedPosition: 0,
			Ref:                mutation.AlleleA,
			LeafAllele: map[tree.NodeID]mutation.Allele{
				a: mutation.AlleleA,
				b: mutation.AlleleA,
				c: mutation.AlleleA,
			},
		},
	}}

	res, err := InitMutation(tr, in)
	if err != nil {
		t.Fatalf("InitMutation: %v", err)
	}
	if res.FitchScore != 0 {
		t.Fatalf("expected FitchScore 0, got %d", res.FitchScore)
	}
	if tr.ComputeParsimonyScoreMutation() != 0 {
		t.Fatalf("expected parsimony score 0, got %d", tr.ComputeParsimonyScoreMutation())
	}
}

func TestInitMutationOneDivergentLeaf(t *testing.T) {
	tr, _, a, b, c := buildStar(t)
	in := Input{Columns: []SiteColumn{
		{
			Position:           5,
			CompressedPosition: 0,
			Ref:                mutation.AlleleA,
			LeafAllele: map[tree.NodeID]mutation.Allele{
				a: mutation.AlleleA,
				b: mutation.AlleleA,
				c: mutation.AlleleG,
			},
		},
	}}

	res, err := InitMutation(tr, in)
	if err != nil {
		t.Fatalf("InitMutation: %v", err)
	}
	// A, A, G at a 3-leaf star: A is held by two of the three children, so
	// the root keeps {A} and the one child lacking it costs one mutation,
	// recorded on the edge leading to the divergent leaf.
	if res.FitchScore != 1 {
		t.Fatalf("expected FitchScore 1 (one child outside the majority set), got %d", res.FitchScore)
	}
	score := tr.ComputeParsimonyScoreMutation()
	if score != 1 {
		t.Fatalf("expected parsimony score 1, got %d", score)
	}
}

func TestInitMutationAllThreeDiffer(t *testing.T) {
	tr, _, a, b, c := buildStar(t)
	in := Input{Columns: []SiteColumn{
		{
			Position:           7,
			CompressedPosition: 0,
			Ref:                mutation.AlleleA,
			LeafAllele: map[tree.NodeID]mutation.Allele{
				a: mutation.AlleleA,
				b: mutation.AlleleC,
				c: mutation.AlleleG,
			},
		},
	}}

	res, err := InitMutation(tr, in)
	if err != nil {
		t.Fatalf("InitMutation: %v", err)
	}
	if res.FitchScore != 2 {
		t.Fatalf("expected two mutations at the root (each base held by one child), got FitchScore=%d", res.FitchScore)
	}
	if tr.ComputeParsimonyScoreMutation() != res.FitchScore {
		t.Fatalf("parsimony score %d does not match Fitch score %d", tr.ComputeParsimonyScoreMutation(), res.FitchScore)
	}
}

func TestInitMutationMissingLeafCall(t *testing.T) {
	tr, _, a, b, _ := buildStar(t)
	in := Input{Columns: []SiteColumn{
		{
			Position:           0,
			CompressedPosition: 0,
			Ref:                mutation.AlleleA,
			LeafAllele: map[tree.NodeID]mutation.Allele{
				a: mutation.AlleleA,
				b: mutation.AlleleA,
				// c omitted deliberately
			},
		},
	}}
	if _, err := InitMutation(tr, in); err == nil {
		t.Fatalf("expected error for missing leaf call")
	}
}
