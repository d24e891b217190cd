package oracle

import (
	"testing"

	"github.com/katalvlaran/mutplace/mutation"
	"github.com/katalvlaran/mutplace/placement"
	"github.com/katalvlaran/mutplace/tree"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// buildQuartet builds (((A,B),C),D); — a caterpillar with a movable
// internal edge, deep enough to exercise one SPR move.
func buildQuartet(t *testing.T) *tree.Tree {
	t.Helper()
	tr := tree.New()
	root := tr.AddInternal(-1)
	abc := tr.AddInternal(-1)
	ab := tr.AddInternal(-1)
	a := tr.AddLeaf("A")
	b := tr.AddLeaf("B")
	c := tr.AddLeaf("C")
	d := tr.AddLeaf("D")

	_, err := tr.AddEdge(root, abc, 1, nil, tree.NewMovable(true))
	require.NoError(t, err)
	_, err = tr.AddEdge(abc, ab, 1, nil, tree.NewMovable(true))
	require.NoError(t, err)
	_, err = tr.AddEdge(ab, a, 1, mutation.List{{Position: 1, Alt: mutation.AlleleC}}, tree.NewMovable(true))
	require.NoError(t, err)
	_, err = tr.AddEdge(ab, b, 1, nil, tree.NewMovable(true))
	require.NoError(t, err)
	_, err = tr.AddEdge(abc, c, 1, mutation.List{{Position: 1, Alt: mutation.AlleleC}}, tree.NewMovable(true))
	require.NoError(t, err)
	_, err = tr.AddEdge(root, d, 1, nil, tree.NewMovable(true))
	require.NoError(t, err)
	tr.Root = root
	return tr
}

func TestMutationOracleScoreMatchesTreeParsimony(t *testing.T) {
	tr := buildQuartet(t)
	o := NewMutationOracle(zerolog.Nop())
	require.Equal(t, tr.ComputeParsimonyScoreMutation(), o.Score(tr))
}

func TestPlaceAndRefineDoesNotRegress(t *testing.T) {
	tr := buildQuartet(t)
	o := NewMutationOracle(zerolog.Nop())

	samples := []placement.Sample{
		{ID: 0, Name: "E", Mutations: mutation.List{{Position: 1, Alt: mutation.AlleleC}}},
	}
	before := o.Score(tr)

	after, err := o.PlaceAndRefine(tr, samples, []int{0}, Params{})
	require.NoError(t, err)
	// placement only ever adds mutations already required by the sample, and
	// SPR only commits strictly improving moves, so the refined score never
	// exceeds before + the sample's mutation count (an upper bound on its
	// required excess).
	require.LessOrEqual(t, after, before+len(samples[0].Mutations))
}

func TestPlaceAndRefineIsolatesCallerTree(t *testing.T) {
	tr := buildQuartet(t)
	originalNodeCount := tr.NodeCount()
	originalEdgeCount := tr.EdgeCount()

	o := NewMutationOracle(zerolog.Nop())
	samples := []placement.Sample{
		{ID: 0, Name: "E", Mutations: mutation.List{{Position: 9, Alt: mutation.AlleleG}}},
	}
	_, err := o.PlaceAndRefine(tr, samples, []int{0}, Params{})
	require.NoError(t, err)

	require.Equal(t, originalNodeCount, tr.NodeCount())
	require.Equal(t, originalEdgeCount, tr.EdgeCount())
}

func TestExternalOracleWithoutBackendErrors(t *testing.T) {
	o := &ExternalOracle{}
	tr := buildQuartet(t)
	_, err := o.PlaceAndRefine(tr, nil, nil, Params{})
	require.ErrorIs(t, err, ErrNotImplemented)
	require.Equal(t, 0, o.Score(tr))
}

func TestSPREngineNeverIncreasesScore(t *testing.T) {
	tr := buildQuartet(t)
	before := tr.ComputeParsimonyScoreMutation()

	eng := &sprEngine{t: tr, maxPasses: DefaultMaxSPRPasses}
	require.NoError(t, eng.refine())

	after := tr.ComputeParsimonyScoreMutation()
	require.LessOrEqual(t, after, before)
}
