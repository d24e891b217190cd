package placement

import (
	"testing"

	"github.com/katalvlaran/mutplace/mutation"
	"github.com/katalvlaran/mutplace/tree"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// buildCherryPlusOutgroup builds ((A:1,B:1):1,C:1); with a mutation at site
// 1 on the A edge — scenario 1/2 from spec.md §8.
func buildCherryPlusOutgroup(t *testing.T) (*tree.Tree, tree.NodeID, tree.NodeID, tree.NodeID) {
	t.Helper()
	tr := tree.New()
	root := tr.AddInternal(-1)
	ab := tr.AddInternal(-1)
	a := tr.AddLeaf("A")
	b := tr.AddLeaf("B")
	c := tr.AddLeaf("C")

	_, err := tr.AddEdge(root, ab, 1, nil, tree.NewMovable(true))
	require.NoError(t, err)
	_, err = tr.AddEdge(ab, a, 1, mutation.List{{Position: 1, Alt: mutation.AlleleC}}, tree.NewMovable(true))
	require.NoError(t, err)
	_, err = tr.AddEdge(ab, b, 1, nil, tree.NewMovable(true))
	require.NoError(t, err)
	_, err = tr.AddEdge(root, c, 1, nil, tree.NewMovable(true))
	require.NoError(t, err)
	tr.Root = root
	return tr, a, b, c
}

func TestScanExactMatchAttachesAtZeroSetDifference(t *testing.T) {
	tr, _, _, _ := buildCherryPlusOutgroup(t)
	steps, err := tr.BreadthFirstExpansion()
	require.NoError(t, err)

	sample := Sample{ID: 0, Name: "D", Mutations: mutation.List{{Position: 1, Alt: mutation.AlleleC}}}
	engine := NewEngine(zerolog.Nop())
	ctx := NewScanContext()

	result, err := engine.Scan(tr, steps, sample, ctx)
	require.NoError(t, err)
	require.Equal(t, 0, result.Best.SetDifference)
}

func TestScanDisjointSampleHasUnique(t *testing.T) {
	tr, _, _, _ := buildCherryPlusOutgroup(t)
	steps, err := tr.BreadthFirstExpansion()
	require.NoError(t, err)

	sample := Sample{ID: 0, Name: "D", Mutations: mutation.List{{Position: 7, Alt: mutation.AlleleT}}}
	engine := NewEngine(zerolog.Nop())
	ctx := NewScanContext()

	result, err := engine.Scan(tr, steps, sample, ctx)
	require.NoError(t, err)
	require.True(t, result.HasUnique)
	require.Equal(t, 1, result.Best.SetDifference)
}

func TestScanTieBreakByFewerLeaves(t *testing.T) {
	tr, _, _, _ := buildCherryPlusOutgroup(t)
	steps, err := tr.BreadthFirstExpansion()
	require.NoError(t, err)

	// A unique mutation forces set_difference == 1 on every branch; the
	// winner must be the branch with fewest leaves below it (a leaf edge,
	// not the internal (A,B) edge).
	sample := Sample{ID: 0, Name: "D", Mutations: mutation.List{{Position: 99, Alt: mutation.AlleleG}}}
	engine := NewEngine(zerolog.Nop())
	ctx := NewScanContext()

	result, err := engine.Scan(tr, steps, sample, ctx)
	require.NoError(t, err)
	leaves, err := tr.SubtreeLeafCount(steps, result.Best.Branch)
	require.NoError(t, err)
	require.Equal(t, 1, leaves)
}

func TestAddNewSampleExactMatchSibling(t *testing.T) {
	tr, _, _, _ := buildCherryPlusOutgroup(t)
	steps, err := tr.BreadthFirstExpansion()
	require.NoError(t, err)

	sample := Sample{ID: 0, Name: "D", Mutations: mutation.List{{Position: 1, Alt: mutation.AlleleC}}}
	engine := NewEngine(zerolog.Nop())
	ctx := NewScanContext()

	leaf, _, err := engine.PlaceSample(tr, steps, sample, ctx)
	require.NoError(t, err)
	require.Equal(t, sample.Name, tr.Nodes[leaf].Name)
	require.Equal(t, 0, tr.Nodes[leaf].MissingIndex)
}

func TestAddNewSampleSplitsBranchAndPreservesMutationCount(t *testing.T) {
	tr, _, _, _ := buildCherryPlusOutgroup(t)
	steps, err := tr.BreadthFirstExpansion()
	require.NoError(t, err)

	before := tr.ComputeParsimonyScoreMutation()

	sample := Sample{ID: 0, Name: "D", Mutations: mutation.List{{Position: 42, Alt: mutation.AlleleT}}}
	engine := NewEngine(zerolog.Nop())
	ctx := NewScanContext()
	_, result, err := engine.PlaceSample(tr, steps, sample, ctx)
	require.NoError(t, err)

	after := tr.ComputeParsimonyScoreMutation()
	require.Equal(t, before+len(result.Best.Excess), after)
}
