package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mutplace/align"
	"github.com/katalvlaran/mutplace/ancestral"
	"github.com/katalvlaran/mutplace/tree"
)

// buildCherryTree returns an internal root r with three leaves A, B, C, all
// with zero-mutation edges (InitMutation will populate them).
func buildCherryTree(t *testing.T) (*tree.Tree, tree.NodeID) {
	t.Helper()
	tr := tree.New()
	r := tr.AddInternal(-1)
	a := tr.AddLeaf("A")
	b := tr.AddLeaf("B")
	c := tr.AddLeaf("C")
	for _, leaf := range []tree.NodeID{a, b, c} {
		if _, err := tr.AddEdge(r, leaf, 1, nil, tree.NewMovable(true)); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	tr.Root = r
	return tr, r
}

const cherryFASTA = ">A\nACGT\n>B\nACGA\n>C\nACGT\n>D\nTTTT\n"

func TestBuildAncestralInputMapsLeavesToAlleles(t *testing.T) {
	tr, _ := buildCherryTree(t)
	aln, err := align.FromFASTA(strings.NewReader(cherryFASTA), 3)
	require.NoError(t, err)
	perm := aln.FindPermCol()

	input, err := buildAncestralInput(tr, aln, perm)
	require.NoError(t, err)
	require.Len(t, input.Columns, perm.NumCompressed)

	result, err := ancestral.InitMutation(tr, input)
	require.NoError(t, err)
	require.Equal(t, 1, result.FitchScore, "exactly one site (the 4th) disagrees among A,B,C")
}

func TestBuildSamplesExtractsOnlyDivergentSites(t *testing.T) {
	aln, err := align.FromFASTA(strings.NewReader(cherryFASTA), 3)
	require.NoError(t, err)
	perm := aln.FindPermCol()
	refCompressed := perm.Compress(aln.ExistingSamples[0].Sequence)

	samples := buildSamples(aln, perm, refCompressed)
	require.Len(t, samples, 1)
	require.Equal(t, "D", samples[0].Name)
	require.NotEmpty(t, samples[0].Mutations)
	require.NoError(t, samples[0].Mutations.Validate())
}

func TestLeafIndexMapsNamesToNodeIDs(t *testing.T) {
	tr, _ := buildCherryTree(t)
	idx := leafIndex(tr)
	require.Len(t, idx, 3)
	require.Contains(t, idx, "A")
	require.Contains(t, idx, "B")
	require.Contains(t, idx, "C")
}
