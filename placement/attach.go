package placement

import (
	"github.com/katalvlaran/mutplace/mutation"
	"github.com/katalvlaran/mutplace/tree"
)

// AddNewSample attaches sample as a new leaf using the scored Candidate cand
// (spec.md §4.4.3).
//
//   - If cand.SetDifference == 0 (every sample mutation is already on the
//     root-to-branch path), attach directly as a new leaf off the branch's
//     child endpoint with a zero-mutation edge ("identity-0 leaf edge"), no
//     split needed. The sample is not checked for an exact match: path
//     mutations the sample lacks are not recorded on the new leaf edge.
//   - Otherwise, split cand.Branch at a fresh internal node x. The existing
//     branch's mutation count is preserved across the split by keeping the
//     whole original list on the root-side half (x's parent side) and
//     leaving the child-side half empty — the split point is topological,
//     not a re-derivation of per-site ancestral state, so there is no
//     better place to assign the pre-existing calls than the side already
//     closer to where they were established. The new leaf edge (x->sample)
//     carries exactly cand.Imputed.
//
// The new leaf's Node.MissingIndex is sample.ID.
func AddNewSample(t *tree.Tree, cand Candidate, sample Sample) (tree.NodeID, error) {
	if cand.SetDifference == 0 {
		leaf := t.AddMissingLeaf(sample.Name, sample.ID)
		if _, err := t.AddEdge(cand.ChildNode, leaf, 0, nil, tree.NewMovable(true)); err != nil {
			return tree.NoNode, err
		}
		return leaf, nil
	}

	existing := t.Edges[cand.Branch].Mutations
	x := t.AddInternal(sample.ID)
	if err := t.SplitEdge(cand.Branch, x, existing, mutation.List(nil)); err != nil {
		return tree.NoNode, err
	}

	leaf := t.AddMissingLeaf(sample.Name, sample.ID)
	if _, err := t.AddEdge(x, leaf, 0, cand.Imputed, tree.NewMovable(true)); err != nil {
		return tree.NoNode, err
	}
	return leaf, nil
}

// PlaceSample runs one full scanning -> selected -> attached cycle for
// sample against t (spec.md §4.4.4): it scans every branch via Engine.Scan,
// then attaches at the winning candidate. Callers processing multiple
// samples must re-run t.BreadthFirstExpansion() between calls, since
// attaching changes the tree's topology.
func (e *Engine) PlaceSample(t *tree.Tree, steps []tree.Step, sample Sample, ctx *ScanContext) (tree.NodeID, ScanResult, error) {
	result, err := e.Scan(t, steps, sample, ctx)
	if err != nil {
		return tree.NoNode, ScanResult{}, err
	}
	leaf, err := AddNewSample(t, result.Best, sample)
	if err != nil {
		return tree.NoNode, ScanResult{}, err
	}
	return leaf, result, nil
}
