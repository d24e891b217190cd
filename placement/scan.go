package placement

import (
	"fmt"

	"github.com/katalvlaran/mutplace/mutation"
	"github.com/katalvlaran/mutplace/tree"
	"github.com/rs/zerolog"
)

// Engine scans a tree's branches for the best attachment point of one
// sample at a time (spec.md §4.4.4's scanning -> selected -> attached state
// machine; the engine itself is single-threaded per sample).
type Engine struct {
	logger zerolog.Logger
}

// NewEngine returns an Engine that logs via logger.
func NewEngine(logger zerolog.Logger) *Engine {
	return &Engine{logger: logger}
}

// AncestralAt returns ancestral(B) for the branch whose child-side endpoint
// is childNode: the root-to-B path's edge mutations, folded left-to-right
// with mutation.Union so the deepest edge's call wins at any shared
// position (spec.md §4.4.1).
func AncestralAt(t *tree.Tree, steps []tree.Step, childNode tree.NodeID) mutation.List {
	path := t.PathToRoot(steps, childNode)
	var acc mutation.List
	for _, eid := range path {
		acc = mutation.Union(acc, t.Edges[eid].Mutations)
	}
	return acc
}

// ResolveExcess fixes a concrete allele for every ambiguous mutation in
// excess, preferring the allele already present in ancestral at the same
// position, falling back to the mutation's own Ref. This is
// imputed_mutations(B, S) (spec.md §4.4.1's "concrete allele resolutions
// chosen for ambiguous positions").
func ResolveExcess(excess, ancestral mutation.List) mutation.List {
	if len(excess) == 0 {
		return nil
	}
	ancByPos := make(map[int]mutation.Allele, len(ancestral))
	for _, m := range ancestral {
		ancByPos[m.Position] = m.Alt
	}
	out := make(mutation.List, len(excess))
	for i, m := range excess {
		pref, ok := ancByPos[m.Position]
		if !ok {
			pref = m.Ref
		}
		m.Alt = mutation.Resolve(m.Alt, pref)
		out[i] = m
	}
	return out
}

// allTreeMutations returns the union of every edge's mutation list, used
// once per sample to decide has_unique (spec.md §4.4.2).
func allTreeMutations(t *tree.Tree) mutation.List {
	var acc mutation.List
	for _, e := range t.Edges {
		acc = mutation.Union(acc, e.Mutations)
	}
	return acc
}

// ScanResult is the outcome of scanning every branch for one sample.
type ScanResult struct {
	Best       Candidate
	HasUnique  bool
	Candidates int
}

// Scan evaluates every candidate branch in BFS order and returns the best
// one by Candidate.betterThan, without mutating the tree (spec.md §4.4.2).
func (e *Engine) Scan(t *tree.Tree, steps []tree.Step, sample Sample, ctx *ScanContext) (ScanResult, error) {
	ctx.Reset()

	var (
		best    Candidate
		haveAny bool
	)

	for i, s := range steps {
		if s.IncomingEdge == tree.NoEdge {
			ctx.ancestralByNode[s.Node] = nil
			continue // root has no incoming branch to attach below
		}
		ancestral := mutation.Union(ctx.ancestralByNode[s.Parent], t.Edges[s.IncomingEdge].Mutations)
		ctx.ancestralByNode[s.Node] = ancestral

		setDiff := mutation.SetDifferenceCount(sample.Mutations, ancestral)
		// SubtreeLeafCount walks the subtree below s.IncomingEdge on every
		// call, so this loop is O(branches^2) per sample, not the
		// O(sites+branches) SPEC_FULL.md §6.4 claims; see DESIGN.md.
		numLeaves, err := t.SubtreeLeafCount(steps, s.IncomingEdge)
		if err != nil {
			return ScanResult{}, fmt.Errorf("placement: Scan: %w", err)
		}
		cand := Candidate{
			Branch:        s.IncomingEdge,
			ParentNode:    s.Parent,
			ChildNode:     s.Node,
			SetDifference: setDiff,
			NumLeaves:     numLeaves,
			Distance:      s.Depth,
			BFSIndex:      i,
		}
		if !haveAny || cand.betterThan(best) {
			excess := mutation.Difference(sample.Mutations, ancestral)
			cand.Excess = excess
			cand.Imputed = ResolveExcess(excess, ancestral)
			best = cand
			haveAny = true
		}
	}

	if !haveAny {
		return ScanResult{}, ErrNoCandidateBranch
	}

	seen := allTreeMutations(t)
	hasUnique := len(mutation.Difference(sample.Mutations, seen)) > 0

	e.logger.Debug().
		Str("sample", sample.Name).
		Int("set_difference", best.SetDifference).
		Bool("has_unique", hasUnique).
		Msg("placement: scan complete")

	return ScanResult{Best: best, HasUnique: hasUnique, Candidates: len(steps) - 1}, nil
}
