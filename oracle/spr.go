package oracle

import (
	"github.com/katalvlaran/mutplace/mutation"
	"github.com/katalvlaran/mutplace/tree"
)

// sprEngine holds the state for one bounded SPR refinement run: the
// working tree, a pass budget, and the deterministic candidate ordering
// (teacher idiom: tsp/bb.go's bbEngine holds search state as fields rather
// than closures).
type sprEngine struct {
	t         *tree.Tree
	maxPasses int
}

// RunSPR refines t in place via bounded SPR local search, for callers
// running SPR directly on a base tree without placement first
// (config.PPOrigSPR, spec.md §6).
func RunSPR(t *tree.Tree, maxPasses int) error {
	if maxPasses == 0 {
		maxPasses = DefaultMaxSPRPasses
	}
	eng := &sprEngine{t: t, maxPasses: maxPasses}
	return eng.refine()
}

// refine runs up to e.maxPasses full-tree improvement passes, each scanning
// every SPR-eligible branch as a prune candidate in BFS order and every
// other branch outside the pruned subtree as a regraft target, accepting the first
// strictly-improving move found (first-improvement local search, mirroring
// the teacher's deterministic-branching-order DFS). It stops early once a
// pass finds no improving move.
func (e *sprEngine) refine() error {
	for pass := 0; pass < e.maxPasses; pass++ {
		improved, err := e.onePass()
		if err != nil {
			return err
		}
		if !improved {
			return nil
		}
	}
	return nil
}

// onePass tries candidate SPR moves in order, commits the first one that
// improves the score, and reports whether it found one.
func (e *sprEngine) onePass() (bool, error) {
	steps, err := e.t.BreadthFirstExpansion()
	if err != nil {
		return false, err
	}
	children := childrenOf(steps)
	baseline := e.t.ComputeParsimonyScoreMutation()

	for _, s := range steps {
		if s.IncomingEdge == tree.NoEdge {
			continue
		}
		edge := e.t.Edges[s.IncomingEdge]
		if !edge.Mobility.CanSPR() {
			continue
		}
		u, v := s.Parent, s.Node
		if len(e.t.Nodes[u].Edges) != 3 {
			continue // suppression only handles a bifurcating prune point
		}

		forbidden := subtreeSet(v, children)
		forbidden[u] = true

		for _, target := range steps {
			if target.IncomingEdge == tree.NoEdge || target.IncomingEdge == s.IncomingEdge {
				continue
			}
			if forbidden[target.Node] || forbidden[target.Parent] {
				continue
			}
			improved, err := e.tryMove(s.IncomingEdge, u, v, target.IncomingEdge, baseline)
			if err != nil {
				return false, err
			}
			if improved {
				return true, nil
			}
		}
	}
	return false, nil
}

// tryMove performs prune-at-pruneEdge/regraft-at-targetEdge on a scratch
// clone, and commits the move onto e.t only if it strictly improves on
// baseline.
func (e *sprEngine) tryMove(pruneEdge tree.EdgeID, u, v tree.NodeID, targetEdge tree.EdgeID, baseline int) (bool, error) {
	scratch := e.t.Clone()
	if err := performSPRMove(scratch, pruneEdge, u, v, targetEdge); err != nil {
		return false, err
	}
	if scratch.ComputeParsimonyScoreMutation() >= baseline {
		return false, nil
	}
	*e.t = *scratch
	return true, nil
}

// performSPRMove prunes the subtree rooted at v away from u, suppressing u,
// then regrafts v onto targetEdge.
func performSPRMove(t *tree.Tree, pruneEdge tree.EdgeID, u, v tree.NodeID, targetEdge tree.EdgeID) error {
	pruned := t.Edges[pruneEdge]
	survivor, ok := suppressNode(t, u, pruneEdge)
	if !ok {
		return tree.ErrNotMovable
	}
	if targetEdge == pruneEdge || targetEdge == survivor {
		return tree.ErrNotMovable
	}
	return regraftAt(t, v, pruned.Mutations, pruned.Length, targetEdge)
}

// suppressNode removes u's prune-side edge and merges its two remaining
// incident edges into one direct edge between their far endpoints, with
// mutation lists unioned and lengths summed. u itself is left with no
// edges, logically retired from the arena (tree.SplitEdge's precedent:
// nodes/edges are never removed, only disconnected).
func suppressNode(t *tree.Tree, u tree.NodeID, pruneEdge tree.EdgeID) (tree.EdgeID, bool) {
	uEdges := t.Nodes[u].Edges
	if len(uEdges) != 3 {
		return tree.NoEdge, false
	}
	var remaining []tree.EdgeID
	for _, eid := range uEdges {
		if eid != pruneEdge {
			remaining = append(remaining, eid)
		}
	}
	if len(remaining) != 2 {
		return tree.NoEdge, false
	}

	e1, e2 := t.Edges[remaining[0]], t.Edges[remaining[1]]
	other1, other2 := e1.Other(u), e2.Other(u)
	merged := mutation.Union(e1.Mutations, e2.Mutations)

	newID, err := t.AddEdge(other1, other2, e1.Length+e2.Length, merged, tree.NewMovable(true))
	if err != nil {
		return tree.NoEdge, false
	}
	replaceEdgeRef(t, other1, remaining[0], newID)
	replaceEdgeRef(t, other2, remaining[1], newID)
	t.Nodes[u].Edges = nil
	return newID, true
}

// regraftAt splits targetEdge at a fresh internal node x and attaches v to
// x via a new edge carrying pendantMutations/pendantLength — the pruned
// subtree's own private mutations and branch length, preserved unchanged
// across the move per the SPR definition (only the surrounding topology
// changes).
func regraftAt(t *tree.Tree, v tree.NodeID, pendantMutations mutation.List, pendantLength float64, targetEdge tree.EdgeID) error {
	target := t.Edges[targetEdge]
	x := t.AddInternal(-1)
	if err := t.SplitEdge(targetEdge, x, target.Mutations, mutation.List(nil)); err != nil {
		return err
	}
	_, err := t.AddEdge(x, v, pendantLength, pendantMutations, tree.NewMovable(true))
	return err
}

// replaceEdgeRef rewrites node's adjacency entry from to.
func replaceEdgeRef(t *tree.Tree, node tree.NodeID, from, to tree.EdgeID) {
	edges := t.Nodes[node].Edges
	for i, e := range edges {
		if e == from {
			edges[i] = to
			return
		}
	}
}

// childrenOf builds a NodeID -> []NodeID children map from a BFS expansion.
func childrenOf(steps []tree.Step) map[tree.NodeID][]tree.NodeID {
	children := make(map[tree.NodeID][]tree.NodeID, len(steps))
	for _, s := range steps {
		if s.IncomingEdge == tree.NoEdge {
			continue
		}
		children[s.Parent] = append(children[s.Parent], s.Node)
	}
	return children
}

// subtreeSet returns the set of every node in the subtree rooted at root
// (inclusive), used to forbid regrafting a pruned subtree back inside
// itself.
func subtreeSet(root tree.NodeID, children map[tree.NodeID][]tree.NodeID) map[tree.NodeID]bool {
	set := map[tree.NodeID]bool{root: true}
	var walk func(tree.NodeID)
	walk = func(n tree.NodeID) {
		for _, c := range children[n] {
			if !set[c] {
				set[c] = true
				walk(c)
			}
		}
	}
	walk(root)
	return set
}
