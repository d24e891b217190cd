package ancestral

import (
	"fmt"

	"github.com/gammazero/deque"
	"github.com/katalvlaran/mutplace/mutation"
	"github.com/katalvlaran/mutplace/tree"
)

// InitMutation performs the Fitch pass described in doc.go and installs the
// resulting canonical mutation list on every edge of t. Any pre-existing
// Edge.Mutations are overwritten; InitMutation is meant to run once, before
// any placement.
func InitMutation(t *tree.Tree, in Input) (Result, error) {
	steps, err := t.BreadthFirstExpansion()
	if err != nil {
		return Result{}, fmt.Errorf("ancestral: %w", err)
	}

	children := childrenOf(steps)
	post := postOrder(t.Root, children)

	accum := make([]mutation.List, t.EdgeCount())
	var result Result

	for _, col := range in.Columns {
		candidate := make(map[tree.NodeID]mutation.Allele, len(steps))

		for _, n := range post {
			kids := children[n]
			if len(kids) == 0 {
				allele, ok := col.LeafAllele[n]
				if !ok {
					return Result{}, fmt.Errorf("ancestral: node %d: %w", n, ErrNoLeafCall)
				}
				candidate[n] = allele
				continue
			}
			var counts [4]int // children whose set holds A, C, G, T
			for _, c := range kids {
				for i := range counts {
					if candidate[c]&(mutation.AlleleA<<i) != 0 {
						counts[i]++
					}
				}
			}
			best := max(counts[0], counts[1], counts[2], counts[3])
			candidate[n] = mutation.AlleleNone
			for i := range counts {
				if counts[i] == best {
					candidate[n] |= mutation.AlleleA << i
				}
			}
			result.FitchScore += len(kids) - best
		}

		final := make(map[tree.NodeID]mutation.Allele, len(steps))
		for _, s := range steps {
			if s.IncomingEdge == tree.NoEdge {
				final[s.Node] = mutation.Resolve(candidate[s.Node], mutation.AlleleNone)
				continue
			}
			parentFinal := final[s.Parent]
			nodeFinal := mutation.Resolve(candidate[s.Node], parentFinal)
			final[s.Node] = nodeFinal
			if nodeFinal != parentFinal {
				accum[s.IncomingEdge] = append(accum[s.IncomingEdge], mutation.Mutation{
					Position:           col.Position,
					CompressedPosition: col.CompressedPosition,
					Ref:                col.Ref,
					Alt:                nodeFinal,
					Par:                parentFinal,
				})
			}
		}
	}

	for i := range t.Edges {
		t.Edges[i].Mutations = accum[i]
	}

	return result, nil
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

// postOrder returns every node reachable from root exactly once, in
// post-order (every node after all of its descendants), via an explicit
// stack rather than recursion: a pre-order DFS pushes/pops a
// github.com/gammazero/deque stack, and reversing a pre-order walk of a
// tree yields a valid post-order.
func postOrder(root tree.NodeID, children map[tree.NodeID][]tree.NodeID) []tree.NodeID {
	var stack deque.Deque[tree.NodeID]
	stack.PushBack(root)

	var pre []tree.NodeID
	for stack.Len() > 0 {
		n := stack.PopBack()
		pre = append(pre, n)
		for _, c := range children[n] {
			stack.PushBack(c)
		}
	}

	post := make([]tree.NodeID, len(pre))
	for i, n := range pre {
		post[len(pre)-1-i] = n
	}
	return post
}
