// File: bfs.go
// Role: breadth-first expansion — the canonical traversal order every
// downstream algorithm (ancestral init, placement scan, printing) relies on
// for deterministic tie-breaking (spec.md §4.2).
package tree

import "github.com/gammazero/deque"

// Step pairs a visited node with the half-edge it was reached through and
// its parent, mirroring spec.md §4.2's "(node, incoming-half-edge) pairs".
// The root's Step has IncomingEdge == NoEdge and Parent == NoNode.
type Step struct {
	Node         NodeID
	IncomingEdge EdgeID
	Parent       NodeID
	Depth        int
}

// BreadthFirstExpansion walks the tree from t.Root and returns every node
// exactly once, in BFS order. It is deterministic given a fixed root and a
// fixed neighbour-insertion order (Node.Edges), which is the guarantee
// placement's tie-breaking (rule 3: "branch's j index in BFS order") depends
// on.
//
// The FIFO worklist is a github.com/gammazero/deque ring buffer rather than
// a slice-based queue, avoiding the O(n) PopFront reslice of a plain slice
// queue for large trees.
func (t *Tree) BreadthFirstExpansion() ([]Step, error) {
	if len(t.Nodes) == 0 {
		return nil, ErrEmptyTree
	}
	if _, err := t.Node(t.Root); err != nil {
		return nil, err
	}

	out := make([]Step, 0, len(t.Nodes))
	visited := make([]bool, len(t.Nodes))

	var q deque.Deque[Step]
	q.PushBack(Step{Node: t.Root, IncomingEdge: NoEdge, Parent: NoNode, Depth: 0})
	visited[t.Root] = true

	for q.Len() > 0 {
		cur := q.PopFront()
		out = append(out, cur)

		node := t.Nodes[cur.Node]
		for _, eid := range node.Edges {
			if eid == cur.IncomingEdge {
				continue
			}
			e := t.Edges[eid]
			next := e.Other(cur.Node)
			if visited[next] {
				continue
			}
			visited[next] = true
			q.PushBack(Step{Node: next, IncomingEdge: eid, Parent: cur.Node, Depth: cur.Depth + 1})
		}
	}

	return out, nil
}

// PathToRoot returns the sequence of EdgeIDs from t.Root down to node,
// in root-to-node order, by walking the BFS parent chain backwards. It is
// used to flatten ancestral(B) for a candidate branch B (spec.md §4.4.1).
func (t *Tree) PathToRoot(steps []Step, node NodeID) []EdgeID {
	index := make(map[NodeID]int, len(steps))
	for i, s := range steps {
		index[s.Node] = i
	}
	var reversed []EdgeID
	cur := node
	for {
		i, ok := index[cur]
		if !ok || steps[i].IncomingEdge == NoEdge {
			break
		}
		reversed = append(reversed, steps[i].IncomingEdge)
		cur = steps[i].Parent
	}
	out := make([]EdgeID, len(reversed))
	for i, e := range reversed {
		out[len(reversed)-1-i] = e
	}
	return out
}

// SubtreeLeafCount returns the number of leaves in the subtree rooted below
// the endpoint of edge e that is farther from t.Root — used by placement's
// tie-break rule 1 ("fewer leaves in the subtree below B").
func (t *Tree) SubtreeLeafCount(steps []Step, e EdgeID) (int, error) {
	edge, err := t.Edge(e)
	if err != nil {
		return 0, err
	}
	// The child endpoint is whichever of A/B was reached later in BFS order
	// (i.e. is not the parent of the other along this edge).
	parentOf := make(map[NodeID]NodeID, len(steps))
	for _, s := range steps {
		parentOf[s.Node] = s.Parent
	}
	child := edge.B
	if parentOf[edge.B] != edge.A && parentOf[edge.A] == edge.B {
		child = edge.A
	}

	var walk func(n NodeID, from EdgeID) int
	walk = func(n NodeID, from EdgeID) int {
		node := t.Nodes[n]
		if node.Name != "" && len(node.Edges) <= 1 {
			return 1
		}
		count := 0
		leafLike := true
		for _, eid := range node.Edges {
			if eid == from {
				continue
			}
			leafLike = false
			other := t.Edges[eid].Other(n)
			count += walk(other, eid)
		}
		if leafLike && node.Name != "" {
			return 1
		}
		return count
	}
	return walk(child, e), nil
}
