// File: build.go
// Role: arena mutation primitives — the only place new Nodes/Edges are appended.
// Invariant: placement never removes existing nodes (spec.md §3); these
// helpers only ever grow t.Nodes/t.Edges.
package tree

import "github.com/katalvlaran/mutplace/mutation"

// AddLeaf appends a named leaf node (MissingIndex -1) and returns its id.
func (t *Tree) AddLeaf(name string) NodeID {
	id := NodeID(len(t.Nodes))
	t.Nodes = append(t.Nodes, Node{ID: id, Name: name, MissingIndex: -1})
	return id
}

// AddMissingLeaf appends a leaf created by placement, tagging it with the
// sample's index per spec.md §3 ("missingIndex >= 0 iff the node was created
// by placement").
func (t *Tree) AddMissingLeaf(name string, missingIndex int) NodeID {
	id := NodeID(len(t.Nodes))
	t.Nodes = append(t.Nodes, Node{ID: id, Name: name, MissingIndex: missingIndex})
	return id
}

// AddInternal appends an unnamed internal node. missingIndex is -1 for
// ancestral-initialisation-time internal nodes, or the sample index for a
// node introduced by an edge split during placement.
func (t *Tree) AddInternal(missingIndex int) NodeID {
	id := NodeID(len(t.Nodes))
	t.Nodes = append(t.Nodes, Node{ID: id, MissingIndex: missingIndex})
	return id
}

// AddEdge appends an undirected branch between a and b and registers it in
// both endpoints' adjacency, returning the new EdgeID.
func (t *Tree) AddEdge(a, b NodeID, length float64, muts mutation.List, mob Mobility) (EdgeID, error) {
	if _, err := t.Node(a); err != nil {
		return NoEdge, err
	}
	if _, err := t.Node(b); err != nil {
		return NoEdge, err
	}
	id := EdgeID(len(t.Edges))
	t.Edges = append(t.Edges, Edge{
		ID:        id,
		A:         a,
		B:         b,
		Length:    length,
		Mutations: muts,
		Mobility:  mob,
	})
	t.Nodes[a].Edges = append(t.Nodes[a].Edges, id)
	t.Nodes[b].Edges = append(t.Nodes[b].Edges, id)
	return id, nil
}

// SplitEdge replaces edge old (a–b) with two new edges a–x and x–b, where x
// is a freshly allocated internal node. The old edge's Mutations are
// bisected by the caller (placement decides the split point); this helper
// only performs the topology surgery and installs the two supplied lists.
//
// old is left in the arena unmodified in content but logically retired: its
// endpoints no longer reference it, so it is unreachable from any traversal
// starting at the tree's current Root. Nodes/edges are never removed from
// the arena (spec.md §3), only disconnected.
func (t *Tree) SplitEdge(oldID EdgeID, x NodeID, aSideMuts, bSideMuts mutation.List) error {
	old, err := t.Edge(oldID)
	if err != nil {
		return err
	}
	a, b, length, mob := old.A, old.B, old.Length, old.Mobility

	replaceEndpoint := func(nodeID NodeID, from, to EdgeID) {
		node := &t.Nodes[nodeID]
		for i, e := range node.Edges {
			if e == from {
				node.Edges[i] = to
				return
			}
		}
	}

	axID, err := t.AddEdge(a, x, length/2, aSideMuts, mob)
	if err != nil {
		return err
	}
	replaceEndpoint(a, oldID, axID)

	xbID, err := t.AddEdge(x, b, length/2, bSideMuts, mob)
	if err != nil {
		return err
	}
	replaceEndpoint(b, oldID, xbID)

	return nil
}
