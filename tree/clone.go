package tree

// Clone returns a deep copy of t: an independent node/edge arena so that a
// permutation-search worker can mutate its copy (placement + SPR) with no
// aliasing back to the caller's tree (spec.md §4.6, Testable Property 7).
//
// Because the arena is slice-of-structs with only slice-valued fields
// (Node.Edges, Edge.Mutations, Edge.SavedMutations), a deep copy is a flat
// O(V+E) walk — no pointer graph to repair, unlike the original's
// dad-linked node structures (spec.md §9).
func (t *Tree) Clone() *Tree {
	out := &Tree{
		Root:   t.Root,
		AddRow: t.AddRow,
		Nodes:  make([]Node, len(t.Nodes)),
		Edges:  make([]Edge, len(t.Edges)),
	}
	for i, n := range t.Nodes {
		out.Nodes[i] = Node{
			ID:           n.ID,
			Name:         n.Name,
			MissingIndex: n.MissingIndex,
			Edges:        append([]EdgeID(nil), n.Edges...),
		}
	}
	for i, e := range t.Edges {
		out.Edges[i] = Edge{
			ID:             e.ID,
			A:              e.A,
			B:              e.B,
			Length:         e.Length,
			Mutations:      e.Mutations.Clone(),
			SavedMutations: e.SavedMutations.Clone(),
			Mobility:       e.Mobility,
		}
	}
	return out
}
