package tree

// ComputeParsimony returns the total mutation count across all edges — the
// parsimony score under the mutation model (spec.md §4.2). It is an alias
// of ComputeParsimonyScoreMutation kept for interface parity with the
// oracle's Score contract (spec.md §4.7), which names both.
func (t *Tree) ComputeParsimony() int {
	return t.ComputeParsimonyScoreMutation()
}

// ComputeParsimonyScoreMutation sums len(Edge.Mutations) over every edge
// reachable from the root. Because Mutations is root-independent (doc.go),
// this is also simply the sum over all edges in the arena; reachability is
// checked anyway so a disconnected, logically-retired edge left behind by
// SplitEdge never contributes (Testable Property 6, re-root invariance).
func (t *Tree) ComputeParsimonyScoreMutation() int {
	if len(t.Nodes) == 0 {
		return 0
	}
	steps, err := t.BreadthFirstExpansion()
	if err != nil {
		return 0
	}
	total := 0
	for _, s := range steps {
		if s.IncomingEdge == NoEdge {
			continue
		}
		total += len(t.Edges[s.IncomingEdge].Mutations)
	}
	return total
}
