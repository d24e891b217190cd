package tree

// AssignRoot re-roots the tree at the leaf named taxon. It only updates
// t.Root; no Edge.Mutations is touched, satisfying the invariant that
// re-rooting must not alter any edge's mutation set (spec.md §3) and
// guaranteeing computeParsimonyScoreMutation is unchanged (Testable
// Property 6 / scenario 6).
func (t *Tree) AssignRoot(taxon string) error {
	for i := range t.Nodes {
		if t.Nodes[i].Name == taxon {
			t.Root = t.Nodes[i].ID
			return nil
		}
	}
	return ErrTaxonNotFound
}
