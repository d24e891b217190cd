// Package tree implements the mutation-annotated tree store: a flat node
// arena addressed by integer NodeID, undirected edges ("branches") carrying
// ordered mutation lists, breadth-first traversal, Newick ingestion/printing,
// re-rooting, and deep copy.
//
// Re-architecture note (SPEC_FULL.md §5 / spec.md §9): the original
// implementation's nodes hold a `dad` back-pointer for reverse traversal.
// Here nodes live in a dense []Node arena and all cross-references are
// NodeID/EdgeID indices; the parent of a node is never stored — it is
// carried explicitly as traversal state (see BreadthFirstExpansion and
// Step.Parent), which is what makes Tree.Clone an O(V+E) slice copy with
// no graph-repair step.
//
// Mutation storage is per undirected Edge, not per half-edge: each Edge
// owns exactly one canonical mutation.List, established once by the
// ancestral initialiser and thereafter root-independent. This resolves the
// tension in spec.md §3 between "two half-edges whose mutation lists are
// logical complements" and "relocating the root must not alter any edge's
// mutation set" in favour of the simpler, testable invariant: Newick
// topology and rooting are about traversal order only, never about what an
// edge's Mutations list contains (see DESIGN.md, Open Question 3).
package tree
