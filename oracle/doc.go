// Package oracle implements the parsimony oracle interface (spec.md §4.7):
// scoring a tree and running placement + SPR refinement for one
// permutation of missing samples (spec.md §4.6). The engine treats the
// oracle as opaque; MutationOracle is the default, pure-mutation-model
// backend, and ExternalOracle is a pluggable-backend adapter for a
// likelihood/PLL-style collaborator that this repository never implements
// (spec.md §1's out-of-scope collaborator).
//
// MutationOracle's SPR search is shaped on the teacher's tsp/bb.go
// branch-and-bound engine: an explicit engine struct holding search state,
// deterministic candidate ordering, and first-improvement acceptance —
// adapted here from tour permutations to subtree prune/regraft candidates,
// without the admissible-lower-bound pruning tsp's exact search relies on
// (SPR's search space has no equivalent cheap bound).
package oracle
