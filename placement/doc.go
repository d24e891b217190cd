// Package placement scores every branch of a tree as an attachment point
// for one missing sample, selects the best branch by set-difference with
// deterministic tie-breaks, and performs the attach (SPEC_FULL.md §6.4,
// spec.md §4.4).
//
// Scratch state lives in ScanContext, an explicit value passed into
// Engine.PlaceSample rather than a tree field (spec.md §9 design note):
// each oracle evaluation (oracle.MutationOracle.PlaceOnly) creates its own
// ScanContext and works on its own Tree.Clone(), so evaluations share no
// scratch state. Package permute runs those evaluations one after another.
package placement
