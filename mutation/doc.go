// Package mutation defines the position/allele record used throughout
// mutplace and the sorted-list set operations (union, intersection,
// difference, symmetric difference) that the placement engine and the
// ancestral-state initialiser build on.
//
// A Mutation is a tuple (Position, CompressedPosition, Ref, Alt, Par).
// Two mutations are equal iff their Position and Alt allele match; "same
// allele" at a given position is defined as a non-empty intersection of
// ambiguity bitmasks (see Allele), so an ambiguous call such as R (A/G)
// is considered equal to a resolved A or G call at the same position.
//
// Lists are kept sorted by Position with no duplicate positions, per the
// invariant in SPEC_FULL.md §5. All set operations are linear in the
// combined length of their inputs.
package mutation
