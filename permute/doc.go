// Package permute searches over the order in which missing samples are
// placed, since placement order affects the final parsimony score
// (spec.md §4.5). Two branches:
//
//   - k <= 5: exhaustive enumeration of all k! orderings.
//   - k > 5: a seed phase (100 random permutations refined by block-move
//     local search) followed by an improvement phase (adjacent-swap local
//     search over a pool of 5), both using reservoir-style tie-breaking.
//
// The package knows nothing about trees or mutations: callers supply an
// Evaluator closure that scores one permutation (grounded on spec.md
// §4.6's computeParsimonyPermutation / oracle.PlaceAndRefine), keeping
// permute reusable independent of the placement/oracle backends.
package permute
