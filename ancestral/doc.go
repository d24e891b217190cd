// Package ancestral assigns edge mutations to a parsed Tree from a leaf
// alignment via a Fitch-style parsimony pass (SPEC_FULL.md §6.3).
//
// Each site is processed independently: a post-order pass computes every
// internal node's candidate allele set as the bases held by the largest
// number of its children (for two children: their intersection when
// non-empty, else their union), adding one score unit for every child whose
// set lacks those bases, then a pre-order pass fixes one concrete allele per node
// consistent with its parent and records a mutation on the incoming edge
// wherever parent and child differ. Results across all sites are merged
// into each edge's canonical Mutations list.
//
// The post-order worklist is built from an explicit-stack pre-order walk
// (github.com/gammazero/deque, mirroring the teacher's dfs package's
// explicit-stack style) reversed into post-order, rather than recursion —
// this bounds auxiliary memory by tree size regardless of host stack depth.
package ancestral
