// Command mutplace (and its supporting packages) places missing alignment
// rows onto a base phylogenetic tree by maximum parsimony and refines the
// result with subtree-prune-and-regraft local search.
//
// The packages under this module:
//
//	mutation/  — IUPAC allele bitmasks, mutation lists, sorted-set algebra
//	tree/      — node/edge arena, Newick I/O, BFS, re-rooting, parsimony scoring
//	ancestral/ — Fitch ancestral state reconstruction
//	placement/ — branch scanning and attachment for one missing sample
//	permute/   — deterministic search over sample placement orders
//	oracle/    — pluggable parsimony scoring and SPR refinement
//	align/     — FASTA/VCF-like alignment readers, gzip detection, site-pattern collapsing
//	config/    — CLI configuration
//	cmd/mutplace/ — the command-line entry point
package mutplace
