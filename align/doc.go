// Package align supplies the Alignment contract spec.md §3 requires but
// treats as an out-of-scope collaborator (SPEC_FULL.md §6.7): minimal,
// honest FASTA and VCF-like readers, transparent gzip detection for
// tree_zip_file/alignment_zip_file, and the site-pattern collapsing
// (findPermCol/ungroupSitePattern) that lets downstream Fitch/placement
// code work on compressed positions instead of raw alignment columns.
//
// Format edge cases (IUPAC extensions beyond the 15 ambiguity codes,
// multi-line FASTA wrapping quirks, VCF INFO fields) are non-goals: these
// readers accept the common case and reject anything else with a wrapped
// error rather than guessing.
package align
