package main

import (
	"flag"
)

// flagValues holds the raw parsed flag values before they are translated
// into a config.Config. Keeping this separate from config.Config lets the
// flag names stay snake_case (matching spec.md §6's configuration keys)
// without leaking that convention into the Go-idiomatic Config struct.
type flagValues struct {
	mutationTreeFile string
	alnFile          string
	alignmentZipFile string
	treeZipFile      string
	numStartRow      int
	numAddRow        int
	ppOrigSPR        bool
	ppTestSPR        bool
	originalTreeFile string
	sequenceType     string
	intype           string
	isRooted         bool
	seed             int64
	maxSPRPasses     int
}

// mutplaceFlagSet wraps a flag.FlagSet so parseFlags can be unit tested
// without touching the process-global flag.CommandLine.
type mutplaceFlagSet struct {
	fs   *flag.FlagSet
	vals *flagValues
}

func newFlagSet() *mutplaceFlagSet {
	fs := flag.NewFlagSet("mutplace", flag.ContinueOnError)
	vals := &flagValues{}

	fs.StringVar(&vals.mutationTreeFile, "mutation_tree_file", "", "base Newick tree path")
	fs.StringVar(&vals.alnFile, "aln_file", "", "plain-text alignment path")
	fs.StringVar(&vals.alignmentZipFile, "alignment_zip_file", "", "gzip-compressed alignment path")
	fs.StringVar(&vals.treeZipFile, "tree_zip_file", "", "gzip-compressed tree path")
	fs.IntVar(&vals.numStartRow, "numStartRow", 0, "number of alignment rows already in the base tree")
	fs.IntVar(&vals.numAddRow, "numAddRow", 0, "maximum number of missing samples to place (0 = all)")
	fs.BoolVar(&vals.ppOrigSPR, "pporigspr", false, "skip placement, run SPR on the base tree directly")
	fs.BoolVar(&vals.ppTestSPR, "pp_test_spr", false, "compare output tree to original_tree_file after placement")
	fs.StringVar(&vals.originalTreeFile, "original_tree_file", "", "reference Newick tree for pp_test_spr")
	fs.StringVar(&vals.sequenceType, "sequence_type", "dna", "alignment alphabet hint [dna|rna]")
	fs.StringVar(&vals.intype, "intype", "fasta", "alignment format hint [fasta|vcf]")
	fs.BoolVar(&vals.isRooted, "is_rooted", true, "treat the input tree as rooted")
	fs.Int64Var(&vals.seed, "seed", 1, "permutation search RNG seed")
	fs.IntVar(&vals.maxSPRPasses, "max_spr_passes", 20, "bound on SPR refinement passes")

	return &mutplaceFlagSet{fs: fs, vals: vals}
}

func (m *mutplaceFlagSet) parse(args []string) (*flagValues, error) {
	if err := m.fs.Parse(args); err != nil {
		return nil, err
	}
	return m.vals, nil
}
