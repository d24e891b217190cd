package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-mutation_tree_file", "base.nwk",
		"-aln_file", "aln.fasta",
	})
	require.NoError(t, err)
	require.Equal(t, "base.nwk", cfg.MutationTreeFile)
	require.Equal(t, "aln.fasta", cfg.AlnFile)
	require.Equal(t, int64(1), cfg.Seed)
	require.NoError(t, cfg.Validate())
}

func TestParseFlagsVCFIntype(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-mutation_tree_file", "base.nwk",
		"-aln_file", "aln.vcf",
		"-intype", "vcf",
	})
	require.NoError(t, err)
	require.Equal(t, "vcf", string(cfg.InType))
}

func TestParseFlagsPPOrigSPR(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-mutation_tree_file", "base.nwk",
		"-aln_file", "aln.fasta",
		"-pporigspr",
	})
	require.NoError(t, err)
	require.True(t, cfg.PPOrigSPR)
}

func TestParseFlagsRejectsUnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-not_a_real_flag", "x"})
	require.Error(t, err)
}
