// Package config centralizes the recognised configuration options for a
// placement run: input file locations, row counts, SPR-only/regression-test
// switches, and alphabet hints (spec.md §6 Configuration). It follows the
// builder package's functional-options shape: Default applies options over a
// builtin default Config, later options override earlier ones.
package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for config validation.
var (
	// ErrNoMutationTreeFile indicates neither MutationTreeFile nor TreeZipFile was set.
	ErrNoMutationTreeFile = errors.New("config: mutation_tree_file not set")

	// ErrNoAlignmentFile indicates neither AlnFile nor AlignmentZipFile was set.
	ErrNoAlignmentFile = errors.New("config: aln_file/alignment_zip_file not set")

	// ErrNumStartRowNegative indicates NumStartRow < 0.
	ErrNumStartRowNegative = errors.New("config: numStartRow must be >= 0")

	// ErrNumAddRowNegative indicates NumAddRow < 0.
	ErrNumAddRowNegative = errors.New("config: numAddRow must be >= 0")

	// ErrPPTestSPRWithoutReference indicates PPTestSPR is set but
	// OriginalTreeFile is empty.
	ErrPPTestSPRWithoutReference = errors.New("config: pp_test_spr set without original_tree_file")
)

// SequenceType is the alignment alphabet hint (spec.md §6's sequence_type).
type SequenceType string

const (
	SequenceDNA     SequenceType = "dna"
	SequenceRNA     SequenceType = "rna"
	SequenceUnknown SequenceType = ""
)

// InputType is the alignment format hint (spec.md §6's intype).
type InputType string

const (
	InputFASTA   InputType = "fasta"
	InputVCFLike InputType = "vcf"
)

// Config is the resolved set of recognised options for one placement run.
// Field names mirror spec.md §6's configuration keys; Go-style CamelCase
// replaces the original snake_case.
type Config struct {
	// MutationTreeFile is the path to the base Newick tree.
	MutationTreeFile string
	// AlnFile and AlignmentZipFile are alternative alignment sources; at
	// least one must be set. AlignmentZipFile is gzip-compressed.
	AlnFile          string
	AlignmentZipFile string
	// TreeZipFile is a gzip-compressed alternative to MutationTreeFile.
	TreeZipFile string

	// NumStartRow is the number of alignment rows already present as leaves
	// in the base tree.
	NumStartRow int
	// NumAddRow caps how many missing samples get placed; clamped to the
	// number actually available.
	NumAddRow int

	// PPOrigSPR, when true, skips placement entirely and runs SPR refinement
	// directly on the base tree.
	PPOrigSPR bool
	// PPTestSPR, when true, compares the output tree against
	// OriginalTreeFile for regression testing; requires OriginalTreeFile.
	PPTestSPR        bool
	OriginalTreeFile string

	// SequenceType and InType are alphabet/format hints for the alignment reader.
	SequenceType SequenceType
	InType       InputType

	// IsRooted indicates whether the input tree should be treated as rooted.
	IsRooted bool

	// Seed seeds the permutation search's RNG (spec.md §5: "the only source
	// of non-determinism").
	Seed int64

	// MaxSPRPasses bounds oracle.Params.MaxSPRPasses for SPR refinement.
	MaxSPRPasses int
}

// Option mutates a Config during construction. Later options override
// earlier ones, matching builder.BuilderOption's convention.
type Option func(cfg *Config)

// Default returns a Config populated with the builtin defaults, then applies
// each opt in order.
func Default(opts ...Option) *Config {
	cfg := &Config{
		NumStartRow:  0,
		NumAddRow:    0,
		SequenceType: SequenceDNA,
		InType:       InputFASTA,
		IsRooted:     true,
		Seed:         1,
		MaxSPRPasses: 20,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithMutationTreeFile sets the base Newick tree path.
func WithMutationTreeFile(path string) Option {
	return func(cfg *Config) { cfg.MutationTreeFile = path }
}

// WithAlnFile sets the plain-text alignment path.
func WithAlnFile(path string) Option {
	return func(cfg *Config) { cfg.AlnFile = path }
}

// WithAlignmentZipFile sets the gzip-compressed alignment path.
func WithAlignmentZipFile(path string) Option {
	return func(cfg *Config) { cfg.AlignmentZipFile = path }
}

// WithTreeZipFile sets the gzip-compressed tree path.
func WithTreeZipFile(path string) Option {
	return func(cfg *Config) { cfg.TreeZipFile = path }
}

// WithNumStartRow sets the number of alignment rows already in the base tree.
func WithNumStartRow(n int) Option {
	return func(cfg *Config) { cfg.NumStartRow = n }
}

// WithNumAddRow sets the maximum number of missing samples to place.
func WithNumAddRow(n int) Option {
	return func(cfg *Config) { cfg.NumAddRow = n }
}

// WithPPOrigSPR enables SPR-only mode (skip placement).
func WithPPOrigSPR(enabled bool) Option {
	return func(cfg *Config) { cfg.PPOrigSPR = enabled }
}

// WithPPTestSPR enables post-placement regression comparison against refPath.
func WithPPTestSPR(enabled bool, refPath string) Option {
	return func(cfg *Config) {
		cfg.PPTestSPR = enabled
		cfg.OriginalTreeFile = refPath
	}
}

// WithSequenceType sets the alignment alphabet hint.
func WithSequenceType(t SequenceType) Option {
	return func(cfg *Config) { cfg.SequenceType = t }
}

// WithInType sets the alignment format hint.
func WithInType(t InputType) Option {
	return func(cfg *Config) { cfg.InType = t }
}

// WithIsRooted sets whether the input tree should be treated as rooted.
func WithIsRooted(rooted bool) Option {
	return func(cfg *Config) { cfg.IsRooted = rooted }
}

// WithSeed sets the permutation search RNG seed.
func WithSeed(seed int64) Option {
	return func(cfg *Config) { cfg.Seed = seed }
}

// WithMaxSPRPasses sets the SPR refinement pass cap.
func WithMaxSPRPasses(n int) Option {
	return func(cfg *Config) { cfg.MaxSPRPasses = n }
}

// Validate reports the first configuration error found, per spec.md §7's
// "Input errors ... fatal, surfaced to caller" and the §6 field contracts.
func (cfg *Config) Validate() error {
	if cfg.MutationTreeFile == "" && cfg.TreeZipFile == "" {
		return ErrNoMutationTreeFile
	}
	if cfg.AlnFile == "" && cfg.AlignmentZipFile == "" {
		return ErrNoAlignmentFile
	}
	if cfg.NumStartRow < 0 {
		return ErrNumStartRowNegative
	}
	if cfg.NumAddRow < 0 {
		return ErrNumAddRowNegative
	}
	if cfg.PPTestSPR && cfg.OriginalTreeFile == "" {
		return ErrPPTestSPRWithoutReference
	}
	return nil
}

// TreeFile returns whichever of MutationTreeFile/TreeZipFile is set,
// preferring the compressed path when both are present.
func (cfg *Config) TreeFile() string {
	if cfg.TreeZipFile != "" {
		return cfg.TreeZipFile
	}
	return cfg.MutationTreeFile
}

// AlignmentFile returns whichever of AlignmentZipFile/AlnFile is set,
// preferring the compressed path when both are present.
func (cfg *Config) AlignmentFile() string {
	if cfg.AlignmentZipFile != "" {
		return cfg.AlignmentZipFile
	}
	return cfg.AlnFile
}

// String renders a one-line summary suitable for a log line at run start.
func (cfg *Config) String() string {
	return fmt.Sprintf(
		"tree=%s aln=%s numStartRow=%d numAddRow=%d pporigspr=%t seed=%d",
		cfg.TreeFile(), cfg.AlignmentFile(), cfg.NumStartRow, cfg.NumAddRow, cfg.PPOrigSPR, cfg.Seed,
	)
}
