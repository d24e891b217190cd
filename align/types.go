package align

import (
	"errors"

	"github.com/katalvlaran/mutplace/mutation"
)

// Sentinel errors for the align package.
var (
	// ErrEmptyAlignment indicates a reader produced zero sequences.
	ErrEmptyAlignment = errors.New("align: empty alignment")

	// ErrLengthMismatch indicates sequences in one alignment have differing lengths.
	ErrLengthMismatch = errors.New("align: sequence length mismatch")

	// ErrMalformedRecord indicates a record could not be parsed (missing
	// header, truncated line, wrong column count).
	ErrMalformedRecord = errors.New("align: malformed record")

	// ErrNumStartRowOutOfRange indicates numStartRow exceeds the number of
	// parsed records.
	ErrNumStartRowOutOfRange = errors.New("align: numStartRow exceeds record count")
)

// Record is one named sequence, decoded to per-site alleles.
type Record struct {
	Name     string
	Sequence []mutation.Allele
}

// Alignment is the parsed input split into the samples already placed in
// the starting tree and the samples still awaiting placement (spec.md §3's
// existingSamples / missingSamples[i] / remainName[i] contract).
type Alignment struct {
	ExistingSamples []Record
	MissingSamples  []Record
}

// RemainName returns the name of the i-th missing sample.
func (a Alignment) RemainName(i int) string {
	return a.MissingSamples[i].Name
}

// NumSites returns the alignment's (uncompressed) column count, taken from
// the first existing sample.
func (a Alignment) NumSites() int {
	if len(a.ExistingSamples) == 0 {
		return 0
	}
	return len(a.ExistingSamples[0].Sequence)
}
