package align

import (
	"strings"

	"github.com/katalvlaran/mutplace/mutation"
)

// PermCol records how raw alignment columns collapse into compressed site
// patterns: columns identical across every existing sample carry the same
// Fitch/placement cost, so scoring only the distinct patterns and expanding
// afterward is equivalent to scoring every raw column (SPEC_FULL.md §6.7).
type PermCol struct {
	// CompressedPerCol[site] is the compressed-column index raw column site
	// maps to, in first-occurrence order.
	CompressedPerCol []int
	// NumCompressed is the number of distinct compressed columns.
	NumCompressed int
}

// FindPermCol groups a's existing samples' columns by identical content and
// returns the raw-to-compressed mapping, in first-occurrence order.
func (a Alignment) FindPermCol() PermCol {
	numSites := a.NumSites()
	seen := make(map[string]int, numSites)
	perCol := make([]int, numSites)
	for site := 0; site < numSites; site++ {
		sig := columnSignature(a.ExistingSamples, site)
		idx, ok := seen[sig]
		if !ok {
			idx = len(seen)
			seen[sig] = idx
		}
		perCol[site] = idx
	}
	return PermCol{CompressedPerCol: perCol, NumCompressed: len(seen)}
}

// columnSignature builds a per-site fingerprint across every sample's allele
// call, used only to group identical columns together.
func columnSignature(records []Record, site int) string {
	var b strings.Builder
	b.Grow(len(records))
	for _, rec := range records {
		b.WriteByte(byte(rec.Sequence[site]))
	}
	return b.String()
}

// Compress reduces a full-length sequence to one allele per compressed
// column, taken from that pattern's first-occurring raw site.
func (p PermCol) Compress(sequence []mutation.Allele) []mutation.Allele {
	compressed := make([]mutation.Allele, p.NumCompressed)
	filled := make([]bool, p.NumCompressed)
	for site, col := range p.CompressedPerCol {
		if filled[col] {
			continue
		}
		compressed[col] = sequence[site]
		filled[col] = true
	}
	return compressed
}

// UngroupSitePattern expands a compressed-length allele slice back to full
// raw-column length by broadcasting each compressed call to every raw
// column that collapsed into it.
func (p PermCol) UngroupSitePattern(compressed []mutation.Allele) []mutation.Allele {
	out := make([]mutation.Allele, len(p.CompressedPerCol))
	for site, col := range p.CompressedPerCol {
		out[site] = compressed[col]
	}
	return out
}
