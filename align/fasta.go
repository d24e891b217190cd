package align

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mutplace/mutation"
)

// FromFASTA parses a FASTA-formatted alignment and splits it into existing
// and missing samples at numStartRow (spec.md §6: "the first numStartRow
// sequences form the starting tree's leaves; the remainder become missing
// samples"). All sequences must be the same length.
func FromFASTA(r io.Reader, numStartRow int) (Alignment, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var records []Record
	var name string
	var seq strings.Builder

	flush := func() error {
		if name == "" {
			return nil
		}
		alleles, err := decodeSequence(seq.String())
		if err != nil {
			return fmt.Errorf("align: FromFASTA: record %q: %w", name, err)
		}
		records = append(records, Record{Name: name, Sequence: alleles})
		seq.Reset()
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return Alignment{}, err
			}
			name = strings.TrimSpace(strings.TrimPrefix(line, ">"))
			continue
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return Alignment{}, fmt.Errorf("align: FromFASTA: %w", err)
	}
	if err := flush(); err != nil {
		return Alignment{}, err
	}

	return splitByStartRow(records, numStartRow)
}

// decodeSequence maps each character of s to an Allele via mutation.DecodeSymbol.
func decodeSequence(s string) ([]mutation.Allele, error) {
	out := make([]mutation.Allele, len(s))
	for i := 0; i < len(s); i++ {
		a, err := mutation.DecodeSymbol(s[i])
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

// splitByStartRow validates uniform sequence length and partitions records
// into existing/missing samples at numStartRow.
func splitByStartRow(records []Record, numStartRow int) (Alignment, error) {
	if len(records) == 0 {
		return Alignment{}, ErrEmptyAlignment
	}
	width := len(records[0].Sequence)
	for _, rec := range records {
		if len(rec.Sequence) != width {
			return Alignment{}, fmt.Errorf("align: record %q: %w", rec.Name, ErrLengthMismatch)
		}
	}
	if numStartRow < 0 || numStartRow > len(records) {
		return Alignment{}, ErrNumStartRowOutOfRange
	}
	return Alignment{
		ExistingSamples: records[:numStartRow],
		MissingSamples:  records[numStartRow:],
	}, nil
}
