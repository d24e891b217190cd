package align

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/mutplace/mutation"
)

// FromVCFLike parses a minimal tab-separated VCF-like format: a header line
// "#CHROM\tPOS\tREF\tALT\t<sample names...>" followed by one row per site
// ("\t"-separated POS, REF, ALT, then one genotype call per sample: "0" for
// REF, "1" for ALT, "." for missing/ambiguous). Full VCF (multi-allelic
// records, INFO/FORMAT fields, phased genotypes) is a non-goal.
func FromVCFLike(r io.Reader, numStartRow int) (Alignment, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var sampleNames []string
	var sequences [][]mutation.Allele // per sample, built column by column

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#CHROM") {
			fields := strings.Split(line, "\t")
			if len(fields) < 4 {
				return Alignment{}, fmt.Errorf("align: FromVCFLike: header: %w", ErrMalformedRecord)
			}
			sampleNames = fields[4:]
			sequences = make([][]mutation.Allele, len(sampleNames))
			continue
		}
		if sampleNames == nil {
			return Alignment{}, fmt.Errorf("align: FromVCFLike: data before header: %w", ErrMalformedRecord)
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 3+len(sampleNames) {
			return Alignment{}, fmt.Errorf("align: FromVCFLike: row field count: %w", ErrMalformedRecord)
		}
		if _, err := strconv.Atoi(fields[0]); err != nil {
			return Alignment{}, fmt.Errorf("align: FromVCFLike: POS %q: %w", fields[0], ErrMalformedRecord)
		}
		ref, err := mutation.DecodeSymbol(fields[1][0])
		if err != nil {
			return Alignment{}, fmt.Errorf("align: FromVCFLike: REF %q: %w", fields[1], err)
		}
		alt, err := mutation.DecodeSymbol(fields[2][0])
		if err != nil {
			return Alignment{}, fmt.Errorf("align: FromVCFLike: ALT %q: %w", fields[2], err)
		}

		for i, call := range fields[3:] {
			allele, err := decodeGenotype(call, ref, alt)
			if err != nil {
				return Alignment{}, fmt.Errorf("align: FromVCFLike: sample %q: %w", sampleNames[i], err)
			}
			sequences[i] = append(sequences[i], allele)
		}
	}
	if err := scanner.Err(); err != nil {
		return Alignment{}, fmt.Errorf("align: FromVCFLike: %w", err)
	}
	if sampleNames == nil {
		return Alignment{}, ErrEmptyAlignment
	}

	records := make([]Record, len(sampleNames))
	for i, name := range sampleNames {
		records[i] = Record{Name: name, Sequence: sequences[i]}
	}
	return splitByStartRow(records, numStartRow)
}

// decodeGenotype maps a single VCF-like genotype call to an Allele.
func decodeGenotype(call string, ref, alt mutation.Allele) (mutation.Allele, error) {
	switch call {
	case "0":
		return ref, nil
	case "1":
		return alt, nil
	case ".":
		return mutation.DecodeSymbol('N')
	default:
		return mutation.AlleleNone, fmt.Errorf("genotype %q: %w", call, ErrMalformedRecord)
	}
}
