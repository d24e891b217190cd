package align

import (
	"bufio"
	"compress/gzip"
	"io"
)

// gzipMagic is the two-byte gzip header (RFC 1952 §2.3.1).
var gzipMagic = [2]byte{0x1f, 0x8b}

// OpenMaybeGzip wraps r in a gzip.Reader if its first two bytes match the
// gzip magic number, otherwise returns r unchanged. This is how
// tree_zip_file/alignment_zip_file are made to behave identically to their
// uncompressed counterparts (SPEC_FULL.md §6.7).
func OpenMaybeGzip(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	peek, err := br.Peek(2)
	if err != nil {
		if err == io.EOF {
			return br, nil
		}
		return nil, err
	}
	if peek[0] == gzipMagic[0] && peek[1] == gzipMagic[1] {
		return gzip.NewReader(br)
	}
	return br, nil
}
