package mutation

import "errors"

// Sentinel errors for the mutation package.
var (
	// ErrUnsortedList indicates a mutation list was not strictly sorted by Position.
	ErrUnsortedList = errors.New("mutation: list not sorted by position")

	// ErrDuplicatePosition indicates two mutations in the same list share a Position.
	ErrDuplicatePosition = errors.New("mutation: duplicate position in list")

	// ErrNegativePosition indicates a Mutation was constructed with Position < 0.
	ErrNegativePosition = errors.New("mutation: negative position")

	// ErrUnknownSymbol indicates a sequence-alphabet symbol outside the IUPAC codes.
	ErrUnknownSymbol = errors.New("mutation: unknown alphabet symbol")
)

// Allele is a bitmask over the four-letter nucleotide alphabet {A,C,G,T}.
// IUPAC ambiguity codes decode to the union of their constituent bits (see
// ambiguity.go). Two alleles are considered the "same allele" at a site iff
// Allele.Intersects reports true — this governs duplicate detection,
// set-difference semantics, and imputed-mutation resolution.
type Allele uint8

// Bit values for the four unambiguous bases. Ambiguity codes are built by
// OR-ing these together (see DecodeSymbol).
const (
	AlleleA Allele = 1 << iota
	AlleleC
	AlleleG
	AlleleT
)

// AlleleNone represents an absent/unset allele (e.g. a reference position with
// no recorded mutation).
const AlleleNone Allele = 0

// Intersects reports whether a and b share at least one base, i.e. whether
// they may be treated as the "same allele" for equality and set-difference
// purposes.
func (a Allele) Intersects(b Allele) bool {
	return a&b != 0
}

// IsUnambiguous reports whether a encodes exactly one base.
func (a Allele) IsUnambiguous() bool {
	return a != AlleleNone && a&(a-1) == 0
}

// Mutation is a single-site difference from the reference sequence.
//
//   - Position is the site index in the (uncollapsed) reference alignment.
//   - CompressedPosition is that site's index after collapsing identical
//     columns into site patterns (see align.Alignment.FindPermCol); it is
//     what scratch buffers and Fitch computations are indexed by.
//   - Ref is the reference allele at Position.
//   - Alt is the observed (possibly ambiguous) allele.
//   - Par is the ancestral ("parent") allele assigned by the Fitch pass at
//     the branch's upper endpoint.
type Mutation struct {
	Position           int
	CompressedPosition int
	Ref                Allele
	Alt                Allele
	Par                Allele
}

// SameSite reports whether m and other occupy the same alignment column.
func (m Mutation) SameSite(other Mutation) bool {
	return m.Position == other.Position
}

// Equal reports mutation-identity per SPEC_FULL.md §5: same Position and an
// intersecting Alt allele (ambiguity-aware).
func (m Mutation) Equal(other Mutation) bool {
	return m.Position == other.Position && m.Alt.Intersects(other.Alt)
}

// List is a mutation list, invariantly sorted by Position with no duplicate
// positions. The zero value is an empty, valid List.
type List []Mutation

// Validate checks the sortedness/no-duplicates invariant. It is intended for
// assertion in debug builds and in tests, not in placement hot loops.
func (l List) Validate() error {
	for i := 1; i < len(l); i++ {
		if l[i].Position < l[i-1].Position {
			return ErrUnsortedList
		}
		if l[i].Position == l[i-1].Position {
			return ErrDuplicatePosition
		}
	}
	for _, m := range l {
		if m.Position < 0 {
			return ErrNegativePosition
		}
	}
	return nil
}

// Clone returns an independent copy of l.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}
