// File: setops.go
// Role: sorted-list set operations on mutation.List.
// Determinism:
//   - All operations preserve Position order and never reorder equal-keyed runs.
// Complexity:
//   - Each operation below is O(len(a)+len(b)), single merge pass, no sorting.
package mutation

// Union returns the sorted merge of a and b. Where both lists carry a
// mutation at the same Position, b's entry wins — this is the "last write
// wins" rule SPEC_FULL.md's ancestral(B) flattening relies on, letting a
// caller fold a root-to-branch path into one list by repeatedly unioning
// each edge's list (deepest edge last).
func Union(a, b List) List {
	out := make(List, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Position < b[j].Position:
			out = append(out, a[i])
			i++
		case a[i].Position > b[j].Position:
			out = append(out, b[j])
			j++
		default:
			// Same column: b (the later/child edge) wins.
			out = append(out, b[j])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// Intersection returns the mutations present (by Equal) in both a and b.
// The returned entries are taken from a.
func Intersection(a, b List) List {
	cap := len(a)
	if len(b) < cap {
		cap = len(b)
	}
	out := make(List, 0, cap)
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Position < b[j].Position:
			i++
		case a[i].Position > b[j].Position:
			j++
		default:
			if a[i].Alt.Intersects(b[j].Alt) {
				out = append(out, a[i])
			}
			i++
			j++
		}
	}
	return out
}

// Difference returns the mutations in a that are not present (by Equal) in
// b — i.e. a − b. This is the set-difference the placement engine uses to
// compute excess_mutations(B, S) = sample(S) − ancestral(B).
func Difference(a, b List) List {
	out := make(List, 0, len(a))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Position < b[j].Position:
			out = append(out, a[i])
			i++
		case a[i].Position > b[j].Position:
			j++
		default:
			if !a[i].Alt.Intersects(b[j].Alt) {
				out = append(out, a[i])
			}
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	return out
}

// SymmetricDifference returns the mutations present in exactly one of a, b.
func SymmetricDifference(a, b List) List {
	out := make(List, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Position < b[j].Position:
			out = append(out, a[i])
			i++
		case a[i].Position > b[j].Position:
			out = append(out, b[j])
			j++
		default:
			if !a[i].Alt.Intersects(b[j].Alt) {
				out = append(out, a[i])
				out = append(out, b[j])
			}
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// Add inserts m into l preserving sort order, rejecting a duplicate Position
// with ErrDuplicatePosition rather than silently overwriting it — callers
// that intend to replace a site's call should remove the old entry first.
func Add(l List, m Mutation) (List, error) {
	if m.Position < 0 {
		return l, ErrNegativePosition
	}
	// Binary search for insertion point.
	lo, hi := 0, len(l)
	for lo < hi {
		mid := (lo + hi) / 2
		if l[mid].Position < m.Position {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(l) && l[lo].Position == m.Position {
		return l, ErrDuplicatePosition
	}
	out := make(List, len(l)+1)
	copy(out, l[:lo])
	out[lo] = m
	copy(out[lo+1:], l[lo:])
	return out, nil
}

// SetDifferenceCount returns only the cardinality of Difference(sample, ancestral),
// i.e. the parsimony cost of attaching sample at a branch whose path-to-root
// mutation set is ancestral. Kept separate from Difference so the placement
// scan's hot loop (SPEC_FULL.md §6.4) can avoid allocating the excess list
// for branches that will not become the best candidate.
func SetDifferenceCount(sample, ancestral List) int {
	count := 0
	i, j := 0, 0
	for i < len(sample) && j < len(ancestral) {
		switch {
		case sample[i].Position < ancestral[j].Position:
			count++
			i++
		case sample[i].Position > ancestral[j].Position:
			j++
		default:
			if !sample[i].Alt.Intersects(ancestral[j].Alt) {
				count++
			}
			i++
			j++
		}
	}
	count += len(sample) - i
	return count
}
