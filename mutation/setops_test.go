package mutation_test

import (
	"testing"

	"github.com/katalvlaran/mutplace/mutation"
)

func m(pos int, alt mutation.Allele) mutation.Mutation {
	return mutation.Mutation{Position: pos, CompressedPosition: pos, Ref: mutation.AlleleA, Alt: alt}
}

func TestUnion_LastWriteWins(t *testing.T) {
	a := mutation.List{m(1, mutation.AlleleC), m(3, mutation.AlleleG)}
	b := mutation.List{m(2, mutation.AlleleT), m(3, mutation.AlleleA)}
	got := mutation.Union(a, b)
	want := mutation.List{m(1, mutation.AlleleC), m(2, mutation.AlleleT), m(3, mutation.AlleleA)}
	if len(got) != len(want) {
		t.Fatalf("Union length = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Position != want[i].Position || got[i].Alt != want[i].Alt {
			t.Errorf("Union[%d] = %+v; want %+v", i, got[i], want[i])
		}
	}
}

func TestDifference_AmbiguityAware(t *testing.T) {
	sample := mutation.List{m(5, mutation.AlleleA|mutation.AlleleG)} // ambiguous R
	ancestral := mutation.List{m(5, mutation.AlleleG)}
	if got := mutation.SetDifferenceCount(sample, ancestral); got != 0 {
		t.Errorf("ambiguous call overlapping ancestral allele should not count as a difference, got %d", got)
	}

	ancestral2 := mutation.List{m(5, mutation.AlleleC)}
	if got := mutation.SetDifferenceCount(sample, ancestral2); got != 1 {
		t.Errorf("non-overlapping ambiguity should count as a difference, got %d", got)
	}
}

func TestDifference_NewPosition(t *testing.T) {
	sample := mutation.List{m(1, mutation.AlleleC), m(7, mutation.AlleleT)}
	ancestral := mutation.List{m(1, mutation.AlleleC)}
	diff := mutation.Difference(sample, ancestral)
	if len(diff) != 1 || diff[0].Position != 7 {
		t.Fatalf("Difference = %+v; want single entry at position 7", diff)
	}
}

func TestAdd_RejectsDuplicatePosition(t *testing.T) {
	l := mutation.List{m(2, mutation.AlleleA)}
	_, err := mutation.Add(l, m(2, mutation.AlleleC))
	if err != mutation.ErrDuplicatePosition {
		t.Fatalf("Add duplicate position: got %v; want ErrDuplicatePosition", err)
	}
	l2, err := mutation.Add(l, m(5, mutation.AlleleC))
	if err != nil {
		t.Fatalf("Add: unexpected error %v", err)
	}
	if err := l2.Validate(); err != nil {
		t.Errorf("Add result invalid: %v", err)
	}
}

func TestValidate_UnsortedAndDuplicate(t *testing.T) {
	unsorted := mutation.List{m(5, mutation.AlleleA), m(2, mutation.AlleleC)}
	if err := unsorted.Validate(); err != mutation.ErrUnsortedList {
		t.Errorf("Validate unsorted: got %v; want ErrUnsortedList", err)
	}
	dup := mutation.List{m(2, mutation.AlleleA), m(2, mutation.AlleleC)}
	if err := dup.Validate(); err != mutation.ErrDuplicatePosition {
		t.Errorf("Validate duplicate: got %v; want ErrDuplicatePosition", err)
	}
}

func TestResolve_PrefersPreferredBranch(t *testing.T) {
	ambiguous := mutation.AlleleA | mutation.AlleleG // R
	if got := mutation.Resolve(ambiguous, mutation.AlleleG); got != mutation.AlleleG {
		t.Errorf("Resolve(R, G) = %v; want G", got)
	}
	if got := mutation.Resolve(ambiguous, mutation.AlleleC); got != mutation.AlleleA {
		t.Errorf("Resolve(R, C) = %v; want deterministic fallback A, got %v", mutation.AlleleA, got)
	}
}
