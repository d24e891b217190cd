package tree

import (
	"io"
	"strings"
	"testing"
)

// fakeNewickSource lets ReadTree's arena-building logic be tested without
// depending on gotree's parser internals.
type fakeNewickSource struct {
	topo RawTopology
	err  error
}

func (f fakeNewickSource) ParseNewick(_ io.Reader) (RawTopology, error) {
	return f.topo, f.err
}

func TestReadTreeBuildsArena(t *testing.T) {
	raw := RawTopology{
		Nodes: []RawNode{
			{ID: 0, Name: ""},
			{ID: 1, Name: "A"},
			{ID: 2, Name: "B"},
		},
		Edges: []RawEdge{
			{A: 0, B: 1, Length: 0.1},
			{A: 0, B: 2, Length: 0.2},
		},
		Root: 0,
	}
	src := fakeNewickSource{topo: raw}

	tr, err := ReadTree(strings.NewReader("(A:0.1,B:0.2);"), src)
	if err != nil {
		t.Fatalf("ReadTree: %v", err)
	}
	if tr.NodeCount() != 3 || tr.EdgeCount() != 2 {
		t.Fatalf("unexpected arena size: nodes=%d edges=%d", tr.NodeCount(), tr.EdgeCount())
	}

	var leafNames []string
	for _, n := range tr.Nodes {
		if n.Name != "" {
			leafNames = append(leafNames, n.Name)
		}
	}
	if len(leafNames) != 2 {
		t.Fatalf("expected 2 named leaves, got %v", leafNames)
	}
}

func TestReadTreeRejectsEmptyTopology(t *testing.T) {
	src := fakeNewickSource{topo: RawTopology{}}
	if _, err := ReadTree(strings.NewReader(";"), src); err != ErrMalformedNewick {
		t.Fatalf("expected ErrMalformedNewick, got %v", err)
	}
}

func TestReadTreeRejectsDanglingEdge(t *testing.T) {
	raw := RawTopology{
		Nodes: []RawNode{{ID: 0, Name: "A"}},
		Edges: []RawEdge{{A: 0, B: 7, Length: 1}},
	}
	src := fakeNewickSource{topo: raw}
	if _, err := ReadTree(strings.NewReader("A;"), src); err == nil {
		t.Fatalf("expected error for edge referencing unknown node")
	}
}
