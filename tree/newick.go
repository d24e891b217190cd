// File: newick.go
// Role: Newick ingestion — the one place this package talks to an external
// collaborator (spec.md §1 lists "Newick/tree I/O" as out of scope).
//
// NewickSource decouples Tree construction from any particular parser
// library: ReadTree only needs a RawTopology back, never a
// *gotree/tree.Tree directly. The default source adapts
// github.com/evolbioinfo/gotree, grounded on the only concrete call site in
// the retrieved corpus (jsdoublel/camus's test suite):
// newick.NewParser(r).Parse() (*tree.Tree, error).
package tree

import (
	"fmt"
	"io"

	gotreeio "github.com/evolbioinfo/gotree/io/newick"
	gotree "github.com/evolbioinfo/gotree/tree"
)

// RawNode is one node of a freshly parsed topology, addressed by the
// parser's own integer id.
type RawNode struct {
	ID   int
	Name string
}

// RawEdge connects two RawNode ids with a branch length.
type RawEdge struct {
	A, B   int
	Length float64
}

// RawTopology is the parser-agnostic handoff from an external Newick
// source into this package's arena builder.
type RawTopology struct {
	Nodes []RawNode
	Edges []RawEdge
	Root  int
}

// NewickSource parses Newick text into a RawTopology. Implementations are
// the only code in mutplace allowed to depend on a third-party tree/Newick
// library.
type NewickSource interface {
	ParseNewick(r io.Reader) (RawTopology, error)
}

// GotreeSource adapts github.com/evolbioinfo/gotree's Newick parser.
type GotreeSource struct{}

// ParseNewick implements NewickSource via gotree.
func (GotreeSource) ParseNewick(r io.Reader) (RawTopology, error) {
	gt, err := gotreeio.NewParser(r).Parse()
	if err != nil {
		return RawTopology{}, fmt.Errorf("tree: gotree parse: %w: %w", ErrMalformedNewick, err)
	}
	if gt == nil {
		return RawTopology{}, ErrMalformedNewick
	}
	return convertGotree(gt)
}

// convertGotree walks a parsed gotree.Tree via its node/edge accessors and
// materialises a RawTopology. The walk starts at gt.Root() and follows each
// node's neighbours, skipping the edge back to the node it was reached
// from, so an internally unrooted gotree representation yields one
// RawTopology rooted wherever gotree placed its root.
func convertGotree(gt *gotree.Tree) (RawTopology, error) {
	root := gt.Root()
	if root == nil {
		return RawTopology{}, ErrMalformedNewick
	}

	var (
		nodes   []RawNode
		edges   []RawEdge
		visited = make(map[int]bool)
	)

	var walk func(n *gotree.Node, cameFromID int) error
	walk = func(n *gotree.Node, cameFromID int) error {
		if visited[n.Id()] {
			return nil
		}
		visited[n.Id()] = true
		nodes = append(nodes, RawNode{ID: n.Id(), Name: n.Name()})

		neighbours := n.Neigh()
		branches := n.Br()
		for i, nb := range neighbours {
			if nb.Id() == cameFromID {
				continue
			}
			length := 0.0
			if i < len(branches) && branches[i] != nil {
				length = branches[i].Length()
			}
			edges = append(edges, RawEdge{A: n.Id(), B: nb.Id(), Length: length})
			if err := walk(nb, n.Id()); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(root, -1); err != nil {
		return RawTopology{}, err
	}

	return RawTopology{Nodes: nodes, Edges: edges, Root: root.Id()}, nil
}

// ReadTree parses Newick text from r via source and builds a Tree. It takes
// no is_rooted flag: the parsed topology is always treated as
// unrooted-with-a-traversal-root (spec.md §3), with Root set to the node the
// parser reported as its root. Re-rooting is left to AssignRoot.
func ReadTree(r io.Reader, source NewickSource) (*Tree, error) {
	if source == nil {
		source = GotreeSource{}
	}
	raw, err := source.ParseNewick(r)
	if err != nil {
		return nil, err
	}
	if len(raw.Nodes) == 0 {
		return nil, ErrMalformedNewick
	}

	t := New()
	idMap := make(map[int]NodeID, len(raw.Nodes))
	for _, rn := range raw.Nodes {
		if rn.Name != "" {
			idMap[rn.ID] = t.AddLeaf(rn.Name)
		} else {
			idMap[rn.ID] = t.AddInternal(-1)
		}
	}
	for _, re := range raw.Edges {
		a, ok := idMap[re.A]
		if !ok {
			return nil, fmt.Errorf("tree: edge references unknown node %d: %w", re.A, ErrMalformedNewick)
		}
		b, ok := idMap[re.B]
		if !ok {
			return nil, fmt.Errorf("tree: edge references unknown node %d: %w", re.B, ErrMalformedNewick)
		}
		if _, err := t.AddEdge(a, b, re.Length, nil, NewMovable(true)); err != nil {
			return nil, err
		}
	}
	rootID, ok := idMap[raw.Root]
	if !ok {
		rootID = 0
	}
	t.Root = rootID
	return t, nil
}
