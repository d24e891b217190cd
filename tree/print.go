package tree

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// PrintFlags controls printTree's serialisation (spec.md §4.2).
type PrintFlags struct {
	// SortTaxa, when true, orders each internal node's children by the
	// lexicographically smallest leaf name in their subtree, making the
	// output deterministic regardless of insertion/placement order
	// (Testable Property 3).
	SortTaxa bool

	// TrailingNewline appends "\n" after the terminating semicolon, as the
	// Outputs in spec.md §6 require for tree1.txt/tree2.txt/addedTree.txt/newTree.txt.
	TrailingNewline bool
}

// PrintTree serialises t to Newick and writes it to out.
func (t *Tree) PrintTree(out io.Writer, flags PrintFlags) error {
	if len(t.Nodes) == 0 {
		return ErrEmptyTree
	}
	if _, err := t.Node(t.Root); err != nil {
		return err
	}

	var b strings.Builder
	if _, err := t.writeSubtree(&b, t.Root, NoEdge, flags); err != nil {
		return err
	}
	b.WriteString(";")
	if flags.TrailingNewline {
		b.WriteString("\n")
	}
	_, err := io.WriteString(out, b.String())
	return err
}

// writeSubtree recursively renders the subtree rooted at node (excluding
// the edge back to its parent, cameFrom), and returns the lexicographically
// smallest leaf name within it, used by the parent call to sort siblings.
func (t *Tree) writeSubtree(b *strings.Builder, node NodeID, cameFrom EdgeID, flags PrintFlags) (string, error) {
	n := t.Nodes[node]

	type child struct {
		edge    EdgeID
		minLeaf string
		text    string
	}
	var children []child
	for _, eid := range n.Edges {
		if eid == cameFrom {
			continue
		}
		e := t.Edges[eid]
		other := e.Other(node)
		var cb strings.Builder
		minLeaf, err := t.writeSubtree(&cb, other, eid, flags)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&cb, ":%g", e.Length)
		children = append(children, child{edge: eid, minLeaf: minLeaf, text: cb.String()})
	}

	if flags.SortTaxa {
		sort.Slice(children, func(i, j int) bool { return children[i].minLeaf < children[j].minLeaf })
	}

	minLeaf := n.Name
	if len(children) > 0 {
		b.WriteString("(")
		for i, c := range children {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(c.text)
			if minLeaf == "" || c.minLeaf < minLeaf {
				minLeaf = c.minLeaf
			}
		}
		b.WriteString(")")
	}
	b.WriteString(n.Name)

	return minLeaf, nil
}
