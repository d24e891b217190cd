package tree

import (
	"errors"

	"github.com/katalvlaran/mutplace/mutation"
)

// Sentinel errors for the tree package.
var (
	// ErrNodeNotFound indicates a NodeID outside the arena's current bounds.
	ErrNodeNotFound = errors.New("tree: node not found")

	// ErrEdgeNotFound indicates an EdgeID outside the arena's current bounds.
	ErrEdgeNotFound = errors.New("tree: edge not found")

	// ErrTaxonNotFound indicates AssignRoot was given a name with no matching leaf.
	ErrTaxonNotFound = errors.New("tree: taxon not found")

	// ErrNotMovable indicates an SPR-only operation was attempted on a branch
	// whose Mobility forbids it.
	ErrNotMovable = errors.New("tree: branch is not movable")

	// ErrEmptyTree indicates an operation (BFS, printing) was attempted on a
	// tree with no nodes.
	ErrEmptyTree = errors.New("tree: tree is empty")

	// ErrMalformedNewick indicates the external Newick source could not
	// produce a well-formed topology (unbalanced parentheses, missing
	// semicolon, empty input).
	ErrMalformedNewick = errors.New("tree: malformed newick input")
)

// NodeID indexes into Tree.Nodes. NoNode (-1) is the sentinel for "no such
// node" (e.g. the parent of the root in a BFS expansion).
type NodeID int

// NoNode is the sentinel NodeID meaning "absent".
const NoNode NodeID = -1

// EdgeID indexes into Tree.Edges. NoEdge is the sentinel for "no incoming edge".
type EdgeID int

// NoEdge is the sentinel EdgeID meaning "absent" (the root's incoming edge in BFS).
const NoEdge EdgeID = -1

// Node is one vertex of the arena. Leaves carry a non-empty Name; internal
// nodes (including placement-inserted ones) carry MissingIndex >= 0 iff they
// were created by placement, and -1 otherwise, per spec.md §3.
type Node struct {
	ID           NodeID
	Name         string
	MissingIndex int
	Edges        []EdgeID // incident edges, in neighbour-insertion order
}

// IsLeaf reports whether n is a named node with at most one incident edge (a
// tree leaf has degree 1; the root of a rooted-for-traversal unrooted tree may also have
// degree 1 if it was assigned to a leaf, so callers distinguish roots
// separately when that matters).
func (n Node) IsLeaf() bool {
	return len(n.Edges) <= 1 && n.Name != ""
}

// IsPlacementInserted reports whether n was created by addNewSample rather
// than by the base-tree parser.
func (n Node) IsPlacementInserted() bool {
	return n.MissingIndex >= 0
}

// Mobility is the tagged variant replacing the original's two independent
// booleans (canMove, canDoSpr): an edge is either NotMovable, or Movable
// with an SPR-eligibility flag. This makes "SPR-eligible but not movable" an
// unrepresentable state instead of a bug to avoid (spec.md §9).
type Mobility struct {
	movable     bool
	sprEligible bool
}

// NotMovable returns the Mobility value for a fixed (non-rearrangeable) branch.
func NotMovable() Mobility { return Mobility{} }

// NewMovable returns a Mobility marking a branch as eligible for SPR moves
// when sprEligible is true, or movable-but-SPR-excluded otherwise.
func NewMovable(sprEligible bool) Mobility {
	return Mobility{movable: true, sprEligible: sprEligible}
}

// CanMove reports whether the branch may participate in topology changes at all.
func (m Mobility) CanMove() bool { return m.movable }

// CanSPR reports whether the branch is eligible for SPR regraft; always
// false when !CanMove(), by construction.
func (m Mobility) CanSPR() bool { return m.movable && m.sprEligible }

// Edge is one undirected branch of the tree, connecting endpoints A and B.
// Mutations is the canonical, root-independent mutation list for this
// branch (see doc.go); SavedMutations is a spare rollback slot that Clone
// copies. Nothing in this module fills it: the SPR engine in package oracle
// evaluates each move on a cloned tree instead.
type Edge struct {
	ID             EdgeID
	A, B           NodeID
	Length         float64
	Mutations      mutation.List
	SavedMutations mutation.List
	Mobility       Mobility
}

// Other returns the endpoint of e that is not from.
func (e Edge) Other(from NodeID) NodeID {
	if e.A == from {
		return e.B
	}
	return e.A
}

// Tree owns the node and edge arenas, a designated root for traversal, and
// the add_row mode flag distinguishing the one-shot ancestral-mutation pass
// from incremental sample placement (spec.md §3).
type Tree struct {
	Nodes  []Node
	Edges  []Edge
	Root   NodeID
	AddRow bool
}

// New returns an empty Tree with no nodes or edges and Root = NoNode.
func New() *Tree {
	return &Tree{Root: NoNode}
}

// NodeCount returns the number of nodes in the arena.
func (t *Tree) NodeCount() int { return len(t.Nodes) }

// EdgeCount returns the number of edges in the arena.
func (t *Tree) EdgeCount() int { return len(t.Edges) }

// Node returns the node at id, or an error if id is out of range.
func (t *Tree) Node(id NodeID) (*Node, error) {
	if id < 0 || int(id) >= len(t.Nodes) {
		return nil, ErrNodeNotFound
	}
	return &t.Nodes[id], nil
}

// Edge returns the edge at id, or an error if id is out of range.
func (t *Tree) Edge(id EdgeID) (*Edge, error) {
	if id < 0 || int(id) >= len(t.Edges) {
		return nil, ErrEdgeNotFound
	}
	return &t.Edges[id], nil
}
