package placement

import (
	"errors"

	"github.com/katalvlaran/mutplace/mutation"
	"github.com/katalvlaran/mutplace/tree"
)

// ErrNoCandidateBranch indicates BreadthFirstExpansion produced no edge at
// all (a single-node tree) so PlaceSample has nowhere to attach.
var ErrNoCandidateBranch = errors.New("placement: no candidate branch")

// Sample is one missing taxon waiting to be placed: a stable ID (used as
// Node.MissingIndex), its display name, and its mutation list sample(S).
type Sample struct {
	ID        int
	Name      string
	Mutations mutation.List
}

// Candidate is the scored result of evaluating one branch as an attachment
// point for a Sample (spec.md §4.4.1).
type Candidate struct {
	Branch        tree.EdgeID
	ParentNode    tree.NodeID // the endpoint of Branch nearer the root
	ChildNode     tree.NodeID // the endpoint of Branch farther from the root
	SetDifference int
	Excess        mutation.List
	Imputed       mutation.List
	NumLeaves     int
	Distance      int
	BFSIndex      int
}

// betterThan reports whether c is a strictly preferable attachment point to
// other under spec.md §4.4.2's ordered tie-break: fewer candidate
// set_difference first, then fewer leaves below the branch, then smaller
// distance from root, then smaller BFS index. Because candidates are
// scanned in ascending BFS index, callers only need betterThan for strict
// improvement — the first candidate seen wins any remaining tie, which
// already satisfies rule 3.
func (c Candidate) betterThan(other Candidate) bool {
	if c.SetDifference != other.SetDifference {
		return c.SetDifference < other.SetDifference
	}
	if c.NumLeaves != other.NumLeaves {
		return c.NumLeaves < other.NumLeaves
	}
	if c.Distance != other.Distance {
		return c.Distance < other.Distance
	}
	return c.BFSIndex < other.BFSIndex
}

// ScanContext holds the scratch buffer a single Scan reuses across all
// candidate branches: ancestral mutation lists accumulated per node as the
// BFS order is walked once, rather than recomputed per branch by retracing
// the root-to-branch path (spec.md §4.4.3's O(sites + branches) bound).
// ScanContext replaces the original's tree-owned cur_*/visited_* fields
// (spec.md §9): one value per concurrent evaluation, explicitly reset
// between samples, with no implicit must-clear coupling to the tree.
type ScanContext struct {
	ancestralByNode map[tree.NodeID]mutation.List
}

// NewScanContext returns a ready-to-use, empty ScanContext.
func NewScanContext() *ScanContext {
	return &ScanContext{ancestralByNode: make(map[tree.NodeID]mutation.List)}
}

// Reset clears all scratch state so the context can be reused for the next
// sample without reallocating its backing map.
func (c *ScanContext) Reset() {
	for k := range c.ancestralByNode {
		delete(c.ancestralByNode, k)
	}
}
