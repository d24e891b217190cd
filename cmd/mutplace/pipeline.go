package main

import (
	"fmt"

	"github.com/katalvlaran/mutplace/align"
	"github.com/katalvlaran/mutplace/ancestral"
	"github.com/katalvlaran/mutplace/mutation"
	"github.com/katalvlaran/mutplace/placement"
	"github.com/katalvlaran/mutplace/tree"
)

// leafIndex maps every leaf name in t to its NodeID.
func leafIndex(t *tree.Tree) map[string]tree.NodeID {
	idx := make(map[string]tree.NodeID, len(t.Nodes))
	for _, n := range t.Nodes {
		if n.Name != "" {
			idx[n.Name] = n.ID
		}
	}
	return idx
}

// firstRawSiteByCompressed returns, for each compressed column, the
// lowest-indexed raw column that collapsed into it — the representative
// Position recorded on every Mutation produced for that column.
func firstRawSiteByCompressed(perm align.PermCol) []int {
	out := make([]int, perm.NumCompressed)
	seen := make([]bool, perm.NumCompressed)
	for site, col := range perm.CompressedPerCol {
		if seen[col] {
			continue
		}
		seen[col] = true
		out[col] = site
	}
	return out
}

// buildAncestralInput assembles ancestral.Input from the existing samples:
// one SiteColumn per compressed position, with Ref taken from the first
// existing sample's call (the alignment's de facto reference row) and
// LeafAllele populated for every leaf the tree and alignment agree on.
func buildAncestralInput(t *tree.Tree, aln align.Alignment, perm align.PermCol) (ancestral.Input, error) {
	byName := leafIndex(t)
	rawSite := firstRawSiteByCompressed(perm)

	compressedByName := make(map[string][]mutation.Allele, len(aln.ExistingSamples))
	for _, rec := range aln.ExistingSamples {
		compressedByName[rec.Name] = perm.Compress(rec.Sequence)
	}

	if len(aln.ExistingSamples) == 0 {
		return ancestral.Input{}, fmt.Errorf("cmd/mutplace: no existing samples to derive a reference from")
	}
	refCompressed := perm.Compress(aln.ExistingSamples[0].Sequence)

	columns := make([]ancestral.SiteColumn, perm.NumCompressed)
	for c := 0; c < perm.NumCompressed; c++ {
		leafAllele := make(map[tree.NodeID]mutation.Allele, len(byName))
		for name, nodeID := range byName {
			seq, ok := compressedByName[name]
			if !ok {
				continue
			}
			leafAllele[nodeID] = seq[c]
		}
		columns[c] = ancestral.SiteColumn{
			Position:           rawSite[c],
			CompressedPosition: c,
			Ref:                refCompressed[c],
			LeafAllele:         leafAllele,
		}
	}
	return ancestral.Input{Columns: columns}, nil
}

// buildSamples converts every missing alignment row into a placement.Sample
// whose Mutations list holds only the compressed columns where the sample's
// call differs from the reference (mirroring how Tree.Edge.Mutations stores
// differences rather than full per-site arrays).
func buildSamples(aln align.Alignment, perm align.PermCol, refCompressed []mutation.Allele) []placement.Sample {
	rawSite := firstRawSiteByCompressed(perm)
	samples := make([]placement.Sample, len(aln.MissingSamples))
	for i, rec := range aln.MissingSamples {
		compressed := perm.Compress(rec.Sequence)
		var muts mutation.List
		for c, allele := range compressed {
			ref := refCompressed[c]
			if allele.Intersects(ref) {
				continue
			}
			muts = append(muts, mutation.Mutation{
				Position:           rawSite[c],
				CompressedPosition: c,
				Ref:                ref,
				Alt:                allele,
			})
		}
		samples[i] = placement.Sample{ID: i, Name: rec.Name, Mutations: muts}
	}
	return samples
}
