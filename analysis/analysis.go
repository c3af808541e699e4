package analysis

import (
	"sort"

	"github.com/katalvlaran/atomcluster/cluster"
)

// Count returns the member count of every cluster in p.
// Complexity: O(k).
func Count(p cluster.Partition) Sizes {
	sizes := make(Sizes, len(p))
	for key, members := range p {
		sizes[key] = len(members)
	}

	return sizes
}

// Total returns the number of atoms across all clusters.
func (s Sizes) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}

	return total
}

// Keys returns the cluster keys in ascending order.
func (s Sizes) Keys() []int {
	keys := make([]int, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}

// TopN returns the n largest clusters, size descending, ties by ascending key.
//
//	n ≥ len(s): every cluster
//	n ≤ 0:      empty, non-nil slice
//
// Complexity: O(k log k).
func TopN(s Sizes, n int) []Ranked {
	if n <= 0 {
		return []Ranked{}
	}
	ranked := make([]Ranked, 0, len(s))
	for _, k := range s.Keys() {
		ranked = append(ranked, Ranked{Key: k, Size: s[k]})
	}
	// keys are already ascending, so a stable sort keeps ties in key order
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Size > ranked[j].Size
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}

	return ranked
}

// Histogram returns one Bin per size 1..max(s), including empty bins.
// An empty table yields an empty slice.
func Histogram(s Sizes) []Bin {
	largest := 0
	for _, n := range s {
		largest = max(largest, n)
	}
	if largest == 0 {
		return []Bin{}
	}
	bins := make([]Bin, largest)
	for i := range bins {
		bins[i].Size = i + 1
	}
	for _, n := range s {
		if n > 0 {
			bins[n-1].Frequency++
		}
	}

	return bins
}

// Summarize aggregates s into a Summary.
func Summarize(s Sizes) Summary {
	sum := Summary{Clusters: len(s)}
	if len(s) == 0 {
		return sum
	}
	first := true
	for _, n := range s {
		sum.Atoms += n
		if first || n > sum.Largest {
			sum.Largest = n
		}
		if first || n < sum.Smallest {
			sum.Smallest = n
		}
		first = false
	}
	sum.Mean = float64(sum.Atoms) / float64(sum.Clusters)

	return sum
}
