package cluster

import (
	"sort"

	"github.com/katalvlaran/atomcluster/connectivity"
)

// MergeGroups merges groups of atom indices until no two groups share an index.
//
// Steps:
//  1. Copy every group into a set (duplicates inside a group collapse).
//  2. Scan pairs (a, b), a < b. When they overlap, replace a with a ∪ b,
//     drop b and rescan from the start.
//  3. Stop once a full scan finds no overlapping pair.
//
// Each merge removes one group, so the loop runs at most len(groups)-1 times
// and always terminates. Running MergeGroups on its own output returns an
// equal result. Empty groups are dropped. The input is not modified; members
// of every returned group are ascending and groups keep the position of their
// earliest constituent.
//
// Complexity: O(G³·s) worst case for G groups of size s.
func MergeGroups(groups [][]int) [][]int {
	sets := make([]map[int]struct{}, 0, len(groups))
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		s := make(map[int]struct{}, len(g))
		for _, v := range g {
			s[v] = struct{}{}
		}
		sets = append(sets, s)
	}

	for mergeOnce(&sets) {
	}

	out := make([][]int, len(sets))
	for k, s := range sets {
		members := make([]int, 0, len(s))
		for v := range s {
			members = append(members, v)
		}
		sort.Ints(members)
		out[k] = members
	}

	return out
}

// mergeOnce performs the first available merge and reports whether one happened.
func mergeOnce(sets *[]map[int]struct{}) bool {
	ss := *sets
	for a := 0; a < len(ss); a++ {
		for b := a + 1; b < len(ss); b++ {
			if !overlaps(ss[a], ss[b]) {
				continue
			}
			for v := range ss[b] {
				ss[a][v] = struct{}{}
			}
			*sets = append(ss[:b], ss[b+1:]...)
			return true
		}
	}

	return false
}

// overlaps reports whether x and y share at least one member.
func overlaps(x, y map[int]struct{}) bool {
	if len(x) > len(y) {
		x, y = y, x
	}
	for v := range x {
		if _, ok := y[v]; ok {
			return true
		}
	}

	return false
}

// rescanLabels labels atoms with the index of their merged group.
func rescanLabels(n int, edges []connectivity.Edge) func(int) int {
	groups := make([][]int, len(edges))
	for k, e := range edges {
		groups[k] = []int{e.I, e.J}
	}
	label := make([]int, n)
	for k, g := range MergeGroups(groups) {
		for _, v := range g {
			label[v] = k
		}
	}

	return func(v int) int { return label[v] }
}
