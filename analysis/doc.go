// Package analysis derives read-only statistics from a cluster.Partition:
// per-cluster sizes, the N largest clusters, and a size histogram.
//
// Ranking sorts by size descending and breaks ties by ascending cluster key,
// so TopN is deterministic for a given Sizes table. Requesting more clusters
// than exist returns all of them; requesting zero or fewer returns none.
//
// Histogram bins every integer size from 1 to the largest cluster, including
// empty bins, which is the shape the size plot and CSV export expect.
package analysis
