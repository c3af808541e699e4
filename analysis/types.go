package analysis

// Sizes maps a cluster key to its member count.
type Sizes map[int]int

// Ranked is one entry of a TopN selection.
type Ranked struct {
	Key  int
	Size int
}

// Bin counts how many clusters have exactly Size members.
type Bin struct {
	Size      int
	Frequency int
}

// Summary aggregates a Sizes table.
type Summary struct {
	Clusters int     // number of clusters
	Atoms    int     // atoms across all clusters
	Largest  int     // size of the largest cluster, 0 if none
	Smallest int     // size of the smallest cluster, 0 if none
	Mean     float64 // mean cluster size, 0 if none
}
