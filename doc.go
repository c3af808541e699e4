// Package atomcluster groups the atoms of a molecular geometry into
// distance-connected clusters and exports the result for downstream
// quantum-chemistry tooling.
//
// What is atomcluster?
//
//	A small, deterministic pipeline built from independent packages:
//		• geometry     – 3D coordinates, Euclidean distance, fail-fast parsing
//		• connectivity – proximity edges below a strict cutoff (all-pairs, cell list, parallel rows)
//		• cluster      – connected components (union-find, BFS, reference rescan)
//		• analysis     – cluster sizes, top-N ranking, size histogram
//		• xyz          – XYZ geometry reader/writer
//		• export       – membership files, histogram CSV/plot, Multiwfn suggestions
//		• archive      – bbolt store of past runs
//		• config       – defaults, YAML, validation, zap logger
//		• pipeline     – one full run from a config
//
// The core (geometry, connectivity, cluster, analysis) is pure: no I/O, no
// logging, no global state. Everything is passed in explicitly.
//
// Quick ASCII example (cutoff 1.65):
//
//	0───1───2                3─4
//
// yields clusters {0,1,2} and {3,4}; an atom with no neighbour inside the
// cutoff belongs to no cluster.
//
//	go install github.com/katalvlaran/atomcluster/cmd/atomcluster@latest
package atomcluster
