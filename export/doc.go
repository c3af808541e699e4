// Package export turns a clustering result into files and text for
// downstream tools:
//
//   - one membership file per cluster (<stem>_<key><ext>, comma-separated indices)
//   - optional per-cluster XYZ geometries
//   - the cluster size histogram, as a CSV table or a gonum/plot bar chart
//   - suggested Multiwfn shell invocations for the largest clusters
//
// Index-base shifting is the caller's job; export writes indices verbatim.
package export
