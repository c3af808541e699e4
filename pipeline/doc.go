// Package pipeline runs one complete clustering job from a config.Config:
// read the XYZ file, build the proximity edges, merge them into clusters,
// shift indices for output, write membership files, histogram and run
// archive, and rank the largest clusters for the Multiwfn suggestions.
//
// The core packages (geometry, connectivity, cluster, analysis) never log or
// touch the filesystem; pipeline is where I/O and structured logging happen.
package pipeline
