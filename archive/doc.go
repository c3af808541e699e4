// Package archive persists clustering runs in a bbolt file so earlier results
// can be listed and compared without recomputation.
//
// Every Record is JSON-encoded under its ID in the "runs" bucket. IDs are
// random UUIDs assigned on Save when the caller leaves them empty.
package archive
