package xyz

import (
	"errors"

	"github.com/katalvlaran/atomcluster/geometry"
)

// Sentinel errors for XYZ parsing.
var (
	// ErrEmptyInput indicates the input has no atom-count line.
	ErrEmptyInput = errors.New("xyz: empty input")

	// ErrBadAtomCount indicates the first line is not a non-negative integer.
	ErrBadAtomCount = errors.New("xyz: invalid atom count")

	// ErrTruncated indicates fewer atom lines than declared.
	ErrTruncated = errors.New("xyz: fewer atom lines than declared")

	// ErrMalformedAtomLine indicates an atom line without an element or valid coordinates.
	ErrMalformedAtomLine = errors.New("xyz: malformed atom line")
)

// Atom is one labelled point. Element is opaque to clustering.
type Atom struct {
	Index   int
	Element string
	Pos     geometry.Vec3
}

// Frame is one parsed XYZ geometry.
type Frame struct {
	Comment string
	Atoms   []Atom
}

// Len returns the number of atoms.
func (f *Frame) Len() int {
	return len(f.Atoms)
}

// Positions returns the coordinates in index order.
func (f *Frame) Positions() []geometry.Vec3 {
	pts := make([]geometry.Vec3, len(f.Atoms))
	for i, a := range f.Atoms {
		pts[i] = a.Pos
	}

	return pts
}

// Subset returns a new Frame with the atoms at the given zero-based indices,
// re-indexed from zero in the given order. Unknown indices are skipped.
func (f *Frame) Subset(indices []int, comment string) *Frame {
	sub := &Frame{Comment: comment, Atoms: make([]Atom, 0, len(indices))}
	for _, i := range indices {
		if i < 0 || i >= len(f.Atoms) {
			continue
		}
		a := f.Atoms[i]
		a.Index = len(sub.Atoms)
		sub.Atoms = append(sub.Atoms, a)
	}

	return sub
}
