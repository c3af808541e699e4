// Package xyz reads and writes the plain XYZ geometry format:
//
//	<atom count>
//	<comment line>
//	<element> <x> <y> <z> [ignored extra columns]
//	...
//
// Atoms get zero-based indices in file order. Lines after the declared number
// of atoms are ignored. A malformed atom line fails the whole read: missing
// coordinates are never zero-filled.
package xyz
