package xyz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/atomcluster/geometry"
)

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	frame, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return frame, nil
}

// maxPrealloc caps the initial atom slice; append grows it past the cap.
const maxPrealloc = 1 << 16

// Read parses one XYZ frame from r.
//
// Errors:
//   - ErrEmptyInput if r has no first line.
//   - ErrBadAtomCount if the first line is not a non-negative integer.
//   - ErrTruncated if fewer than the declared atom lines follow the comment.
//   - ErrMalformedAtomLine (wrapping the geometry error) for a bad atom line.
func Read(r io.Reader) (*Frame, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmptyInput
	}
	head := strings.TrimSpace(sc.Text())
	n, err := strconv.Atoi(head)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: %q", ErrBadAtomCount, head)
	}

	frame := &Frame{Atoms: make([]Atom, 0, min(n, maxPrealloc))}
	if sc.Scan() {
		frame.Comment = strings.TrimRight(sc.Text(), "\r")
	} else if n > 0 {
		return nil, fmt.Errorf("%w: want %d, got 0", ErrTruncated, n)
	}

	for line := 3; len(frame.Atoms) < n; line++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: want %d, got %d", ErrTruncated, n, len(frame.Atoms))
		}
		atom, err := parseAtom(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedAtomLine, line, err)
		}
		atom.Index = len(frame.Atoms)
		frame.Atoms = append(frame.Atoms, atom)
	}

	return frame, nil
}

// parseAtom splits "El x y z ..." into an Atom without an index.
func parseAtom(text string) (Atom, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Atom{}, errors.New("blank line")
	}
	pos, err := geometry.ParseVec3(fields[1:])
	if err != nil {
		return Atom{}, err
	}

	return Atom{Element: fields[0], Pos: pos}, nil
}

// Write emits f in XYZ format with fixed ten-decimal coordinates.
func Write(w io.Writer, f *Frame) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%s\n", len(f.Atoms), f.Comment)
	for _, a := range f.Atoms {
		fmt.Fprintf(bw, "%-3s %16.10f %16.10f %16.10f\n", a.Element, a.Pos[0], a.Pos[1], a.Pos[2])
	}

	return bw.Flush()
}
