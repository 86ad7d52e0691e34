// SPDX-License-Identifier: MIT

package beamline

import (
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/element"
	"github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/matfmt"
)

// Len returns the number of elements in the sequence.
func (s *Sequence) Len() int { return len(s.matrices) }

// Dim returns the phase-space dimension of the contained matrices.
func (s *Sequence) Dim() element.Dim { return s.dim }

// HasLengths reports whether the sequence tracks element lengths. It also
// tells callers how to read Positions: cumulative s positions when true,
// ordinal indices when false.
func (s *Sequence) HasLengths() bool { return s.hasLengths }

// MatrixAt returns a deep copy of the element matrix at position i.
func (s *Sequence) MatrixAt(i int) (*mat.Dense, error) {
	if i < 0 || i >= len(s.matrices) {
		return nil, ErrIndexOutOfRange
	}
	return mat.DenseCopyOf(s.matrices[i]), nil
}

// LengthAt returns the length in meters of the element at position i.
func (s *Sequence) LengthAt(i int) (float64, error) {
	if !s.hasLengths {
		return 0, ErrNoLengths
	}
	if i < 0 || i >= len(s.lengths) {
		return 0, ErrIndexOutOfRange
	}
	return s.lengths[i], nil
}

// Matrices returns deep copies of all element matrices in beam order.
func (s *Sequence) Matrices() []*mat.Dense {
	out := make([]*mat.Dense, len(s.matrices))
	for i, m := range s.matrices {
		out[i] = mat.DenseCopyOf(m)
	}
	return out
}

// Lengths returns a copy of the element lengths in beam order, or nil when
// the sequence does not track lengths.
func (s *Sequence) Lengths() []float64 {
	if !s.hasLengths {
		return nil
	}
	return slices.Clone(s.lengths)
}

// Positions returns the s position after every element when lengths are
// tracked (the cumulative sum of element lengths), or the ordinal element
// indices 0..Len()-1 when they are not. Check HasLengths to tell the two
// apart.
func (s *Sequence) Positions() []float64 {
	out := make([]float64, len(s.matrices))
	if s.hasLengths {
		sum := 0.0
		for i, l := range s.lengths {
			sum += l
			out[i] = sum
		}
		return out
	}
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// TotalLength returns the summed element lengths in meters.
func (s *Sequence) TotalLength() (float64, error) {
	if !s.hasLengths {
		return 0, ErrNoLengths
	}
	sum := 0.0
	for _, l := range s.lengths {
		sum += l
	}
	return sum, nil
}

// String renders the sequence as a multi-line description: the mode flags,
// then every element with its index, its length when tracked, and its
// matrix in fixed-width scientific notation.
func (s *Sequence) String() string {
	var b strings.Builder
	b.WriteString("Sequence:\n")
	fmt.Fprintf(&b, " - dim = %s\n", s.dim)
	fmt.Fprintf(&b, " - hasLengths = %t\n", s.hasLengths)
	b.WriteString(" Elements contained within:\n")

	n := len(s.matrices)
	for i, m := range s.matrices {
		fmt.Fprintf(&b, " Elem #%d/%d:\n", i, n)
		if s.hasLengths {
			fmt.Fprintf(&b, " L = %v\n", s.lengths[i])
		}
		b.WriteString(matfmt.Format(m))
		if i < n-1 {
			b.WriteByte('\n')
		}
	}
	if n == 0 {
		b.WriteString(" (NO ELEMENTS)\n")
	}
	return b.String()
}
