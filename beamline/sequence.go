// SPDX-License-Identifier: MIT

package beamline

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/element"
)

// Sequence is an ordered list of beamline element matrices, optionally
// paired with element lengths. The dimension (2D or 6D) and the
// length-tracking mode are fixed at construction.
//
// The zero value is not usable; construct with New or FromElements.
type Sequence struct {
	dim        element.Dim
	hasLengths bool
	matrices   []*mat.Dense
	lengths    []float64
}

// New returns an empty Sequence. By default it holds 2x2 matrices and does
// not track element lengths; see With6D and WithLengths.
func New(opts ...Option) *Sequence {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Sequence{
		dim:        cfg.dim,
		hasLengths: cfg.trackLengths,
	}
}

// FromElements builds a Sequence pre-filled with the given matrices.
//
// Length tracking is enabled when lengths is non-nil or WithLengths is
// given; a nil lengths slice with no option means lengths are unknown for
// this sequence. When tracking, lengths must pair with matrices one to one
// (ErrLengthCount otherwise).
//
// Every initial element goes through Insert, so validation and copy
// semantics are identical to building the sequence incrementally.
func FromElements(ms []*mat.Dense, lengths []float64, opts ...Option) (*Sequence, error) {
	s := New(opts...)
	if lengths != nil {
		s.hasLengths = true
	}
	if s.hasLengths && len(ms) != len(lengths) {
		return nil, fmt.Errorf("FromElements: got %d matrices and %d lengths: %w",
			len(ms), len(lengths), ErrLengthCount)
	}

	for i, m := range ms {
		var err error
		if s.hasLengths {
			err = s.Insert(m, WithLength(lengths[i]))
		} else {
			err = s.Insert(m)
		}
		if err != nil {
			return nil, fmt.Errorf("FromElements: element %d: %w", i, err)
		}
	}
	return s, nil
}

// Insert adds a deep copy of m to the sequence, appending by default.
//
// When the sequence tracks lengths, WithLength is required and the matrix
// and its length commit together; a validation failure leaves the sequence
// untouched. Use At to insert before a given position (negative positions
// count from the end, out-of-range positions clamp to the nearest end).
func (s *Sequence) Insert(m *mat.Dense, opts ...InsertOption) error {
	var cfg insertConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := checkMatrix(s.dim, m); err != nil {
		return err
	}
	if s.hasLengths {
		if !cfg.hasLength {
			return ErrLengthRequired
		}
		if err := checkLength(cfg.length); err != nil {
			return err
		}
	} else if cfg.hasLength {
		return ErrNoLengths
	}

	idx := len(s.matrices)
	if cfg.hasIndex {
		idx = normalizeIndex(cfg.index, len(s.matrices))
	}

	s.matrices = slices.Insert(s.matrices, idx, mat.DenseCopyOf(m))
	if s.hasLengths {
		s.lengths = slices.Insert(s.lengths, idx, cfg.length)
	}
	return nil
}

// normalizeIndex maps i onto [0, n] with list-insert semantics: negative i
// counts from the end, anything still out of range clamps.
func normalizeIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// Concatenate is reserved for joining two sequences in place. It is not
// yet supported and always returns ErrNotImplemented; assemble longer
// lines element by element, or with the builders in package lattice.
func (s *Sequence) Concatenate(next *Sequence) error {
	_ = next
	return ErrNotImplemented
}
