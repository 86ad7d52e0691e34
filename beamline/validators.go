// SPDX-License-Identifier: MIT

// validators.go holds the central input validators. Every public mutator
// calls these before touching sequence state, so a failed call leaves
// the sequence exactly as it was.

package beamline

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/element"
)

// checkMatrix validates that m is non-nil, shaped d×d, and entirely finite.
func checkMatrix(d element.Dim, m *mat.Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	r, c := m.Dims()
	if r != int(d) || c != int(d) {
		return fmt.Errorf("got %dx%d for a %sD sequence: %w", r, c, d, ErrDimensionMismatch)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNaNInf
			}
		}
	}
	return nil
}

// checkLength validates that l is finite and non-negative.
func checkLength(l float64) error {
	if math.IsNaN(l) || math.IsInf(l, 0) || l < 0 {
		return fmt.Errorf("got %v: %w", l, ErrBadLength)
	}
	return nil
}
