// Package twiss propagates beam matrices and Twiss functions through
// beamline element matrices.
//
// A beam matrix B encodes the Twiss functions of one transverse plane:
//
//	B = |  beta   -alpha |
//	    | -alpha   gamma |   with gamma = (1 + alpha²) / beta,
//
// and evolves through an element of transfer matrix M as B' = M·B·Mᵀ.
// The evolution operations accept any square dimension, so 6x6
// second-moment matrices propagate with the same calls.
package twiss

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for propagation operations.
var (
	// ErrNilMatrix indicates a nil matrix argument.
	ErrNilMatrix = errors.New("twiss: nil matrix")

	// ErrNilSequence indicates a nil beamline sequence argument.
	ErrNilSequence = errors.New("twiss: nil sequence")

	// ErrNonPositiveBeta indicates a beta function that is zero, negative,
	// or non-finite; the beam matrix would be singular or indefinite.
	ErrNonPositiveBeta = errors.New("twiss: beta must be positive and finite")

	// ErrNot2x2 indicates a beam matrix of the wrong shape for Twiss
	// extraction.
	ErrNot2x2 = errors.New("twiss: beam matrix is not 2x2")

	// ErrDimensionMismatch indicates operands that are not square or do not
	// share a dimension.
	ErrDimensionMismatch = errors.New("twiss: dimension mismatch")

	// ErrLengthCount indicates matrices and lengths of different counts.
	ErrLengthCount = errors.New("twiss: matrices and lengths count mismatch")

	// ErrNoLengths indicates a sequence without element lengths where
	// positions are required.
	ErrNoLengths = errors.New("twiss: sequence does not track element lengths")

	// ErrIndexOutOfRange indicates a series index outside [0, Len).
	ErrIndexOutOfRange = errors.New("twiss: index out of range")
)

// Params is the Twiss parameter pair of one transverse plane.
type Params struct {
	// Alpha is the correlation function, dimensionless.
	Alpha float64

	// Beta is the beta function in meters. Must be positive.
	Beta float64
}

// BeamMatrix builds the 2x2 beam matrix for the given Twiss parameters.
// Beta must be positive and finite; there is no valid beam matrix
// otherwise, so the call fails fast with ErrNonPositiveBeta instead of
// letting a division by zero propagate.
func BeamMatrix(p Params) (*mat.Dense, error) {
	if !(p.Beta > 0) || math.IsInf(p.Beta, 0) {
		return nil, fmt.Errorf("BeamMatrix: beta = %v: %w", p.Beta, ErrNonPositiveBeta)
	}
	return mat.NewDense(2, 2, []float64{
		p.Beta, -p.Alpha,
		-p.Alpha, (1 + p.Alpha*p.Alpha) / p.Beta,
	}), nil
}

// ParamsFrom reads the Twiss parameters back out of a 2x2 beam matrix:
// beta from B[0,0] and alpha from -B[0,1]. The input is not otherwise
// validated, so for any matrix produced by BeamMatrix the round trip is
// exact.
func ParamsFrom(b mat.Matrix) (Params, error) {
	if b == nil {
		return Params{}, ErrNilMatrix
	}
	if r, c := b.Dims(); r != 2 || c != 2 {
		return Params{}, fmt.Errorf("ParamsFrom: got %dx%d: %w", r, c, ErrNot2x2)
	}
	return Params{Alpha: -b.At(0, 1), Beta: b.At(0, 0)}, nil
}

// EvolveOne transports the beam matrix b0 through one element of transfer
// matrix m, returning M·B₀·Mᵀ as a fresh matrix. Both operands must be
// square and of the same dimension.
func EvolveOne(m, b0 mat.Matrix) (*mat.Dense, error) {
	if m == nil || b0 == nil {
		return nil, ErrNilMatrix
	}
	mr, mc := m.Dims()
	br, bc := b0.Dims()
	if mr != mc || br != bc || mr != br {
		return nil, fmt.Errorf("EvolveOne: %dx%d element with %dx%d beam matrix: %w",
			mr, mc, br, bc, ErrDimensionMismatch)
	}

	var mb, out mat.Dense
	mb.Mul(m, b0)
	out.Mul(&mb, m.T())
	return &out, nil
}

// EvolveSequence transports b0 through every element matrix in order and
// returns the beam matrix after each one, so result[i] is the state at
// element i's exit. An empty input yields an empty result.
func EvolveSequence(ms []*mat.Dense, b0 mat.Matrix) ([]*mat.Dense, error) {
	if b0 == nil {
		return nil, ErrNilMatrix
	}

	out := make([]*mat.Dense, 0, len(ms))
	b := b0
	for i, m := range ms {
		next, err := EvolveOne(m, b)
		if err != nil {
			return nil, fmt.Errorf("EvolveSequence: element %d: %w", i, err)
		}
		out = append(out, next)
		b = next
	}
	return out, nil
}
