// Package element generates transfer matrices for beamline elements such as
// drifts and thin-lens quadrupole magnets.
//
// Coordinate conventions match the rest of the library:
//
//	{x, x'}                 in [m, 1]             for 2D, or
//	{x, x', y, y', z, Ek}   in [m, 1, m, 1, m, eV] for 6D.
//
// Every factory allocates and returns a fresh matrix; callers own the result.
package element

import (
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Dim is the phase-space dimension of a transfer matrix.
type Dim int

// Supported phase-space dimensions.
const (
	// Dim2D is single-plane tracking, coordinates {x, x'}.
	Dim2D Dim = 2

	// Dim6D is full tracking, coordinates {x, x', y, y', z, Ek}.
	Dim6D Dim = 6
)

// Valid reports whether d is one of the supported dimensions.
func (d Dim) Valid() bool { return d == Dim2D || d == Dim6D }

// String returns the dimension as its numeric value, e.g. "2".
func (d Dim) String() string { return strconv.Itoa(int(d)) }

// Identity returns the d×d identity matrix. The dimension must be positive;
// size validation is delegated to mat.NewDense.
func Identity(d Dim) *mat.Dense {
	m := mat.NewDense(int(d), int(d), nil)
	for i := 0; i < int(d); i++ {
		m.Set(i, i, 1)
	}
	return m
}
