// Package beam generates macro-particle bunches by Monte Carlo sampling
// and saves or loads them as delimited text files.
//
// A Bunch stores particles as a 6xN phase-space array, one column per
// macro-particle, with the coordinate rows
//
//	{x, x', y, y', z, Ek}  in  [m, 1, m, 1, m, eV].
//
// Sampling uses explicit random sources; by default every Generate call
// runs on a fresh, fixed-seed source, so repeated calls are reproducible
// and never share generator state.
package beam

import (
	"slices"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Coordinate row indices of the particle array.
const (
	RowX  = 0 // horizontal position [m]
	RowXp = 1 // horizontal slope [1]
	RowY  = 2 // vertical position [m]
	RowYp = 3 // vertical slope [1]
	RowZ  = 4 // longitudinal offset [m]
	RowEk = 5 // kinetic energy [eV]
)

// coordRows is the number of phase-space coordinates per particle.
const coordRows = 6

// Bunch is a set of macro-particles stored as a 6xN phase-space array.
// Construct with Generate, FromMatrix, or Load.
type Bunch struct {
	data *mat.Dense
}

// FromMatrix wraps a 6xN particle array into a Bunch. The matrix is deep
// copied and its values are taken as-is.
func FromMatrix(m *mat.Dense) (*Bunch, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if r, _ := m.Dims(); r != coordRows {
		return nil, ErrBadShape
	}
	return &Bunch{data: mat.DenseCopyOf(m)}, nil
}

// N returns the number of macro-particles.
func (b *Bunch) N() int {
	_, n := b.data.Dims()
	return n
}

// Coord returns the value of coordinate row (RowX..RowEk) for particle i.
func (b *Bunch) Coord(row, i int) (float64, error) {
	if row < 0 || row >= coordRows || i < 0 || i >= b.N() {
		return 0, ErrOutOfRange
	}
	return b.data.At(row, i), nil
}

// Row returns a copy of one coordinate row across all particles.
func (b *Bunch) Row(row int) ([]float64, error) {
	if row < 0 || row >= coordRows {
		return nil, ErrOutOfRange
	}
	return slices.Clone(b.data.RawRowView(row)), nil
}

// Matrix returns a deep copy of the full 6xN particle array.
func (b *Bunch) Matrix() *mat.Dense {
	return mat.DenseCopyOf(b.data)
}

// Stats returns the sample mean and standard deviation of one coordinate
// row. With a single particle the deviation is NaN.
func (b *Bunch) Stats(row int) (mean, std float64, err error) {
	if row < 0 || row >= coordRows {
		return 0, 0, ErrOutOfRange
	}
	r := b.data.RawRowView(row)
	return stat.Mean(r, nil), stat.StdDev(r, nil), nil
}
