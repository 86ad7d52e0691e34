package element

import "gonum.org/v1/gonum/mat"

// Drift2D returns the 2x2 transfer matrix of a drift of length l meters:
//
//	| 1  l |
//	| 0  1 |
func Drift2D(l float64) *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		1, l,
		0, 1,
	})
}

// ThinQuad2D returns the 2x2 transfer matrix of a quadrupole magnet in the
// thin-lens approximation, for a single plane, given its focal length f in
// meters:
//
//	|  1    0 |
//	| -1/f  1 |
//
// A positive f focuses, a negative f defocuses. As a special case, f = 0
// returns the identity matrix.
func ThinQuad2D(f float64) *mat.Dense {
	if f == 0 {
		return Identity(Dim2D)
	}
	return mat.NewDense(2, 2, []float64{
		1, 0,
		-1 / f, 1,
	})
}

// Drift6D returns the 6x6 transfer matrix of a drift of length l meters.
// The x and y blocks are 2D drifts; the longitudinal block is the identity,
// so z is not updated according to the energy offset.
func Drift6D(l float64) *mat.Dense {
	m := Identity(Dim6D)
	m.Set(0, 1, l)
	m.Set(2, 3, l)
	return m
}

// ThinQuad6D returns the 6x6 transfer matrix of a thin-lens quadrupole of
// focal length f meters. The magnet focuses in x and defocuses in y (swap
// the sign of f for the opposite polarity); the longitudinal block is the
// identity. As in the 2D case, f = 0 returns the identity matrix.
func ThinQuad6D(f float64) *mat.Dense {
	m := Identity(Dim6D)
	if f == 0 {
		return m
	}
	m.Set(1, 0, -1/f)
	m.Set(3, 2, 1/f)
	return m
}
