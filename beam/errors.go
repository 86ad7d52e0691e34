package beam

import "errors"

// Sentinel errors for bunch generation, access, and persistence.
var (
	// ErrNilMatrix indicates a nil particle-array matrix.
	ErrNilMatrix = errors.New("beam: nil matrix")

	// ErrBadShape indicates a particle array without exactly 6 coordinate
	// rows.
	ErrBadShape = errors.New("beam: particle array must have 6 rows")

	// ErrBadCount indicates a macro-particle count below 1.
	ErrBadCount = errors.New("beam: macro-particle count must be at least 1")

	// ErrBadEmittance indicates a geometric emittance that is not positive
	// and finite; the sampling covariance would be singular.
	ErrBadEmittance = errors.New("beam: emittance must be positive")

	// ErrBadSpread indicates a negative longitudinal spread.
	ErrBadSpread = errors.New("beam: negative spread")

	// ErrNaNInf indicates a NaN or ±Inf generation parameter.
	ErrNaNInf = errors.New("beam: NaN or Inf in generation parameters")

	// ErrCovariance indicates a sampling covariance that failed the
	// positive-definiteness factorization.
	ErrCovariance = errors.New("beam: covariance matrix not positive-definite")

	// ErrOutOfRange indicates a coordinate row or particle index outside
	// bounds.
	ErrOutOfRange = errors.New("beam: index out of range")

	// ErrFileSuffix indicates a beam file name that does not end in .csv
	// or .CSV.
	ErrFileSuffix = errors.New("beam: file name must end in .csv or .CSV")

	// ErrBadRecord indicates a malformed particle record in a beam file.
	ErrBadRecord = errors.New("beam: malformed particle record")

	// ErrEmptyFile indicates a beam file with no particle records.
	ErrEmptyFile = errors.New("beam: no particle records")
)
