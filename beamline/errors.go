// SPDX-License-Identifier: MIT

// errors.go centralises the sentinel error set. All public operations
// return these sentinels (optionally wrapped with operation context via
// %w); tests and callers match them with errors.Is. No operation panics
// on user input.

package beamline

import "errors"

var (
	// ErrNilMatrix indicates a nil matrix pointer was passed where an
	// element matrix is required.
	ErrNilMatrix = errors.New("beamline: nil element matrix")

	// ErrDimensionMismatch indicates an element matrix whose shape does not
	// match the sequence dimension (2x2 for 2D, 6x6 for 6D).
	ErrDimensionMismatch = errors.New("beamline: element dimension mismatch")

	// ErrNaNInf indicates a NaN or ±Inf matrix entry at insertion; finite
	// values are required throughout.
	ErrNaNInf = errors.New("beamline: NaN or Inf encountered")

	// ErrLengthRequired indicates an insert without a length into a
	// sequence that tracks element lengths.
	ErrLengthRequired = errors.New("beamline: element length required")

	// ErrNoLengths indicates a length was supplied to, or requested from,
	// a sequence that does not track element lengths.
	ErrNoLengths = errors.New("beamline: sequence does not track element lengths")

	// ErrBadLength indicates an element length that is negative or not
	// finite.
	ErrBadLength = errors.New("beamline: invalid element length")

	// ErrLengthCount indicates initial matrices and lengths slices of
	// different counts.
	ErrLengthCount = errors.New("beamline: matrices and lengths count mismatch")

	// ErrIndexOutOfRange indicates an accessor index outside [0, Len).
	ErrIndexOutOfRange = errors.New("beamline: index out of range")

	// ErrNotImplemented marks operations that are declared but not yet
	// supported.
	ErrNotImplemented = errors.New("beamline: operation not implemented")
)
