// SPDX-License-Identifier: MIT

// errors.go centralises every sentinel returned by the lattice builders
// and the YAML loader. Callers branch with errors.Is; wrapped variants
// carry the operation and, for file input, the element index.

package lattice

import "errors"

var (
	// ErrNilLine is returned when a builder receives a nil sequence.
	ErrNilLine = errors.New("lattice: nil beamline sequence")

	// ErrBadLength is returned when a drift length is not finite or not
	// strictly positive.
	ErrBadLength = errors.New("lattice: drift length must be positive")

	// ErrBadStep is returned when a slicing step is not finite or not
	// strictly positive.
	ErrBadStep = errors.New("lattice: slice step must be positive")

	// ErrBadFocal is returned when a focal length is zero, NaN or Inf.
	// A zero focal length would degrade every quadrupole to identity.
	ErrBadFocal = errors.New("lattice: focal length must be finite and non-zero")

	// ErrBadDim is returned by the YAML loader for a dimension other
	// than 2 or 6.
	ErrBadDim = errors.New("lattice: dimension must be 2 or 6")

	// ErrUnknownKind is returned by the YAML loader for an element kind
	// outside drift, quad and fodo.
	ErrUnknownKind = errors.New("lattice: unknown element kind")

	// ErrBadElement is returned by the YAML loader when an element
	// description is missing a required field or carries an invalid one.
	ErrBadElement = errors.New("lattice: invalid element description")
)
