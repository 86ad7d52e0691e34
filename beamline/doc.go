// SPDX-License-Identifier: MIT

// Package beamline organizes beamline element matrices into ordered
// sequences.
//
// A Sequence holds 2x2 or 6x6 transfer matrices (see package element) in
// beam order, optionally paired with per-element lengths in meters. The
// dimension and the length-tracking mode are fixed at construction; every
// insert validates against them, and a matrix and its length always commit
// together, so the two series can never drift out of step.
//
// The sequence owns deep copies of everything it stores: matrices are
// copied on the way in and on the way out, so no caller can mutate the
// contained state through a retained pointer.
//
// A Sequence is not safe for concurrent use. The contained gonum matrices
// are not synchronized either, so callers running propagation in parallel
// must arrange their own locking.
//
// Errors:
//
//	ErrNilMatrix         - inserted matrix pointer is nil.
//	ErrDimensionMismatch - matrix shape does not match the sequence dimension.
//	ErrNaNInf            - matrix entry is NaN or ±Inf.
//	ErrLengthRequired    - sequence tracks lengths but none was given.
//	ErrNoLengths         - length supplied to, or requested from, a sequence
//	                       that does not track lengths.
//	ErrBadLength         - length is negative or non-finite.
//	ErrLengthCount       - initial matrices and lengths differ in count.
//	ErrIndexOutOfRange   - accessor index outside [0, Len).
//	ErrNotImplemented    - reserved operation (Concatenate).
package beamline
