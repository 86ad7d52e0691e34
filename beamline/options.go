// SPDX-License-Identifier: MIT

// options.go holds the functional options for sequence construction and
// insertion. Options resolve into private config structs; unset fields
// keep the documented defaults.

package beamline

import "github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/element"

// Option configures a new Sequence.
type Option func(*config)

type config struct {
	dim          element.Dim
	trackLengths bool
}

func defaultConfig() config {
	return config{dim: element.Dim2D}
}

// With6D makes the sequence hold 6x6 element matrices instead of the
// default 2x2.
func With6D() Option {
	return func(c *config) { c.dim = element.Dim6D }
}

// WithLengths makes the sequence track a length in meters for every
// element. Every subsequent Insert must then carry WithLength.
func WithLengths() Option {
	return func(c *config) { c.trackLengths = true }
}

// InsertOption configures a single Insert call.
type InsertOption func(*insertConfig)

type insertConfig struct {
	length    float64
	hasLength bool
	index     int
	hasIndex  bool
}

// WithLength attaches the element length in meters. Required when the
// sequence tracks lengths, rejected when it does not.
func WithLength(l float64) InsertOption {
	return func(c *insertConfig) {
		c.length = l
		c.hasLength = true
	}
}

// At inserts before position i instead of appending. Negative i counts from
// the end (i maps to Len()+i); after that, positions beyond either end
// clamp to the nearest end, exactly like list insertion.
func At(i int) InsertOption {
	return func(c *insertConfig) {
		c.index = i
		c.hasIndex = true
	}
}
