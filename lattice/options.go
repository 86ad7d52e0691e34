// SPDX-License-Identifier: MIT

// options.go defines the functional options shared by the block builders.
// Options with no explicit value fall back to the documented defaults, so
// a plain AppendFODO(line, f, l) call stays valid.

package lattice

// DefaultFODOFocal is the focal length, in metres, of the FODO channel a
// matching section feeds into when none is given.
const DefaultFODOFocal = 38.0

// config collects the tunable parameters of a builder call.
type config struct {
	step      float64 // drift slicing step; 0 means one slice per drift
	fodoFocal float64 // focal length of the downstream FODO channel
}

// Option adjusts one builder parameter.
type Option func(*config)

// WithStep slices every drift of the block into pieces of at most ds
// metres. Without it each drift is appended as a single slice.
func WithStep(ds float64) Option {
	return func(c *config) { c.step = ds }
}

// WithFODOFocal sets the focal length of the FODO channel downstream of a
// matching section. Defaults to DefaultFODOFocal.
func WithFODOFocal(f float64) Option {
	return func(c *config) { c.fodoFocal = f }
}

// newConfig applies opts over the defaults.
func newConfig(opts ...Option) config {
	c := config{fodoFocal: DefaultFODOFocal}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
