// SPDX-License-Identifier: MIT

// builders.go grows a beamline sequence by whole optical blocks. Drifts
// are sliced so downstream Twiss evolution samples the optics inside the
// block, not only at its ends; thin quadrupoles are appended with length
// zero so recorded positions stay physical.

package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/beamline"
	"github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/element"
)

// Matching section geometry, in metres.
const (
	matchL1 = 50.0 // start of the line to the first matching quad
	matchL2 = 25.0 // first matching quad to the second
	matchL3 = 20.0 // second matching quad to the screen
	matchL4 = 5.0  // screen to the FODO channel entrance
)

// maxDriftSlices bounds the number of slices a single drift may expand
// into, so a tiny step cannot ask for an absurd allocation.
const maxDriftSlices = 1 << 20

// AppendDrift appends a drift of length l to line, sliced into
// n = ceil(l/ds) equal pieces. Every slice is recorded with its true
// length l/n, which may be shorter than the requested ds when ds does
// not divide l.
//
// Parameters:
//   - line: sequence to extend; its dimension selects 2x2 or 6x6 drifts.
//   - l:    drift length in metres, finite and strictly positive.
//   - ds:   maximum slice length in metres, finite and strictly positive.
//
// Returns ErrNilLine, ErrBadLength or ErrBadStep on invalid input, or
// the underlying insert error. Complexity O(n) inserts.
func AppendDrift(line *beamline.Sequence, l, ds float64) error {
	if line == nil {
		return fmt.Errorf("AppendDrift: %w", ErrNilLine)
	}
	if err := checkDrift(l, ds); err != nil {
		return fmt.Errorf("AppendDrift: %w", err)
	}
	if err := sliceDrift(line, l, ds); err != nil {
		return fmt.Errorf("AppendDrift: %w", err)
	}
	return nil
}

// AppendFODO appends one thin-lens FODO cell to line:
//
//	quad(2f)  drift(l)  quad(-f)  drift(l)  quad(2f)
//
// The half-strength end quads let consecutive cells merge into a
// periodic channel. Both drifts are sliced by WithStep; without it each
// drift is a single slice and the cell contributes 2l metres.
//
// Parameters:
//   - line: sequence to extend.
//   - f:    cell focal length in metres, finite and non-zero.
//   - l:    length of each of the two drifts, finite and positive.
//
// Returns ErrNilLine, ErrBadFocal, ErrBadLength or ErrBadStep on invalid
// input, or the underlying insert error.
func AppendFODO(line *beamline.Sequence, f, l float64, opts ...Option) error {
	if line == nil {
		return fmt.Errorf("AppendFODO: %w", ErrNilLine)
	}
	if err := checkFocal(f); err != nil {
		return fmt.Errorf("AppendFODO: %w", err)
	}
	cfg := newConfig(opts...)
	ds := cfg.step
	if ds == 0 {
		ds = l
	}
	if err := checkDrift(l, ds); err != nil {
		return fmt.Errorf("AppendFODO: %w", err)
	}
	steps := []func() error{
		func() error { return insertQuad(line, 2*f) },
		func() error { return sliceDrift(line, l, ds) },
		func() error { return insertQuad(line, -f) },
		func() error { return sliceDrift(line, l, ds) },
		func() error { return insertQuad(line, 2*f) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("AppendFODO: %w", err)
		}
	}
	return nil
}

// AppendMatchingSection appends the transfer line that matches the
// source optics into a downstream FODO channel:
//
//	drift(50)  quad(f1)  drift(25)  quad(-f2)  drift(20)  drift(5)  quad(2*fFODO)
//
// The two 20 m and 5 m drifts meet at the screen position used to
// inspect the beam before injection. The final quad is the entrance
// half-quad of the FODO channel; set its focal length with
// WithFODOFocal (default DefaultFODOFocal). Without WithStep each drift
// is appended as a single slice.
//
// Parameters:
//   - line:   sequence to extend.
//   - f1, f2: focal lengths of the two matching quads in metres, finite
//     and non-zero; f2 is inserted defocusing.
//
// Returns ErrNilLine, ErrBadFocal, ErrBadLength or ErrBadStep on invalid
// input, or the underlying insert error.
func AppendMatchingSection(line *beamline.Sequence, f1, f2 float64, opts ...Option) error {
	if line == nil {
		return fmt.Errorf("AppendMatchingSection: %w", ErrNilLine)
	}
	cfg := newConfig(opts...)
	for _, f := range []float64{f1, f2, cfg.fodoFocal} {
		if err := checkFocal(f); err != nil {
			return fmt.Errorf("AppendMatchingSection: %w", err)
		}
	}
	stepFor := func(l float64) float64 {
		if cfg.step != 0 {
			return cfg.step
		}
		return l
	}
	for _, l := range []float64{matchL1, matchL2, matchL3, matchL4} {
		if err := checkDrift(l, stepFor(l)); err != nil {
			return fmt.Errorf("AppendMatchingSection: %w", err)
		}
	}
	steps := []func() error{
		func() error { return sliceDrift(line, matchL1, stepFor(matchL1)) },
		func() error { return insertQuad(line, f1) },
		func() error { return sliceDrift(line, matchL2, stepFor(matchL2)) },
		func() error { return insertQuad(line, -f2) },
		func() error { return sliceDrift(line, matchL3, stepFor(matchL3)) },
		func() error { return sliceDrift(line, matchL4, stepFor(matchL4)) },
		func() error { return insertQuad(line, 2*cfg.fodoFocal) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return fmt.Errorf("AppendMatchingSection: %w", err)
		}
	}
	return nil
}

// NewFODOLine builds a fresh 2D lengths-tracking line holding a single
// FODO cell. Shorthand for beamline.New(beamline.WithLengths()) followed
// by AppendFODO.
func NewFODOLine(f, l float64, opts ...Option) (*beamline.Sequence, error) {
	line := beamline.New(beamline.WithLengths())
	if err := AppendFODO(line, f, l, opts...); err != nil {
		return nil, fmt.Errorf("NewFODOLine: %w", err)
	}
	return line, nil
}

// NewMatchingLine builds a fresh 2D lengths-tracking line holding the
// matching section.
func NewMatchingLine(f1, f2 float64, opts ...Option) (*beamline.Sequence, error) {
	line := beamline.New(beamline.WithLengths())
	if err := AppendMatchingSection(line, f1, f2, opts...); err != nil {
		return nil, fmt.Errorf("NewMatchingLine: %w", err)
	}
	return line, nil
}

// checkDrift validates a drift length and slicing step pair.
func checkDrift(l, ds float64) error {
	if math.IsNaN(l) || math.IsInf(l, 0) || l <= 0 {
		return fmt.Errorf("got %v: %w", l, ErrBadLength)
	}
	if math.IsNaN(ds) || math.IsInf(ds, 0) || ds <= 0 {
		return fmt.Errorf("got %v: %w", ds, ErrBadStep)
	}
	if l/ds > maxDriftSlices {
		return fmt.Errorf("step %v would slice a %v m drift %.0f times: %w",
			ds, l, math.Ceil(l/ds), ErrBadStep)
	}
	return nil
}

// checkFocal validates a quadrupole focal length.
func checkFocal(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
		return fmt.Errorf("got %v: %w", f, ErrBadFocal)
	}
	return nil
}

// sliceDrift appends ceil(l/ds) equal drift slices to line.
func sliceDrift(line *beamline.Sequence, l, ds float64) error {
	n := int(math.Ceil(l / ds))
	if n < 1 {
		n = 1
	}
	dl := l / float64(n)
	var m *mat.Dense
	switch line.Dim() {
	case element.Dim6D:
		m = element.Drift6D(dl)
	default:
		m = element.Drift2D(dl)
	}
	for i := 0; i < n; i++ {
		if err := insert(line, m, dl); err != nil {
			return err
		}
	}
	return nil
}

// insertQuad appends a zero-length thin quadrupole matching the line
// dimension.
func insertQuad(line *beamline.Sequence, f float64) error {
	var m *mat.Dense
	switch line.Dim() {
	case element.Dim6D:
		m = element.ThinQuad6D(f)
	default:
		m = element.ThinQuad2D(f)
	}
	return insert(line, m, 0)
}

// insert records m on line, with length only when the line tracks them.
func insert(line *beamline.Sequence, m *mat.Dense, dl float64) error {
	if line.HasLengths() {
		return line.Insert(m, beamline.WithLength(dl))
	}
	return line.Insert(m)
}
