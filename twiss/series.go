package twiss

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/beamline"
)

// Series holds the beam state sampled at element boundaries: the entry
// point at s = 0 followed by the exit of every element. Construct with
// Evolve or EvolveLine.
type Series struct {
	s    []float64
	beam []*mat.Dense
}

// Evolve builds the Twiss-vs-position series for b0 transported through the
// element matrices ms with the given element lengths in meters.
//
// The resulting series has len(ms)+1 points: positions are 0.0 followed by
// the cumulative sums of lengths, beam matrices are b0 followed by the
// EvolveSequence results. Matrices and lengths must pair one to one.
func Evolve(b0 mat.Matrix, ms []*mat.Dense, lengths []float64) (*Series, error) {
	if b0 == nil {
		return nil, ErrNilMatrix
	}
	if r, c := b0.Dims(); r != c || r < 2 {
		return nil, fmt.Errorf("Evolve: %dx%d beam matrix: %w", r, c, ErrDimensionMismatch)
	}
	if len(ms) != len(lengths) {
		return nil, fmt.Errorf("Evolve: got %d matrices and %d lengths: %w",
			len(ms), len(lengths), ErrLengthCount)
	}

	evolved, err := EvolveSequence(ms, b0)
	if err != nil {
		return nil, err
	}

	s := make([]float64, 0, len(lengths)+1)
	s = append(s, 0)
	pos := 0.0
	for _, l := range lengths {
		pos += l
		s = append(s, pos)
	}

	beam := make([]*mat.Dense, 0, len(evolved)+1)
	beam = append(beam, mat.DenseCopyOf(b0))
	beam = append(beam, evolved...)

	return &Series{s: s, beam: beam}, nil
}

// EvolveLine builds the Twiss-vs-position series for b0 transported through
// a beamline sequence. The sequence must track element lengths.
func EvolveLine(b0 mat.Matrix, line *beamline.Sequence) (*Series, error) {
	if line == nil {
		return nil, ErrNilSequence
	}
	if !line.HasLengths() {
		return nil, ErrNoLengths
	}
	return Evolve(b0, line.Matrices(), line.Lengths())
}

// Len returns the number of sampled points, element count plus one.
func (sr *Series) Len() int { return len(sr.s) }

// S returns a copy of the sampled s positions in meters.
func (sr *Series) S() []float64 { return slices.Clone(sr.s) }

// BeamAt returns a deep copy of the beam matrix at sample point i.
func (sr *Series) BeamAt(i int) (*mat.Dense, error) {
	if i < 0 || i >= len(sr.beam) {
		return nil, ErrIndexOutOfRange
	}
	return mat.DenseCopyOf(sr.beam[i]), nil
}

// Beta returns the beta function at every sample point, read from the
// [0,0] entry of each beam matrix. For series of 6x6 second-moment
// matrices this is the horizontal-block entry.
func (sr *Series) Beta() []float64 {
	out := make([]float64, len(sr.beam))
	for i, b := range sr.beam {
		out[i] = b.At(0, 0)
	}
	return out
}

// Alpha returns the alpha function at every sample point, read as the
// negated [0,1] entry of each beam matrix.
func (sr *Series) Alpha() []float64 {
	out := make([]float64, len(sr.beam))
	for i, b := range sr.beam {
		out[i] = -b.At(0, 1)
	}
	return out
}
