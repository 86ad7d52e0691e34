package twissplot_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/vg"

	"github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/element"
	"github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/lattice"
	"github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/twiss"
	"github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/twissplot"
)

// fodoSeries evolves a waist through one sliced FODO cell.
func fodoSeries(t *testing.T) *twiss.Series {
	t.Helper()
	b0, err := twiss.BeamMatrix(twiss.Params{Alpha: 0, Beta: 10})
	require.NoError(t, err)
	line, err := lattice.NewFODOLine(38, 5, lattice.WithStep(1))
	require.NoError(t, err)
	s, err := twiss.EvolveLine(b0, line)
	require.NoError(t, err)
	return s
}

// driftSeries6D evolves a block-diagonal 6x6 beam matrix through two
// drifts.
func driftSeries6D(t *testing.T) *twiss.Series {
	t.Helper()
	b0 := mat.NewDense(6, 6, nil)
	b0.Set(0, 0, 10)
	b0.Set(1, 1, 0.1)
	b0.Set(2, 2, 20)
	b0.Set(3, 3, 0.05)
	b0.Set(4, 4, 1)
	b0.Set(5, 5, 1)
	ms := []*mat.Dense{element.Drift6D(2), element.Drift6D(2)}
	s, err := twiss.Evolve(b0, ms, []float64{2, 2})
	require.NoError(t, err)
	return s
}

// TestPlot_Labels wires title and axis labels into the figure.
func TestPlot_Labels(t *testing.T) {
	s := fodoSeries(t)

	p, err := twissplot.Plot(s, twissplot.WithTitle("FODO channel"))
	require.NoError(t, err)
	assert.Equal(t, "FODO channel", p.Title.Text)
	assert.Equal(t, "s [m]", p.X.Label.Text)
	assert.Equal(t, "beta [m], alpha [1]", p.Y.Label.Text)

	p, err = twissplot.Plot(s, twissplot.WithBetaOnly())
	require.NoError(t, err)
	assert.Equal(t, "beta [m]", p.Y.Label.Text)
}

// TestPlot_NilAndEmpty rejects series without samples.
func TestPlot_NilAndEmpty(t *testing.T) {
	_, err := twissplot.Plot(nil)
	require.ErrorIs(t, err, twissplot.ErrNilSeries)

	_, err = twissplot.Plot(&twiss.Series{})
	require.ErrorIs(t, err, twissplot.ErrEmptySeries)
}

// TestPlot_PlaneSelection accepts the vertical plane only when the beam
// matrices carry one.
func TestPlot_PlaneSelection(t *testing.T) {
	_, err := twissplot.Plot(fodoSeries(t), twissplot.WithPlane(twissplot.PlaneY))
	require.ErrorIs(t, err, twissplot.ErrBadPlane)

	_, err = twissplot.Plot(driftSeries6D(t), twissplot.WithPlane(twissplot.PlaneY))
	require.NoError(t, err)
}

// TestSave_WritesFile renders a PNG into a scratch directory.
func TestSave_WritesFile(t *testing.T) {
	s := fodoSeries(t)
	path := filepath.Join(t.TempDir(), "twiss.png")

	err := twissplot.Save(s, path,
		twissplot.WithTitle("one cell"),
		twissplot.WithSize(4*vg.Inch, 3*vg.Inch))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// TestSave_Errors surfaces unsupported formats and bad series.
func TestSave_Errors(t *testing.T) {
	s := fodoSeries(t)

	err := twissplot.Save(s, filepath.Join(t.TempDir(), "twiss.xyz"))
	require.Error(t, err)

	err = twissplot.Save(nil, filepath.Join(t.TempDir(), "twiss.png"))
	require.ErrorIs(t, err, twissplot.ErrNilSeries)
}

// TestASCII renders a terminal chart with the caption naming the
// curves.
func TestASCII(t *testing.T) {
	s := fodoSeries(t)

	out := twissplot.ASCII(s)
	require.NotEmpty(t, out)
	assert.Contains(t, out, "beta [m], alpha [1]")

	out = twissplot.ASCII(s, twissplot.WithBetaOnly())
	assert.Contains(t, out, "beta [m]")
	assert.NotContains(t, out, "alpha")

	out = twissplot.ASCII(s, twissplot.WithTitle("one cell"))
	assert.Contains(t, out, "one cell")
}

// TestASCII_SizeAndDegenerateInput honours the requested chart size and
// keeps quiet on unusable series.
func TestASCII_SizeAndDegenerateInput(t *testing.T) {
	s := fodoSeries(t)

	out := twissplot.ASCII(s, twissplot.WithASCIISize(40, 8))
	lines := strings.Split(out, "\n")
	assert.GreaterOrEqual(t, len(lines), 9, "eight chart rows plus axis and caption")

	assert.Empty(t, twissplot.ASCII(nil))
	assert.Empty(t, twissplot.ASCII(&twiss.Series{}))
	assert.Empty(t, twissplot.ASCII(s, twissplot.WithPlane(twissplot.PlaneY)))
}
