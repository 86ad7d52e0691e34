package beam_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/beam"
)

// TestWriteCSV_Format pins the file layout: comment header and %25.18e
// cells joined by ", ", one particle per line.
func TestWriteCSV_Format(t *testing.T) {
	m := mat.NewDense(6, 1, []float64{1, 2, 3, 4, 5, 6})
	b, err := beam.FromMatrix(m)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, b.WriteCSV(&buf))

	want := "# x[m], xp[1], y[m], yp[1], dZ[m], Ek[eV]\n" +
		" 1.000000000000000000e+00, " +
		" 2.000000000000000000e+00, " +
		" 3.000000000000000000e+00, " +
		" 4.000000000000000000e+00, " +
		" 5.000000000000000000e+00, " +
		" 6.000000000000000000e+00\n"
	assert.Equal(t, want, buf.String())
}

// TestCSV_RoundTrip verifies write-then-read reproduces every coordinate
// exactly; the 18-decimal cells carry full float64 precision.
func TestCSV_RoundTrip(t *testing.T) {
	b, err := beam.Generate(validParams(17))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, b.WriteCSV(&buf))

	got, err := beam.ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, 17, got.N())
	assert.True(t, mat.Equal(b.Matrix(), got.Matrix()))
}

// TestReadCSV_Malformed covers field-count, parse, and empty failures.
func TestReadCSV_Malformed(t *testing.T) {
	_, err := beam.ReadCSV(strings.NewReader("1, 2, 3\n"))
	assert.ErrorIs(t, err, beam.ErrBadRecord)

	_, err = beam.ReadCSV(strings.NewReader("a, 1, 2, 3, 4, 5\n"))
	assert.ErrorIs(t, err, beam.ErrBadRecord)

	_, err = beam.ReadCSV(strings.NewReader("# x[m], xp[1], y[m], yp[1], dZ[m], Ek[eV]\n"))
	assert.ErrorIs(t, err, beam.ErrEmptyFile)

	_, err = beam.ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, beam.ErrEmptyFile)
}

// TestSaveLoad_File round-trips through an actual file and enforces the
// suffix convention on both directions.
func TestSaveLoad_File(t *testing.T) {
	b, err := beam.Generate(validParams(25))
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "bunch.csv")
	require.NoError(t, b.Save(path))

	got, err := beam.Load(path)
	require.NoError(t, err)
	assert.True(t, mat.Equal(b.Matrix(), got.Matrix()))

	// Uppercase suffix is accepted too.
	upper := filepath.Join(dir, "bunch.CSV")
	require.NoError(t, b.Save(upper))
	_, err = beam.Load(upper)
	assert.NoError(t, err)

	// Anything else is rejected before touching the filesystem.
	assert.ErrorIs(t, b.Save(filepath.Join(dir, "bunch.txt")), beam.ErrFileSuffix)
	_, err = beam.Load(filepath.Join(dir, "bunch.dat"))
	assert.ErrorIs(t, err, beam.ErrFileSuffix)

	// Missing file surfaces the underlying error.
	_, err = beam.Load(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}
