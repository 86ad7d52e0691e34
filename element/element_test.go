package element_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/element"
)

// TestDim_Valid confirms only 2 and 6 are accepted dimensions.
func TestDim_Valid(t *testing.T) {
	assert.True(t, element.Dim2D.Valid())
	assert.True(t, element.Dim6D.Valid())
	assert.False(t, element.Dim(0).Valid())
	assert.False(t, element.Dim(4).Valid())
	assert.Equal(t, "6", element.Dim6D.String())
}

// TestIdentity_FreshAllocation verifies Identity entries and that every call
// returns an independent matrix.
func TestIdentity_FreshAllocation(t *testing.T) {
	i2 := element.Identity(element.Dim2D)
	assert.True(t, mat.Equal(i2, mat.NewDense(2, 2, []float64{1, 0, 0, 1})))

	i2.Set(0, 0, 99)
	assert.Equal(t, 1.0, element.Identity(element.Dim2D).At(0, 0))
}

// TestDrift2D_Entries pins the drift matrix layout for a few lengths.
func TestDrift2D_Entries(t *testing.T) {
	for _, l := range []float64{0, 0.5, 2, 123.25} {
		m := element.Drift2D(l)
		r, c := m.Dims()
		require.Equal(t, 2, r)
		require.Equal(t, 2, c)
		assert.Equal(t, 1.0, m.At(0, 0))
		assert.Equal(t, l, m.At(0, 1))
		assert.Equal(t, 0.0, m.At(1, 0))
		assert.Equal(t, 1.0, m.At(1, 1))
	}
}

// TestDrift2D_Determinant checks det = 1 independent of length.
func TestDrift2D_Determinant(t *testing.T) {
	for _, l := range []float64{0, 1, 5, 1e4} {
		assert.InDelta(t, 1.0, mat.Det(element.Drift2D(l)), 1e-12)
	}
}

// TestDrift2D_Composition verifies Drift(a)*Drift(b) == Drift(a+b).
func TestDrift2D_Composition(t *testing.T) {
	var got mat.Dense
	got.Mul(element.Drift2D(2), element.Drift2D(3))
	assert.True(t, mat.Equal(&got, element.Drift2D(5)))
}

// TestThinQuad2D_Entries checks focusing strength and sign for both
// polarities.
func TestThinQuad2D_Entries(t *testing.T) {
	focus := element.ThinQuad2D(2)
	assert.Equal(t, -0.5, focus.At(1, 0))
	assert.Equal(t, 1.0, focus.At(0, 0))
	assert.Equal(t, 0.0, focus.At(0, 1))

	defocus := element.ThinQuad2D(-4)
	assert.Equal(t, 0.25, defocus.At(1, 0))

	assert.InDelta(t, 1.0, mat.Det(focus), 1e-12)
}

// TestThinQuad2D_ZeroFocal verifies the f=0 special case returns the
// identity instead of dividing by zero.
func TestThinQuad2D_ZeroFocal(t *testing.T) {
	assert.True(t, mat.Equal(element.ThinQuad2D(0), element.Identity(element.Dim2D)))
}

// TestDrift6D_BlockStructure verifies x and y drift blocks and the untouched
// longitudinal block.
func TestDrift6D_BlockStructure(t *testing.T) {
	l := 2.0
	m := element.Drift6D(l)

	want := element.Identity(element.Dim6D)
	want.Set(0, 1, l)
	want.Set(2, 3, l)
	assert.True(t, mat.Equal(m, want))
	assert.InDelta(t, 1.0, mat.Det(m), 1e-12)
}

// TestThinQuad6D_Signs verifies the alternating-gradient convention: the
// quad focuses in x and defocuses in y with the same strength.
func TestThinQuad6D_Signs(t *testing.T) {
	m := element.ThinQuad6D(4)
	assert.Equal(t, -0.25, m.At(1, 0))
	assert.Equal(t, 0.25, m.At(3, 2))
	assert.Equal(t, 1.0, m.At(4, 4))
	assert.Equal(t, 1.0, m.At(5, 5))
	assert.InDelta(t, 1.0, mat.Det(m), 1e-12)

	assert.True(t, mat.Equal(element.ThinQuad6D(0), element.Identity(element.Dim6D)))
}
