package beam_test

import (
	"fmt"

	"github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/beam"
)

// ExampleGenerate samples a 10 GeV bunch with equal transverse optics and
// reports its size. Default calls are reproducible: the same parameters
// always give the same bunch.
func ExampleGenerate() {
	b, err := beam.Generate(beam.Params{
		N: 10000, Ek0: 10.0e9,
		BetaX: 173.2, AlphaX: 0.0, EmitX: 8.58e-8,
		BetaY: 173.2, AlphaY: 1.0, EmitY: 8.58e-8,
		SigmaEk: 1e7, SigmaZ: 5e-5,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(b.N())
	// Output: 10000
}
