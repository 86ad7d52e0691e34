// SPDX-License-Identifier: MIT

package lattice_test

import (
	"testing"

	"github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/beamline"
	"github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/lattice"
)

// BenchmarkAppendFODO measures building a finely sliced FODO cell from
// scratch, 103 elements per call.
func BenchmarkAppendFODO(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		line := beamline.New(beamline.WithLengths())
		if err := lattice.AppendFODO(line, 38, 5, lattice.WithStep(0.1)); err != nil {
			b.Fatalf("AppendFODO: %v", err)
		}
	}
}

// BenchmarkAppendMatchingSection measures building the matching section
// with metre slicing.
func BenchmarkAppendMatchingSection(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		line := beamline.New(beamline.WithLengths())
		if err := lattice.AppendMatchingSection(line, 30, 20, lattice.WithStep(1)); err != nil {
			b.Fatalf("AppendMatchingSection: %v", err)
		}
	}
}
