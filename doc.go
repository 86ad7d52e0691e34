// Package fys4565 is your in-memory toolbench for linear beam optics —
// from single transfer matrices to whole matched beamlines, Twiss
// evolution and Monte Carlo particle bunches.
//
// 🚀 What is fys4565?
//
//	A compact accelerator-physics library that brings together:
//		• Element factories: drifts & thin-lens quadrupoles, 2x2 and 6x6
//		• Beamline sequences: ordered element containers with positions
//		• Lattice builders: sliced drifts, FODO cells, matching sections, YAML lines
//		• Twiss machinery: beam matrices, evolution along a line, recorded series
//		• Particle bunches: Gaussian generation, moments, CSV persistence
//		• Plotting: report figures via gonum/plot, quick looks via asciigraph
//
// ✨ Why use it?
//
//   - Physics-first API – lengths in metres, energies in eV, no unit surprises
//   - Explicit failure modes – sentinel errors for every misuse, errors.Is friendly
//   - Deep-copy ownership – sequences and bunches never alias caller data
//   - Built on gonum – mat for linear algebra, stat for beam moments
//
// Everything is organized under focused subpackages:
//
//	element/   — transfer-matrix factories for drifts and thin quadrupoles
//	beamline/  — the Sequence container: insertion, positions, rendering
//	lattice/   — block builders (drift slicing, FODO, matching) + YAML loader
//	twiss/     — Twiss parameters, beam matrices and evolution series
//	beam/      — particle bunches: generation, statistics, CSV round-trips
//	twissplot/ — beta and alpha figures, on disk or in the terminal
//	matfmt/    — fixed-width matrix rendering for logs and reports
//	physconst/ — beam energy constants and relativistic helpers
//
// Quick taste:
//
//	line, _ := lattice.NewFODOLine(38, 5, lattice.WithStep(0.5))
//	b0, _ := twiss.BeamMatrix(twiss.Params{Alpha: 0, Beta: 40})
//	s, _ := twiss.EvolveLine(b0, line)
//	fmt.Println(twissplot.ASCII(s))
//
// Dive into the runnable programs under examples/ for complete
// matching-section and bunch-tracking walkthroughs.
//
//	go get github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary
package fys4565
