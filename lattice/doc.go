// SPDX-License-Identifier: MIT

// Package lattice assembles beamline sequences from standard building
// blocks: sliced drifts, thin-lens FODO cells, and the course's matching
// section, plus a YAML description format for whole lines.
//
// Design contract (strict):
//   - Builders mutate a caller-supplied *beamline.Sequence so blocks
//     compose by successive calls; convenience constructors allocate a 2D
//     lengths-tracking line and delegate.
//   - All parameters are validated before the first insert; a later insert
//     failure leaves the line extended only up to that point, and no
//     partial cleanup is attempted.
//   - Determinism: the same inputs produce the same line, element for
//     element.
//   - Builders follow the sequence dimension: 2D lines receive 2x2
//     elements, 6D lines the corresponding 6x6 forms.
package lattice
