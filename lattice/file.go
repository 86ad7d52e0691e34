// SPDX-License-Identifier: MIT

// file.go assembles whole beamlines from YAML descriptions, so lattices
// can live next to the analysis scripts instead of inside them.

package lattice

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/beamline"
	"github.com/AcceleratorPhysicsUiO/FYS4565-codelibrary/element"
)

// LineFile mirrors the YAML description of a beamline:
//
//	dim: 2
//	elements:
//	  - kind: drift
//	    length: 2.0
//	    step: 0.5
//	  - kind: quad
//	    focal: 28.5
//	  - kind: fodo
//	    focal: 38.0
//	    length: 5.0
//
// A zero Dim defaults to 2.
type LineFile struct {
	Dim      int           `yaml:"dim"`
	Elements []ElementSpec `yaml:"elements"`
}

// ElementSpec describes one entry of the elements list. Length and Step
// apply to the drift and fodo kinds, Focal to the quad and fodo kinds.
// A zero Step means one slice per drift.
type ElementSpec struct {
	Kind   string  `yaml:"kind"`
	Length float64 `yaml:"length"`
	Focal  float64 `yaml:"focal"`
	Step   float64 `yaml:"step"`
}

// Load reads a YAML beamline description from path and assembles the
// line. The accepted schema is documented on LineFile.
func Load(path string) (*beamline.Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	line, err := build(data)
	if err != nil {
		return nil, fmt.Errorf("Load: %s: %w", path, err)
	}
	return line, nil
}

// Parse reads a YAML beamline description from r and assembles the line.
func Parse(r io.Reader) (*beamline.Sequence, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	line, err := build(data)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	return line, nil
}

// Assemble builds a lengths-tracking sequence from an in-memory
// description, one builder call per element entry.
func Assemble(desc LineFile) (*beamline.Sequence, error) {
	d := desc.Dim
	if d == 0 {
		d = int(element.Dim2D)
	}
	dim := element.Dim(d)
	if !dim.Valid() {
		return nil, fmt.Errorf("got %d: %w", desc.Dim, ErrBadDim)
	}
	opts := []beamline.Option{beamline.WithLengths()}
	if dim == element.Dim6D {
		opts = append(opts, beamline.With6D())
	}
	line := beamline.New(opts...)
	for i, el := range desc.Elements {
		if err := appendSpec(line, el); err != nil {
			return nil, fmt.Errorf("element %d (%s): %w", i, el.Kind, err)
		}
	}
	return line, nil
}

// build unmarshals data and assembles the described line.
func build(data []byte) (*beamline.Sequence, error) {
	var desc LineFile
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, err
	}
	return Assemble(desc)
}

// appendSpec dispatches one element entry to the matching builder.
func appendSpec(line *beamline.Sequence, el ElementSpec) error {
	switch el.Kind {
	case "drift":
		ds := el.Step
		if ds == 0 {
			ds = el.Length
		}
		return AppendDrift(line, el.Length, ds)
	case "quad":
		if err := checkFocal(el.Focal); err != nil {
			return err
		}
		return insertQuad(line, el.Focal)
	case "fodo":
		opts := []Option{}
		if el.Step != 0 {
			opts = append(opts, WithStep(el.Step))
		}
		return AppendFODO(line, el.Focal, el.Length, opts...)
	case "":
		return fmt.Errorf("missing kind: %w", ErrBadElement)
	default:
		return fmt.Errorf("got %q: %w", el.Kind, ErrUnknownKind)
	}
}
