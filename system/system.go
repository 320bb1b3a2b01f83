// SPDX-License-Identifier: MIT

// Package system reads linear systems A·x = b from YAML documents, solves
// them through package lu and renders the result as a YAML report.
//
//	name: magic3
//	a:
//	  - [8, 1, 6]
//	  - [3, 5, 7]
//	  - [4, 9, 2]
//	b: [1, 2, 3]
package system

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lusolve/lu"
	"github.com/katalvlaran/lusolve/matrix"
)

// ErrInvalidSystem is returned for documents that do not describe a square
// system with a matching right-hand side.
var ErrInvalidSystem = errors.New("system: invalid system")

// System is one linear system as stored on disk.
type System struct {
	Name string      `yaml:"name"`
	A    [][]float64 `yaml:"a"`
	B    []float64   `yaml:"b"`
}

// Report is the outcome of solving a System.
type Report struct {
	Name     string    `yaml:"name"`
	X        []float64 `yaml:"x"`
	Residual float64   `yaml:"residual"`
	Pivots   []int     `yaml:"pivots"`
	Det      float64   `yaml:"det"`
}

// Demo returns the built-in sample system; its solution is [0.05, 0.3, 0.05].
func Demo() *System {
	return &System{
		Name: "magic3",
		A: [][]float64{
			{8, 1, 6},
			{3, 5, 7},
			{4, 9, 2},
		},
		B: []float64{1, 2, 3},
	}
}

// Load reads and validates the system stored at path.
func Load(path string) (*System, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	return s, nil
}

// Decode parses one YAML document. Unknown keys are rejected.
func Decode(r io.Reader) (*System, error) {
	var s System
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(err, "decode system")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Save writes s to path as YAML.
func Save(path string, s *System) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "encode system")
	}

	return errors.WithStack(os.WriteFile(path, data, 0644))
}

// Validate checks the shape of the system: a non-empty square A whose order
// matches len(B).
func (s *System) Validate() error {
	n := len(s.A)
	if n == 0 {
		return errors.Wrap(ErrInvalidSystem, "a is empty")
	}
	for i, row := range s.A {
		if len(row) != n {
			return errors.Wrapf(ErrInvalidSystem, "row %d has %d entries, want %d", i, len(row), n)
		}
	}
	if len(s.B) != n {
		return errors.Wrapf(ErrInvalidSystem, "b has %d entries, want %d", len(s.B), n)
	}

	return nil
}

// Matrix converts A into a Dense. Non-finite entries are kept so that they
// propagate through the factorization instead of failing ingestion.
func (s *System) Matrix() (*matrix.Dense, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	d, err := matrix.NewDenseFrom(s.A, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, errors.Wrap(err, "build matrix")
	}

	return d, nil
}

// Factorize validates s and returns the LU factorization of A.
func (s *System) Factorize(opts ...lu.Option) (*lu.Factorization, error) {
	a, err := s.Matrix()
	if err != nil {
		return nil, err
	}
	f, err := lu.Factorize(a, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "factorize %q", s.Name)
	}

	return f, nil
}

// Solve factorizes A, solves for B and measures the residual.
// The residual is taken against the original A even under lu.WithInPlace.
func (s *System) Solve(opts ...lu.Option) (*Report, error) {
	a, err := s.Matrix()
	if err != nil {
		return nil, err
	}
	f, err := lu.Factorize(a.Copy(), opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "factorize %q", s.Name)
	}
	x, err := f.Solve(s.B)
	if err != nil {
		return nil, errors.Wrapf(err, "solve %q", s.Name)
	}
	res, err := lu.Residual(a, x, s.B)
	if err != nil {
		return nil, errors.Wrapf(err, "residual %q", s.Name)
	}

	return &Report{
		Name:     s.Name,
		X:        x,
		Residual: res,
		Pivots:   f.Pivots(),
		Det:      f.Det(),
	}, nil
}

// WriteReport renders r as a YAML document.
func WriteReport(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "encode report")
	}

	return errors.WithStack(enc.Close())
}
