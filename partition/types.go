// SPDX-License-Identifier: MIT

// Package partition: domain types.
// This file contains ONLY domain-facing types: the isomer data model, the
// per-contribution result table and the Contribution interface. The
// temperature grid lives in grid.go, errors in errors.go.
package partition

import (
	"fmt"

	"github.com/katalvlaran/occuprob/matrix"
)

// Isomer holds the already-computed physical properties of one local minimum.
// Units: Energy in eV, Frequencies in THz, Moments in amu·Å².
type Isomer struct {
	Energy       float64    // ground-state potential energy
	Multiplicity int        // spin multiplicity, >= 1 (used by WithSpin)
	Frequencies  []float64  // real vibrational modes; zero/imaginary modes removed upstream
	Symmetry     int        // order of the rotational subgroup, >= 1
	Moments      [3]float64 // principal moments of inertia
}

// Set is an ordered sequence of isomers. The index of an isomer is its only
// identity; no contribution or engine copies or mutates the elements.
type Set []Isomer

// Len returns the number of isomers.
func (s Set) Len() int { return len(s) }

// Validate checks the set is non-empty.
// Per-model checks (frequencies, multiplicity, ...) are done by the models
// that need them.
func (s Set) Validate() error {
	if len(s) == 0 {
		return ErrEmptySet
	}

	return nil
}

// Table is the output of one contribution (or of Combine) on a grid.
// Every matrix has shape len(Set) × Grid.Len(): row i is isomer i, column j
// is temperature j.
//
//   - LogZ:     ln z(i,T); at T=0 the finite ground-state residual.
//   - Energy:   −∂ ln z/∂β in eV; at T=0 the ground-state energy.
//   - Capacity: β² ∂² ln z/∂β² (units of k); 0 at T=0.
type Table struct {
	LogZ     *matrix.Dense
	Energy   *matrix.Dense
	Capacity *matrix.Dense
}

// NewTable allocates a zero table of the given shape with the strict
// (finite-only) numeric policy.
func NewTable(isomers, temperatures int) (*Table, error) {
	logZ, err := matrix.NewDense(isomers, temperatures)
	if err != nil {
		return nil, err
	}
	energy, _ := matrix.NewDense(isomers, temperatures)
	capacity, _ := matrix.NewDense(isomers, temperatures)

	return &Table{LogZ: logZ, Energy: energy, Capacity: capacity}, nil
}

// Shape returns (isomers, temperatures).
func (t *Table) Shape() (isomers, temperatures int) { return t.LogZ.Shape() }

// ValidateShape checks that all three matrices are present and isomers×temperatures.
func (t *Table) ValidateShape(isomers, temperatures int) error {
	if t == nil {
		return fmt.Errorf("%w: nil table", ErrDimensionMismatch)
	}
	for _, m := range []*matrix.Dense{t.LogZ, t.Energy, t.Capacity} {
		if err := matrix.ValidateShape(m, isomers, temperatures); err != nil {
			return fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
		}
	}

	return nil
}

// Contribution is one physical factor of the isomer partition functions.
//
// Evaluate returns a Table of shape len(set) × grid.Len() and must never
// reorder or resize either axis. It must be defined at T=0 without producing
// NaN or ±Inf (see the package documentation for the residual convention).
// Implementations are stateless and safe for concurrent use: Combine
// evaluates contributions in parallel.
type Contribution interface {
	// Name identifies the contribution in errors and logs.
	Name() string

	// Evaluate tabulates ln z, energy and intrinsic heat capacity.
	Evaluate(set Set, grid Grid) (*Table, error)
}
