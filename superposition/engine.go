// SPDX-License-Identifier: MIT

package superposition

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/occuprob/matrix"
	"github.com/katalvlaran/occuprob/partition"
	"github.com/katalvlaran/occuprob/physics"
)

// Engine evaluates the superposition approximation for a fixed isomer set
// and contribution list. The zero value is not usable; call New.
type Engine struct {
	set      partition.Set
	combined *partition.Combined
	tol      float64
}

// Result bundles everything Evaluate derives from one grid.
type Result struct {
	Grid partition.Grid

	// Probability is isomers × temperatures; every column sums to 1.
	Probability *matrix.Dense

	// Energy is ⟨E⟩(T) in eV.
	Energy []float64

	// HeatCapacity is the full Cv/k; ConfigurationalHeatCapacity keeps only
	// the inter-isomer fluctuation term Var_P(U/kT).
	HeatCapacity                []float64
	ConfigurationalHeatCapacity []float64
}

// New builds an Engine over set with contribs evaluated in registration order.
// The set slice is copied; the isomers themselves are shared, never mutated.
// Errors: partition.ErrEmptySet, partition.ErrNoContributions,
// partition.ErrNilContribution.
func New(set partition.Set, contribs []partition.Contribution, opts ...Option) (*Engine, error) {
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("superposition: %w", err)
	}
	combined, err := partition.NewCombined(contribs...)
	if err != nil {
		return nil, fmt.Errorf("superposition: %w", err)
	}
	cp := make(partition.Set, len(set))
	copy(cp, set)

	e := &Engine{set: cp, combined: combined, tol: DefaultDegeneracyTolerance}
	for _, fn := range opts {
		if fn != nil {
			fn(e)
		}
	}

	return e, nil
}

// Name describes the contribution list, e.g. "electronic+quantum-harmonic".
func (e *Engine) Name() string { return e.combined.Name() }

// Len returns the number of isomers.
func (e *Engine) Len() int { return e.set.Len() }

// Contributions returns the contribution list in registration order.
func (e *Engine) Contributions() []partition.Contribution { return e.combined.Parts() }

// Table returns the combined ln Z, energy and capacity on grid.
func (e *Engine) Table(grid partition.Grid) (*partition.Table, error) {
	return e.combined.Evaluate(e.set, grid)
}

// Probability returns P(i,T), an isomers × temperatures matrix.
// MAIN DESCRIPTION:
//   - T>0: P(i,T) = exp(L(i,T) − M(T)) / Σ_j exp(L(j,T) − M(T)),
//     M(T) = max_j L(j,T); the shift is exact and keeps every exponent ≤ 0.
//   - T=0: the limit of the same expression. Only isomers with U(i,0) within
//     the degeneracy tolerance of min U(·,0) are occupied, weighted by the
//     softmax of their residual L(i,0).
//
// Guarantees: Σ_i P(i,T) = 1 within rounding and 0 ≤ P ≤ 1.
// Complexity: O(contributions) + O(N·M).
func (e *Engine) Probability(grid partition.Grid) (*matrix.Dense, error) {
	tbl, err := e.Table(grid)
	if err != nil {
		return nil, err
	}

	return e.probability(tbl, grid)
}

func (e *Engine) probability(tbl *partition.Table, grid partition.Grid) (*matrix.Dense, error) {
	n, m := tbl.Shape()
	p, err := matrix.NewDense(n, m)
	if err != nil {
		return nil, err
	}
	var logZ, energy []float64
	for j := 0; j < m; j++ {
		if logZ, err = tbl.LogZ.Col(j); err != nil {
			return nil, err
		}
		if grid.At(j) == 0 {
			if energy, err = tbl.Energy.Col(j); err != nil {
				return nil, err
			}
			groundStateMask(logZ, energy, e.tol)
		}
		softmax(logZ)
		for i, v := range logZ {
			if err = p.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

// EnsembleAverage returns ⟨O⟩(T) = Σ_i P(i,T)·O(i,T) for an observable of
// shape isomers × temperatures. Unoccupied isomers (P = 0) are skipped, so
// their observable value never reaches the sum.
// Errors: ErrObservableShape, plus any Probability error.
func (e *Engine) EnsembleAverage(grid partition.Grid, observable matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateShape(observable, e.set.Len(), grid.Len()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrObservableShape, err)
	}
	p, err := e.Probability(grid)
	if err != nil {
		return nil, err
	}

	return average(p, observable)
}

// EnsembleEnergy returns ⟨E⟩(T) = Σ_i P(i,T)·U(i,T) in eV.
func (e *Engine) EnsembleEnergy(grid partition.Grid) ([]float64, error) {
	res, err := e.Evaluate(grid)
	if err != nil {
		return nil, err
	}

	return res.Energy, nil
}

// HeatCapacity returns the canonical heat capacity Cv/k:
//
//	Cv/k = Σ_i P·c_i + Σ_i P·(U_i/kT)² − (Σ_i P·U_i/kT)²
//
// where c_i is the combined intrinsic capacity of isomer i. This is exactly
// d⟨E⟩/dT / k; it is 0 at T=0.
func (e *Engine) HeatCapacity(grid partition.Grid) ([]float64, error) {
	res, err := e.Evaluate(grid)
	if err != nil {
		return nil, err
	}

	return res.HeatCapacity, nil
}

// ConfigurationalHeatCapacity returns Var_P(U/kT), the part of Cv/k due to
// redistribution between isomers. It is 0 for a single isomer and at T=0.
func (e *Engine) ConfigurationalHeatCapacity(grid partition.Grid) ([]float64, error) {
	res, err := e.Evaluate(grid)
	if err != nil {
		return nil, err
	}

	return res.ConfigurationalHeatCapacity, nil
}

// Evaluate computes probabilities, energy and both heat capacities from a
// single evaluation of the contributions.
// Implementation:
//   - Stage 1: combined table on grid.
//   - Stage 2: probabilities.
//   - Stage 3: per temperature, over occupied isomers only: ⟨U⟩, Σ P·c, and
//     the weighted population variance of (U − min U)/kT.
//
// Complexity: O(contributions) + O(N·M).
func (e *Engine) Evaluate(grid partition.Grid) (*Result, error) {
	tbl, err := e.Table(grid)
	if err != nil {
		return nil, err
	}
	p, err := e.probability(tbl, grid)
	if err != nil {
		return nil, err
	}
	energy, err := average(p, tbl.Energy)
	if err != nil {
		return nil, err
	}
	intrinsic, err := average(p, tbl.Capacity)
	if err != nil {
		return nil, err
	}

	m := grid.Len()
	res := &Result{
		Grid:                        grid,
		Probability:                 p,
		Energy:                      energy,
		HeatCapacity:                make([]float64, m),
		ConfigurationalHeatCapacity: make([]float64, m),
	}
	var weights, u []float64
	for j := 0; j < m; j++ {
		temperature := grid.At(j)
		if temperature == 0 {
			continue
		}
		if weights, err = p.Col(j); err != nil {
			return nil, err
		}
		if u, err = tbl.Energy.Col(j); err != nil {
			return nil, err
		}
		conf := fluctuation(u, weights, physics.Beta(temperature))
		res.ConfigurationalHeatCapacity[j] = conf
		res.HeatCapacity[j] = intrinsic[j] + conf
	}

	return res, nil
}

// fluctuation returns Var_P(βU) over occupied isomers. Energies are taken
// relative to the lowest occupied one, so large absolute energies do not
// cost precision.
func fluctuation(u, weights []float64, beta float64) float64 {
	x := make([]float64, 0, len(u))
	w := make([]float64, 0, len(u))
	for i, pi := range weights {
		if pi > 0 {
			x = append(x, u[i])
			w = append(w, pi)
		}
	}
	if len(x) < 2 {
		return 0
	}
	ref := floats.Min(x)
	for k := range x {
		x[k] = (x[k] - ref) * beta
	}
	mean := stat.Mean(x, w)
	for k := range x {
		x[k] = (x[k] - mean) * (x[k] - mean)
	}

	return stat.Mean(x, w)
}

// average returns Σ_i P(i,j)·O(i,j) per column, skipping P = 0.
func average(p *matrix.Dense, observable matrix.Matrix) ([]float64, error) {
	n, m := p.Shape()
	out := make([]float64, m)
	var i, j int
	var pi, oi float64
	var err error
	for j = 0; j < m; j++ {
		for i = 0; i < n; i++ {
			if pi, err = p.At(i, j); err != nil {
				return nil, err
			}
			if pi == 0 {
				continue
			}
			if oi, err = observable.At(i, j); err != nil {
				return nil, err
			}
			out[j] += pi * oi
		}
	}

	return out, nil
}
