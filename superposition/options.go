// SPDX-License-Identifier: MIT

package superposition

import "math"

// DefaultDegeneracyTolerance is the energy window (eV) under which two
// ground-state energies count as equal in the T=0 limit.
const DefaultDegeneracyTolerance = 1e-9

// Option configures an Engine.
type Option func(*Engine)

// WithDegeneracyTolerance sets the T=0 degeneracy window in eV.
// Panics when tol is negative or non-finite.
func WithDegeneracyTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(e *Engine) { e.tol = tol }
}
