// SPDX-License-Identifier: MIT

package superposition

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// softmax replaces l with exp(l − max l) / Σ exp(l − max l) in place.
// Entries equal to −Inf map to 0; at least one entry must be finite.
func softmax(l []float64) {
	shift := floats.Max(l)
	for k, v := range l {
		l[k] = math.Exp(v - shift)
	}
	floats.Scale(1/floats.Sum(l), l)
}

// groundStateMask sets logZ to −Inf for every isomer whose energy lies more
// than tol above the minimum, leaving the degenerate ground states to share
// the probability by their residual ln z.
func groundStateMask(logZ, energy []float64, tol float64) {
	ground := floats.Min(energy)
	for i, u := range energy {
		if u-ground > tol {
			logZ[i] = math.Inf(-1)
		}
	}
}
