// SPDX-License-Identifier: MIT

package extxyz

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// PrincipalMoments returns the principal moments of inertia, in amu·Å² and
// ascending order, of atoms at positions (Å).
// Implementation:
//   - Stage 1: masses and centre of mass.
//   - Stage 2: inertia tensor I = Σ m (|r|² 1 − r rᵀ) about the centre.
//   - Stage 3: eigenvalues of the symmetric tensor; round-off negatives are
//     clamped to 0 (the axis of a linear molecule).
//
// Errors: ErrUnknownElement, ErrMalformed on length mismatch.
func PrincipalMoments(symbols []string, positions [][3]float64) ([3]float64, error) {
	var out [3]float64
	if len(symbols) != len(positions) {
		return out, fmt.Errorf("%w: %d symbols, %d positions", ErrMalformed, len(symbols), len(positions))
	}

	m := make([]float64, len(symbols))
	var total float64
	var com [3]float64
	for a, s := range symbols {
		mass, err := Mass(s)
		if err != nil {
			return out, err
		}
		m[a] = mass
		total += mass
		for d := 0; d < 3; d++ {
			com[d] += mass * positions[a][d]
		}
	}
	if total == 0 {
		return out, nil
	}
	for d := 0; d < 3; d++ {
		com[d] /= total
	}

	var t [3][3]float64
	for a, p := range positions {
		r := [3]float64{p[0] - com[0], p[1] - com[1], p[2] - com[2]}
		r2 := r[0]*r[0] + r[1]*r[1] + r[2]*r[2]
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				v := -r[i] * r[j]
				if i == j {
					v += r2
				}
				t[i][j] += m[a] * v
			}
		}
	}
	tensor := mat.NewSymDense(3, []float64{
		t[0][0], t[0][1], t[0][2],
		t[1][0], t[1][1], t[1][2],
		t[2][0], t[2][1], t[2][2],
	})

	var eig mat.EigenSym
	if !eig.Factorize(tensor, false) {
		return out, fmt.Errorf("%w: inertia tensor eigendecomposition failed", ErrMalformed)
	}
	vals := eig.Values(nil)
	sort.Float64s(vals)
	for k, v := range vals {
		if v > 0 {
			out[k] = v
		}
	}

	return out, nil
}
