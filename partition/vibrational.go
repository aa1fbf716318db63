// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"
	"math"

	"github.com/katalvlaran/occuprob/physics"
)

const (
	nameQuantumHarmonic   = "quantum-harmonic"
	nameClassicalHarmonic = "classical-harmonic"
)

// checkFrequencies rejects any mode that is not finite and strictly positive.
// An empty list is valid (a single atom has no modes).
func checkFrequencies(iso Isomer) error {
	for k, nu := range iso.Frequencies {
		if math.IsNaN(nu) || math.IsInf(nu, 0) || nu <= 0 {
			return fmt.Errorf("frequency[%d]=%g: %w", k, nu, ErrInvalidFrequency)
		}
	}

	return nil
}

// QuantumHarmonic is the quantum harmonic-oscillator vibrational contribution.
// Per mode with x = hν/kT:
//
//	ln z = −x/2 − ln(1 − e^(−x))
//	E    = hν (1/2 + 1/(e^x − 1))
//	C    = (x/2)² / sinh²(x/2)
//
// expm1 keeps ln z accurate for small x, and the capacity term is taken as 0
// once sinh overflows, so the model stays finite for any frequency at any
// positive temperature. At T=0 the residual ln z is 0 (non-degenerate ground
// level), E is the zero-point energy Σhν/2 and C is 0.
type QuantumHarmonic struct{}

// NewQuantumHarmonic returns the quantum harmonic vibrational contribution.
func NewQuantumHarmonic() *QuantumHarmonic { return &QuantumHarmonic{} }

// Name implements Contribution.
func (*QuantumHarmonic) Name() string { return nameQuantumHarmonic }

// Evaluate implements Contribution.
// Errors: ErrInvalidFrequency for a non-positive or non-finite mode.
func (q *QuantumHarmonic) Evaluate(set Set, grid Grid) (*Table, error) {
	return tabulate(q.Name(), set, grid, checkFrequencies, quantumPoint)
}

func quantumPoint(iso Isomer, temperature float64) term {
	var out term
	if temperature == 0 {
		for _, nu := range iso.Frequencies {
			out.energy += 0.5 * physics.QuantumEnergy(nu)
		}

		return out
	}
	kT := physics.ThermalEnergy(temperature)
	for _, nu := range iso.Frequencies {
		out.add(quantumMode(physics.QuantumEnergy(nu), kT))
	}

	return out
}

// quantumMode evaluates one oscillator of quantum hv at thermal energy kT > 0.
func quantumMode(hv, kT float64) term {
	x := hv / kT
	h := 0.5 * x

	// ratio = h/sinh(h); sinh overflows to +Inf near h≈710, where the
	// capacity has long since underflowed.
	var capacity float64
	if s := math.Sinh(h); !math.IsInf(s, 0) {
		r := h / s
		capacity = r * r
	}

	return term{
		logZ:     -h - math.Log(-math.Expm1(-x)),
		energy:   hv * (0.5 + 1/math.Expm1(x)),
		capacity: capacity,
	}
}

// ClassicalHarmonic is the classical harmonic vibrational contribution.
// Per mode with x = hν/kT:
//
//	ln z = −ln x,   E = kT,   C = 1
//
// The classical partition function has no ground level; at T=0 the residual
// is −Σ ln(hν) (kT taken as 1 eV), E = 0 and C = 0.
type ClassicalHarmonic struct{}

// NewClassicalHarmonic returns the classical harmonic vibrational contribution.
func NewClassicalHarmonic() *ClassicalHarmonic { return &ClassicalHarmonic{} }

// Name implements Contribution.
func (*ClassicalHarmonic) Name() string { return nameClassicalHarmonic }

// Evaluate implements Contribution.
// Errors: ErrInvalidFrequency for a non-positive or non-finite mode.
func (c *ClassicalHarmonic) Evaluate(set Set, grid Grid) (*Table, error) {
	return tabulate(c.Name(), set, grid, checkFrequencies, classicalPoint)
}

func classicalPoint(iso Isomer, temperature float64) term {
	var out term
	kT := physics.ThermalEnergy(temperature)
	for _, nu := range iso.Frequencies {
		hv := physics.QuantumEnergy(nu)
		if temperature == 0 {
			out.logZ -= math.Log(hv)
			continue
		}
		out.add(term{logZ: -math.Log(hv / kT), energy: kT, capacity: 1})
	}

	return out
}
