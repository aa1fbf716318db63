// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"
	"math"

	"github.com/katalvlaran/occuprob/physics"
)

const nameRotational = "rotational"

// rotorScale converts I·kT from amu·Å²·eV into the dimensionless 8π²IkT/h².
const rotorScale = 8 * math.Pi * math.Pi * physics.InertiaSI * physics.ElectronVolt / (physics.PlanckSI * physics.PlanckSI)

// vanishingMoment is the relative threshold under which a principal moment
// counts as zero (the axis of a linear rotor, or an atom).
const vanishingMoment = 1e-8

// Rotational is the classical rigid-rotor contribution built from the
// rotational symmetry number σ and the principal moments (Ia, Ib, Ic).
// With a_j = 8π² I_j kT / h²:
//
//	nonlinear: ln z = ln(√π/σ) + ½ Σ ln a_j,  E = 3/2 kT,  C = 3/2
//	linear:    ln z = ln(a/σ),                 E = kT,      C = 1
//	atom:      ln z = 0,                       E = 0,       C = 0
//
// A rotor is linear when exactly one moment vanishes (relative to the
// largest); a is then the geometric mean of the other two. At T=0 the
// residual is the same expression with kT = 1 eV, and E = C = 0.
type Rotational struct{}

// NewRotational returns the rigid-rotor contribution.
func NewRotational() *Rotational { return &Rotational{} }

// Name implements Contribution.
func (*Rotational) Name() string { return nameRotational }

// Evaluate implements Contribution.
// Errors: ErrInvalidSymmetry for σ < 1, ErrInvalidMoments for a negative or
// non-finite moment or a rotor with two vanishing moments but not three.
func (r *Rotational) Evaluate(set Set, grid Grid) (*Table, error) {
	return tabulate(r.Name(), set, grid, checkRotor, rotorPoint)
}

// rotorKind is the number of rotational degrees of freedom (0, 2 or 3).
func rotorKind(moments [3]float64) (dof int, product float64) {
	largest := math.Max(moments[0], math.Max(moments[1], moments[2]))
	if largest == 0 {
		return 0, 1
	}
	product = 1
	for _, m := range moments {
		if m > vanishingMoment*largest {
			dof++
			product *= m
		}
	}
	if dof == 1 {
		dof = 0 // two vanishing moments is not a rigid rotor
	}

	return dof, product
}

func checkRotor(iso Isomer) error {
	if iso.Symmetry < 1 {
		return fmt.Errorf("symmetry %d: %w", iso.Symmetry, ErrInvalidSymmetry)
	}
	for k, m := range iso.Moments {
		if math.IsNaN(m) || math.IsInf(m, 0) || m < 0 {
			return fmt.Errorf("moment[%d]=%g: %w", k, m, ErrInvalidMoments)
		}
	}
	largest := math.Max(iso.Moments[0], math.Max(iso.Moments[1], iso.Moments[2]))
	if largest > 0 {
		if dof, _ := rotorKind(iso.Moments); dof == 0 {
			return fmt.Errorf("moments %v: %w", iso.Moments, ErrInvalidMoments)
		}
	}

	return nil
}

func rotorPoint(iso Isomer, temperature float64) term {
	dof, product := rotorKind(iso.Moments)
	if dof == 0 {
		return term{}
	}
	kT := 1.0
	if temperature > 0 {
		kT = physics.ThermalEnergy(temperature)
	}
	logSigma := math.Log(float64(iso.Symmetry))

	var out term
	switch dof {
	case 3:
		// ½ Σ ln(c·I_j·kT) = ½ ln(ΠI) + 3/2 ln(c·kT)
		out.logZ = 0.5*math.Log(math.Pi) - logSigma + 0.5*math.Log(product) + 1.5*math.Log(rotorScale*kT)
		out.energy, out.capacity = 1.5*kT, 1.5
	default:
		// product of the two remaining moments; a uses their geometric mean
		out.logZ = 0.5*math.Log(product) + math.Log(rotorScale*kT) - logSigma
		out.energy, out.capacity = kT, 1
	}
	if temperature == 0 {
		out.energy, out.capacity = 0, 0
	}

	return out
}
