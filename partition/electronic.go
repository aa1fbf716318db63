// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"
	"math"

	"github.com/katalvlaran/occuprob/physics"
)

const (
	nameElectronic     = "electronic"
	nameElectronicSpin = "electronic+spin"
)

// Electronic is the electronic ground-state contribution
//
//	z = g·exp(−E/kT),   ln z = ln g − E/kT
//
// with g the spin multiplicity when WithSpin is set and 1 otherwise. It
// supplies the reference energy offset between isomers, not a thermal
// excitation model: Energy = E at every temperature and Capacity = 0.
//
// At T=0, ln z = ln g; the −E/kT term is carried by Energy and resolved by
// the engine's ground-state limit.
type Electronic struct {
	spin bool
}

// ElectronicOption configures an Electronic contribution.
type ElectronicOption func(*Electronic)

// WithSpin weights each isomer by its spin multiplicity.
func WithSpin() ElectronicOption {
	return func(e *Electronic) { e.spin = true }
}

// NewElectronic returns an electronic contribution.
func NewElectronic(opts ...ElectronicOption) *Electronic {
	e := &Electronic{}
	for _, fn := range opts {
		if fn != nil {
			fn(e)
		}
	}

	return e
}

// Name implements Contribution.
func (e *Electronic) Name() string {
	if e.spin {
		return nameElectronicSpin
	}

	return nameElectronic
}

// Evaluate implements Contribution.
// Errors: ErrNaNInf for a non-finite energy, ErrInvalidMultiplicity when
// WithSpin is set and a multiplicity is below 1.
func (e *Electronic) Evaluate(set Set, grid Grid) (*Table, error) {
	return tabulate(e.Name(), set, grid, e.check, e.point)
}

func (e *Electronic) check(iso Isomer) error {
	if math.IsNaN(iso.Energy) || math.IsInf(iso.Energy, 0) {
		return fmt.Errorf("energy %g: %w", iso.Energy, ErrNaNInf)
	}
	if e.spin && iso.Multiplicity < 1 {
		return fmt.Errorf("multiplicity %d: %w", iso.Multiplicity, ErrInvalidMultiplicity)
	}

	return nil
}

func (e *Electronic) point(iso Isomer, temperature float64) term {
	logG := 0.0
	if e.spin {
		logG = math.Log(float64(iso.Multiplicity))
	}
	if temperature == 0 {
		return term{logZ: logG, energy: iso.Energy}
	}

	return term{
		logZ:   logG - iso.Energy/physics.ThermalEnergy(temperature),
		energy: iso.Energy,
	}
}
