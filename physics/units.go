// SPDX-License-Identifier: MIT

package physics

import "math"

// ThermalEnergy returns kT in eV for a temperature in K.
func ThermalEnergy(temperature float64) float64 { return Boltzmann * temperature }

// Beta returns 1/(kT) in 1/eV. At T=0 it returns +Inf, the exact limit;
// callers that must stay finite special-case T=0 before calling it.
func Beta(temperature float64) float64 {
	if temperature <= 0 {
		return math.Inf(1)
	}

	return 1 / (Boltzmann * temperature)
}

// QuantumEnergy returns hν in eV for a frequency in THz.
func QuantumEnergy(frequency float64) float64 { return Planck * frequency }
