// SPDX-License-Identifier: MIT

package physics

const (
	// Boltzmann is the Boltzmann constant in eV/K.
	Boltzmann = 8.617333262145e-5

	// Planck is the Planck constant in eV/THz (eV·ps).
	Planck = 4.135667696e-3

	// PlanckSI is the Planck constant in J·s.
	PlanckSI = 6.62607015e-34

	// ElectronVolt is one eV in J.
	ElectronVolt = 1.602176634e-19

	// AtomicMassUnit is one dalton in kg.
	AtomicMassUnit = 1.66053906660e-27

	// Angstrom is one Å in m.
	Angstrom = 1e-10
)

// InertiaSI converts a moment of inertia from amu·Å² to kg·m².
const InertiaSI = AtomicMassUnit * Angstrom * Angstrom
