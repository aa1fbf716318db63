// Package partition computes per-isomer partition-function contributions on
// a temperature grid and combines them in log-space.
//
// 🚀 What is a contribution?
//
//	Each physical effect contributes a multiplicative factor z_c to an
//	isomer's partition function. A Contribution returns, for every
//	(isomer, temperature) pair:
//	  • ln z_c                      (log-space, so products become sums)
//	  • E_c = −∂ ln z_c/∂β          (internal energy, eV)
//	  • C_c = β² ∂² ln z_c/∂β²      (intrinsic heat capacity, units of k)
//
// ✨ Models:
//   - Electronic       : ln z = ln g − E/kT, optional spin degeneracy g
//   - QuantumHarmonic  : Σ_k [−x_k/2 − ln(1−e^{−x_k})], x_k = hν_k/kT
//   - ClassicalHarmonic: Σ_k −ln x_k (high-temperature limit)
//   - Rotational       : classical rigid rotor from σ and principal moments
//
// Combine sums the contributions of an ordered list per isomer and per
// temperature: L(i,T) = Σ_c ln z_c(i,T), U(i,T) = Σ_c E_c(i,T).
//
// ❄️ Zero temperature:
//
//	At T=0 no entry may be NaN or ±Inf. Contributions report the finite
//	ground-state residual in LogZ (ln g for the electronic model, 0 for the
//	quantum oscillator, and the expression evaluated at kT = 1 eV for the
//	classical models, whose kT power is shared across isomers) and the
//	ground-state energy in Energy. The superposition engine turns these
//	into the exact T→0 limit of the occupation probabilities.
//
// ⚙️ Usage:
//
//	grid, _ := partition.Span(0, 1000, 1)
//	tbl, err := partition.Combine(set, grid,
//	    partition.NewElectronic(partition.WithSpin()),
//	    partition.NewQuantumHarmonic(),
//	    partition.NewRotational(),
//	)
//
// New models are added by implementing Contribution; neither Combine nor the
// engine needs to change.
package partition
