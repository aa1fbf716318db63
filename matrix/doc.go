// Package matrix provides the dense numeric tables used across occuprob.
//
// Every quantity computed by the superposition engine is indexed by
// (isomer, temperature): log partition functions, energies, intrinsic heat
// capacities and occupation probabilities. The matrix package stores such
// tables in a row-major Dense buffer (one row per isomer, one column per
// temperature point) and guards them with an explicit numeric policy.
//
// The matrix package provides:
//
//   - Dense with bounds-checked At/Set that return errors instead of panicking.
//   - A numeric policy (WithValidateNaNInf / WithNoValidation) that rejects
//     NaN and ±Inf on ingestion, so non-finite values never leak into
//     downstream reductions.
//   - Row/Col copies for per-isomer and per-temperature reductions.
//   - Element-wise Add/Sum and AllClose for table algebra and tests.
//
// Shapes are never broadcast: combining tables of different shapes fails
// with ErrDimensionMismatch.
package matrix
