// Package physics holds the physical constants and unit conversions shared
// by every partition-function model.
//
// Units used throughout occuprob:
//
//	energy       eV
//	temperature  K
//	frequency    THz
//	inertia      amu·Å²
//
// All values are untyped constants (CODATA 2018), defined once and never
// mutated; helpers are pure functions of their arguments.
package physics
