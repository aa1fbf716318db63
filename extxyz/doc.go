// Package extxyz reads isomer databases stored as multi-frame Extended XYZ.
//
// Each frame is
//
//	<atom count>
//	energy=-13.602 multiplicity=3 frequencies="1.05 1.32 ..." symmetry=2
//	Pt  0.000  0.000  0.000
//	...
//
// The comment line is a list of key=value pairs; values containing spaces are
// quoted, and a bare key is a boolean flag. Keys are matched without regard
// to case. Recognised keys:
//
//	energy        ground-state energy in eV (required)
//	frequencies   real vibrational frequencies in THz (required for >1 atom)
//	multiplicity  spin multiplicity (default 1)
//	symmetry      order of the rotational subgroup (default 1)
//	moments       three principal moments in amu·Å² (default: computed)
//
// Other keys (Properties, pbc, ...) are kept in Frame.Info and otherwise
// ignored. When moments are absent they are computed from the atomic masses
// and positions as the eigenvalues of the inertia tensor about the centre of
// mass, sorted ascending.
package extxyz
