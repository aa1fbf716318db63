// SPDX-License-Identifier: MIT

package partition

import "fmt"

// term is one (isomer, temperature) entry of a Table.
type term struct {
	logZ, energy, capacity float64
}

// add accumulates a per-mode term.
func (t *term) add(o term) {
	t.logZ += o.logZ
	t.energy += o.energy
	t.capacity += o.capacity
}

// tabulate is the shared evaluation loop of the built-in models.
// Implementation:
//   - Stage 1: validate set and grid (configuration errors).
//   - Stage 2: validate every isomer with check (numeric-domain errors, tagged
//     with the isomer index) before any allocation.
//   - Stage 3: fill the table row by row; Set enforces the finite-only policy
//     so a NaN/Inf is reported with the exact (isomer, temperature).
//
// Complexity: O(isomers × temperatures × cost(point)).
func tabulate(name string, set Set, grid Grid, check func(Isomer) error, point func(iso Isomer, temperature float64) term) (*Table, error) {
	if err := set.Validate(); err != nil {
		return nil, &Error{Contribution: name, Isomer: NoIsomer, Err: err}
	}
	if err := grid.Validate(); err != nil {
		return nil, &Error{Contribution: name, Isomer: NoIsomer, Err: err}
	}
	if check != nil {
		for i, iso := range set {
			if err := check(iso); err != nil {
				return nil, isomerError(name, i, err)
			}
		}
	}

	tbl, err := NewTable(set.Len(), grid.Len())
	if err != nil {
		return nil, &Error{Contribution: name, Isomer: NoIsomer, Err: err}
	}
	var i, j int
	var temperature float64
	var v term
	for i = 0; i < set.Len(); i++ {
		for j = 0; j < grid.Len(); j++ {
			temperature = grid.At(j)
			v = point(set[i], temperature)
			if err = tbl.LogZ.Set(i, j, v.logZ); err == nil {
				if err = tbl.Energy.Set(i, j, v.energy); err == nil {
					err = tbl.Capacity.Set(i, j, v.capacity)
				}
			}
			if err != nil {
				return nil, pointError(name, i, temperature, fmt.Errorf("%w: %w", ErrNaNInf, err))
			}
		}
	}

	return tbl, nil
}
