// SPDX-License-Identifier: MIT

package partition

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/occuprob/matrix"
)

const nameCombined = "combined"

// Combine evaluates every contribution on (set, grid) and sums their tables
// entry-wise: ln Z = Σ ln z_c, U = Σ E_c, C = Σ C_c.
// MAIN DESCRIPTION:
//   - The log-space form of the product of partition functions in the
//     superposition approximation.
//
// Implementation:
//   - Stage 1: validate inputs (at least one non-nil contribution, non-empty
//     set and grid).
//   - Stage 2: evaluate contributions concurrently; each writes only its own
//     slot. The first error is the one returned.
//   - Stage 3: check every table is len(set) × grid.Len().
//   - Stage 4: fold the tables in registration order with matrix.Sum, so the
//     floating-point result does not depend on scheduling.
//
// Errors:
//   - ErrNoContributions, ErrNilContribution, ErrEmptySet, ErrEmptyGrid.
//   - Any error of a contribution, unchanged (a *Error carrying its name).
//   - ErrDimensionMismatch for a table of the wrong shape.
//   - ErrNaNInf when a sum leaves the finite range.
//
// Complexity:
//   - Time O(Σ_c cost(c) + |contribs|·N·M), Space O(|contribs|·N·M).
func Combine(set Set, grid Grid, contribs ...Contribution) (*Table, error) {
	if len(contribs) == 0 {
		return nil, &Error{Contribution: nameCombined, Isomer: NoIsomer, Err: ErrNoContributions}
	}
	for k, c := range contribs {
		if c == nil {
			return nil, &Error{Contribution: nameCombined, Isomer: NoIsomer, Err: fmt.Errorf("contribs[%d]: %w", k, ErrNilContribution)}
		}
	}
	if err := set.Validate(); err != nil {
		return nil, &Error{Contribution: nameCombined, Isomer: NoIsomer, Err: err}
	}
	if err := grid.Validate(); err != nil {
		return nil, &Error{Contribution: nameCombined, Isomer: NoIsomer, Err: err}
	}

	tables := make([]*Table, len(contribs))
	var g errgroup.Group
	for k, c := range contribs {
		g.Go(func() error {
			tbl, err := c.Evaluate(set, grid)
			if err != nil {
				return err
			}
			tables[k] = tbl

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	n, m := set.Len(), grid.Len()
	logZ := make([]matrix.Matrix, len(tables))
	energy := make([]matrix.Matrix, len(tables))
	capacity := make([]matrix.Matrix, len(tables))
	for k, tbl := range tables {
		if err := tbl.ValidateShape(n, m); err != nil {
			return nil, &Error{Contribution: contribs[k].Name(), Isomer: NoIsomer, Err: err}
		}
		logZ[k], energy[k], capacity[k] = tbl.LogZ, tbl.Energy, tbl.Capacity
	}

	if len(tables) == 1 {
		return tables[0], nil
	}
	out := &Table{}
	var err error
	if out.LogZ, err = matrix.Sum(logZ...); err != nil {
		return nil, sumError(err)
	}
	if out.Energy, err = matrix.Sum(energy...); err != nil {
		return nil, sumError(err)
	}
	if out.Capacity, err = matrix.Sum(capacity...); err != nil {
		return nil, sumError(err)
	}

	return out, nil
}

func sumError(err error) error {
	if errors.Is(err, matrix.ErrNaNInf) {
		err = fmt.Errorf("%w: %w", ErrNaNInf, err)
	}

	return &Error{Contribution: nameCombined, Isomer: NoIsomer, Err: err}
}

// Combined is an ordered, immutable list of contributions that is itself a
// Contribution: Evaluate returns Combine over its parts.
type Combined struct {
	parts []Contribution
}

var _ Contribution = (*Combined)(nil)

// NewCombined copies parts into a Combined.
// Errors: ErrNoContributions, ErrNilContribution.
func NewCombined(parts ...Contribution) (*Combined, error) {
	if len(parts) == 0 {
		return nil, ErrNoContributions
	}
	for k, c := range parts {
		if c == nil {
			return nil, fmt.Errorf("contribs[%d]: %w", k, ErrNilContribution)
		}
	}
	cp := make([]Contribution, len(parts))
	copy(cp, parts)

	return &Combined{parts: cp}, nil
}

// Name joins the part names with '+', e.g. "electronic+spin+quantum-harmonic".
func (c *Combined) Name() string {
	var sb strings.Builder
	for k, p := range c.parts {
		if k > 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(p.Name())
	}

	return sb.String()
}

// Parts returns a copy of the contribution list in registration order.
func (c *Combined) Parts() []Contribution {
	out := make([]Contribution, len(c.parts))
	copy(out, c.parts)

	return out
}

// Evaluate implements Contribution.
func (c *Combined) Evaluate(set Set, grid Grid) (*Table, error) {
	return Combine(set, grid, c.parts...)
}
