// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise table algebra used to combine partition-function
//     contributions: Add, Sum, AllClose.
//   - Dense fast-paths operate on the flat buffers; other Matrix
//     implementations go through At/Set.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opAdd      = "Add"
	opSum      = "Sum"
	opAllClose = "AllClose"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// policyOf returns the options of m when it is a *Dense, defaults otherwise.
func policyOf(m Matrix) []Option {
	if d, ok := m.(*Dense); ok {
		if d.validateNaNInf {
			return []Option{WithValidateNaNInf()}
		}

		return []Option{WithNoValidation()}
	}

	return nil
}

// Add returns a new Dense containing the element-wise sum of a and b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate result Dense with a's numeric policy.
// Stage 3 (Execute): fast-path for *Dense or fallback to the interface.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf when the policy of a
// is strict and a sum is non-finite (e.g. +Inf + -Inf).
// Complexity: O(r·c) time and memory.
func Add(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols, policyOf(a)...)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		var v float64
		for idx := range res.data {
			v = da.data[idx] + db.data[idx]
			if res.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf(opAdd, denseErrorf(ctxSet, idx/cols, idx%cols, ErrNaNInf))
			}
			res.data[idx] = v
		}

		return res, nil
	}

	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
			if err = res.Set(i, j, av+bv); err != nil {
				return nil, matrixErrorf(opAdd, err)
			}
		}
	}

	return res, nil
}

// Sum folds Add over ms in order: ((m0 + m1) + m2) + ...
// Deterministic: the summation order is the argument order.
// Errors: ErrInvalidDimensions when ms is empty, otherwise as Add.
func Sum(ms ...Matrix) (*Dense, error) {
	if len(ms) == 0 {
		return nil, matrixErrorf(opSum, ErrInvalidDimensions)
	}
	if err := ValidateNotNil(ms[0]); err != nil {
		return nil, matrixErrorf(opSum, err)
	}
	acc, err := NewDense(ms[0].Rows(), ms[0].Cols(), policyOf(ms[0])...)
	if err != nil {
		return nil, matrixErrorf(opSum, err)
	}
	for _, m := range ms {
		if acc, err = Add(acc, m); err != nil {
			return nil, matrixErrorf(opSum, err)
		}
	}

	return acc, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
// Negative tolerances are normalised to their absolute value.
// Complexity: O(r·c) time, O(1) space.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if math.IsNaN(av) || math.IsNaN(bv) {
				return false, nil
			}
			if math.IsInf(av, 0) || math.IsInf(bv, 0) {
				if av != bv {
					return false, nil
				}
				continue
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
