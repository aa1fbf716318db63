// SPDX-License-Identifier: MIT

// Package matrix: public Matrix interface.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Rows index isomers and columns index temperature points throughout
// occuprob, but the interface itself is layout-agnostic.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNaNInf if v violates
	// the numeric policy of the implementation.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
