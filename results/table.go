// SPDX-License-Identifier: MIT

package results

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/occuprob/matrix"
	"github.com/katalvlaran/occuprob/partition"
)

var (
	// ErrLength indicates a column whose length differs from the grid.
	ErrLength = errors.New("results: column length does not match grid")

	// ErrNoColumns indicates a table without data columns.
	ErrNoColumns = errors.New("results: no columns")

	// ErrUnsupportedFormat indicates an image format gonum/plot cannot write.
	ErrUnsupportedFormat = errors.New("results: unsupported plot format")
)

// Rows returns the rows of m as separate slices. Applied to a probability
// matrix it yields one column per isomer.
func Rows(m *matrix.Dense) ([][]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	out := make([][]float64, m.Rows())
	var err error
	for i := range out {
		if out[i], err = m.Row(i); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// WriteTable writes one line per temperature: T followed by columns[k][j],
// in %.8e and separated by single spaces.
// Errors: ErrNoColumns, ErrLength, or the first write error.
func WriteTable(w io.Writer, grid partition.Grid, columns ...[]float64) error {
	if len(columns) == 0 {
		return ErrNoColumns
	}
	for k, c := range columns {
		if len(c) != grid.Len() {
			return fmt.Errorf("column %d: %d values for %d temperatures: %w", k, len(c), grid.Len(), ErrLength)
		}
	}

	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 16*(len(columns)+1))
	for j := 0; j < grid.Len(); j++ {
		buf = strconv.AppendFloat(buf[:0], grid.At(j), 'e', 8, 64)
		for _, c := range columns {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, c[j], 'e', 8, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile creates (or truncates) path and writes the table to it.
func WriteFile(path string, grid partition.Grid, columns ...[]float64) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = WriteTable(fh, grid, columns...); err != nil {
		fh.Close()

		return fmt.Errorf("%s: %w", path, err)
	}

	return fh.Close()
}
