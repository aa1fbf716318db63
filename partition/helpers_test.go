package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/occuprob/matrix"
	"github.com/katalvlaran/occuprob/partition"
)

// at reads (i,j) from m, failing the test on error.
func at(t *testing.T, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// mustGrid builds a grid from explicit temperatures.
func mustGrid(t *testing.T, temps ...float64) partition.Grid {
	t.Helper()
	g, err := partition.NewGrid(temps...)
	require.NoError(t, err)

	return g
}

// evaluate runs c on (set, grid), failing the test on error.
func evaluate(t *testing.T, c partition.Contribution, set partition.Set, grid partition.Grid) *partition.Table {
	t.Helper()
	tbl, err := c.Evaluate(set, grid)
	require.NoError(t, err)
	require.NoError(t, tbl.ValidateShape(set.Len(), grid.Len()))

	return tbl
}

// fakeContribution returns a fixed table or error, for Combine tests.
type fakeContribution struct {
	name  string
	table *partition.Table
	err   error
}

func (f fakeContribution) Name() string { return f.name }

func (f fakeContribution) Evaluate(partition.Set, partition.Grid) (*partition.Table, error) {
	return f.table, f.err
}
