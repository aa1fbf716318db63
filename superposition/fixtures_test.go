package superposition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/occuprob/matrix"
	"github.com/katalvlaran/occuprob/partition"
	"github.com/katalvlaran/occuprob/superposition"
)

// pt5 is a three-isomer Pt5 set: a triplet ground state, a quintet at
// +0.15 eV and a singlet at +0.32 eV.
func pt5() partition.Set {
	return partition.Set{
		{
			Energy:       -13.602,
			Multiplicity: 3,
			Frequencies:  []float64{1.05, 1.32, 1.61, 2.08, 2.43, 3.02, 3.31, 4.18, 5.12},
			Symmetry:     2,
			Moments:      [3]float64{291.4, 583.2, 781.9},
		},
		{
			Energy:       -13.452,
			Multiplicity: 5,
			Frequencies:  []float64{0.91, 1.24, 1.52, 1.93, 2.31, 2.84, 3.47, 4.02, 4.81},
			Symmetry:     6,
			Moments:      [3]float64{402.7, 402.7, 721.3},
		},
		{
			Energy:       -13.282,
			Multiplicity: 1,
			Frequencies:  []float64{0.72, 1.13, 1.44, 1.82, 2.51, 2.93, 3.62, 4.33, 5.38},
			Symmetry:     4,
			Moments:      [3]float64{254.6, 648.1, 852.0},
		},
	}
}

func fullModel() []partition.Contribution {
	return []partition.Contribution{
		partition.NewElectronic(partition.WithSpin()),
		partition.NewQuantumHarmonic(),
		partition.NewRotational(),
	}
}

func mustEngine(t testing.TB, set partition.Set, contribs []partition.Contribution, opts ...superposition.Option) *superposition.Engine {
	t.Helper()
	e, err := superposition.New(set, contribs, opts...)
	require.NoError(t, err)

	return e
}

func mustSpan(t testing.TB, lo, hi, step float64) partition.Grid {
	t.Helper()
	g, err := partition.Span(lo, hi, step)
	require.NoError(t, err)

	return g
}

func mustGrid(t testing.TB, temps ...float64) partition.Grid {
	t.Helper()
	g, err := partition.NewGrid(temps...)
	require.NoError(t, err)

	return g
}

func column(t testing.TB, m *matrix.Dense, j int) []float64 {
	t.Helper()
	c, err := m.Col(j)
	require.NoError(t, err)

	return c
}

// offset adds a per-temperature constant to every isomer's ln z and nothing
// to energy or capacity.
type offset struct {
	perTemperature func(temperature float64) float64
}

func (offset) Name() string { return "offset" }

func (o offset) Evaluate(set partition.Set, grid partition.Grid) (*partition.Table, error) {
	tbl, err := partition.NewTable(set.Len(), grid.Len())
	if err != nil {
		return nil, err
	}
	for i := 0; i < set.Len(); i++ {
		for j := 0; j < grid.Len(); j++ {
			if err = tbl.LogZ.Set(i, j, o.perTemperature(grid.At(j))); err != nil {
				return nil, err
			}
		}
	}

	return tbl, nil
}
