package superposition_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/occuprob/matrix"
	"github.com/katalvlaran/occuprob/partition"
	"github.com/katalvlaran/occuprob/physics"
	"github.com/katalvlaran/occuprob/superposition"
)

func TestProbability_NormalizedForEveryModel(t *testing.T) {
	grid := mustSpan(t, 0, 1000, 1)
	models := map[string][]partition.Contribution{
		"electronic":       {partition.NewElectronic()},
		"spin+quantum":     {partition.NewElectronic(partition.WithSpin()), partition.NewQuantumHarmonic()},
		"classical":        {partition.NewElectronic(), partition.NewClassicalHarmonic()},
		"full":             fullModel(),
		"classical+rotor":  {partition.NewElectronic(partition.WithSpin()), partition.NewClassicalHarmonic(), partition.NewRotational()},
		"rotational alone": {partition.NewRotational()},
	}
	for name, contribs := range models {
		t.Run(name, func(t *testing.T) {
			p, err := mustEngine(t, pt5(), contribs).Probability(grid)
			require.NoError(t, err)
			require.Equal(t, 3, p.Rows())
			require.Equal(t, grid.Len(), p.Cols())

			for j := 0; j < grid.Len(); j++ {
				col := column(t, p, j)
				assert.InDelta(t, 1.0, floats.Sum(col), 1e-9, "T=%g", grid.At(j))
				for _, v := range col {
					assert.GreaterOrEqual(t, v, 0.0)
					assert.LessOrEqual(t, v, 1.0)
				}
			}
		})
	}
}

func TestSingleIsomer(t *testing.T) {
	set := pt5()[:1]
	grid := mustSpan(t, 0, 600, 5)
	res, err := mustEngine(t, set, fullModel()).Evaluate(grid)
	require.NoError(t, err)

	tbl, err := mustEngine(t, set, fullModel()).Table(grid)
	require.NoError(t, err)
	for j := 0; j < grid.Len(); j++ {
		assert.Equal(t, 1.0, column(t, res.Probability, j)[0])
		assert.Equal(t, 0.0, res.ConfigurationalHeatCapacity[j])
		if grid.At(j) > 0 {
			// one state: the full value is the isomer's own capacity.
			c, err := tbl.Capacity.At(0, j)
			require.NoError(t, err)
			assert.InDelta(t, c, res.HeatCapacity[j], 1e-12)
		}
	}
}

func TestIdenticalIsomersShareEqually(t *testing.T) {
	iso := pt5()[1]
	set := partition.Set{iso, iso}
	grid := mustGrid(t, 0, 1, 50, 300, 1000)

	for _, contribs := range [][]partition.Contribution{fullModel(), {partition.NewElectronic(), partition.NewClassicalHarmonic()}} {
		p, err := mustEngine(t, set, contribs).Probability(grid)
		require.NoError(t, err)
		for j := 0; j < grid.Len(); j++ {
			col := column(t, p, j)
			assert.Equal(t, 0.5, col[0])
			assert.Equal(t, 0.5, col[1])
		}
	}
}

func TestProbability_ShiftInvariance(t *testing.T) {
	grid := mustGrid(t, 0, 10, 100, 300, 700)
	base, err := mustEngine(t, pt5(), fullModel()).Probability(grid)
	require.NoError(t, err)

	shifts := []offset{
		{perTemperature: func(float64) float64 { return 1e4 }},
		{perTemperature: func(float64) float64 { return -250 }},
		{perTemperature: func(temperature float64) float64 { return 3*temperature - 400 }},
	}
	for _, s := range shifts {
		shifted, err := mustEngine(t, pt5(), append(fullModel(), s)).Probability(grid)
		require.NoError(t, err)
		ok, err := matrix.AllClose(base, shifted, 1e-9, 1e-12)
		require.NoError(t, err)
		assert.True(t, ok, "base:\n%vshifted:\n%v", base, shifted)
	}
}

func TestProbability_NoOverflowAtLowTemperature(t *testing.T) {
	// eV gaps at 1 K: exp(±E/kT) alone would be far outside float64.
	set := partition.Set{{Energy: -50}, {Energy: -48}, {Energy: 10}}
	grid := mustGrid(t, 0.5, 1, 2)
	p, err := mustEngine(t, set, []partition.Contribution{partition.NewElectronic()}).Probability(grid)
	require.NoError(t, err)
	for j := 0; j < grid.Len(); j++ {
		assert.Equal(t, []float64{1, 0, 0}, column(t, p, j))
	}
}

func TestPt5_WorkedExample(t *testing.T) {
	grid := mustSpan(t, 0, 1000, 1)
	res, err := mustEngine(t, pt5(), fullModel()).Evaluate(grid)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 0, 0}, column(t, res.Probability, 0))
	assert.Equal(t, 0.0, res.HeatCapacity[0])
	assert.Equal(t, 0.0, res.ConfigurationalHeatCapacity[0])
	for j := 1; j < grid.Len(); j++ {
		require.Greater(t, res.HeatCapacity[j], 0.0, "T=%g", grid.At(j))
		require.GreaterOrEqual(t, res.ConfigurationalHeatCapacity[j], 0.0)
		require.LessOrEqual(t, res.ConfigurationalHeatCapacity[j], res.HeatCapacity[j])
	}

	// The ground state dominates at room temperature and loses weight as
	// the excited isomers become accessible.
	p300 := column(t, res.Probability, 300)
	p1000 := column(t, res.Probability, 1000)
	assert.Greater(t, p300[0], 0.5)
	assert.Less(t, p1000[0], p300[0])
	assert.Greater(t, p1000[1], p300[1])
	assert.Greater(t, p1000[2], p300[2])
	assert.Greater(t, res.ConfigurationalHeatCapacity[1000], 0.1)
}

func TestHeatCapacity_MatchesFiniteDifference(t *testing.T) {
	eng := mustEngine(t, pt5(), fullModel())

	derivativeError := func(temperature, h float64) float64 {
		grid := mustGrid(t, temperature-h, temperature, temperature+h)
		res, err := eng.Evaluate(grid)
		require.NoError(t, err)
		numeric := (res.Energy[2] - res.Energy[0]) / (2 * h) / physics.Boltzmann

		return math.Abs(numeric-res.HeatCapacity[1]) / res.HeatCapacity[1]
	}

	for _, temperature := range []float64{150, 400, 800} {
		fine := derivativeError(temperature, 0.01)
		coarse := derivativeError(temperature, 20)
		assert.Less(t, fine, 1e-5, "T=%g", temperature)
		assert.LessOrEqual(t, fine, coarse, "T=%g", temperature)
	}
}

func TestHeatCapacity_ElectronicOnlyCoincides(t *testing.T) {
	grid := mustSpan(t, 0, 2000, 50)
	res, err := mustEngine(t, pt5(), []partition.Contribution{partition.NewElectronic(partition.WithSpin())}).Evaluate(grid)
	require.NoError(t, err)
	assert.Equal(t, res.ConfigurationalHeatCapacity, res.HeatCapacity)
	assert.Greater(t, res.HeatCapacity[grid.Len()-1], 0.0)
}

func TestHeatCapacity_TwoLevelSchottky(t *testing.T) {
	// Two non-degenerate levels split by Δ: Cv/k = x² eˣ / (1+eˣ)², x = Δ/kT.
	const gap = 0.05
	set := partition.Set{{Energy: 0}, {Energy: gap}}
	grid := mustGrid(t, 100, 250, 580)
	cv, err := mustEngine(t, set, []partition.Contribution{partition.NewElectronic()}).ConfigurationalHeatCapacity(grid)
	require.NoError(t, err)

	for j := 0; j < grid.Len(); j++ {
		x := gap / physics.ThermalEnergy(grid.At(j))
		want := x * x * math.Exp(x) / ((1 + math.Exp(x)) * (1 + math.Exp(x)))
		assert.InDelta(t, want, cv[j], 1e-12)
	}
}

func TestZeroTemperature_Degeneracy(t *testing.T) {
	set := partition.Set{
		{Energy: -1, Multiplicity: 1},
		{Energy: -1, Multiplicity: 3},
		{Energy: -1 + 1e-6, Multiplicity: 1},
	}
	grid := mustGrid(t, 0)
	spin := []partition.Contribution{partition.NewElectronic(partition.WithSpin())}

	p, err := mustEngine(t, set, spin).Probability(grid)
	require.NoError(t, err)
	got := column(t, p, 0)
	assert.InDelta(t, 0.25, got[0], 1e-14)
	assert.InDelta(t, 0.75, got[1], 1e-14)
	assert.Equal(t, 0.0, got[2])

	p, err = mustEngine(t, set, spin, superposition.WithDegeneracyTolerance(1e-5)).Probability(grid)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.2, 0.6, 0.2}, column(t, p, 0), 1e-14)
}

func TestZeroTemperature_ZeroPointEnergyDecidesGroundState(t *testing.T) {
	// Equal electronic energies: the softer isomer has the lower E + ZPE.
	set := partition.Set{
		{Energy: 0, Frequencies: []float64{5, 6}},
		{Energy: 0, Frequencies: []float64{2, 3}},
	}
	p, err := mustEngine(t, set, []partition.Contribution{partition.NewElectronic(), partition.NewQuantumHarmonic()}).Probability(mustGrid(t, 0))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, column(t, p, 0))
}

func TestEnsembleAverage(t *testing.T) {
	set := partition.Set{{Energy: 0}, {Energy: 0}, {Energy: 1}}
	grid := mustGrid(t, 0, 300)
	eng := mustEngine(t, set, []partition.Contribution{partition.NewElectronic()})

	// +Inf on the unoccupied isomer must not poison the average.
	obs, err := matrix.NewDenseFromRows([][]float64{{2, 2}, {4, 4}, {math.Inf(1), 0}}, matrix.WithNoValidation())
	require.NoError(t, err)
	avg, err := eng.EnsembleAverage(grid, obs)
	require.NoError(t, err)
	assert.Equal(t, 3.0, avg[0])
	assert.InDelta(t, 3.0, avg[1], 1e-12)

	bad, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = eng.EnsembleAverage(grid, bad)
	require.ErrorIs(t, err, superposition.ErrObservableShape)
	_, err = eng.EnsembleAverage(grid, nil)
	require.ErrorIs(t, err, superposition.ErrObservableShape)
}

func TestEnsembleEnergy(t *testing.T) {
	grid := mustGrid(t, 0, 300, 900)
	eng := mustEngine(t, pt5(), fullModel())
	energy, err := eng.EnsembleEnergy(grid)
	require.NoError(t, err)

	tbl, err := eng.Table(grid)
	require.NoError(t, err)
	want, err := eng.EnsembleAverage(grid, tbl.Energy)
	require.NoError(t, err)
	assert.Equal(t, want, energy)

	// T=0: electronic ground state plus its zero-point energy.
	var zpe float64
	for _, nu := range pt5()[0].Frequencies {
		zpe += 0.5 * physics.QuantumEnergy(nu)
	}
	assert.InDelta(t, pt5()[0].Energy+zpe, energy[0], 1e-12)
	assert.Less(t, energy[1], energy[2])
}

func TestNew_Errors(t *testing.T) {
	_, err := superposition.New(nil, fullModel())
	require.ErrorIs(t, err, partition.ErrEmptySet)

	_, err = superposition.New(pt5(), nil)
	require.ErrorIs(t, err, partition.ErrNoContributions)

	_, err = superposition.New(pt5(), []partition.Contribution{nil})
	require.ErrorIs(t, err, partition.ErrNilContribution)

	assert.Panics(t, func() { superposition.WithDegeneracyTolerance(-1) })
	assert.Panics(t, func() { superposition.WithDegeneracyTolerance(math.NaN()) })
}

func TestEngine_Accessors(t *testing.T) {
	eng := mustEngine(t, pt5(), fullModel())
	assert.Equal(t, 3, eng.Len())
	assert.Equal(t, "electronic+spin+quantum-harmonic+rotational", eng.Name())
	assert.Len(t, eng.Contributions(), 3)
}

func TestEngine_PropagatesContributionErrors(t *testing.T) {
	set := pt5()
	set[2].Symmetry = 0
	_, err := mustEngine(t, set, fullModel()).Evaluate(mustGrid(t, 0, 1))
	require.ErrorIs(t, err, partition.ErrInvalidSymmetry)
}

func TestEngine_ConcurrentUse(t *testing.T) {
	eng := mustEngine(t, pt5(), fullModel())
	grid := mustSpan(t, 0, 500, 10)
	want, err := eng.Evaluate(grid)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*superposition.Result, 8)
	errs := make([]error, 8)
	for k := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[k], errs[k] = eng.Evaluate(grid)
		}()
	}
	wg.Wait()
	for k := range results {
		require.NoError(t, errs[k])
		assert.Equal(t, want.HeatCapacity, results[k].HeatCapacity)
		assert.Equal(t, want.Probability.String(), results[k].Probability.String())
	}
}
