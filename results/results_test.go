package results_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/occuprob/matrix"
	"github.com/katalvlaran/occuprob/partition"
	"github.com/katalvlaran/occuprob/results"
)

func grid3(t *testing.T) partition.Grid {
	t.Helper()
	g, err := partition.NewGrid(0, 1, 2)
	require.NoError(t, err)

	return g
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := results.WriteTable(&buf, grid3(t), []float64{1, 0.5, 0.25}, []float64{0, 0.5, 0.75})
	require.NoError(t, err)

	want := "0.00000000e+00 1.00000000e+00 0.00000000e+00\n" +
		"1.00000000e+00 5.00000000e-01 5.00000000e-01\n" +
		"2.00000000e+00 2.50000000e-01 7.50000000e-01\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTable_Errors(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, results.WriteTable(&buf, grid3(t)), results.ErrNoColumns)
	require.ErrorIs(t, results.WriteTable(&buf, grid3(t), []float64{1, 2}), results.ErrLength)
	assert.Zero(t, buf.Len())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out_c.dat")
	require.NoError(t, results.WriteFile(path, grid3(t), []float64{0, 1.5, 3}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0.00000000e+00 0.00000000e+00\n1.00000000e+00 1.50000000e+00\n2.00000000e+00 3.00000000e+00\n", string(got))

	err = results.WriteFile(filepath.Join(t.TempDir(), "missing", "x.dat"), grid3(t), []float64{0, 1, 2})
	require.Error(t, err)
}

func TestRows(t *testing.T) {
	p, err := matrix.NewDenseFromRows([][]float64{{1, 0.5, 0.25}, {0, 0.5, 0.75}})
	require.NoError(t, err)
	cols, err := results.Rows(p)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0.5, 0.25}, {0, 0.5, 0.75}}, cols)

	_, err = results.Rows(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestPlot(t *testing.T) {
	dir := t.TempDir()
	series := [][]float64{{1, 0.5, 0.25}, {0, 0.5, 0.75}}

	for _, name := range []string{"p.png", "p.svg", "p.pdf"} {
		path := filepath.Join(dir, name)
		require.NoError(t, results.Plot(path, grid3(t), series, results.ProbabilityOptions(2)))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	opts := results.HeatCapacityOptions()
	opts.Width, opts.Height = 4, 3
	require.NoError(t, results.Plot(filepath.Join(dir, "c.png"), grid3(t), [][]float64{{0, 1, 2}}, opts))
}

func TestPlot_Errors(t *testing.T) {
	dir := t.TempDir()
	err := results.Plot(filepath.Join(dir, "p.bmp"), grid3(t), [][]float64{{0, 1, 2}}, results.PlotOptions{})
	require.ErrorIs(t, err, results.ErrUnsupportedFormat)

	err = results.Plot(filepath.Join(dir, "p.png"), grid3(t), nil, results.PlotOptions{})
	require.ErrorIs(t, err, results.ErrNoColumns)

	err = results.Plot(filepath.Join(dir, "p.png"), grid3(t), [][]float64{{0, 1}}, results.PlotOptions{})
	require.ErrorIs(t, err, results.ErrLength)
}
