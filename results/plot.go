// SPDX-License-Identifier: MIT

package results

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/occuprob/partition"
)

// Formats lists the file extensions Plot accepts.
var Formats = []string{"eps", "jpg", "jpeg", "pdf", "png", "svg", "tif", "tiff"}

// PlotOptions describes a figure. Width and Height are in inches; zero
// values fall back to 8×6. Names labels the series in the legend; series
// without a name are left out of it.
type PlotOptions struct {
	Title  string
	XLabel string
	YLabel string
	Width  float64
	Height float64
	Names  []string
}

// ProbabilityOptions returns the labels used for occupation-probability plots.
func ProbabilityOptions(isomers int) PlotOptions {
	names := make([]string, isomers)
	for i := range names {
		names[i] = fmt.Sprintf("isomer %d", i)
	}

	return PlotOptions{XLabel: "Temperature (K)", YLabel: "Occupation probability", Names: names}
}

// HeatCapacityOptions returns the labels used for heat-capacity plots.
func HeatCapacityOptions() PlotOptions {
	return PlotOptions{XLabel: "Temperature (K)", YLabel: "Heat capacity (k_B)"}
}

// Plot draws every series against the grid temperatures and saves the
// figure to path; the format follows the extension.
// Errors: ErrNoColumns, ErrLength, ErrUnsupportedFormat, or a rendering error.
func Plot(path string, grid partition.Grid, series [][]float64, opts PlotOptions) error {
	if len(series) == 0 {
		return ErrNoColumns
	}
	if !supported(path) {
		return fmt.Errorf("%q: %w", filepath.Ext(path), ErrUnsupportedFormat)
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Add(plotter.NewGrid())

	for k, s := range series {
		if len(s) != grid.Len() {
			return fmt.Errorf("series %d: %w", k, ErrLength)
		}
		pts := make(plotter.XYs, len(s))
		for j, v := range s {
			pts[j].X = grid.At(j)
			pts[j].Y = v
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("series %d: %w", k, err)
		}
		line.Color = plotutil.Color(k)
		line.Dashes = plotutil.Dashes(k / len(plotutil.DefaultColors))
		p.Add(line)
		if k < len(opts.Names) && opts.Names[k] != "" {
			p.Legend.Add(opts.Names[k], line)
		}
	}
	p.Legend.Top = true

	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = 8
	}
	if h <= 0 {
		h = 6
	}

	return p.Save(vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch, path)
}

func supported(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, f := range Formats {
		if ext == f {
			return true
		}
	}

	return false
}
