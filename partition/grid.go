// SPDX-License-Identifier: MIT

package partition

import (
	"fmt"
	"math"
)

// Grid is an immutable, strictly increasing sequence of temperatures in K.
// Zero is allowed; negative or non-finite values are not.
type Grid struct {
	temps []float64
}

// NewGrid validates and copies temps into a Grid.
// Errors: ErrEmptyGrid, ErrNegativeTemperature, ErrGridOrder.
func NewGrid(temps ...float64) (Grid, error) {
	if len(temps) == 0 {
		return Grid{}, ErrEmptyGrid
	}
	out := make([]float64, len(temps))
	for j, t := range temps {
		if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
			return Grid{}, fmt.Errorf("grid[%d]=%g: %w", j, t, ErrNegativeTemperature)
		}
		if j > 0 && t <= temps[j-1] {
			return Grid{}, fmt.Errorf("grid[%d]=%g: %w", j, t, ErrGridOrder)
		}
		out[j] = t
	}

	return Grid{temps: out}, nil
}

// MaxGridPoints bounds the number of temperatures Span will allocate.
const MaxGridPoints = 1 << 24

// Span builds lo, lo+step, ... up to hi inclusive (within a tiny relative
// slack so that hi is kept despite floating-point accumulation).
// Span(0, 500, 1) yields the 501 integer temperatures 0..500.
// Errors: ErrInvalidStep, ErrNegativeTemperature, ErrGridOrder, and
// ErrGridTooLarge beyond MaxGridPoints points.
func Span(lo, hi, step float64) (Grid, error) {
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		return Grid{}, ErrInvalidStep
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo < 0 {
		return Grid{}, ErrNegativeTemperature
	}
	if hi < lo {
		return Grid{}, fmt.Errorf("max %g < min %g: %w", hi, lo, ErrGridOrder)
	}
	span := math.Floor((hi-lo)/step + 1e-9)
	if math.IsInf(span, 0) || span >= MaxGridPoints {
		return Grid{}, fmt.Errorf("(%g-%g)/%g points: %w", hi, lo, step, ErrGridTooLarge)
	}
	n := int(span) + 1
	temps := make([]float64, n)
	for k := range temps {
		temps[k] = lo + float64(k)*step
	}

	return NewGrid(temps...)
}

// Len returns the number of temperature points.
func (g Grid) Len() int { return len(g.temps) }

// At returns the j-th temperature. It panics on out-of-range j like a slice index.
func (g Grid) At(j int) float64 { return g.temps[j] }

// Values returns a copy of the temperatures.
func (g Grid) Values() []float64 {
	out := make([]float64, len(g.temps))
	copy(out, g.temps)

	return out
}

// Validate reports ErrEmptyGrid for the zero Grid.
func (g Grid) Validate() error {
	if len(g.temps) == 0 {
		return ErrEmptyGrid
	}

	return nil
}
