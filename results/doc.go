// Package results serialises engine output: whitespace separated .dat tables
// with temperature in the first column, and line plots rendered with
// gonum/plot.
package results
