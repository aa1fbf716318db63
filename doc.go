// Package occuprob estimates which isomers of an atomic cluster are occupied
// at a given temperature, and the resulting heat capacity, in the
// superposition approximation.
//
// 🚀 What is occuprob?
//
//	A small, dependency-light toolkit that brings together:
//		• Partition-function contributions: electronic (with or without spin),
//		  quantum and classical harmonic vibrations, rigid rotation
//		• A log-space combiner with a strict finite-value policy
//		• The superposition engine: occupation probabilities, ensemble
//		  averages and the canonical heat capacity
//		• An Extended XYZ loader, .dat/plot writers and a CLI
//
// ✨ Why occuprob?
//
//   - Overflow-free: softmax shifted per temperature, exact T→0 limits
//   - Pluggable: a new physical model is one interface implementation
//   - Deterministic: fixed summation order, no hidden global state
//
// Packages:
//
//	physics/       physical constants and unit helpers (eV, K, THz, amu·Å²)
//	matrix/        isomer × temperature tables with a finite-only policy
//	partition/     Isomer, Grid, Contribution, the models and Combine
//	superposition/ Engine: Probability, EnsembleAverage, HeatCapacity, Evaluate
//	extxyz/        Extended XYZ isomer reader, moments of inertia
//	results/       .dat tables and gonum/plot figures
//	config/        YAML run configuration
//	cmd/occuprob   command-line interface
//
// Quick example:
//
//	occuprob -s -q -r --max_temp 1000 --plot examples/pt5/pt5.xyz
//
// writes examples/pt5/pt5_p.dat (probabilities) and pt5_c.dat (Cv/k).
//
//	go get github.com/katalvlaran/occuprob
package occuprob
