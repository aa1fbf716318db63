// Package superposition implements the superposition approximation: the
// partition function of a cluster with many local minima is the sum of
// independent per-isomer partition functions.
//
// An Engine owns an isomer set and an ordered list of partition.Contribution
// values. For any temperature grid it derives, from the combined table
// L(i,T) = ln Z_i, U(i,T) and c_i(T):
//
//   - occupation probabilities, a softmax of L over isomers shifted by the
//     per-temperature maximum so that no exponent can overflow;
//   - ensemble averages ⟨O⟩(T) = Σ_i P(i,T)·O(i,T);
//   - the heat capacity Cv/k, both the configurational part Var_P(U/kT) and
//     the full value Σ_i P·c_i + Var_P(U/kT) = d⟨E⟩/dT / k.
//
// At T=0 probabilities are the exact limit: isomers whose ground-state
// energy U(i,0) is within the degeneracy tolerance of the minimum share the
// mass according to their residual ln z; all others are unoccupied. Heat
// capacities are 0 there.
//
// Engines hold no per-call state and are safe for concurrent use.
//
// Example:
//
//	eng, err := superposition.New(set, []partition.Contribution{
//		partition.NewElectronic(partition.WithSpin()),
//		partition.NewQuantumHarmonic(),
//		partition.NewRotational(),
//	})
//	grid, _ := partition.Span(0, 1000, 1)
//	res, err := eng.Evaluate(grid)
//	p0, _ := res.Probability.Row(0) // occupation of isomer 0 vs T
package superposition
