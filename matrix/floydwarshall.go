// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense all-pairs shortest distances (Floyd–Warshall) over *Weights.
//   - Used as an independent oracle to cross-check single-source results.
//
// Contract:
//   - Input follows the adjacency policy (0 = no edge, weights ≥ 0).
//   - Output is a fresh n×n row-major slice: diagonal 0, +Inf = unreachable.

package matrix

import (
	"fmt"
	"math"
)

// initDistances converts adjacency (0 / w) into a distance buffer:
//
//	diag = 0; off-diagonal 0 -> +Inf; non-zero -> unchanged.
//
// Complexity: O(n²).
func initDistances(w *Weights) []float64 {
	n := w.n
	d := make([]float64, n*n)

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				// Self-loops never shorten a path to self.
				d[i*n+j] = 0
				continue
			}
			if v = w.weight(i, j); v == 0 {
				d[i*n+j] = math.Inf(1)
			} else {
				d[i*n+j] = v
			}
		}
	}

	return d
}

// FloydWarshall returns the all-pairs shortest distance matrix of w as a
// flat row-major slice; entry i*n+j is the distance i→j.
//
// Loop order is fixed (k → i → j) and relaxation is strict, so results are
// deterministic.
//
// Complexity: Time O(n³), Space O(n²).
func FloydWarshall(w *Weights) ([]float64, error) {
	if w == nil {
		return nil, fmt.Errorf("FloydWarshall: %w", ErrNilMatrix)
	}

	data := initDistances(w)
	n := w.n

	var (
		k, i, j      int     // loop indices
		baseK, baseI int     // row offsets for k and i
		ik, kj, cand float64 // d[i,k], d[k,j] and the candidate via k
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) { // k cannot reach j
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return data, nil
}

// DistancesFrom returns row src of the all-pairs matrix: the shortest
// distance from src to every vertex (+Inf when unreachable).
// Complexity: O(n³).
func DistancesFrom(w *Weights, src int) ([]float64, error) {
	all, err := FloydWarshall(w)
	if err != nil {
		return nil, err
	}
	if err = ValidateIndex(src, w.n); err != nil {
		return nil, fmt.Errorf("DistancesFrom: %w", err)
	}

	out := make([]float64, w.n)
	copy(out, all[src*w.n:(src+1)*w.n])

	return out, nil
}
