// SPDX-License-Identifier: MIT
// Package matrix provides the dense adjacency storage used by the shortest
// path engine. Weights is a square, row-major matrix of float64 values
// stored in a flat slice for cache friendliness.
//
// Representation policy:
//   - Entry (i, j) is the weight of the directed edge i→j.
//   - A weight of 0 means "no edge", never a zero-cost edge.
//   - Every weight is finite and non-negative (checked on construction).
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Weights is an immutable n×n row-major adjacency matrix.
// n is the order, data holds n*n elements in row-major order.
type Weights struct {
	n    int       // number of rows == number of columns
	data []float64 // flat backing storage, len == n*n
}

// Edge is one directed, weighted edge addressed by vertex indices.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// NewWeights wraps a copy of data as an n×n adjacency matrix.
// Stage 1 (Validate): n > 0, len(data) == n*n, every weight finite and ≥ 0.
// Stage 2 (Prepare): copy data so later caller mutations cannot leak in.
// Stage 3 (Finalize): return the new *Weights.
// Complexity: O(n²) time and memory.
func NewWeights(n int, data []float64) (*Weights, error) {
	// Validate order
	if err := ValidateOrder(n); err != nil {
		return nil, fmt.Errorf("NewWeights: %w", err)
	}
	// Validate flat length
	if err := ValidateLen(data, n); err != nil {
		return nil, fmt.Errorf("NewWeights: %w", err)
	}
	// Validate every value
	if err := ValidateWeights(data, n); err != nil {
		return nil, fmt.Errorf("NewWeights: %w", err)
	}

	// Copy into private storage
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Weights{n: n, data: buf}, nil
}

// FromEdges builds an n×n matrix from an edge list.
// Later edges with the same (From, To) overwrite earlier ones; a weight of 0
// therefore removes an edge.
// Complexity: O(n² + E).
func FromEdges(n int, edges []Edge) (*Weights, error) {
	if err := ValidateOrder(n); err != nil {
		return nil, fmt.Errorf("FromEdges: %w", err)
	}

	data := make([]float64, n*n)
	var e Edge
	for _, e = range edges {
		if err := ValidateIndex(e.From, n); err != nil {
			return nil, fmt.Errorf("FromEdges: from: %w", err)
		}
		if err := ValidateIndex(e.To, n); err != nil {
			return nil, fmt.Errorf("FromEdges: to: %w", err)
		}
		if err := ValidateWeight(e.Weight); err != nil {
			return nil, fmt.Errorf("FromEdges(%d→%d)=%g: %w", e.From, e.To, e.Weight, err)
		}
		data[e.From*n+e.To] = e.Weight
	}

	return &Weights{n: n, data: data}, nil
}

// N returns the order of the matrix.
// Complexity: O(1).
func (w *Weights) N() int {
	return w.n
}

// At returns the weight of edge (row→col).
// Complexity: O(1).
func (w *Weights) At(row, col int) (float64, error) {
	if err := ValidateIndex(row, w.n); err != nil {
		return 0, fmt.Errorf("Weights.At(%d,%d): %w", row, col, err)
	}
	if err := ValidateIndex(col, w.n); err != nil {
		return 0, fmt.Errorf("Weights.At(%d,%d): %w", row, col, err)
	}

	return w.data[row*w.n+col], nil
}

// weight is the unchecked fast path used by in-package kernels and by At
// callers that already validated their indices.
func (w *Weights) weight(row, col int) float64 {
	return w.data[row*w.n+col]
}

// HasEdge reports whether an edge row→col exists (weight > 0).
// Out-of-range indices report false.
// Complexity: O(1).
func (w *Weights) HasEdge(row, col int) bool {
	if row < 0 || row >= w.n || col < 0 || col >= w.n {
		return false
	}

	return w.weight(row, col) > 0
}

// Row returns a copy of the outgoing weights of vertex row.
// Complexity: O(n).
func (w *Weights) Row(row int) ([]float64, error) {
	if err := ValidateIndex(row, w.n); err != nil {
		return nil, fmt.Errorf("Weights.Row(%d): %w", row, err)
	}

	out := make([]float64, w.n)
	copy(out, w.data[row*w.n:(row+1)*w.n])

	return out, nil
}

// Data returns a copy of the flat row-major buffer.
// Complexity: O(n²).
func (w *Weights) Data() []float64 {
	out := make([]float64, len(w.data))
	copy(out, w.data)

	return out
}

// Edges lists every edge (weight > 0) in row-major order.
// Complexity: O(n²).
func (w *Weights) Edges() []Edge {
	var (
		edges []Edge
		i, j  int
		v     float64
	)
	for i = 0; i < w.n; i++ {
		for j = 0; j < w.n; j++ {
			if v = w.weight(i, j); v > 0 {
				edges = append(edges, Edge{From: i, To: j, Weight: v})
			}
		}
	}

	return edges
}

// String implements fmt.Stringer for debugging: one bracketed row per line.
// Complexity: O(n²).
func (w *Weights) String() string {
	var (
		b    strings.Builder
		i, j int
	)
	for i = 0; i < w.n; i++ {
		b.WriteByte('[')
		for j = 0; j < w.n; j++ {
			b.WriteString(strconv.FormatFloat(w.weight(i, j), 'g', -1, 64))
			if j < w.n-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
