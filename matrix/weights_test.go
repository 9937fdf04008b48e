// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Weights construction,
// accessors and validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/matrix"
)

// TestNewWeights_Errors covers every rejection path of the constructor.
func TestNewWeights_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		n       int
		data    []float64
		wantErr error
	}{
		{"zero order", 0, nil, matrix.ErrBadShape},
		{"negative order", -2, nil, matrix.ErrBadShape},
		{"short buffer", 2, []float64{0, 1, 2}, matrix.ErrDimensionMismatch},
		{"long buffer", 1, []float64{0, 1}, matrix.ErrDimensionMismatch},
		{"negative weight", 2, []float64{0, -1, 0, 0}, matrix.ErrNegativeWeight},
		{"NaN weight", 2, []float64{0, math.NaN(), 0, 0}, matrix.ErrInvalidWeight},
		{"+Inf weight", 2, []float64{0, 0, math.Inf(1), 0}, matrix.ErrInvalidWeight},
		{"-Inf weight", 2, []float64{0, 0, math.Inf(-1), 0}, matrix.ErrInvalidWeight},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := matrix.NewWeights(tc.n, tc.data)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestNewWeights_CopiesInput ensures later caller mutations do not leak in.
func TestNewWeights_CopiesInput(t *testing.T) {
	t.Parallel()

	data := []float64{0, 3, 0, 0}
	w, err := matrix.NewWeights(2, data)
	require.NoError(t, err)

	data[1] = 99
	got, err := w.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	out := w.Data()
	out[1] = 42
	got, _ = w.At(0, 1)
	assert.Equal(t, 3.0, got, "Data must return a copy")
}

// TestWeights_Accessors checks At, HasEdge, Row, Edges and String.
func TestWeights_Accessors(t *testing.T) {
	t.Parallel()

	w, err := matrix.NewWeights(3, []float64{
		0, 2, 0,
		0, 0, 1.5,
		7, 0, 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, w.N())

	v, err := w.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.5, v)

	_, err = w.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = w.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	assert.True(t, w.HasEdge(0, 1))
	assert.False(t, w.HasEdge(1, 0), "zero weight means no edge")
	assert.False(t, w.HasEdge(5, 5))

	row, err := w.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 0, 0}, row)
	_, err = w.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	assert.Equal(t, []matrix.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 1.5},
		{From: 2, To: 0, Weight: 7},
	}, w.Edges())

	assert.Equal(t, "[0, 2, 0]\n[0, 0, 1.5]\n[7, 0, 0]\n", w.String())
}

// TestFromEdges builds a matrix from an edge list, including overwrite and
// removal semantics and index validation.
func TestFromEdges(t *testing.T) {
	t.Parallel()

	w, err := matrix.FromEdges(3, []matrix.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 1, To: 2, Weight: 5},
		{From: 0, To: 1, Weight: 6}, // overwrite
		{From: 1, To: 2, Weight: 0}, // remove
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 6, 0, 0, 0, 0, 0, 0, 0}, w.Data())

	_, err = matrix.FromEdges(2, []matrix.Edge{{From: 0, To: 2, Weight: 1}})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.FromEdges(2, []matrix.Edge{{From: 0, To: 1, Weight: -3}})
	require.ErrorIs(t, err, matrix.ErrNegativeWeight)

	_, err = matrix.FromEdges(0, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
