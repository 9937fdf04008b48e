// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/matrix"
)

func TestFloydWarshall_Nil(t *testing.T) {
	t.Parallel()

	_, err := matrix.FloydWarshall(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestFloydWarshall_Directed checks a small directed graph where the
// two-hop route beats the direct edge and one vertex is unreachable.
func TestFloydWarshall_Directed(t *testing.T) {
	t.Parallel()

	// 0→1 (1), 1→2 (2), 0→2 (5), 3 isolated; self-loop on 0 must be ignored.
	w, err := matrix.NewWeights(4, []float64{
		9, 1, 5, 0,
		0, 0, 2, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})
	require.NoError(t, err)

	all, err := matrix.FloydWarshall(w)
	require.NoError(t, err)

	inf := math.Inf(1)
	assert.Equal(t, []float64{
		0, 1, 3, inf,
		inf, 0, 2, inf,
		inf, inf, 0, inf,
		inf, inf, inf, 0,
	}, all)

	row, err := matrix.DistancesFrom(w, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 3, inf}, row)

	_, err = matrix.DistancesFrom(w, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
