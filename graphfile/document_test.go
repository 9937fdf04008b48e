package graphfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/graphfile"
	"github.com/katalvlaran/pathtrace/matrix"
)

const edgeDoc = `
name: triangle
nodes: [A, B, C]
source: A
destination: C
edges:
  - {from: A, to: B, weight: 1}
  - {from: B, to: C, weight: 2}
  - {from: A, to: C, weight: 5}
`

func TestParse_EdgeList(t *testing.T) {
	t.Parallel()

	d, err := graphfile.Parse([]byte(edgeDoc))
	require.NoError(t, err)
	assert.Equal(t, "triangle", d.Name)

	w, err := d.Weights()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 5, 0, 0, 2, 0, 0, 0}, w)

	e, err := d.Engine()
	require.NoError(t, err)
	e.Run()
	dist, err := e.Distance("C")
	require.NoError(t, err)
	assert.Equal(t, 3.0, dist)
}

func TestParse_JSONMatrix(t *testing.T) {
	t.Parallel()

	d, err := graphfile.Parse([]byte(`{"nodes":["X","Y"],"source":"X","matrix":[[0,7],[0,0]]}`))
	require.NoError(t, err)

	w, err := d.Weights()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 7, 0, 0}, w)
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"no nodes":          "source: A\nmatrix: [[0]]\n",
		"duplicate nodes":   "nodes: [A, A]\nsource: A\nmatrix: [[0,0],[0,0]]\n",
		"missing source":    "nodes: [A]\nmatrix: [[0]]\n",
		"both forms":        "nodes: [A]\nsource: A\nmatrix: [[0]]\nedges: []\n",
		"neither form":      "nodes: [A]\nsource: A\n",
		"ragged matrix":     "nodes: [A, B]\nsource: A\nmatrix: [[0, 1], [0]]\n",
		"short matrix":      "nodes: [A, B]\nsource: A\nmatrix: [[0, 1]]\n",
		"unknown edge node": "nodes: [A]\nsource: A\nedges: [{from: A, to: Q, weight: 1}]\n",
		"negative edge":     "nodes: [A, B]\nsource: A\nedges: [{from: A, to: B, weight: -1}]\n",
		"broken yaml":       "nodes: [A\n",
	}

	for name, doc := range tests {
		_, err := graphfile.Parse([]byte(doc))
		require.ErrorIs(t, err, graphfile.ErrInvalidDocument, name)
	}
}

func TestEngine_UnknownSource(t *testing.T) {
	t.Parallel()

	d, err := graphfile.Parse([]byte("nodes: [A]\nsource: B\nmatrix: [[0]]\n"))
	require.NoError(t, err)

	_, err = d.Engine()
	require.ErrorIs(t, err, dijkstra.ErrInvalidSource)
}

func TestEngine_NegativeMatrixWeight(t *testing.T) {
	t.Parallel()

	d, err := graphfile.Parse([]byte("nodes: [A, B]\nsource: A\nmatrix: [[0, -2], [0, 0]]\n"))
	require.NoError(t, err)

	_, err = d.Engine()
	require.ErrorIs(t, err, matrix.ErrNegativeWeight)
}

func TestDefault_Continent(t *testing.T) {
	t.Parallel()

	d := graphfile.Default()
	require.NoError(t, d.Validate())

	e, err := d.Engine()
	require.NoError(t, err)
	e.Run()

	path, ok, err := e.ConstructPath(d.Destination)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 24.0, path.Total())
}

func TestMarshal_RoundTripThroughFile(t *testing.T) {
	t.Parallel()

	raw, err := graphfile.Marshal(graphfile.Default())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "continent.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	d, err := graphfile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, graphfile.Default(), d)

	_, err = graphfile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestEngine_Options(t *testing.T) {
	t.Parallel()

	var count int
	e, err := graphfile.Default().Engine(dijkstra.WithOnFinalize(func(dijkstra.HistoryRecord) { count++ }))
	require.NoError(t, err)
	e.Run()
	assert.Equal(t, 8, count)
}
