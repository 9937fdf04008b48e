package trace_test

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/trace"
)

var nodes = []string{"A", "B", "C"}

func newEngine(t *testing.T, source string) *dijkstra.Engine {
	t.Helper()
	// A→B 2, B→C 3.5; nothing leaves C.
	e, err := dijkstra.New(nodes, []float64{
		0, 2, 0,
		0, 0, 3.5,
		0, 0, 0,
	}, source)
	require.NoError(t, err)

	return e
}

func TestFormatDistance(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "inf", trace.FormatDistance(math.Inf(1)))
	assert.Equal(t, "0", trace.FormatDistance(0))
	assert.Equal(t, "24", trace.FormatDistance(24))
	assert.Equal(t, "3.5", trace.FormatDistance(3.5))
}

func TestHistoryTable(t *testing.T) {
	t.Parallel()

	e := newEngine(t, "A")
	rows := trace.HistoryTable(nodes, e.Run())

	assert.Equal(t, [][]string{
		{"A", "0", "2_A", "inf"},
		{"B", "0", "2_A", "5.5_B"},
		{"C", "0", "2_A", "5.5_B"},
	}, rows)
	assert.Equal(t, []string{"V", "A", "B", "C"}, trace.Headers(nodes))
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	e := newEngine(t, "A")
	history := e.Run()

	for _, style := range []trace.Style{{Color: false}, {Color: true}} {
		out := trace.RenderTable(nodes, history, style)
		for _, want := range []string{"V", "2_A", "5.5_B", "inf"} {
			assert.Contains(t, out, want)
		}
		// header + 3 rows, each separated by a border row
		assert.GreaterOrEqual(t, strings.Count(out, "\n"), 8)
	}
}

func TestPathLines(t *testing.T) {
	t.Parallel()

	e := newEngine(t, "A")
	e.Run()

	path, ok, err := e.ConstructPath("C")
	require.NoError(t, err)
	require.True(t, ok)

	sum, route := trace.PathLines(nodes, path)
	assert.Equal(t, "2 + 3.5 = 5.5", sum)
	assert.Equal(t, "A -> B -> C", route)

	self, _, _ := e.ConstructPath("A")
	sum, route = trace.PathLines(nodes, self)
	assert.Equal(t, "0 = 0", sum)
	assert.Equal(t, "A", route)

	assert.Equal(t, "There exists no path from C to A", trace.NoPathLine("C", "A"))
}

func TestNewReport(t *testing.T) {
	t.Parallel()

	e := newEngine(t, "A")
	_, err := trace.NewReport(e, "C")
	require.ErrorIs(t, err, trace.ErrNotRun)

	e.Run()
	rep, err := trace.NewReport(e, "C")
	require.NoError(t, err)

	assert.True(t, rep.Found)
	assert.Equal(t, "A", rep.Source)
	assert.Equal(t, []string{"A", "B", "C"}, rep.Path)
	assert.Equal(t, []float64{0, 2, 3.5}, rep.Weights)
	require.NotNil(t, rep.Total)
	assert.Equal(t, 5.5, *rep.Total)
	require.Len(t, rep.History, 3)
	assert.Equal(t, "B", rep.History[1].Visited)

	_, err = trace.NewReport(e, "Z")
	require.ErrorIs(t, err, dijkstra.ErrUnknownNode)
}

func TestNewReport_NoPathJSON(t *testing.T) {
	t.Parallel()

	e := newEngine(t, "C")
	e.Run()

	rep, err := trace.NewReport(e, "A")
	require.NoError(t, err)
	assert.False(t, rep.Found)
	assert.Nil(t, rep.Total)

	raw, err := json.Marshal(rep)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, false, decoded["found"])
	assert.NotContains(t, decoded, "path")

	dist := decoded["distances"].([]any)
	require.Len(t, dist, 3)
	assert.Nil(t, dist[0].(map[string]any)["distance"], "unreachable encodes as null")
	assert.Equal(t, 0.0, dist[2].(map[string]any)["distance"])
}
