// Package dijkstra implements Dijkstra's single-source shortest path
// algorithm over a small, static, directed graph stored as a dense
// row-major adjacency matrix, recording a snapshot of the frontier table
// every time a node is finalized.
//
// Complexity:
//
//   - Time:  O(N²)
//   - Each of the N selections is a linear scan over the frontier table.
//   - Each finalized node relaxes one matrix row of N entries.
//   - Space: O(N²)
//   - O(N²) for the adjacency matrix.
//   - O(N) per history record, up to N records.
//
// Notes on implementation choices:
//
//   - No priority queue: for tens of nodes the linear scan is simpler and
//     its tie-break (lowest index wins) is part of the observable contract.
//   - Relaxation is strict (<), so equal-cost routes never replace an
//     existing predecessor.
//   - Unreachable nodes are never selected and never enter the history.
package dijkstra

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/pathtrace/matrix"
)

// Engine owns one graph and the mutable state of a single Dijkstra run.
// An Engine is not safe for concurrent use.
type Engine struct {
	nodes   []string       // ordered node identifiers
	index   map[string]int // identifier → position in nodes
	weights *matrix.Weights
	source  int
	options Options

	table   []Entry         // frontier table, mutated in place
	visited []bool          // finalized flags, never reset
	history []HistoryRecord // one record per finalized node
	ran     bool            // Run completed at least once
}

// New validates its inputs and returns an Engine ready to Run.
//
// Preconditions and validation (in order):
//  1. nodes must be non-empty (ErrEmptyGraph).
//  2. nodes must be distinct (ErrDuplicateNode).
//  3. weights must hold len(nodes)² finite, non-negative values
//     (matrix.ErrDimensionMismatch, matrix.ErrInvalidWeight, matrix.ErrNegativeWeight).
//  4. source must be one of nodes (ErrInvalidSource).
//
// Complexity: O(N²).
func New(nodes []string, weights []float64, source string, opts ...Option) (*Engine, error) {
	// 1) Build options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate and index the node list
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}
	index := make(map[string]int, len(nodes))
	var (
		i    int
		name string
	)
	for i, name = range nodes {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, name)
		}
		index[name] = i
	}

	// 3) Validate the adjacency matrix
	w, err := matrix.NewWeights(len(nodes), weights)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: %w", err)
	}

	// 4) Resolve the source
	src, ok := index[source]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSource, source)
	}

	e := &Engine{
		nodes:   append([]string(nil), nodes...),
		index:   index,
		weights: w,
		source:  src,
		options: cfg,
	}
	e.init()

	return e, nil
}

// init sets every distance to +Inf except the source (0), clears all
// predecessors and visited flags.
func (e *Engine) init() {
	n := len(e.nodes)
	e.table = make([]Entry, n)
	e.visited = make([]bool, n)
	for i := range e.table {
		e.table[i] = Entry{Distance: math.Inf(1), Predecessor: NoPredecessor}
	}
	e.table[e.source].Distance = 0
}

// SelectFrontierMinimum returns the index of the unvisited node with the
// smallest finite distance, preferring the lowest index on ties. It returns
// NoNode once every node is visited or only unreachable nodes remain.
// Complexity: O(N).
func (e *Engine) SelectFrontierMinimum() int {
	minIdx := NoNode
	for i, done := range e.visited {
		if done || !e.table[i].Reachable() {
			continue
		}
		// strict < keeps the first (lowest) index among equals
		if minIdx == NoNode || e.table[i].Distance < e.table[minIdx].Distance {
			minIdx = i
		}
	}

	return minIdx
}

// Run executes the algorithm to completion and returns the history records
// produced by this call, one per finalized node in finalization order.
//
// Loop termination: SelectFrontierMinimum returns NoNode.
// Calling Run again on a converged engine appends nothing and returns an
// empty slice.
//
// Complexity: O(N²).
func (e *Engine) Run() []HistoryRecord {
	start := len(e.history)
	for u := e.SelectFrontierMinimum(); u != NoNode; u = e.SelectFrontierMinimum() {
		// 1) Finalize u; its distance can no longer improve.
		e.visited[u] = true
		e.options.Logger.Debug("finalize",
			slog.String("node", e.nodes[u]),
			slog.Float64("distance", e.table[u].Distance))

		// 2) Relax every outgoing edge of u.
		e.relax(u)

		// 3) Snapshot the frontier table.
		rec := HistoryRecord{Node: u, Table: e.Table()}
		e.history = append(e.history, rec)
		e.options.OnFinalize(cloneRecord(rec))
	}
	e.ran = true

	return cloneHistory(e.history[start:])
}

// relax scans row u of the matrix and improves every neighbor v for which
// the route through u is strictly shorter than the recorded one.
// Assumes e.table[u].Distance is final.
func (e *Engine) relax(u int) {
	var (
		v       int
		w, cand float64
		base    = e.table[u].Distance
		n       = len(e.nodes)
	)
	for v = 0; v < n; v++ {
		if v == u || !e.weights.HasEdge(u, v) {
			continue
		}
		w, _ = e.weights.At(u, v) // indices validated by HasEdge
		cand = base + w
		if cand >= e.table[v].Distance {
			continue
		}
		e.table[v] = Entry{Distance: cand, Predecessor: u}
		e.options.Logger.Debug("relax",
			slog.String("from", e.nodes[u]),
			slog.String("to", e.nodes[v]),
			slog.Float64("distance", cand))
		e.options.OnRelax(u, v, cand)
	}
}

// Nodes returns a copy of the ordered node identifiers.
func (e *Engine) Nodes() []string {
	return append([]string(nil), e.nodes...)
}

// Source returns the index of the source node.
func (e *Engine) Source() int { return e.source }

// Index returns the position of name in the node list.
func (e *Engine) Index(name string) (int, error) {
	i, ok := e.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}

	return i, nil
}

// Weights returns the validated adjacency matrix.
func (e *Engine) Weights() *matrix.Weights { return e.weights }

// Ran reports whether Run has completed.
func (e *Engine) Ran() bool { return e.ran }

// Table returns a copy of the current frontier table.
func (e *Engine) Table() []Entry {
	return append([]Entry(nil), e.table...)
}

// History returns a copy of every record produced so far.
func (e *Engine) History() []HistoryRecord {
	return cloneHistory(e.history)
}

// Distance returns the recorded distance of name (+Inf when unreachable).
func (e *Engine) Distance(name string) (float64, error) {
	i, err := e.Index(name)
	if err != nil {
		return 0, err
	}

	return e.table[i].Distance, nil
}

func cloneRecord(rec HistoryRecord) HistoryRecord {
	return HistoryRecord{Node: rec.Node, Table: append([]Entry(nil), rec.Table...)}
}

func cloneHistory(h []HistoryRecord) []HistoryRecord {
	out := make([]HistoryRecord, len(h))
	for i := range h {
		out[i] = cloneRecord(h[i])
	}

	return out
}
