// Package dijkstra provides a traceable implementation of Dijkstra's
// shortest-path algorithm on small, dense, directed graphs with
// non-negative edge weights.
//
// Overview:
//
//   - The graph is an ordered list of N distinct node names plus an N×N
//     row-major weight matrix; a weight of 0 means "no edge".
//   - New validates the input; Run finalizes every reachable node and
//     returns one HistoryRecord per finalized node; ConstructPath rebuilds
//     the route to any destination from the predecessor links.
//   - The history is meant for step-by-step trace tables (see package trace).
//
// When to use:
//
//   - Teaching, debugging and reporting scenarios where every intermediate
//     state of the frontier table matters.
//   - Graphs of tens of nodes; the selection step is a linear scan.
//
// Determinism:
//
//   - Ties in selection go to the lowest node index.
//   - Relaxation is strict, so the first predecessor found for an
//     equal-cost route is kept.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidSource: source not in the node list (New).
//   - ErrUnknownNode:   destination not in the node list (ConstructPath, Distance, Index).
//   - ErrNotRun:        ConstructPath called before Run.
//   - ErrEmptyGraph, ErrDuplicateNode and the matrix sentinels: invalid input to New.
//
// An unreachable destination is not an error: ConstructPath returns ok == false.
//
// API reference:
//
//	func New(nodes []string, weights []float64, source string, opts ...Option) (*Engine, error)
//	func (e *Engine) SelectFrontierMinimum() int
//	func (e *Engine) Run() []HistoryRecord
//	func (e *Engine) ConstructPath(dest string) (Path, bool, error)
//
// Example:
//
//	e, err := dijkstra.New(nodes, weights, "Monaire")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	history := e.Run()
//	path, ok, err := e.ConstructPath("Asura")
package dijkstra
