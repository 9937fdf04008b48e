// Package pathtrace computes single-source shortest paths over small dense
// weighted digraphs and keeps a step-by-step trace of how the answer was
// reached.
//
// What is in the box?
//
//	• matrix     – dense row-major weight matrix, validators, Floyd–Warshall oracle
//	• dijkstra   – the traced engine: distance table, per-step history, path rebuild
//	• trace      – text tables (lipgloss) and JSON reports built from an engine
//	• graphfile  – YAML/JSON graph documents, validation, hot-reloading loader
//	• config     – pathtrace.yaml loading and validation
//	• logging    – slog handler construction (text or json)
//	• metrics    – Prometheus counters and histograms fed by engine hooks
//	• server     – gin HTTP API serving traces, /metrics and /healthz
//	• cmd/pathtrace – the `pathtrace run` and `pathtrace serve` CLI
//
// Quick start:
//
//	e, err := dijkstra.New(
//		[]string{"A", "B", "C"},
//		[]float64{
//			0, 1, 4,
//			0, 0, 2,
//			0, 0, 0,
//		},
//		"A",
//	)
//	if err != nil { ... }
//	e.Run()
//	path, ok, err := e.ConstructPath("C") // [A B C], weights [0 1 2]
//
// Conventions:
//
//   - A weight of 0 means "no edge"; negative weights are rejected.
//   - Unreachable nodes keep distance +Inf and predecessor dijkstra.NoPredecessor.
//   - Ties on the frontier are broken by the lowest node index.
//   - Path.Weights[0] is always 0, so the weights sum to the destination distance.
//
// See the package docs of dijkstra and trace for the full API.
package pathtrace
