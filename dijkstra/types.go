// Package dijkstra defines the core types, sentinel errors and functional
// options of the dense-matrix shortest path engine.
//
// Errors (sentinel):
//
//	– ErrInvalidSource  if the source is empty or not in the node list.
//	– ErrUnknownNode    if a destination/lookup name is not in the node list.
//	– ErrNotRun         if a path is requested before Run has completed.
//	– ErrEmptyGraph     if the node list is empty.
//	– ErrDuplicateNode  if the node list repeats an identifier.
//
// Matrix validation failures are returned wrapped and match the sentinels
// of package matrix (ErrDimensionMismatch, ErrNegativeWeight, ErrInvalidWeight).
package dijkstra

import (
	"errors"
	"log/slog"
	"math"
)

// Sentinel errors returned by the engine.
var (
	// ErrInvalidSource indicates that the source node is empty or absent
	// from the node list.
	ErrInvalidSource = errors.New("dijkstra: source node not found")

	// ErrUnknownNode indicates that a destination is absent from the node list.
	ErrUnknownNode = errors.New("dijkstra: unknown node")

	// ErrNotRun indicates that path reconstruction was requested before Run.
	ErrNotRun = errors.New("dijkstra: Run has not been called")

	// ErrEmptyGraph indicates an empty node list.
	ErrEmptyGraph = errors.New("dijkstra: graph has no nodes")

	// ErrDuplicateNode indicates that a node identifier occurs twice.
	ErrDuplicateNode = errors.New("dijkstra: duplicate node")
)

const (
	// NoPredecessor marks a frontier entry without a predecessor: the source
	// and every node not reached yet.
	NoPredecessor = -1

	// NoNode is returned by SelectFrontierMinimum when no unvisited node
	// has a finite distance.
	NoNode = -1
)

// Entry is one row of the frontier table: the best known distance from the
// source and the index of the predecessor on that route.
type Entry struct {
	Distance    float64 // +Inf until reached
	Predecessor int     // NoPredecessor until relaxed
}

// Reachable reports whether the entry holds a finite distance.
func (e Entry) Reachable() bool { return !math.IsInf(e.Distance, 1) }

// HasPredecessor reports whether the entry was relaxed at least once.
func (e Entry) HasPredecessor() bool { return e.Predecessor != NoPredecessor }

// HistoryRecord is the snapshot taken when a node is finalized.
// Table is a private copy; mutating it never affects the engine.
type HistoryRecord struct {
	Node  int     // index of the node just finalized
	Table []Entry // frontier table right after relaxing Node's edges
}

// Path is the reconstructed route from the source to a destination.
//
// Nodes and Weights have the same length. Weights[i] for i ≥ 1 is the weight
// of the edge Nodes[i-1]→Nodes[i]; Weights[0] is a leading placeholder owned
// by the source and is always 0, so the sum of Weights equals the distance
// of the destination.
type Path struct {
	Nodes   []int
	Weights []float64
}

// Total returns the sum of the weight sequence.
func (p Path) Total() float64 {
	var sum float64
	for _, w := range p.Weights {
		sum += w
	}

	return sum
}

// Hops returns the number of edges on the path.
func (p Path) Hops() int {
	if len(p.Nodes) == 0 {
		return 0
	}

	return len(p.Nodes) - 1
}

// Names translates the node indices into identifiers using nodes.
func (p Path) Names(nodes []string) []string {
	out := make([]string, len(p.Nodes))
	for i, idx := range p.Nodes {
		out[i] = nodes[idx]
	}

	return out
}

// Options configures optional behavior of an Engine.
//
// Logger     – receives debug records for selections and relaxations.
// OnFinalize – called with each HistoryRecord right after it is appended.
// OnRelax    – called after every successful relaxation from→to.
type Options struct {
	Logger     *slog.Logger
	OnFinalize func(rec HistoryRecord)
	OnRelax    func(from, to int, dist float64)
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns Options with a discarding logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:     slog.New(slog.DiscardHandler),
		OnFinalize: func(HistoryRecord) {},
		OnRelax:    func(int, int, float64) {},
	}
}

// WithLogger routes engine debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnFinalize registers a hook invoked for every finalized node.
func WithOnFinalize(fn func(rec HistoryRecord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// WithOnRelax registers a hook invoked after every successful relaxation.
func WithOnRelax(fn func(from, to int, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
