package trace

import (
	"errors"

	"github.com/katalvlaran/pathtrace/dijkstra"
)

// Cell is the JSON form of a frontier entry. Distance is nil when the node
// has not been reached (JSON has no infinity).
type Cell struct {
	Node        string   `json:"node"`
	Distance    *float64 `json:"distance"`
	Predecessor string   `json:"predecessor,omitempty"`
}

// Step is the JSON form of a history record.
type Step struct {
	Visited string `json:"visited"`
	Table   []Cell `json:"table"`
}

// Report summarizes one run for machine consumers.
type Report struct {
	RunID       string    `json:"run_id,omitempty"`
	Graph       string    `json:"graph,omitempty"`
	Source      string    `json:"source"`
	Destination string    `json:"destination,omitempty"`
	Distances   []Cell    `json:"distances"`
	History     []Step    `json:"history"`
	Found       bool      `json:"found"`
	Path        []string  `json:"path,omitempty"`
	Weights     []float64 `json:"weights,omitempty"`
	Total       *float64  `json:"total,omitempty"`
}

// ErrNotRun is returned by NewReport for an engine that has not run yet.
var ErrNotRun = errors.New("trace: engine has not run")

func cells(nodes []string, table []dijkstra.Entry) []Cell {
	out := make([]Cell, len(table))
	for i, e := range table {
		out[i] = Cell{Node: nodes[i]}
		if e.Reachable() {
			d := e.Distance
			out[i].Distance = &d
		}
		if e.HasPredecessor() {
			out[i].Predecessor = nodes[e.Predecessor]
		}
	}

	return out
}

// NewReport builds a Report from a finished engine. When dest is empty only
// distances and history are reported. dijkstra errors for dest are returned
// unchanged.
func NewReport(e *dijkstra.Engine, dest string) (*Report, error) {
	if !e.Ran() {
		return nil, ErrNotRun
	}

	nodes := e.Nodes()
	rep := &Report{
		Source:      nodes[e.Source()],
		Destination: dest,
		Distances:   cells(nodes, e.Table()),
	}

	history := e.History()
	rep.History = make([]Step, len(history))
	for i, rec := range history {
		rep.History[i] = Step{Visited: nodes[rec.Node], Table: cells(nodes, rec.Table)}
	}

	if dest == "" {
		return rep, nil
	}

	path, ok, err := e.ConstructPath(dest)
	if err != nil {
		return nil, err
	}
	if ok {
		total := path.Total()
		rep.Found = true
		rep.Path = path.Names(nodes)
		rep.Weights = path.Weights
		rep.Total = &total
	}

	return rep, nil
}
