// Package metrics exposes Prometheus collectors for shortest path runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/pathtrace/dijkstra"
)

// Lookup results used as the "result" label of PathLookups.
const (
	ResultFound  = "found"
	ResultNoPath = "no_path"
	ResultError  = "error"
)

// Recorder groups the collectors of one registry.
type Recorder struct {
	Runs           prometheus.Counter
	NodesFinalized prometheus.Counter
	Relaxations    prometheus.Counter
	PathLookups    *prometheus.CounterVec
	RunDuration    prometheus.Histogram
}

// NewRecorder registers the collectors on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		Runs: f.NewCounter(prometheus.CounterOpts{
			Name: "pathtrace_runs_total",
			Help: "Total number of completed engine runs.",
		}),
		NodesFinalized: f.NewCounter(prometheus.CounterOpts{
			Name: "pathtrace_nodes_finalized_total",
			Help: "Total number of nodes finalized across all runs.",
		}),
		Relaxations: f.NewCounter(prometheus.CounterOpts{
			Name: "pathtrace_relaxations_total",
			Help: "Total number of successful edge relaxations.",
		}),
		PathLookups: f.NewCounterVec(prometheus.CounterOpts{
			Name: "pathtrace_path_lookups_total",
			Help: "Path reconstructions, labelled by result.",
		}, []string{"result"}),
		RunDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "pathtrace_run_duration_seconds",
			Help:    "Wall time of a full engine run.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}
}

// EngineOptions returns the hooks that feed the node and relaxation counters.
func (r *Recorder) EngineOptions() []dijkstra.Option {
	return []dijkstra.Option{
		dijkstra.WithOnFinalize(func(dijkstra.HistoryRecord) { r.NodesFinalized.Inc() }),
		dijkstra.WithOnRelax(func(int, int, float64) { r.Relaxations.Inc() }),
	}
}

// ObserveRun records one finished run that started at start.
func (r *Recorder) ObserveRun(start time.Time) {
	r.Runs.Inc()
	r.RunDuration.Observe(time.Since(start).Seconds())
}

// ObserveLookup records the outcome of a ConstructPath call.
func (r *Recorder) ObserveLookup(ok bool, err error) {
	switch {
	case err != nil:
		r.PathLookups.WithLabelValues(ResultError).Inc()
	case ok:
		r.PathLookups.WithLabelValues(ResultFound).Inc()
	default:
		r.PathLookups.WithLabelValues(ResultNoPath).Inc()
	}
}
