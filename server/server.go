// Package server exposes the shortest path engine over HTTP.
//
// Routes:
//
//	POST /v1/shortest-path   body: graph document (JSON); ?destination= overrides
//	GET  /v1/graph           runs the configured graph document
//	GET  /healthz
//	GET  /metrics            Prometheus exposition
//
// Every request builds its own engine, so handlers share no mutable state.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/graphfile"
	"github.com/katalvlaran/pathtrace/metrics"
	ptrace "github.com/katalvlaran/pathtrace/trace"
)

// HeaderRunID carries the id assigned to each computation.
const HeaderRunID = "X-Run-ID"

var tracer = otel.Tracer("pathtrace.server")

// GraphSource supplies the document served by GET /v1/graph.
// *graphfile.Loader satisfies it.
type GraphSource interface {
	Document() *graphfile.Document
}

// StaticGraph is a GraphSource that never changes.
type StaticGraph struct{ Doc *graphfile.Document }

// Document implements GraphSource.
func (s StaticGraph) Document() *graphfile.Document { return s.Doc }

// Options configures a Server.
type Options struct {
	Logger   *slog.Logger
	Registry *prometheus.Registry // defaults to a fresh registry
	Graph    GraphSource          // defaults to graphfile.Default()
}

// Server wires the routes, metrics and logger together.
type Server struct {
	log      *slog.Logger
	registry *prometheus.Registry
	rec      *metrics.Recorder
	graph    GraphSource
	router   *gin.Engine
}

// New builds a Server and its router.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	if opts.Graph == nil {
		opts.Graph = StaticGraph{Doc: graphfile.Default()}
	}

	s := &Server{
		log:      opts.Logger,
		registry: opts.Registry,
		rec:      metrics.NewRecorder(opts.Registry),
		graph:    opts.Graph,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("pathtrace"))
	router.Use(s.requestLogger())

	router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	v1 := router.Group("/v1")
	v1.POST("/shortest-path", s.handleShortestPath)
	v1.GET("/graph", s.handleGraph)

	s.router = router

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)))
	}
}

func (s *Server) handleShortestPath(c *gin.Context) {
	var doc graphfile.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		s.fail(c, "", http.StatusBadRequest, fmt.Errorf("%w: %v", graphfile.ErrInvalidDocument, err))
		return
	}
	s.compute(c, &doc)
}

func (s *Server) handleGraph(c *gin.Context) {
	doc := s.graph.Document()
	if doc == nil {
		s.fail(c, "", http.StatusServiceUnavailable, errors.New("no graph loaded"))
		return
	}
	s.compute(c, doc)
}

// compute runs one engine for doc and answers with a trace report.
func (s *Server) compute(c *gin.Context, doc *graphfile.Document) {
	runID := uuid.NewString()
	c.Header(HeaderRunID, runID)

	dest := c.DefaultQuery("destination", doc.Destination)

	_, span := tracer.Start(c.Request.Context(), "pathtrace.compute",
		trace.WithAttributes(
			attribute.String("pathtrace.run_id", runID),
			attribute.String("pathtrace.source", doc.Source),
			attribute.String("pathtrace.destination", dest),
			attribute.Int("pathtrace.nodes", len(doc.Nodes)),
		),
	)
	defer span.End()

	opts := append(s.rec.EngineOptions(), dijkstra.WithLogger(s.log.With(slog.String("run_id", runID))))
	e, err := doc.Engine(opts...)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		s.fail(c, runID, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	e.Run()
	s.rec.ObserveRun(start)

	rep, err := ptrace.NewReport(e, dest)
	if dest != "" {
		s.rec.ObserveLookup(rep != nil && rep.Found, err)
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		status := http.StatusInternalServerError
		if errors.Is(err, dijkstra.ErrUnknownNode) {
			status = http.StatusNotFound
		}
		s.fail(c, runID, status, err)
		return
	}
	rep.RunID = runID
	rep.Graph = doc.Name
	span.SetAttributes(attribute.Bool("pathtrace.found", rep.Found))

	c.JSON(http.StatusOK, rep)
}

func (s *Server) fail(c *gin.Context, runID string, status int, err error) {
	s.log.Warn("request failed",
		slog.String("run_id", runID),
		slog.Int("status", status),
		slog.Any("error", err))
	body := gin.H{"error": err.Error()}
	if runID != "" {
		body["run_id"] = runID
	}
	c.AbortWithStatusJSON(status, body)
}
