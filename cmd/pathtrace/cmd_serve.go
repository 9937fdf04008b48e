package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathtrace/graphfile"
	"github.com/katalvlaran/pathtrace/server"
)

type serveFlags struct {
	addr  string
	graph string
}

func newServeCmd(a *app) *cobra.Command {
	f := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve shortest path traces over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.addr, "addr", "", "listen address (default: server.addr)")
	cmd.Flags().StringVar(&f.graph, "graph", "", "graph document served at /v1/graph, hot-reloaded (default: server.graph)")

	return cmd
}

func (a *app) serve(cmd *cobra.Command, f *serveFlags) error {
	addr := pick(f.addr, a.cfg.Server.Addr)
	graphPath := pick(f.graph, a.cfg.Server.Graph)

	if a.cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	opts := server.Options{Logger: a.log}
	if graphPath != "" {
		loader, err := newWatchedGraph(graphPath, a.log)
		if err != nil {
			return err
		}
		defer loader.stop()
		opts.Graph = loader
	} else {
		a.log.Info("no graph document configured, serving the built-in continent graph")
	}

	return server.New(opts).ListenAndServe(cmd.Context(), addr)
}

// watchedGraph couples a graphfile.Loader with its watcher's stop func.
type watchedGraph struct {
	*graphfile.Loader
	stop func()
}

func newWatchedGraph(path string, log *slog.Logger) (*watchedGraph, error) {
	l, err := graphfile.NewLoader(path, log)
	if err != nil {
		return nil, err
	}
	stop, err := l.Watch()
	if err != nil {
		return nil, err
	}
	log.Info("watching graph document", slog.String("path", path))

	return &watchedGraph{Loader: l, stop: stop}, nil
}
