package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/graphfile"
	"github.com/katalvlaran/pathtrace/matrix"
	"github.com/katalvlaran/pathtrace/trace"
)

// errVerifyMismatch is returned by --verify when the engine disagrees with
// the all-pairs oracle.
var errVerifyMismatch = errors.New("verify: engine distances differ from Floyd–Warshall")

// verifyTolerance absorbs float summation order differences between the
// engine and the oracle for fractional weights.
const verifyTolerance = 1e-9

type runFlags struct {
	source string
	dest   string
	format string
	color  string
	verify bool
}

func newRunCmd(a *app) *cobra.Command {
	f := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run [graph.yaml]",
		Short: "Run Dijkstra on a graph document and print the trace",
		Long: `Run Dijkstra on a graph document and print the history table followed by
the shortest route to the destination. Without a file the built-in
eight-node continent graph is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, f)
		},
	}

	cmd.Flags().StringVarP(&f.source, "source", "s", "", "source node (default: document source)")
	cmd.Flags().StringVarP(&f.dest, "dest", "d", "", "destination node (default: document destination)")
	cmd.Flags().StringVar(&f.format, "format", "", "output format: table|json (default: output.format)")
	cmd.Flags().StringVar(&f.color, "color", "", "colour mode: auto|always|never (default: output.color)")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "cross-check distances with Floyd–Warshall")

	return cmd
}

func (a *app) run(cmd *cobra.Command, args []string, f *runFlags) error {
	// 1) Load the document
	doc := graphfile.Default()
	if len(args) == 1 {
		var err error
		if doc, err = graphfile.Load(args[0]); err != nil {
			return err
		}
	}
	if f.source != "" {
		doc.Source = f.source
	}
	if f.dest != "" {
		doc.Destination = f.dest
	}
	format := pick(f.format, a.cfg.Output.Format)
	colorMode := pick(f.color, a.cfg.Output.Color)

	// 2) Build and run the engine
	runID := uuid.NewString()
	log := a.log.With(slog.String("run_id", runID))
	e, err := doc.Engine(dijkstra.WithLogger(log))
	if err != nil {
		return err
	}
	start := time.Now()
	history := e.Run()
	log.Info("run complete",
		slog.String("graph", doc.Name),
		slog.String("source", doc.Source),
		slog.Int("finalized", len(history)),
		slog.Duration("elapsed", time.Since(start)))

	// 3) Optional oracle check
	if f.verify {
		if err = verify(e); err != nil {
			return err
		}
		log.Info("verify passed")
	}

	// 4) Render
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		rep, err := trace.NewReport(e, doc.Destination)
		if err != nil {
			return err
		}
		rep.RunID = runID
		rep.Graph = doc.Name
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "table":
		return renderText(out, e, history, doc.Destination, wantColor(colorMode, out))
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func renderText(out io.Writer, e *dijkstra.Engine, history []dijkstra.HistoryRecord, dest string, color bool) error {
	nodes := e.Nodes()
	if _, err := fmt.Fprintln(out, trace.RenderTable(nodes, history, trace.Style{Color: color})); err != nil {
		return err
	}
	if dest == "" {
		return nil
	}

	path, ok, err := e.ConstructPath(dest)
	if err != nil {
		return err
	}
	src := nodes[e.Source()]
	if !ok {
		_, err = fmt.Fprintln(out, trace.NoPathLine(src, dest))
		return err
	}

	sum, route := trace.PathLines(nodes, path)
	_, err = fmt.Fprintf(out, "Shortest path from %s to %s:\n%s\n%s\n", src, dest, sum, route)

	return err
}

// verify compares the engine's final distances with an independent
// all-pairs computation.
func verify(e *dijkstra.Engine) error {
	want, err := matrix.DistancesFrom(e.Weights(), e.Source())
	if err != nil {
		return err
	}
	nodes := e.Nodes()
	for i, entry := range e.Table() {
		if entry.Distance != want[i] && math.Abs(entry.Distance-want[i]) > verifyTolerance*math.Max(1, math.Abs(want[i])) {
			return fmt.Errorf("%w: %s: engine=%s oracle=%s", errVerifyMismatch, nodes[i],
				trace.FormatDistance(entry.Distance), trace.FormatDistance(want[i]))
		}
	}

	return nil
}

// wantColor resolves auto|always|never; auto colours only terminals.
func wantColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}

	return fallback
}
