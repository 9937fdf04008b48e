package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathtrace/config"
	"github.com/katalvlaran/pathtrace/logging"
)

// app carries state shared by every sub-command after PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pathtrace",
		Short: "Traced Dijkstra shortest paths over dense graph documents",
		Long: `pathtrace runs Dijkstra's algorithm over a small directed graph given
as a node list and an adjacency matrix (0 = no edge), prints the state of
the frontier table after every finalized node and the shortest route to a
destination.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "path to the pathtrace YAML config")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level (debug|info|warn|error)")

	root.AddCommand(newRunCmd(a), newServeCmd(a))

	return root
}

// setup loads the config (optional when the default path is used) and
// builds the logger on the command's error stream.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	optional := !cmd.Flags().Changed("config")
	cfg, err := config.Load(a.configPath, optional)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.log.Debug("configuration loaded", slog.String("path", a.configPath), slog.Bool("optional", optional))

	return nil
}
