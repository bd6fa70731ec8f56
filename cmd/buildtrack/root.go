// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/buildtrack/config"
	"github.com/katalvlaran/buildtrack/ingest"
	"github.com/katalvlaran/buildtrack/internal/ctxlog"
)

// app holds global flag values and the configuration loaded before any
// subcommand runs.
type app struct {
	stdout, stderr io.Writer

	configPath string
	noColor    bool
	jsonOut    bool

	cfg *config.Config
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "buildtrack",
		Short: "Construction task scheduler and delivery route optimizer",
		Long: `buildtrack reads task and route tables from CSV, YAML or JSON files.

  schedule  orders tasks so every dependency runs first
  route     finds the shortest distance and path to every reachable location
  sources   lists the locations a route can start from

Settings come from --config and BUILDTRACK_* environment variables,
e.g. BUILDTRACK_LIMITS_MAX_NODES=500.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file path (yaml, json or toml)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "Output results as JSON")

	root.AddCommand(a.scheduleCmd(), a.routeCmd(), a.sourcesCmd())

	return root
}

// setup loads configuration and attaches the logger to the command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, warnings, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := config.ParseLevel(cfg.Log.Level)
	logger := ctxlog.New(a.stderr, level, cfg.Log.Format).With("run", uuid.NewString(), "cmd", cmd.Name())
	for _, w := range warnings {
		logger.Warn("config", "warning", w)
	}
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

	return nil
}

func (a *app) out() *printer {
	return &printer{w: a.stdout, noColor: a.noColor || !a.cfg.Output.Color}
}

func (a *app) errOut() *printer {
	return &printer{w: a.stderr, noColor: a.noColor || !a.cfg.Output.Color}
}

func (a *app) wantJSON() bool {
	return a.jsonOut || a.cfg.Output.JSON
}

// readFile opens path, infers its format from the extension and decodes it with read.
func readFile[T any](path string, read func(io.Reader, ingest.Format) (T, error)) (T, error) {
	var zero T

	format, err := ingest.FormatFromPath(path)
	if err != nil {
		return zero, err
	}
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := read(f, format)
	if err != nil {
		return zero, fmt.Errorf("reading %s: %w", path, err)
	}

	return rows, nil
}
