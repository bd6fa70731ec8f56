// SPDX-License-Identifier: MIT

package main

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/buildtrack/dijkstra"
	"github.com/katalvlaran/buildtrack/ingest"
	"github.com/katalvlaran/buildtrack/internal/ctxlog"
	"github.com/katalvlaran/buildtrack/route"
)

// destination is one reachable location in route output.
type destination struct {
	To       string   `json:"to"`
	Distance float64  `json:"distance"`
	Path     []string `json:"path"`
}

type routeReport struct {
	Source       string        `json:"source"`
	Destinations []destination `json:"destinations"`
	Unreachable  []string      `json:"unreachable"`
	OutOfRange   []string      `json:"out_of_range"`
}

func (a *app) routeCmd() *cobra.Command {
	var (
		file        string
		source      string
		maxDistance float64
		impassable  float64
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Print shortest distances and paths from a source location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if maxDistance < 0 {
				return fmt.Errorf("--max-distance must be non-negative, got %g", maxDistance)
			}
			if impassable < 0 {
				return fmt.Errorf("--impassable must be non-negative, got %g", impassable)
			}

			return a.runRoute(cmd.Context(), file, source, maxDistance, impassable)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Route file with From, To and Distance columns")
	cmd.Flags().StringVarP(&source, "source", "s", "", "Location to start from")
	cmd.Flags().Float64Var(&maxDistance, "max-distance", 0, "Ignore locations farther than this (0 = no limit)")
	cmd.Flags().Float64Var(&impassable, "impassable", 0, "Treat single routes at least this long as closed (0 = none)")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func (a *app) runRoute(ctx context.Context, file, source string, maxDistance, impassable float64) error {
	log := ctxlog.FromContext(ctx)

	rows, err := a.loadRoutes(file)
	if err != nil {
		return err
	}
	log.Debug("routes loaded", "file", file, "rows", len(rows))

	opts := []route.Option{
		route.WithLimits(route.Limits{MaxNodes: a.cfg.Limits.MaxNodes, MaxEdges: a.cfg.Limits.MaxEdges}),
		route.WithContext(ctx),
	}
	if maxDistance > 0 {
		opts = append(opts, route.WithDijkstraOptions(dijkstra.WithMaxDistance(maxDistance)))
	}
	if impassable > 0 {
		opts = append(opts, route.WithDijkstraOptions(dijkstra.WithInfEdgeThreshold(impassable)))
	}
	rep, err := route.Query(rows, source, opts...)
	if err != nil {
		return err
	}
	log.Info("routes computed", "source", source,
		"locations", rep.Stats.VertexCount, "routes", rep.Stats.EdgeCount,
		"reachable", len(rep.Paths), "unreachable", len(rep.Unreachable), "out_of_range", len(rep.OutOfRange))

	dests := sortedDestinations(rep.Paths)
	p := a.out()
	if a.wantJSON() {
		return p.JSON(routeReport{
			Source:       source,
			Destinations: dests,
			Unreachable:  nonNil(rep.Unreachable),
			OutOfRange:   nonNil(rep.OutOfRange),
		})
	}

	p.Header("📊 Shortest Distances from %s", source)
	t := newTable("Location", "Distance")
	for _, d := range dests {
		t.AddRow(d.To, formatDistance(d.Distance))
	}
	t.Render(p)
	p.Line("")
	p.Header("🗺️ Paths")
	for _, d := range dests {
		p.Line("%s ➡️ %s : [%s]", source, d.To, strings.Join(d.Path, ", "))
	}
	if len(rep.OutOfRange) > 0 {
		p.Warning("Cut off by distance limit or closed routes: %s", strings.Join(rep.OutOfRange, ", "))
	}
	if len(rep.Unreachable) > 0 {
		p.Warning("Unreachable from %s: %s", source, strings.Join(rep.Unreachable, ", "))
	}

	return nil
}

func (a *app) sourcesCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List the From locations of a route file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := a.loadRoutes(file)
			if err != nil {
				return err
			}
			srcs := route.Sources(rows)
			ctxlog.FromContext(cmd.Context()).Debug("sources listed", "file", file, "count", len(srcs))

			p := a.out()
			if a.wantJSON() {
				return p.JSON(nonNil(srcs))
			}
			for _, s := range srcs {
				p.Line("%s", s)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Route file with From, To and Distance columns")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (a *app) loadRoutes(file string) ([]route.RouteRow, error) {
	raw, err := readFile(file, ingest.ReadRoutes)
	if err != nil {
		return nil, err
	}

	return route.ParseRows(raw)
}

// sortedDestinations orders the result by distance, then label.
func sortedDestinations(res dijkstra.Result) []destination {
	out := make([]destination, 0, len(res))
	for to, p := range res {
		out = append(out, destination{To: to, Distance: p.Distance, Path: p.Nodes})
	}
	slices.SortFunc(out, func(x, y destination) int {
		if c := cmp.Compare(x.Distance, y.Distance); c != 0 {
			return c
		}

		return strings.Compare(x.To, y.To)
	})

	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

func formatDistance(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}
