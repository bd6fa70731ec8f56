// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/buildtrack/ingest"
	"github.com/katalvlaran/buildtrack/internal/ctxlog"
	"github.com/katalvlaran/buildtrack/scheduler"
	"github.com/katalvlaran/buildtrack/topo"
)

func (a *app) scheduleCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print a dependency-respecting execution order for a task file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSchedule(cmd.Context(), file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Task file with Task and DependsOn columns")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func (a *app) runSchedule(ctx context.Context, file string) error {
	log := ctxlog.FromContext(ctx)

	rows, err := readFile(file, ingest.ReadTasks)
	if err != nil {
		return err
	}
	log.Debug("tasks loaded", "file", file, "rows", len(rows))

	plan, err := scheduler.Schedule(rows,
		scheduler.WithLimits(scheduler.Limits{MaxNodes: a.cfg.Limits.MaxNodes, MaxEdges: a.cfg.Limits.MaxEdges}),
		scheduler.WithContext(ctx),
	)
	var cycle *topo.CycleDetectedError
	if errors.As(err, &cycle) {
		p := a.errOut()
		p.Error("Dependency cycle found! Please fix the task list.")
		p.Line("  cycle:     %s", strings.Join(cycle.Cycle, " → "))
		p.Line("  unordered: %s", strings.Join(cycle.Remaining, ", "))
	}
	if err != nil {
		return err
	}
	log.Info("schedule computed", "tasks", len(plan.Order), "dependencies", len(plan.Dependencies))

	p := a.out()
	if a.wantJSON() {
		return p.JSON(plan)
	}

	p.Header("🔗 Dependencies")
	if len(plan.Dependencies) == 0 {
		p.Line("  (none)")
	}
	for _, d := range plan.Dependencies {
		p.Line("  %s → %s", d.From, d.To)
	}
	p.Line("")
	p.Success("Recommended Task Execution Order:")
	for i, task := range plan.Order {
		p.Line("  %d. %s", i+1, task)
	}

	return nil
}
