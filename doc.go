// SPDX-License-Identifier: MIT

// Package buildtrack schedules construction tasks and plans delivery routes
// over small in-memory directed graphs.
//
// Two questions are answered, each from a fresh graph built per call:
//
//   - In what order can these tasks run so that every dependency comes first?
//     (Kahn's algorithm, deterministic ties, cycles reported with a concrete loop)
//   - How far is every location from this warehouse, and along which path?
//     (Dijkstra with a binary heap, non-negative distances only)
//
// Layout:
//
//	core/       Graph, Vertex, Edge; insertion-ordered, RW-locked primitives
//	topo/       topological sort with cycle recovery
//	dijkstra/   single-source shortest paths, distance caps, impassable edges
//	bfs/        hop-count reachability walks
//	scheduler/  task rows to execution order
//	route/      route rows to shortest paths, plus coverage of omitted locations
//	ingest/     CSV, YAML and JSON row readers
//	config/     viper-backed settings (file + BUILDTRACK_* env)
//	cmd/buildtrack  cobra CLI: schedule, route, sources
//
// Quick example, three tasks:
//
//	Task        DependsOn
//	Foundation
//	Framing     Foundation
//	Roofing     Framing, Foundation
//
// schedules as [Foundation Framing Roofing].
package buildtrack
