// SPDX-License-Identifier: MIT

package topo

import "github.com/katalvlaran/buildtrack/core"

// findCycle recovers one cycle from the residual graph left by Kahn's pass.
//
// Every vertex with residual in-degree > 0 has at least one predecessor that
// was not emitted either, so walking predecessors from any leftover vertex
// must eventually revisit a vertex. The revisited stretch, reversed, is a
// forward cycle. It is rotated to start at its earliest-inserted member so the
// report is stable for identical input.
func findCycle(g *core.Graph, remaining []string, inDegree map[string]int) []string {
	if len(remaining) == 0 {
		return nil
	}

	pos := make(map[string]int, len(remaining))
	path := make([]string, 0, len(remaining)+1)
	cur := remaining[0]
	for {
		if at, seen := pos[cur]; seen {
			return canonical(reverse(path[at:]), remaining)
		}
		pos[cur] = len(path)
		path = append(path, cur)

		next := ""
		for p := range g.Predecessors(cur) {
			if inDegree[p] > 0 {
				next = p
				break
			}
		}
		if next == "" {
			// Unreachable for a residual graph produced by Sort.
			return nil
		}
		cur = next
	}
}

// canonical rotates cycle (open form) to begin at the member that appears
// first in order, and closes it by repeating that member at the end.
func canonical(cycle, order []string) []string {
	rank := make(map[string]int, len(order))
	for i, v := range order {
		rank[v] = i
	}
	start := 0
	for i, v := range cycle {
		if rank[v] < rank[cycle[start]] {
			start = i
		}
	}
	out := make([]string, 0, len(cycle)+1)
	out = append(out, cycle[start:]...)
	out = append(out, cycle[:start]...)

	return append(out, out[0])
}

func reverse(s []string) []string {
	out := make([]string, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}
