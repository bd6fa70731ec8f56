// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/buildtrack/core"
)

// ExampleGraph_Neighbors builds a tiny weighted route network and walks the
// outgoing edges of one vertex.
func ExampleGraph_Neighbors() {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddEdge("Depot", "SiteA", 4)
	_ = g.AddEdge("Depot", "SiteB", 9)
	_ = g.AddEdge("Depot", "SiteA", 3) // replaces the first weight

	for to, w := range g.Neighbors("Depot") {
		fmt.Printf("%s %.0f\n", to, w)
	}
	fmt.Println("recorded:", len(g.Edges()), "distinct:", g.EdgeCount())

	// Output:
	// SiteA 3
	// SiteB 9
	// recorded: 3 distinct: 2
}
