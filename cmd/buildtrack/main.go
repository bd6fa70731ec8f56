// SPDX-License-Identifier: MIT

// Command buildtrack schedules construction tasks in dependency order and
// finds shortest delivery routes from a chosen warehouse.
//
// Usage:
//
//	buildtrack schedule --file tasks.csv
//	buildtrack route --file routes.csv --source Depot
//	buildtrack sources --file routes.csv
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
