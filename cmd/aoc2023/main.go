// Command aoc2023 runs the Advent of Code 2023 solutions against their
// samples and the real puzzle inputs.
package main

import (
	"context"
	_ "embed"
	"os"
	"os/signal"
)

//go:embed solver.go
var source []byte

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
