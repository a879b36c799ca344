// Command tgenmarkov is a small developer tool for smoke-testing a
// GraphML Markov emission model: it loads a graph file, drives the
// engine for a fixed number of steps, and prints each
// observation/delay pair. It is not part of the core library's public
// contract (see engine/doc.go) — it exists only to give construction
// and Next an executable entry point for manual inspection (it does not
// call Reset or Serialize), the way the teacher
// repo's examples/ programs exercise its packages without being part
// of the library surface.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/tgenmarkov/engine"
)

func main() {
	var (
		path  = flag.String("graph", "", "path to a GraphML Markov model file")
		seed  = flag.Uint64("seed", 1, "32-bit PRNG seed")
		steps = flag.Int("steps", 20, "maximum number of Next calls to drive")
	)
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: tgenmarkov -graph <file.graphml> [-seed N] [-steps N]")
		os.Exit(2)
	}

	logger := engine.PrintfLogger(log.Printf)
	e, err := engine.NewFromPath(*path, uint32(*seed), *path, engine.WithLogger(logger))
	if err != nil {
		log.Fatalf("tgenmarkov: failed to construct engine: %v", err)
	}

	defer e.Release()

	for i := 0; i < *steps; i++ {
		obs, delay, err := e.Next()
		if err != nil {
			log.Fatalf("tgenmarkov: %v", err)
		}
		fmt.Printf("%4d  observation=%-4s delay_us=%d\n", i, obs, delay)
		if obs == engine.ObservationEnd {
			break
		}
	}
}
