// Command isosimplify runs the harmonious isoline simplification engine
// against a YAML fixture and reports the resulting vertex count and
// quality diagnostics.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/cartocrow/isosimplify/loader"
	"github.com/cartocrow/isosimplify/simplifier"
)

func main() {
	path := flag.String("input", "", "path to a YAML isoline fixture")
	target := flag.Int("target", 0, "target vertex count")
	dyken := flag.Bool("dyken", false, "use the reduced-fidelity Dyken alternative instead of ladders")
	r := flag.Float64("r", 0.5, "hybrid cost weight for -dyken")
	debug := flag.Bool("debug", false, "print per-step progress and ladder dumps to stderr")
	flag.Parse()

	if *path == "" {
		log.Fatal("isosimplify: -input is required")
	}

	src := loader.FromYAML{Path: *path}
	inputs, err := src.LoadIsolines()
	if err != nil {
		log.Fatalf("isosimplify: loading %s: %v", *path, err)
	}

	s, err := simplifier.New(inputs, simplifier.WithDebug(*debug))
	if err != nil {
		log.Fatalf("isosimplify: initializing: %v", err)
	}

	before := s.VertexCount()

	if *dyken {
		simplifier.DykenSimplify(s, *target, *r)
	} else if _, err := s.Simplify(*target); err != nil {
		log.Fatalf("isosimplify: simplifying: %v", err)
	}

	avg, max := s.AverageMaxVertexAlignment()
	fmt.Printf("vertices: %d -> %d (target %d)\n", before, s.VertexCount(), *target)
	fmt.Printf("total symmetric difference: %.6g\n", s.TotalSymmetricDifference())
	fmt.Printf("vertex alignment: avg=%.6g max=%.6g\n", avg, max)
}
