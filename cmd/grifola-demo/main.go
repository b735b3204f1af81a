// Command grifola-demo drives the two worked example consumers
// against a shared engine, printing the work counters before and after
// an incremental update so the re-use (or lack of it) is visible. It
// is a host of the core library, not part of its scope: a thin
// benchmark-harness style driver, the role lvlath's examples/ files
// play for that library's algorithms.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/katalvlaran/grifola/dcg"
	"github.com/katalvlaran/grifola/examples/listunique"
	"github.com/katalvlaran/grifola/examples/quickhull"
)

func main() {
	scenario := flag.String("scenario", "listunique", "listunique | quickhull")
	flag.Parse()

	switch *scenario {
	case "listunique":
		runListUnique()
	case "quickhull":
		runQuickHull()
	default:
		log.Fatalf("grifola-demo: unknown scenario %q", *scenario)
	}
}

func runListUnique() {
	eng := dcg.New()
	l := listunique.NewList(eng, []int{3, 1, 4, 1, 5, 9, 2, 6})
	mfn := listunique.Unique(eng, l)

	out, err := listunique.Compute(eng, mfn)
	if err != nil {
		log.Fatalf("grifola-demo: %v", err)
	}
	fmt.Printf("unique: %v (evaluations=%d)\n", out, eng.Stats.Evaluations)

	if err := l.Set(eng, l.Len()-1, 7); err != nil {
		log.Fatalf("grifola-demo: set: %v", err)
	}
	before := eng.Stats.Evaluations
	out, err = listunique.Compute(eng, mfn)
	if err != nil {
		log.Fatalf("grifola-demo: %v", err)
	}
	fmt.Printf("unique after tail edit: %v (new evaluations=%d)\n", out, eng.Stats.Evaluations-before)
}

func runQuickHull() {
	eng := dcg.New()
	c := quickhull.NewCloud(eng, []quickhull.Point{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
		{X: 2, Y: 2}, {X: 1, Y: 3}, {X: 3, Y: 1},
	})
	mfn := quickhull.QuickHull(eng, c)

	hull, err := quickhull.Compute(eng, c, mfn)
	if err != nil {
		log.Fatalf("grifola-demo: %v", err)
	}
	fmt.Printf("hull: %v (evaluations=%d)\n", hull, eng.Stats.Evaluations)

	md := quickhull.MaxPairDist(eng, c)
	dist, err := md.Art(eng, 0).Force(eng)
	if err != nil {
		log.Fatalf("grifola-demo: %v", err)
	}
	fmt.Printf("max pair distance: %.4f\n", dist)
}
