package tree

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"
)

// point is the feature object used by the tests of this package.
type point struct {
	x int
}

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// examplesOf builds examples whose id doubles as the x coordinate.
func examplesOf(labels ...int) ([]Example, MapMapping[point]) {
	examples := make([]Example, len(labels))
	mapping := make(MapMapping[point], len(labels))
	for i, l := range labels {
		examples[i] = Example{ID: i, Target: l}
		mapping[i] = point{x: i}
	}
	return examples, mapping
}

// thresholdGenerator yields "x > t" with t drawn from the node's own
// coordinates, never the largest one, so no atom leaves the left side empty.
func thresholdGenerator(mapping MapMapping[point]) Generator[point] {
	return GeneratorFunc[point](func(node *Node[point], rng *rand.Rand) iter.Seq[Predicate[point]] {
		return func(yield func(Predicate[point]) bool) {
			xs := make([]int, 0, len(node.Examples))
			for _, ex := range node.Examples {
				xs = append(xs, mapping[ex.ID].x)
			}
			slices.Sort(xs)
			for {
				t := xs[0]
				if len(xs) > 1 {
					t = xs[rng.IntN(len(xs)-1)]
				}
				if !yield(greaterThan(t)) {
					return
				}
			}
		}
	})
}

func greaterThan(t int) Predicate[point] {
	return Predicate[point]{
		Description: fmt.Sprintf("x > %d", t),
		Test:        func(p point) bool { return p.x > t },
	}
}

// constantGenerator yields the same predicate forever.
func constantGenerator(p Predicate[point]) Generator[point] {
	return GeneratorFunc[point](func(*Node[point], *rand.Rand) iter.Seq[Predicate[point]] {
		return func(yield func(Predicate[point]) bool) {
			for yield(p) {
			}
		}
	})
}

// finite yields the given predicates and then stops.
func finite(ps ...Predicate[point]) iter.Seq[Predicate[point]] {
	return slices.Values(ps)
}

// counting yields numbered atoms forever and records how many were pulled.
func counting(pulled *int) iter.Seq[Predicate[point]] {
	return func(yield func(Predicate[point]) bool) {
		for i := 0; ; i++ {
			*pulled = i + 1
			if !yield(Predicate[point]{Description: fmt.Sprintf("p%d", i), Test: func(point) bool { return true }}) {
				return
			}
		}
	}
}
