package ensemble

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/Motwg/RandomForest/pkg/log"
	"github.com/Motwg/RandomForest/tree"
)

type point struct {
	x int
}

// pointsUpTo maps every id in [0, n) to the point with the same coordinate.
func pointsUpTo(n int) tree.MapMapping[point] {
	m := make(tree.MapMapping[point], n)
	for i := range n {
		m[i] = point{x: i}
	}
	return m
}

func greaterThan(t int) tree.Predicate[point] {
	return tree.Predicate[point]{
		Description: fmt.Sprintf("x > %d", t),
		Test:        func(p point) bool { return p.x > t },
	}
}

// thresholdGenerator yields "x > t" with t drawn from the coordinates of the
// node's examples.
func thresholdGenerator(mapping tree.MapMapping[point]) tree.Generator[point] {
	return tree.GeneratorFunc[point](func(node *tree.Node[point], rng *rand.Rand) iter.Seq[tree.Predicate[point]] {
		return func(yield func(tree.Predicate[point]) bool) {
			for {
				ex := node.Examples[rng.IntN(len(node.Examples))]
				if !yield(greaterThan(mapping[ex.ID].x)) {
					return
				}
			}
		}
	})
}

func constantGenerator(p tree.Predicate[point]) tree.Generator[point] {
	return tree.GeneratorFunc[point](func(*tree.Node[point], *rand.Rand) iter.Seq[tree.Predicate[point]] {
		return func(yield func(tree.Predicate[point]) bool) {
			for yield(p) {
			}
		}
	})
}

func quiet() Option {
	logger, _ := log.NewTestLogger(log.LevelError)
	return WithLogger(logger)
}

// labelled returns ids 0..n-1 and the labels label(id).
func labelled(n int, label func(int) int) (ids, targets []int) {
	for i := range n {
		ids = append(ids, i)
		targets = append(targets, label(i))
	}
	return ids, targets
}

func fit[F any](f *Forest[F], ids, targets []int) error {
	return f.Fit(slices.Values(ids), slices.Values(targets))
}

// describe renders a tree as the pre-order list of its split descriptions.
func describe(root *tree.Node[point]) []string {
	var out []string
	root.Walk(func(n *tree.Node[point]) bool {
		if n.IsLeaf() {
			out = append(out, fmt.Sprintf("leaf %d", n.Output()))
		} else {
			out = append(out, n.Split.Predicate.Description)
		}
		return true
	})
	return out
}
