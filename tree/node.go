package tree

import (
	"iter"
	"math/rand/v2"
)

// Mapping resolves entity identifiers to feature objects.
type Mapping[F any] interface {
	Lookup(id int) (F, bool)
}

// MapMapping adapts a map to Mapping.
type MapMapping[F any] map[int]F

// Lookup implements Mapping.
func (m MapMapping[F]) Lookup(id int) (F, bool) {
	f, ok := m[id]
	return f, ok
}

// Generator produces atomic predicates for a node. The returned sequence
// must not end before the grower has consumed what it needs; domain
// packages usually return an infinite sequence.
type Generator[F any] interface {
	Predicates(node *Node[F], rng *rand.Rand) iter.Seq[Predicate[F]]
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc[F any] func(node *Node[F], rng *rand.Rand) iter.Seq[Predicate[F]]

// Predicates implements Generator.
func (fn GeneratorFunc[F]) Predicates(node *Node[F], rng *rand.Rand) iter.Seq[Predicate[F]] {
	return fn(node, rng)
}

// Node is a vertex of a decision tree. A node without a Split is a leaf.
// A Split always carries both children, whose examples partition the
// node's examples.
type Node[F any] struct {
	Examples     []Example
	Depth        int
	Entropy      float64
	Distribution ClassDistribution
	Split        *Split[F]
}

// Split is the decision taken at an internal node. Examples satisfying the
// predicate go left.
type Split[F any] struct {
	Predicate Predicate[F]
	InfoGain  float64
	Left      *Node[F]
	Right     *Node[F]
}

// NewNode creates a leaf holding examples at the given depth.
func NewNode[F any](examples []Example, depth int) *Node[F] {
	dist := NewClassDistribution(examples)
	return &Node[F]{
		Examples:     examples,
		Depth:        depth,
		Entropy:      dist.Entropy(),
		Distribution: dist,
	}
}

// IsLeaf reports whether the node has no split.
func (n *Node[F]) IsLeaf() bool {
	return n.Split == nil
}

// Output returns the prediction of a leaf: the median of its labels.
func (n *Node[F]) Output() int {
	median, _ := n.Distribution.Median()
	return median
}

// Evaluate walks from n to a leaf, going left whenever the split predicate
// holds for feature, and returns that leaf's output.
func (n *Node[F]) Evaluate(feature F) int {
	node := n
	for node.Split != nil {
		if node.Split.Predicate.Test(feature) {
			node = node.Split.Left
		} else {
			node = node.Split.Right
		}
	}
	return node.Output()
}

// Walk visits n and its descendants in pre-order, left before right,
// stopping early when fn returns false.
func (n *Node[F]) Walk(fn func(*Node[F]) bool) bool {
	if !fn(n) {
		return false
	}
	if n.Split == nil {
		return true
	}
	return n.Split.Left.Walk(fn) && n.Split.Right.Walk(fn)
}

// Stats summarizes the shape of the tree rooted at n.
type Stats struct {
	Nodes    int
	Leaves   int
	MaxDepth int
}

// Stats returns the node count, leaf count and deepest leaf depth of the
// tree rooted at n.
func (n *Node[F]) Stats() Stats {
	var s Stats
	n.Walk(func(node *Node[F]) bool {
		s.Nodes++
		if node.IsLeaf() {
			s.Leaves++
			if node.Depth > s.MaxDepth {
				s.MaxDepth = node.Depth
			}
		}
		return true
	})
	return s
}

// InformationGain returns the entropy reduction achieved by splitting
// parent into left and right, weighted by partition sizes.
func InformationGain[F any](parent, left, right *Node[F]) float64 {
	n := float64(len(parent.Examples))
	if n == 0 {
		return 0
	}
	return parent.Entropy -
		left.Entropy*float64(len(left.Examples))/n -
		right.Entropy*float64(len(right.Examples))/n
}
