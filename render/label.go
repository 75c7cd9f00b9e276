// Package render draws trained trees and validation statistics as text and
// PNG images. It only reads the trees it is given.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Motwg/RandomForest/tree"
)

// Head is the first line of a node label: the split description of an
// internal node or the most common label of a leaf.
func Head[F any](n *tree.Node[F]) string {
	if !n.IsLeaf() {
		return n.Split.Predicate.Description
	}
	ranked := n.Distribution.MostCommon()
	if len(ranked) == 0 {
		return "-"
	}
	return strconv.Itoa(ranked[0].Label)
}

// Counts formats a distribution as a list of (label, count) pairs, most
// common first.
func Counts(d tree.ClassDistribution) string {
	ranked := d.MostCommon()
	parts := make([]string, len(ranked))
	for i, lc := range ranked {
		parts[i] = fmt.Sprintf("(%d, %d)", lc.Label, lc.Count)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Label returns the three-line label of n: head, counts and entropy.
func Label[F any](n *tree.Node[F]) string {
	return fmt.Sprintf("%s\n%s\n%.3f", Head(n), Counts(n.Distribution), n.Entropy)
}
