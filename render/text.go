package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/Motwg/RandomForest/tree"
)

// Text renders root as an indented outline. Every node is numbered in
// pre-order; the left child is printed before the right one.
//
//	#0 Budget > 30000000  [(4, 3), (2, 2)]  H=0.971
//	|__#1 4  [(4, 3)]  H=0.000
//	|__#2 2  [(2, 2)]  H=0.000
func Text[F any](root *tree.Node[F]) string {
	id := 0
	return text(root, &id)
}

func text[F any](n *tree.Node[F], id *int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s  %s  H=%.3f\n", *id, Head(n), Counts(n.Distribution), n.Entropy)
	*id++
	if n.IsLeaf() {
		return b.String()
	}

	children := []*tree.Node[F]{n.Split.Left, n.Split.Right}
	for i, child := range children {
		last := i == len(children)-1
		for j, line := range strings.Split(strings.TrimSuffix(text(child, id), "\n"), "\n") {
			switch {
			case j == 0:
				fmt.Fprintf(&b, "|__%s\n", line)
			case last:
				fmt.Fprintf(&b, "   %s\n", line)
			default:
				fmt.Fprintf(&b, "|  %s\n", line)
			}
		}
	}
	return b.String()
}

// WriteText writes Text(root) to w.
func WriteText[F any](w io.Writer, root *tree.Node[F]) error {
	_, err := io.WriteString(w, Text(root))
	return err
}
