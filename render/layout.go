package render

import "github.com/Motwg/RandomForest/tree"

// Placed is a node positioned for drawing. Leaves sit on consecutive
// integer columns in left-to-right order; an internal node is centred
// above its children. Y is minus the depth, so the root is on top.
type Placed[F any] struct {
	Node   *tree.Node[F]
	ID     int
	Parent int
	X, Y   float64
}

// Layout positions every node of root. Nodes are returned in pre-order and
// numbered by that order; the root has Parent -1.
func Layout[F any](root *tree.Node[F]) []Placed[F] {
	var out []Placed[F]
	column := 0.0

	var place func(n *tree.Node[F], parent int) float64
	place = func(n *tree.Node[F], parent int) float64 {
		id := len(out)
		out = append(out, Placed[F]{Node: n, ID: id, Parent: parent, Y: -float64(n.Depth)})
		if n.IsLeaf() {
			out[id].X = column
			column++
			return out[id].X
		}
		left := place(n.Split.Left, id)
		right := place(n.Split.Right, id)
		out[id].X = (left + right) / 2
		return out[id].X
	}
	place(root, -1)
	return out
}
