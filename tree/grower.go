package tree

import (
	"context"
	"math"
	"math/rand/v2"

	"github.com/Motwg/RandomForest/pkg/errors"
	"github.com/Motwg/RandomForest/pkg/log"
)

// Params bounds the growth of a tree.
type Params struct {
	// K is the number of candidate predicates composed at the root level.
	K int
	// KDiv, when positive, divides K once per recursion level (rounded half
	// to even), so deeper nodes try fewer candidates.
	KDiv float64
	// MaxDepth is the deepest level a node may be created at.
	MaxDepth int
	// EntropyThreshold stops growth at nodes that are already this pure.
	EntropyThreshold float64
	// InfoGainThreshold is the minimum gain a split must achieve.
	InfoGainThreshold float64
}

// Validate checks that every parameter is in range.
func (p Params) Validate() error {
	if err := errors.CheckNonNegative("k", p.K); err != nil {
		return err
	}
	if err := errors.CheckNonNegative("max_depth", p.MaxDepth); err != nil {
		return err
	}
	if err := errors.CheckFinite("k_div", p.KDiv); err != nil {
		return err
	}
	if p.KDiv < 0 {
		return errors.NewValidationError("k_div", "must be zero (no decay) or positive", p.KDiv)
	}
	if err := errors.CheckFinite("entropy_th", p.EntropyThreshold); err != nil {
		return err
	}
	return errors.CheckFinite("ig_th", p.InfoGainThreshold)
}

// Grower expands nodes into trees by greedy, randomized split selection.
// A Grower owns its random source and must not be shared between
// goroutines.
type Grower[F any] struct {
	params    Params
	generator Generator[F]
	mapping   Mapping[F]
	rng       *rand.Rand
	logger    log.Logger
}

// GrowerOption configures a Grower.
type GrowerOption[F any] func(*Grower[F])

// WithGrowerLogger sets the logger used for split diagnostics.
func WithGrowerLogger[F any](logger log.Logger) GrowerOption[F] {
	return func(g *Grower[F]) {
		g.logger = logger
	}
}

// NewGrower creates a Grower drawing candidates from generator and
// resolving examples through mapping.
func NewGrower[F any](params Params, generator Generator[F], mapping Mapping[F], rng *rand.Rand, opts ...GrowerOption[F]) *Grower[F] {
	g := &Grower[F]{
		params:    params,
		generator: generator,
		mapping:   mapping,
		rng:       rng,
		logger:    log.GetLoggerWithName("tree"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GrowTree builds a root node from examples and grows it with the
// configured K.
func (g *Grower[F]) GrowTree(examples []Example) (*Node[F], error) {
	root := NewNode[F](examples, 0)
	if err := g.Grow(root, g.params.K); err != nil {
		return nil, err
	}
	return root, nil
}

// Grow turns node into a leaf or an internal node and recurses into the
// children it creates. Growth stops at a node when, in order: its children
// would exceed MaxDepth, its entropy is below EntropyThreshold, the best
// candidate gains less than InfoGainThreshold, or the best candidate leaves
// one side empty. A level with no candidates also stops.
func (g *Grower[F]) Grow(node *Node[F], k int) error {
	k = decayK(k, g.params.KDiv)
	if node.Depth+1 > g.params.MaxDepth {
		return nil
	}
	if node.Entropy < g.params.EntropyThreshold || len(node.Examples) == 0 {
		return nil
	}

	candidates, err := g.candidates(node, k)
	if err != nil {
		return err
	}
	best, err := selectBest(node.Depth, candidates)
	if err != nil {
		var empty *errors.EmptyCandidateSetError
		if errors.As(err, &empty) {
			return nil
		}
		return err
	}
	if best.InfoGain < g.params.InfoGainThreshold {
		return nil
	}
	if len(best.Left.Examples) == 0 || len(best.Right.Examples) == 0 {
		return nil
	}

	node.Split = best
	if g.logger.Enabled(context.Background(), log.LevelDebug) {
		g.logger.Debug("split committed",
			log.DepthKey, node.Depth,
			log.PredicateKey, best.Predicate.Description,
			log.InfoGainKey, best.InfoGain,
			log.CandidatesKey, len(candidates),
			log.SamplesKey, len(node.Examples),
		)
	}

	if err := g.Grow(best.Left, k); err != nil {
		return err
	}
	return g.Grow(best.Right, k)
}

// decayK divides k by kDiv rounding half to even. kDiv <= 0 disables decay.
func decayK(k int, kDiv float64) int {
	if kDiv <= 0 {
		return k
	}
	return int(math.RoundToEven(float64(k) / kDiv))
}

// candidates composes k predicates for node and partitions the node's
// examples with each of them. Every example is resolved before the
// generator runs, so generators may assume the mapping knows the node.
func (g *Grower[F]) candidates(node *Node[F], k int) ([]*Split[F], error) {
	if k <= 0 {
		return nil, nil
	}
	features, err := g.resolve(node.Examples)
	if err != nil {
		return nil, err
	}

	predicates, err := Compose(g.generator.Predicates(node, g.rng), k, g.rng)
	if err != nil {
		return nil, errors.Wrapf(err, "composing candidates at depth %d", node.Depth)
	}

	splits := make([]*Split[F], 0, len(predicates))
	for _, p := range predicates {
		var lefts, rights []Example
		for i, ex := range node.Examples {
			if p.Test(features[i]) {
				lefts = append(lefts, ex)
			} else {
				rights = append(rights, ex)
			}
		}
		left := NewNode[F](lefts, node.Depth+1)
		right := NewNode[F](rights, node.Depth+1)
		splits = append(splits, &Split[F]{
			Predicate: p,
			InfoGain:  InformationGain(node, left, right),
			Left:      left,
			Right:     right,
		})
	}
	return splits, nil
}

func (g *Grower[F]) resolve(examples []Example) ([]F, error) {
	features := make([]F, len(examples))
	for i, ex := range examples {
		f, ok := g.mapping.Lookup(ex.ID)
		if !ok {
			return nil, errors.NewUnknownEntityError(ex.ID)
		}
		features[i] = f
	}
	return features, nil
}

// selectBest returns the candidate with the highest information gain; the
// first one wins ties.
func selectBest[F any](depth int, candidates []*Split[F]) (*Split[F], error) {
	if len(candidates) == 0 {
		return nil, errors.NewEmptyCandidateSetError(depth)
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.InfoGain > best.InfoGain {
			best = c
		}
	}
	return best, nil
}
