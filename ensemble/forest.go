// Package ensemble trains forests of randomized decision trees and predicts
// by majority vote.
package ensemble

import (
	"context"
	"iter"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/Motwg/RandomForest/core/model"
	"github.com/Motwg/RandomForest/core/parallel"
	"github.com/Motwg/RandomForest/metrics"
	"github.com/Motwg/RandomForest/pkg/errors"
	"github.com/Motwg/RandomForest/pkg/log"
	"github.com/Motwg/RandomForest/tree"
)

const modelName = "Forest"

// Forest is an ensemble of decision trees grown from the same training set.
// Trees differ only through the randomness of their predicate search.
//
// A Forest keeps the trees of its last successful Fit and the validation
// statistics of every successful Fit since creation or ResetStats. It is not
// safe for concurrent mutation.
type Forest[F any] struct {
	settings

	state     *model.StateManager
	mapping   tree.Mapping[F]
	generator tree.Generator[F]
	rng       *rand.Rand

	trees []*tree.Node[F]
	stats metrics.ErrorHistogram
}

// NewForest creates an unfitted forest resolving entity ids through mapping
// and drawing atomic predicates from generator.
func NewForest[F any](mapping tree.Mapping[F], generator tree.Generator[F], opts ...Option) *Forest[F] {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if !s.seeded {
		s.randomState = rand.Uint64()
	}
	if s.logger == nil {
		s.logger = log.GetLoggerWithName("ensemble")
	}
	s.logger = s.logger.With(log.ModelNameKey, modelName)

	return &Forest[F]{
		settings:  s,
		state:     model.NewStateManager(),
		mapping:   mapping,
		generator: generator,
		rng:       rand.New(rand.NewPCG(s.randomState, s.randomState>>1|1)),
	}
}

// Fit holds out the first Validate (id, target) pairs as a validation set,
// grows the configured number of trees from the remaining pairs and records
// how far the new trees miss the validation targets.
//
// ids and targets are consumed in lockstep; pairing stops at the end of the
// shorter one. Fit fails with an InsufficientDataError when either sequence
// ends inside the validation prefix or when no training pair is left.
// The previous trees and statistics are only replaced when every step
// succeeded.
func (f *Forest[F]) Fit(ids, targets iter.Seq[int]) (err error) {
	defer errors.Recover(&err, "Forest.Fit")

	if err := f.validateSettings(); err != nil {
		return err
	}
	start := time.Now()

	validation, training, err := f.split(ids, targets)
	if err != nil {
		return err
	}

	trees, err := f.grow(training)
	if err != nil {
		return err
	}

	hist, actual, predicted, err := f.validateTrees(trees, validation)
	if err != nil {
		return err
	}

	f.trees = trees
	f.stats.Merge(hist)
	f.state.SetFitted(len(training))

	fields := []any{
		log.OperationKey, log.OperationFit,
		log.TreesKey, len(trees),
		log.SamplesKey, len(training),
		log.ValidationKey, len(validation),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	}
	if len(validation) > 0 {
		fields = append(fields, log.ExactKey, hist.ExactShare())
		if yTrue, yPred, err := metrics.IntVectors(actual, predicted); err == nil {
			mae, _ := metrics.MAE(yTrue, yPred)
			rmse, _ := metrics.RMSE(yTrue, yPred)
			fields = append(fields, log.MAEKey, mae, log.RMSEKey, rmse)
		}
	}
	f.logger.Info("forest fitted", fields...)
	return nil
}

// split pulls the validation prefix and the training pairs out of the two
// streams.
func (f *Forest[F]) split(ids, targets iter.Seq[int]) (validation, training []tree.Example, err error) {
	nextID, stopIDs := iter.Pull(ids)
	defer stopIDs()
	nextTarget, stopTargets := iter.Pull(targets)
	defer stopTargets()

	next := func() (tree.Example, bool) {
		id, ok := nextID()
		if !ok {
			return tree.Example{}, false
		}
		target, ok := nextTarget()
		if !ok {
			return tree.Example{}, false
		}
		return tree.Example{ID: id, Target: target}, true
	}

	validation = make([]tree.Example, 0, f.validate)
	for len(validation) < f.validate {
		ex, ok := next()
		if !ok {
			return nil, nil, errors.NewInsufficientDataError("Fit", f.validate, len(validation))
		}
		validation = append(validation, ex)
	}
	for ex, ok := next(); ok; ex, ok = next() {
		training = append(training, ex)
	}
	if len(training) == 0 {
		return nil, nil, errors.NewInsufficientDataError("Fit", f.validate+1, f.validate)
	}
	return validation, training, nil
}

// grow builds every tree from training. Seeds are drawn from the master rng
// before any tree starts, so the result does not depend on nJobs.
func (f *Forest[F]) grow(training []tree.Example) ([]*tree.Node[F], error) {
	seeds := make([]uint64, f.nTrees)
	for i := range seeds {
		seeds[i] = f.rng.Uint64()
	}

	trees := make([]*tree.Node[F], f.nTrees)
	debug := f.logger.Enabled(context.Background(), log.LevelDebug)
	err := parallel.ForEach(f.nTrees, f.nJobs, func(i int) error {
		return errors.SafeExecute("Forest.grow", func() error {
			rng := rand.New(rand.NewPCG(seeds[i], uint64(i)))
			g := tree.NewGrower(f.params, f.generator, f.mapping, rng,
				tree.WithGrowerLogger[F](f.logger.With(log.TreeIndexKey, i)))
			root, err := g.GrowTree(training)
			if err != nil {
				return errors.Wrapf(err, "growing tree %d", i)
			}
			trees[i] = root

			if debug {
				s := root.Stats()
				f.logger.Debug("tree grown",
					log.TreeIndexKey, i,
					log.NodesKey, s.Nodes,
					log.LeavesKey, s.Leaves,
					log.DepthKey, s.MaxDepth,
				)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return trees, nil
}

func (f *Forest[F]) validateTrees(trees []*tree.Node[F], validation []tree.Example) (metrics.ErrorHistogram, []int, []int, error) {
	var hist metrics.ErrorHistogram
	actual := make([]int, 0, len(validation))
	predicted := make([]int, 0, len(validation))
	for _, ex := range validation {
		p, err := f.predictOne(trees, ex.ID)
		if err != nil {
			return hist, nil, nil, err
		}
		hist.Record(p, ex.Target)
		actual = append(actual, ex.Target)
		predicted = append(predicted, p)
	}
	return hist, actual, predicted, nil
}

// Predict returns a lazy sequence with one prediction per id, in input
// order. An id unknown to the mapping yields an UnknownEntityError and ends
// the sequence; so does calling Predict before a successful Fit, with a
// NotFittedError.
func (f *Forest[F]) Predict(ids iter.Seq[int]) iter.Seq2[int, error] {
	return func(yield func(int, error) bool) {
		if err := f.state.RequireFitted(modelName, "Predict"); err != nil {
			yield(0, err)
			return
		}
		trees := f.trees
		for id := range ids {
			p, err := f.predictOne(trees, id)
			if err != nil {
				yield(0, err)
				return
			}
			if !yield(p, nil) {
				return
			}
		}
	}
}

// PredictAll collects Predict over ids.
func (f *Forest[F]) PredictAll(ids []int) ([]int, error) {
	out := make([]int, 0, len(ids))
	for p, err := range f.Predict(slices.Values(ids)) {
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *Forest[F]) predictOne(trees []*tree.Node[F], id int) (p int, err error) {
	feature, ok := f.mapping.Lookup(id)
	if !ok {
		return 0, errors.NewUnknownEntityError(id)
	}
	err = errors.SafeExecute("Forest.predict", func() error {
		p = Vote(Outputs(trees, feature))
		return nil
	})
	return p, err
}

// Outputs evaluates feature with every tree, in tree order.
func Outputs[F any](trees []*tree.Node[F], feature F) []int {
	votes := make([]int, len(trees))
	for i, root := range trees {
		votes[i] = root.Evaluate(feature)
	}
	return votes
}

// Vote returns the most frequent value of votes. Ties go to the value seen
// first. An empty slice votes 0.
func Vote(votes []int) int {
	ranked := tree.DistributionOf(votes...).MostCommon()
	if len(ranked) == 0 {
		return 0
	}
	return ranked[0].Label
}

// Trees returns the trees of the last successful Fit.
func (f *Forest[F]) Trees() []*tree.Node[F] {
	return slices.Clone(f.trees)
}

// Stats returns the validation histogram accumulated over every successful
// Fit since creation or the last ResetStats.
func (f *Forest[F]) Stats() metrics.ErrorHistogram {
	return f.stats
}

// ResetStats clears the accumulated validation histogram. Trees are kept.
func (f *Forest[F]) ResetStats() {
	f.stats.Reset()
}

// IsFitted reports whether Fit has succeeded at least once.
func (f *Forest[F]) IsFitted() bool {
	return f.state.IsFitted()
}

// NSamples returns the number of training examples of the last successful
// Fit.
func (f *Forest[F]) NSamples() int {
	return f.state.NSamples()
}

// Params returns the growth parameters of the forest.
func (f *Forest[F]) Params() tree.Params {
	return f.params
}
