// Package pipeline fits one forest per user and completes the rating tasks
// with its predictions.
package pipeline

import (
	"context"
	"slices"
	"time"

	"github.com/Motwg/RandomForest/dataio"
	"github.com/Motwg/RandomForest/ensemble"
	"github.com/Motwg/RandomForest/metrics"
	"github.com/Motwg/RandomForest/movies"
	"github.com/Motwg/RandomForest/pkg/errors"
	"github.com/Motwg/RandomForest/pkg/log"
	"github.com/Motwg/RandomForest/tree"
)

// Result is the outcome of a run.
type Result struct {
	// Predictions holds the task rows, in input order, with Rate filled in.
	Predictions []dataio.Rating
	// Stats accumulates the validation errors of every user.
	Stats metrics.ErrorHistogram
	// LastTree is the first tree of the last user's forest.
	LastTree *tree.Node[movies.Movie]
	Users    int
}

// Runner fits a forest for every user that has tasks.
type Runner struct {
	opts   []ensemble.Option
	logger log.Logger
}

// NewRunner creates a Runner whose forests are built with opts.
func NewRunner(opts ...ensemble.Option) *Runner {
	return &Runner{
		opts:   opts,
		logger: log.GetLoggerWithName("pipeline"),
	}
}

// WithLogger replaces the logger of r and of its forests.
func (r *Runner) WithLogger(logger log.Logger) *Runner {
	r.logger = logger
	r.opts = append(slices.Clone(r.opts), ensemble.WithLogger(logger))
	return r
}

// Run fits one forest per task user on that user's training rows and
// predicts the user's tasks. A single forest is refitted for each user, so
// validation statistics accumulate over users. Users are processed in the
// order of their first task; a task user without training rows is an
// error.
func (r *Runner) Run(ctx context.Context, ds *dataio.Dataset) (*Result, error) {
	catalog := movies.Catalog(ds.Movies)
	forest := ensemble.NewForest(catalog, movies.NewGenerator(catalog), r.opts...)

	train := make(map[int][]dataio.Rating)
	for _, g := range dataio.GroupByUser(ds.Train) {
		train[g.UserID] = g.Rows
	}

	predictions := slices.Clone(ds.Task)
	var users []int
	tasks := make(map[int][]int)
	for i, row := range predictions {
		if _, ok := tasks[row.UserID]; !ok {
			users = append(users, row.UserID)
		}
		tasks[row.UserID] = append(tasks[row.UserID], i)
	}

	for n, user := range users {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()

		rows, ok := train[user]
		if !ok {
			return nil, errors.Wrapf(errors.NewInsufficientDataError("Run", 1, 0), "user %d has no training rows", user)
		}
		if err := forest.Fit(slices.Values(dataio.MovieIDs(rows)), slices.Values(dataio.Rates(rows))); err != nil {
			return nil, errors.Wrapf(err, "fitting user %d", user)
		}

		ids := make([]int, len(tasks[user]))
		for j, i := range tasks[user] {
			ids[j] = predictions[i].MovieID
		}
		preds, err := forest.PredictAll(ids)
		if err != nil {
			return nil, errors.Wrapf(err, "predicting user %d", user)
		}
		for j, i := range tasks[user] {
			predictions[i].Rate = preds[j]
		}

		r.logger.Info("user completed",
			log.UserKey, user,
			log.ProgressKey, n+1,
			log.EntitiesKey, len(users),
			log.SamplesKey, len(rows),
			log.PredsKey, len(preds),
			log.DurationMsKey, time.Since(start).Milliseconds(),
		)
	}

	res := &Result{
		Predictions: predictions,
		Stats:       forest.Stats(),
		Users:       len(users),
	}
	if trees := forest.Trees(); len(trees) > 0 {
		res.LastTree = trees[0]
	}
	return res, nil
}

// FitUser fits a forest on the training rows of a single user.
func (r *Runner) FitUser(ds *dataio.Dataset, userID int) (*ensemble.Forest[movies.Movie], error) {
	var rows []dataio.Rating
	for _, row := range ds.Train {
		if row.UserID == userID {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, errors.Wrapf(errors.NewInsufficientDataError("FitUser", 1, 0), "user %d has no training rows", userID)
	}

	catalog := movies.Catalog(ds.Movies)
	forest := ensemble.NewForest(catalog, movies.NewGenerator(catalog), r.opts...)
	if err := forest.Fit(slices.Values(dataio.MovieIDs(rows)), slices.Values(dataio.Rates(rows))); err != nil {
		return nil, errors.Wrapf(err, "fitting user %d", userID)
	}
	return forest, nil
}

// Write sends the result to sink.
func Write(ctx context.Context, sink dataio.Sink, res *Result) error {
	if err := sink.WritePredictions(ctx, res.Predictions); err != nil {
		return err
	}
	return sink.WriteStats(ctx, res.Stats)
}
