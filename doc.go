// Package randomforest predicts movie ratings with forests of randomized
// decision trees.
//
// Every tree is grown greedily: at each node a batch of candidate
// predicates is drawn from a domain generator, joined pairwise with "and"
// or "or" at random, and the candidate with the highest information gain
// splits the node. Leaves predict the median of their ratings and a forest
// predicts the most frequent leaf output over its trees.
//
// # Packages
//
//   - tree: class distributions, predicates, nodes and the tree grower
//   - ensemble: forests, majority voting and validation statistics
//   - movies: the movie feature object and its predicate generator
//   - dataio: reading the ';'-delimited tables and writing submissions
//   - pipeline: one forest per user over a whole dataset
//   - render: text and PNG renderings of trees and statistics
//   - config: YAML configuration of a run
//
// The randomforest command in cmd/randomforest wires these together:
//
//	randomforest run --config run.yaml --output submission.csv
//	randomforest tree --user 42 --png tree.png
//
// # Library use
//
//	catalog := movies.Catalog(ds.Movies)
//	forest := ensemble.NewForest(catalog, movies.NewGenerator(catalog),
//	    ensemble.WithTrees(101),
//	    ensemble.WithRandomState(1),
//	)
//	if err := forest.Fit(slices.Values(ids), slices.Values(rates)); err != nil {
//	    return err
//	}
//	predictions, err := forest.PredictAll(taskIDs)
package randomforest
