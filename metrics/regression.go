// Package metrics provides evaluation helpers for forest predictions.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/Motwg/RandomForest/pkg/errors"
)

// MSE computes the mean squared error between yTrue and yPred.
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkPair("MSE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	diff := mat.NewVecDense(n, nil)
	diff.SubVec(yTrue, yPred)
	return mat.Dot(diff, diff) / float64(n), nil
}

// RMSE computes the root mean squared error between yTrue and yPred.
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MAE computes the mean absolute error between yTrue and yPred.
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkPair("MAE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	diff := mat.NewVecDense(n, nil)
	diff.SubVec(yTrue, yPred)
	return mat.Norm(diff, 1) / float64(n), nil
}

// IntVectors converts paired integer slices into gonum vectors.
// Both slices must be non-empty and of equal length.
func IntVectors(actual, predicted []int) (*mat.VecDense, *mat.VecDense, error) {
	if len(actual) == 0 {
		return nil, nil, errors.Wrap(errors.ErrEmptyData, "IntVectors")
	}
	if len(actual) != len(predicted) {
		return nil, nil, errors.NewValidationError("predicted", "length differs from actual", len(predicted))
	}
	yTrue := mat.NewVecDense(len(actual), nil)
	yPred := mat.NewVecDense(len(predicted), nil)
	for i := range actual {
		yTrue.SetVec(i, float64(actual[i]))
		yPred.SetVec(i, float64(predicted[i]))
	}
	return yTrue, yPred, nil
}

func checkPair(op string, yTrue, yPred *mat.VecDense) (int, error) {
	if yTrue == nil || yTrue.Len() == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, op)
	}
	n := yTrue.Len()
	if yPred == nil || yPred.Len() != n {
		got := 0
		if yPred != nil {
			got = yPred.Len()
		}
		return 0, errors.NewValidationError("yPred", "length differs from yTrue", got)
	}
	return n, nil
}
