// Package metrics implements the quality scores used to rank models:
// accuracy and support-weighted precision, recall and F1 for classifiers,
// R², MSE, RMSE and MAE for regressors.
package metrics

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmpty is returned when a metric is asked to score zero samples.
	ErrEmpty = errors.New("metrics: no samples")

	// ErrLengthMismatch is returned when predictions and true values differ in length.
	ErrLengthMismatch = errors.New("metrics: predictions and true values differ in length")

	// ErrContinuousLabels is returned when a classification metric gets a
	// value that is not a finite integer, such as a probability.
	ErrContinuousLabels = errors.New("metrics: classification labels must be finite integers")

	// ErrNonFinite is returned when a regression metric gets NaN or ±Inf.
	ErrNonFinite = errors.New("metrics: values must be finite")
)

func checkPair(yTrue, yPred []float64) error {
	if len(yTrue) != len(yPred) {
		return fmt.Errorf("%w: %d true values, %d predictions", ErrLengthMismatch, len(yTrue), len(yPred))
	}
	if len(yTrue) == 0 {
		return ErrEmpty
	}
	return nil
}

// checkLabels validates a classification pair.
func checkLabels(yTrue, yPred []float64) error {
	if err := checkPair(yTrue, yPred); err != nil {
		return err
	}
	if i, v, ok := firstInvalid(yTrue, isLabel); ok {
		return fmt.Errorf("%w: true value %d is %v", ErrContinuousLabels, i, v)
	}
	if i, v, ok := firstInvalid(yPred, isLabel); ok {
		return fmt.Errorf("%w: prediction %d is %v", ErrContinuousLabels, i, v)
	}
	return nil
}

// checkFinite validates a regression pair.
func checkFinite(yTrue, yPred []float64) error {
	if err := checkPair(yTrue, yPred); err != nil {
		return err
	}
	if i, v, ok := firstInvalid(yTrue, isFinite); ok {
		return fmt.Errorf("%w: true value %d is %v", ErrNonFinite, i, v)
	}
	if i, v, ok := firstInvalid(yPred, isFinite); ok {
		return fmt.Errorf("%w: prediction %d is %v", ErrNonFinite, i, v)
	}
	return nil
}

func firstInvalid(values []float64, valid func(float64) bool) (int, float64, bool) {
	for i, v := range values {
		if !valid(v) {
			return i, v, true
		}
	}
	return 0, 0, false
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isLabel(v float64) bool {
	return isFinite(v) && v == math.Trunc(v)
}
