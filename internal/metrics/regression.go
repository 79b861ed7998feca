package metrics

import "math"

// RegressionScores holds the regression metrics for one set of predictions.
// Every metric rejects NaN and ±Inf inputs with ErrNonFinite.
type RegressionScores struct {
	R2   float64 `json:"r2"`
	MSE  float64 `json:"mse"`
	RMSE float64 `json:"rmse"`
	MAE  float64 `json:"mae"`
}

// MeanSquaredError returns the mean of squared residuals.
func MeanSquaredError(yTrue, yPred []float64) (float64, error) {
	if err := checkFinite(yTrue, yPred); err != nil {
		return 0, err
	}
	sum := 0.0
	for i := range yTrue {
		d := yTrue[i] - yPred[i]
		sum += d * d
	}
	return sum / float64(len(yTrue)), nil
}

// RootMeanSquaredError returns the square root of MeanSquaredError.
func RootMeanSquaredError(yTrue, yPred []float64) (float64, error) {
	mse, err := MeanSquaredError(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// MeanAbsoluteError returns the mean of absolute residuals.
func MeanAbsoluteError(yTrue, yPred []float64) (float64, error) {
	if err := checkFinite(yTrue, yPred); err != nil {
		return 0, err
	}
	sum := 0.0
	for i := range yTrue {
		sum += math.Abs(yTrue[i] - yPred[i])
	}
	return sum / float64(len(yTrue)), nil
}

// R2 returns the coefficient of determination 1 - SSres/SStot.
//
// With fewer than two samples the score is undefined and NaN is returned.
// When the true values are constant, a perfect fit scores 1 and anything
// else scores 0.
func R2(yTrue, yPred []float64) (float64, error) {
	if err := checkFinite(yTrue, yPred); err != nil {
		return 0, err
	}
	if len(yTrue) < 2 {
		return math.NaN(), nil
	}

	ssRes := 0.0
	for i := range yTrue {
		d := yTrue[i] - yPred[i]
		ssRes += d * d
	}
	ssTot := sumSquaredDeviations(yTrue, Mean(yTrue))

	if ssTot == 0 {
		if ssRes == 0 {
			return 1, nil
		}
		return 0, nil
	}
	return 1 - ssRes/ssTot, nil
}

// Regression computes every regression metric.
func Regression(yTrue, yPred []float64) (RegressionScores, error) {
	r2, err := R2(yTrue, yPred)
	if err != nil {
		return RegressionScores{}, err
	}
	mse, err := MeanSquaredError(yTrue, yPred)
	if err != nil {
		return RegressionScores{}, err
	}
	mae, err := MeanAbsoluteError(yTrue, yPred)
	if err != nil {
		return RegressionScores{}, err
	}
	return RegressionScores{
		R2:   r2,
		MSE:  mse,
		RMSE: math.Sqrt(mse),
		MAE:  mae,
	}, nil
}
