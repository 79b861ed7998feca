package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegression(t *testing.T) {
	tests := []struct {
		name     string
		yTrue    []float64
		yPred    []float64
		wantR2   float64
		wantMSE  float64
		wantRMSE float64
		wantMAE  float64
	}{
		{
			name:     "perfect",
			yTrue:    []float64{1.5, 2.7, 3.2, 0.9},
			yPred:    []float64{1.5, 2.7, 3.2, 0.9},
			wantR2:   1,
			wantMSE:  0,
			wantRMSE: 0,
			wantMAE:  0,
		},
		{
			// mean=2, SStot=2, SSres=0.5
			name:     "small residuals",
			yTrue:    []float64{1, 2, 3},
			yPred:    []float64{1.5, 2, 2.5},
			wantR2:   0.75,
			wantMSE:  0.5 / 3,
			wantRMSE: math.Sqrt(0.5 / 3),
			wantMAE:  1.0 / 3,
		},
		{
			// predicting the mean scores exactly zero
			name:     "mean predictor",
			yTrue:    []float64{2, 4, 6, 8},
			yPred:    []float64{5, 5, 5, 5},
			wantR2:   0,
			wantMSE:  5,
			wantRMSE: math.Sqrt(5),
			wantMAE:  2,
		},
		{
			name:     "worse than mean",
			yTrue:    []float64{0, 1},
			yPred:    []float64{1, 0},
			wantR2:   -3,
			wantMSE:  1,
			wantRMSE: 1,
			wantMAE:  1,
		},
		{
			name:     "constant target perfect",
			yTrue:    []float64{3, 3, 3},
			yPred:    []float64{3, 3, 3},
			wantR2:   1,
			wantMSE:  0,
			wantRMSE: 0,
			wantMAE:  0,
		},
		{
			name:     "constant target miss",
			yTrue:    []float64{3, 3},
			yPred:    []float64{2, 4},
			wantR2:   0,
			wantMSE:  1,
			wantRMSE: 1,
			wantMAE:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Regression(tt.yTrue, tt.yPred)
			require.NoError(t, err)

			assert.InDelta(t, tt.wantR2, got.R2, epsilon)
			assert.InDelta(t, tt.wantMSE, got.MSE, epsilon)
			assert.InDelta(t, tt.wantRMSE, got.RMSE, epsilon)
			assert.InDelta(t, tt.wantMAE, got.MAE, epsilon)
			assert.Equal(t, math.Sqrt(got.MSE), got.RMSE)
		})
	}
}

func TestR2_SingleSampleIsUndefined(t *testing.T) {
	r2, err := R2([]float64{1}, []float64{1})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(r2))
}

func TestRegression_Errors(t *testing.T) {
	_, err := Regression([]float64{1, 2, 3}, []float64{1, 2})
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, err = MeanSquaredError([]float64{}, []float64{})
	require.ErrorIs(t, err, ErrEmpty)

	_, err = RootMeanSquaredError([]float64{1}, nil)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestRegression_RejectsNonFinite(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		wantMsg string
	}{
		{"NaN prediction", []float64{1, 2, 3}, []float64{1, math.NaN(), 2}, "prediction 1 is NaN"},
		{"infinite prediction", []float64{1, 2, 3}, []float64{1, 2, math.Inf(-1)}, "prediction 2 is -Inf"},
		{"NaN truth", []float64{math.NaN(), 2}, []float64{1, 2}, "true value 0 is NaN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Regression(tt.yTrue, tt.yPred)
			require.ErrorIs(t, err, ErrNonFinite)
			assert.Contains(t, err.Error(), tt.wantMsg)

			_, err = MeanAbsoluteError(tt.yTrue, tt.yPred)
			require.ErrorIs(t, err, ErrNonFinite)
			_, err = RootMeanSquaredError(tt.yTrue, tt.yPred)
			require.ErrorIs(t, err, ErrNonFinite)
		})
	}
}
