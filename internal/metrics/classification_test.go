package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		name          string
		yTrue         []float64
		yPred         []float64
		wantAccuracy  float64
		wantPrecision float64
		wantRecall    float64
		wantF1        float64
		wantClasses   int
	}{
		{
			name:          "perfect",
			yTrue:         []float64{0, 1, 1, 0, 2},
			yPred:         []float64{0, 1, 1, 0, 2},
			wantAccuracy:  1,
			wantPrecision: 1,
			wantRecall:    1,
			wantF1:        1,
			wantClasses:   3,
		},
		{
			// class 0: tp=0 pred=0 support=5 -> p=0 (zero division) r=0 f1=0
			// class 1: tp=5 pred=10 support=5 -> p=0.5 r=1 f1=2/3
			name:          "all one class",
			yTrue:         []float64{0, 0, 0, 0, 0, 1, 1, 1, 1, 1},
			yPred:         []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			wantAccuracy:  0.5,
			wantPrecision: 0.25,
			wantRecall:    0.5,
			wantF1:        1.0 / 3.0,
			wantClasses:   2,
		},
		{
			// class 0: tp=1 pred=2 support=2 -> p=0.5 r=0.5 f1=0.5
			// class 1: tp=1 pred=2 support=2 -> p=0.5 r=0.5 f1=0.5
			name:          "half right",
			yTrue:         []float64{0, 0, 1, 1},
			yPred:         []float64{0, 1, 0, 1},
			wantAccuracy:  0.5,
			wantPrecision: 0.5,
			wantRecall:    0.5,
			wantF1:        0.5,
			wantClasses:   2,
		},
		{
			// predicted label 7 never occurs in yTrue, so it carries no weight.
			name:          "unseen predicted label",
			yTrue:         []float64{1, 1, 2, 2},
			yPred:         []float64{1, 7, 2, 2},
			wantAccuracy:  0.75,
			wantPrecision: 1,
			wantRecall:    0.75,
			wantF1:        (2*(2.0/3.0) + 2*1.0) / 4,
			wantClasses:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classification(tt.yTrue, tt.yPred)
			require.NoError(t, err)

			assert.InDelta(t, tt.wantAccuracy, got.Accuracy, epsilon)
			assert.InDelta(t, tt.wantPrecision, got.Precision, epsilon)
			assert.InDelta(t, tt.wantRecall, got.Recall, epsilon)
			assert.InDelta(t, tt.wantF1, got.F1, epsilon)
			assert.Equal(t, tt.wantClasses, got.Classes)
			assert.Equal(t, len(tt.yTrue), got.Support)
		})
	}
}

func TestClassification_ScoresWithinUnitInterval(t *testing.T) {
	yTrue := []float64{0, 1, 2, 2, 1, 0, 3, 3, 3, 1}
	yPred := []float64{3, 1, 2, 0, 0, 0, 3, 1, 2, 1}

	got, err := Classification(yTrue, yPred)
	require.NoError(t, err)

	for name, v := range map[string]float64{
		"accuracy":  got.Accuracy,
		"precision": got.Precision,
		"recall":    got.Recall,
		"f1":        got.F1,
	} {
		assert.GreaterOrEqual(t, v, 0.0, name)
		assert.LessOrEqual(t, v, 1.0, name)
	}
}

func TestWeightedHelpersMatchClassification(t *testing.T) {
	yTrue := []float64{0, 0, 1, 1, 1, 2}
	yPred := []float64{0, 1, 1, 1, 2, 2}

	all, err := Classification(yTrue, yPred)
	require.NoError(t, err)

	acc, err := Accuracy(yTrue, yPred)
	require.NoError(t, err)
	p, err := WeightedPrecision(yTrue, yPred)
	require.NoError(t, err)
	r, err := WeightedRecall(yTrue, yPred)
	require.NoError(t, err)
	f1, err := WeightedF1(yTrue, yPred)
	require.NoError(t, err)

	assert.InDelta(t, all.Accuracy, acc, epsilon)
	assert.InDelta(t, all.Precision, p, epsilon)
	assert.InDelta(t, all.Recall, r, epsilon)
	assert.InDelta(t, all.F1, f1, epsilon)
}

func TestCountClasses(t *testing.T) {
	counts, err := CountClasses([]float64{1, 0, 1}, []float64{1, 1, 0})
	require.NoError(t, err)
	require.Len(t, counts, 2)

	assert.Equal(t, ClassCounts{Label: 1, TP: 1, Predicted: 2, Support: 2}, counts[0])
	assert.Equal(t, ClassCounts{Label: 0, TP: 0, Predicted: 1, Support: 1}, counts[1])
}

func TestCountClasses_CollapsesSignedZero(t *testing.T) {
	counts, err := CountClasses(
		[]float64{0, 1, 1},
		[]float64{math.Copysign(0, -1), 1, 0},
	)
	require.NoError(t, err)
	require.Len(t, counts, 2)

	assert.Equal(t, ClassCounts{Label: 0, TP: 1, Predicted: 2, Support: 1}, counts[0], "-0 should match 0")
}

func TestClassification_RejectsContinuousLabels(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		wantMsg string
	}{
		{"probabilities", []float64{0, 1, 1, 0}, []float64{0.1, 0.9, 0.8, 0.2}, "prediction 0 is 0.1"},
		{"NaN prediction", []float64{0, 1}, []float64{0, math.NaN()}, "prediction 1 is NaN"},
		{"infinite prediction", []float64{0, 1}, []float64{math.Inf(1), 1}, "prediction 0 is +Inf"},
		{"continuous truth", []float64{0.5, 1}, []float64{0, 1}, "true value 0 is 0.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classification(tt.yTrue, tt.yPred)
			require.ErrorIs(t, err, ErrContinuousLabels)
			assert.Contains(t, err.Error(), tt.wantMsg)

			_, err = Accuracy(tt.yTrue, tt.yPred)
			require.ErrorIs(t, err, ErrContinuousLabels)
		})
	}
}

func TestClassification_Errors(t *testing.T) {
	_, err := Classification([]float64{1, 0}, []float64{1})
	require.ErrorIs(t, err, ErrLengthMismatch)
	assert.Contains(t, err.Error(), "2 true values, 1 predictions")

	_, err = Accuracy(nil, nil)
	require.ErrorIs(t, err, ErrEmpty)
}
