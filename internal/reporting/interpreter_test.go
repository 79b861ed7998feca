package reporting

import (
	"math"
	"testing"

	"github.com/quickbench/quickbench/bench"
	"github.com/stretchr/testify/assert"
)

func TestInterpretScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"excellent high", 0.95, "Excellent (>90%)"},
		{"excellent boundary", 0.91, "Excellent (>90%)"},
		{"good high", 0.90, "Good (70-90%)"},
		{"good mid", 0.80, "Good (70-90%)"},
		{"good low", 0.70, "Good (70-90%)"},
		{"needs work high", 0.69, "Needs Work (50-70%)"},
		{"needs work low", 0.50, "Needs Work (50-70%)"},
		{"poor high", 0.49, "Poor (<50%)"},
		{"poor zero", 0.0, "Poor (<50%)"},
		{"negative r2", -3.2, "Poor (<50%)"},
		{"nan", math.NaN(), "Undefined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InterpretScore(tt.score))
		})
	}
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "", Summary(&bench.ScoreTable{Problem: bench.Regression}))

	table := &bench.ScoreTable{
		Problem: bench.Classification,
		Rows:    []bench.Row{{ModelType: bench.Classification, Name: "knn", PrimaryScore: 0.6}},
	}
	assert.Equal(t, "Best model: knn (accuracy 0.6000, Needs Work (50-70%))", Summary(table))
}
