package reporting

import (
	"fmt"
	"math"

	"github.com/quickbench/quickbench/bench"
)

// InterpretScore returns a plain-language label for a Primary Score (0-1).
func InterpretScore(score float64) string {
	switch {
	case math.IsNaN(score):
		return "Undefined"
	case score > 0.9:
		return "Excellent (>90%)"
	case score >= 0.7:
		return "Good (70-90%)"
	case score >= 0.5:
		return "Needs Work (50-70%)"
	default:
		return "Poor (<50%)"
	}
}

// primaryMetric names what Primary Score means for a problem type.
func primaryMetric(p bench.ProblemType) string {
	if p == bench.Classification {
		return "accuracy"
	}
	return "R²"
}

// Summary describes the top-ranked model in one line. It returns an empty
// string for an empty table.
func Summary(t *bench.ScoreTable) string {
	best, ok := t.Best()
	if !ok {
		return ""
	}
	return fmt.Sprintf("Best model: %s (%s %.4f, %s)",
		best.Name, primaryMetric(t.Problem), best.PrimaryScore, InterpretScore(best.PrimaryScore))
}
