package bench

import (
	"fmt"
	"math"
)

// ProblemType selects the metric set every model in a run is scored with.
type ProblemType int

const (
	Classification ProblemType = iota + 1
	Regression
)

// MaxClassificationLabels is the largest number of distinct integral target
// values still treated as class labels.
const MaxClassificationLabels = 20

// InferProblemType decides between Classification and Regression from the
// true target values: Classification when every value is integral and there
// are at most MaxClassificationLabels distinct values, Regression otherwise.
//
// The rule is a heuristic. An integer-valued regression target with few
// distinct values (counts, ratings) is reported as Classification.
func InferProblemType(targets []float64) ProblemType {
	distinct := make(map[float64]struct{}, MaxClassificationLabels+1)
	for _, v := range targets {
		if !isIntegral(v) {
			return Regression
		}
		distinct[v] = struct{}{}
	}
	if len(distinct) > MaxClassificationLabels {
		return Regression
	}
	return Classification
}

func isIntegral(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v == math.Trunc(v)
}

func (p ProblemType) String() string {
	switch p {
	case Classification:
		return "Classification"
	case Regression:
		return "Regression"
	default:
		return fmt.Sprintf("ProblemType(%d)", int(p))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p ProblemType) MarshalText() ([]byte, error) {
	switch p {
	case Classification, Regression:
		return []byte(p.String()), nil
	}
	return nil, fmt.Errorf("bench: invalid problem type %d", int(p))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *ProblemType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Classification", "classification":
		*p = Classification
	case "Regression", "regression":
		*p = Regression
	default:
		return fmt.Errorf("bench: unknown problem type %q", text)
	}
	return nil
}
