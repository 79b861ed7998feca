package predictors

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/quickbench/quickbench/internal/dataset"
)

const (
	LinkIdentity = "identity"
	LinkLogistic = "logistic"
)

// LinearArgs configures a linear predictor:
//
//	score = link(intercept + Σ weights[c] * row[c])
//
// With Threshold set the prediction is 1 when score >= Threshold, else 0.
type LinearArgs struct {
	Intercept float64            `mapstructure:"intercept"`
	Weights   map[string]float64 `mapstructure:"weights"`
	Link      string             `mapstructure:"link"`
	Threshold *float64           `mapstructure:"threshold"`
}

type term struct {
	column string
	weight float64
}

type linear struct {
	intercept float64
	terms     []term
	logistic  bool
	threshold *float64
}

// NewLinear validates args against the test-set columns.
func NewLinear(args LinearArgs, columns []string) (*linear, error) {
	l := &linear{intercept: args.Intercept, threshold: args.Threshold}

	switch args.Link {
	case "", LinkIdentity:
	case LinkLogistic:
		l.logistic = true
	default:
		return nil, fmt.Errorf("unknown link %q: must be %s or %s", args.Link, LinkIdentity, LinkLogistic)
	}

	// sorted for a deterministic summation order
	for _, name := range slices.Sorted(maps.Keys(args.Weights)) {
		if !hasColumn(columns, name) {
			return nil, fmt.Errorf("weight for column %q not in test set", name)
		}
		l.terms = append(l.terms, term{column: name, weight: args.Weights[name]})
	}
	return l, nil
}

func (l *linear) Predict(f *dataset.Frame) ([]float64, error) {
	idx := make([]int, len(l.terms))
	for i, t := range l.terms {
		j, err := lookup(f, t.column)
		if err != nil {
			return nil, err
		}
		idx[i] = j
	}

	preds := make([]float64, len(f.Rows))
	for r, row := range f.Rows {
		s := l.intercept
		for i, t := range l.terms {
			s += t.weight * row[idx[i]]
		}
		if l.logistic {
			s = 1 / (1 + math.Exp(-s))
		}
		if l.threshold != nil {
			if s >= *l.threshold {
				s = 1
			} else {
				s = 0
			}
		}
		preds[r] = s
	}
	return preds, nil
}
