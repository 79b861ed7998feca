// Package predictors provides the built-in, already-parameterised models a
// benchmark suite can reference by type.
package predictors

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/quickbench/quickbench/bench"
	"github.com/quickbench/quickbench/internal/dataset"
)

// Type names a built-in predictor, as written in a suite file.
type Type string

const (
	// TypeConstant predicts the same value for every row.
	TypeConstant Type = "constant"

	// TypeColumn replays a column of the test set, typically predictions
	// exported from another system.
	TypeColumn Type = "column"

	// TypeLinear scores rows with a fixed linear model, optionally
	// thresholded into 0/1 class labels.
	TypeLinear Type = "linear"
)

// Types lists every built-in predictor type.
var Types = []Type{TypeConstant, TypeColumn, TypeLinear}

// Predictor is a bench.Predictor over a test-set feature frame.
type Predictor = bench.Predictor[*dataset.Frame]

// Create builds the predictor of the given type from its free-form config.
// columns are the feature columns the predictor will be given, used to
// reject references to missing columns up front.
func Create(predictorType Type, params map[string]any, columns []string) (Predictor, error) {
	var (
		p   Predictor
		err error
	)

	switch predictorType {
	case TypeConstant:
		var v ConstantArgs
		if err := decode(params, &v); err != nil {
			return nil, err
		}
		p, err = NewConstant(v)
	case TypeColumn:
		var v ColumnArgs
		if err := decode(params, &v); err != nil {
			return nil, err
		}
		p, err = NewColumn(v, columns)
	case TypeLinear:
		var v LinearArgs
		if err := decode(params, &v); err != nil {
			return nil, err
		}
		p, err = NewLinear(v, columns)
	default:
		return nil, fmt.Errorf("'%s' is not a valid predictor type", predictorType)
	}

	if err != nil {
		return nil, err
	}
	return p, nil
}

func decode(params map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(params); err != nil {
		return fmt.Errorf("invalid predictor config: %w", err)
	}
	return nil
}

func hasColumn(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}

func lookup(f *dataset.Frame, name string) (int, error) {
	i := f.Index(name)
	if i < 0 {
		return 0, fmt.Errorf("column %q not in test set", name)
	}
	return i, nil
}
