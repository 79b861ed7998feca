package predictors

import "github.com/quickbench/quickbench/internal/dataset"

// ConstantArgs configures a constant predictor.
type ConstantArgs struct {
	Value float64 `mapstructure:"value"`
}

type constant struct {
	value float64
}

// NewConstant returns a predictor that always predicts args.Value.
func NewConstant(args ConstantArgs) (*constant, error) {
	return &constant{value: args.Value}, nil
}

func (c *constant) Predict(f *dataset.Frame) ([]float64, error) {
	preds := make([]float64, f.Len())
	for i := range preds {
		preds[i] = c.value
	}
	return preds, nil
}
