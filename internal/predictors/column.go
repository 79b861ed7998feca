package predictors

import (
	"fmt"

	"github.com/quickbench/quickbench/internal/dataset"
)

// ColumnArgs configures a column predictor.
type ColumnArgs struct {
	// Column holds precomputed predictions, one per row.
	Column string `mapstructure:"column"`
}

type column struct {
	name string
}

// NewColumn returns a predictor that replays args.Column.
func NewColumn(args ColumnArgs, columns []string) (*column, error) {
	if args.Column == "" {
		return nil, fmt.Errorf("column predictor requires 'column'")
	}
	if !hasColumn(columns, args.Column) {
		return nil, fmt.Errorf("column %q not in test set", args.Column)
	}
	return &column{name: args.Column}, nil
}

func (c *column) Predict(f *dataset.Frame) ([]float64, error) {
	if _, err := lookup(f, c.name); err != nil {
		return nil, err
	}
	values, _ := f.Column(c.name)
	return values, nil
}
