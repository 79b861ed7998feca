package predictors

import (
	"testing"

	"github.com/quickbench/quickbench/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame() *dataset.Frame {
	return &dataset.Frame{
		Columns: []string{"x1", "x2", "xgb_pred"},
		Rows: [][]float64{
			{1, 0, 1},
			{0, 2, 0},
			{3, 1, 1},
		},
	}
}

func TestCreate(t *testing.T) {
	frame := testFrame()

	tests := []struct {
		name   string
		kind   Type
		params map[string]any
		want   []float64
	}{
		{
			name:   "constant int value",
			kind:   TypeConstant,
			params: map[string]any{"value": 1},
			want:   []float64{1, 1, 1},
		},
		{
			name:   "constant default zero",
			kind:   TypeConstant,
			params: nil,
			want:   []float64{0, 0, 0},
		},
		{
			name:   "column replay",
			kind:   TypeColumn,
			params: map[string]any{"column": "xgb_pred"},
			want:   []float64{1, 0, 1},
		},
		{
			name:   "linear identity",
			kind:   TypeLinear,
			params: map[string]any{"intercept": 0.5, "weights": map[string]any{"x1": 2, "x2": -1}},
			want:   []float64{2.5, -1.5, 5.5},
		},
		{
			name: "linear thresholded",
			kind: TypeLinear,
			params: map[string]any{
				"weights":   map[string]any{"x1": 1.0},
				"threshold": 1,
			},
			want: []float64{1, 0, 1},
		},
		{
			name: "linear logistic thresholded",
			kind: TypeLinear,
			params: map[string]any{
				"intercept": -1,
				"weights":   map[string]any{"x2": 1},
				"link":      "logistic",
				"threshold": 0.5,
			},
			want: []float64{0, 1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Create(tt.kind, tt.params, frame.Columns)
			require.NoError(t, err)

			got, err := p.Predict(frame)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, got, 1e-12)
		})
	}
}

func TestCreate_Errors(t *testing.T) {
	columns := testFrame().Columns

	tests := []struct {
		name    string
		kind    Type
		params  map[string]any
		wantErr string
	}{
		{"unknown type", "forest", nil, "'forest' is not a valid predictor type"},
		{"unknown key", TypeConstant, map[string]any{"value": 1, "valu": 2}, "invalid predictor config"},
		{"wrong value type", TypeConstant, map[string]any{"value": "high"}, "invalid predictor config"},
		{"column missing name", TypeColumn, map[string]any{}, "requires 'column'"},
		{"column not in test set", TypeColumn, map[string]any{"column": "lgbm_pred"}, `column "lgbm_pred" not in test set`},
		{"weight for unknown column", TypeLinear, map[string]any{"weights": map[string]any{"x9": 1}}, `weight for column "x9"`},
		{"bad link", TypeLinear, map[string]any{"link": "probit"}, `unknown link "probit"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Create(tt.kind, tt.params, columns)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPredict_FrameWithoutColumn(t *testing.T) {
	p, err := Create(TypeColumn, map[string]any{"column": "x1"}, []string{"x1"})
	require.NoError(t, err)

	_, err = p.Predict(&dataset.Frame{Columns: []string{"other"}, Rows: [][]float64{{1}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "x1" not in test set`)
}

func TestTypes(t *testing.T) {
	for _, kind := range Types {
		_, err := Create(kind, nil, nil)
		if err != nil {
			assert.NotContains(t, err.Error(), "is not a valid predictor type", kind)
		}
	}
}
