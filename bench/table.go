package bench

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"time"
)

// NotApplicable fills the fourth metric column of classification rows.
const NotApplicable = "N/A"

var (
	classificationColumns = []string{"Model Type", "Name", "Primary Score", "F1 Score", "Precision", "Metric 4", "Latency (s)"}
	regressionColumns     = []string{"Model Type", "Name", "Primary Score", "R-Squared", "MSE", "RMSE", "Latency (s)"}
)

// Row is one model's result. Scores and Latency are rounded to four decimal
// places; Elapsed keeps the full monotonic measurement.
//
// Classification rows fill F1Score and Precision; regression rows fill
// RSquared, MSE and RMSE.
type Row struct {
	ModelType    ProblemType
	Name         string
	PrimaryScore float64

	F1Score   float64
	Precision float64

	RSquared float64
	MSE      float64
	RMSE     float64

	Latency float64
	Elapsed time.Duration
}

// SortKey is F1Score for classification rows and RSquared for regression rows.
func (r Row) SortKey() float64 {
	if r.ModelType == Classification {
		return r.F1Score
	}
	return r.RSquared
}

// Cells renders the row in column order.
func (r Row) Cells() []string {
	cells := []string{r.ModelType.String(), r.Name, formatScore(r.PrimaryScore)}
	if r.ModelType == Classification {
		cells = append(cells, formatScore(r.F1Score), formatScore(r.Precision), NotApplicable)
	} else {
		cells = append(cells, formatScore(r.RSquared), formatScore(r.MSE), formatScore(r.RMSE))
	}
	return append(cells, formatScore(r.Latency))
}

// ScoreTable is the ranked result of one Run.
type ScoreTable struct {
	Problem ProblemType
	Rows    []Row
}

// Columns returns the column names for the table's problem type.
func (t *ScoreTable) Columns() []string {
	if t.Problem == Classification {
		return append([]string(nil), classificationColumns...)
	}
	return append([]string(nil), regressionColumns...)
}

// Records returns every row rendered as cells, in rank order.
func (t *ScoreTable) Records() [][]string {
	records := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		records = append(records, r.Cells())
	}
	return records
}

// Len returns the number of rows.
func (t *ScoreTable) Len() int {
	return len(t.Rows)
}

// Best returns the top-ranked row.
func (t *ScoreTable) Best() (Row, bool) {
	if len(t.Rows) == 0 {
		return Row{}, false
	}
	return t.Rows[0], true
}

// sort orders rows descending by SortKey. Ties keep their relative order and
// NaN keys sort last.
func (t *ScoreTable) sort() {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		a, b := t.Rows[i].SortKey(), t.Rows[j].SortKey()
		if math.IsNaN(a) {
			return false
		}
		if math.IsNaN(b) {
			return true
		}
		return a > b
	})
}

type score float64

func (s score) MarshalJSON() ([]byte, error) {
	f := float64(s)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'f', -1, 64), nil
}

type rowJSON struct {
	ModelType    ProblemType `json:"model_type"`
	Name         string      `json:"name"`
	PrimaryScore score       `json:"primary_score"`
	F1Score      *score      `json:"f1_score,omitempty"`
	Precision    *score      `json:"precision,omitempty"`
	Metric4      string      `json:"metric_4,omitempty"`
	RSquared     *score      `json:"r_squared,omitempty"`
	MSE          *score      `json:"mse,omitempty"`
	RMSE         *score      `json:"rmse,omitempty"`
	LatencyS     score       `json:"latency_s"`
}

// MarshalJSON encodes the table as its problem type, column names and rows.
func (t *ScoreTable) MarshalJSON() ([]byte, error) {
	rows := make([]rowJSON, 0, len(t.Rows))
	for _, r := range t.Rows {
		rj := rowJSON{
			ModelType:    r.ModelType,
			Name:         r.Name,
			PrimaryScore: score(r.PrimaryScore),
			LatencyS:     score(r.Latency),
		}
		if r.ModelType == Classification {
			rj.F1Score = scorePtr(r.F1Score)
			rj.Precision = scorePtr(r.Precision)
			rj.Metric4 = NotApplicable
		} else {
			rj.RSquared = scorePtr(r.RSquared)
			rj.MSE = scorePtr(r.MSE)
			rj.RMSE = scorePtr(r.RMSE)
		}
		rows = append(rows, rj)
	}

	return json.Marshal(struct {
		ProblemType ProblemType `json:"problem_type"`
		Columns     []string    `json:"columns"`
		Rows        []rowJSON   `json:"rows"`
	}{t.Problem, t.Columns(), rows})
}

func scorePtr(v float64) *score {
	s := score(v)
	return &s
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
