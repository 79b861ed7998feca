package reporting

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/quickbench/quickbench/bench"
)

type reportJSON struct {
	Suite     string            `json:"suite,omitempty"`
	Dataset   string            `json:"dataset,omitempty"`
	Samples   int               `json:"samples"`
	Timestamp string            `json:"timestamp"`
	MinScore  *float64          `json:"min_score,omitempty"`
	Failed    []string          `json:"failed,omitempty"`
	Results   *bench.ScoreTable `json:"results"`
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	out := reportJSON{
		Suite:     r.Suite,
		Dataset:   r.Dataset,
		Samples:   r.Samples,
		Timestamp: r.Timestamp.UTC().Format(time.RFC3339),
		MinScore:  r.MinScore,
		Results:   r.Table,
	}
	for _, row := range r.Failures() {
		out.Failed = append(out.Failed, row.Name)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON report: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
