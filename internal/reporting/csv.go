package reporting

import (
	"encoding/csv"
	"io"

	"github.com/quickbench/quickbench/bench"
)

// WriteCSV writes the column header and one record per row.
func WriteCSV(w io.Writer, t *bench.ScoreTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns()); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Records()); err != nil {
		return err
	}
	return cw.Error()
}
