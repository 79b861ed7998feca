// Package reporting renders benchmark score tables for people and machines.
package reporting

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/quickbench/quickbench/bench"
)

// Format names an output rendering.
type Format string

const (
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatJUnit    Format = "junit"
)

// Formats lists every supported format in display order.
var Formats = []Format{FormatTable, FormatMarkdown, FormatJSON, FormatCSV, FormatJUnit}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Formats, f) {
		return f, nil
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("unknown output format %q (supported: %s)", s, strings.Join(names, ", "))
}

// Machine reports whether the format is meant to be parsed by another program.
// Progress output must stay off stdout for these.
func (f Format) Machine() bool {
	switch f {
	case FormatJSON, FormatCSV, FormatJUnit:
		return true
	}
	return false
}

// Report is a ranked score table plus the context it was produced in.
type Report struct {
	Suite     string
	Dataset   string
	Samples   int
	Timestamp time.Time
	// MinScore is the optional Primary Score gate.
	MinScore *float64
	Table    *bench.ScoreTable
}

// Failed reports whether row falls below the report's score gate.
// Rows never fail when no gate is set.
func (r *Report) Failed(row bench.Row) bool {
	if r.MinScore == nil {
		return false
	}
	// NaN compares false, so test for "not at least" rather than "less than".
	return !(row.PrimaryScore >= *r.MinScore)
}

// Failures returns the rows below the score gate, in rank order.
func (r *Report) Failures() []bench.Row {
	var failed []bench.Row
	for _, row := range r.Table.Rows {
		if r.Failed(row) {
			failed = append(failed, row)
		}
	}
	return failed
}

// Write renders r to w in the requested format.
func Write(w io.Writer, format Format, r *Report) error {
	switch format {
	case FormatTable:
		return WriteTable(w, r)
	case FormatMarkdown:
		return WriteMarkdown(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatCSV:
		return WriteCSV(w, r.Table)
	case FormatJUnit:
		return WriteJUnit(w, r)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
