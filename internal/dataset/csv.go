// Package dataset loads held-out test sets from CSV files.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Frame is a numeric table: one row per sample, one column per feature.
type Frame struct {
	Columns []string
	Rows    [][]float64
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.Rows)
}

// Index returns the position of the named column, or -1.
func (f *Frame) Index(name string) int {
	for i, c := range f.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns a copy of the named column's values.
func (f *Frame) Column(name string) ([]float64, bool) {
	i := f.Index(name)
	if i < 0 {
		return nil, false
	}
	values := make([]float64, len(f.Rows))
	for r, row := range f.Rows {
		values[r] = row[i]
	}
	return values, true
}

// TestSet is a loaded test set: features plus the true target values.
type TestSet struct {
	Path     string
	Target   string
	Features *Frame
	Targets  []float64
}

// Options selects the target column and an optional row range.
type Options struct {
	// Target names the column holding the true values. Required.
	Target string

	// Start and End select data rows [Start, End], 1-based and inclusive,
	// where row 1 is the first row after the header. Zero means unbounded.
	Start int
	End   int
}

func (o Options) validate() error {
	if o.Target == "" {
		return fmt.Errorf("csv: target column is required")
	}
	if o.Start < 0 {
		return fmt.Errorf("csv: range start must be >= 1, got %d", o.Start)
	}
	if o.End != 0 && o.End < max(o.Start, 1) {
		return fmt.Errorf("csv: range end (%d) must be >= start (%d)", o.End, o.Start)
	}
	return nil
}

// Load reads a CSV test set. Files ending in .gz are decompressed.
// Every cell must parse as a float64; the target column is split off and the
// remaining columns become the feature frame.
func Load(path string, opts Options) (*TestSet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	headers := records[0]
	targetIdx := -1
	for i, h := range headers {
		if h == opts.Target {
			targetIdx = i
			break
		}
	}
	if targetIdx < 0 {
		return nil, fmt.Errorf("csv: %s has no column %q", path, opts.Target)
	}

	data := selectRange(records[1:], opts.Start, opts.End)

	features := &Frame{
		Columns: make([]string, 0, len(headers)-1),
		Rows:    make([][]float64, 0, len(data)),
	}
	for i, h := range headers {
		if i != targetIdx {
			features.Columns = append(features.Columns, h)
		}
	}

	targets := make([]float64, 0, len(data))
	firstRow := max(opts.Start, 1)
	for i, record := range data {
		// +1 for the header line
		line := firstRow + i + 1
		row := make([]float64, 0, len(headers)-1)
		for j, cell := range record {
			v, err := parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("csv: %s line %d column %q: %w", path, line, headers[j], err)
			}
			if j == targetIdx {
				targets = append(targets, v)
				continue
			}
			row = append(row, v)
		}
		features.Rows = append(features.Rows, row)
	}

	return &TestSet{
		Path:     path,
		Target:   opts.Target,
		Features: features,
		Targets:  targets,
	}, nil
}

func readRecords(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("csv: gunzip %s: %w", path, err)
		}
		defer zr.Close() //nolint:errcheck
		r = zr
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: parse %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("csv: %s is empty (no header row)", path)
	}
	return records, nil
}

// selectRange clamps [start, end] to the available rows.
func selectRange(rows [][]string, start, end int) [][]string {
	if start < 1 {
		start = 1
	}
	if end == 0 || end > len(rows) {
		end = len(rows)
	}
	if start > len(rows) {
		return nil
	}
	return rows[start-1 : end]
}

func parseCell(cell string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", cell)
	}
	return v, nil
}
