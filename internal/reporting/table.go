package reporting

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// WriteTable writes an aligned text table followed by a one-line summary of
// the best model and, when a gate is set, the gate outcome.
func WriteTable(w io.Writer, r *Report) error {
	t := r.Table
	columns := t.Columns()
	records := t.Records()

	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = runewidth.StringWidth(c)
	}
	for _, rec := range records {
		for i, cell := range rec {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder
	writeTableLine(&b, columns, widths)
	rule := make([]string, len(widths))
	for i, n := range widths {
		rule[i] = strings.Repeat("-", n)
	}
	writeTableLine(&b, rule, widths)
	for _, rec := range records {
		writeTableLine(&b, rec, widths)
	}

	if s := Summary(t); s != "" {
		fmt.Fprintf(&b, "\n%s\n", s)
	}
	if r.MinScore != nil {
		failed := r.Failures()
		if len(failed) == 0 {
			fmt.Fprintf(&b, "✅ All %d models reached min score %.4f\n", t.Len(), *r.MinScore)
		} else {
			names := make([]string, len(failed))
			for i, row := range failed {
				names[i] = row.Name
			}
			fmt.Fprintf(&b, "❌ %d of %d models below min score %.4f: %s\n",
				len(failed), t.Len(), *r.MinScore, strings.Join(names, ", "))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTableLine(b *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == len(cells)-1 {
			b.WriteString(cell)
			continue
		}
		b.WriteString(padRight(cell, widths[i]))
	}
	b.WriteByte('\n')
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
