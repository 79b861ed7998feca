package reporting

import (
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown writes the table as a GitHub-flavored markdown table.
func WriteMarkdown(w io.Writer, r *Report) error {
	var b strings.Builder

	title := r.Suite
	if title == "" {
		title = "Benchmark"
	}
	fmt.Fprintf(&b, "## %s (%s)\n\n", title, r.Table.Problem)

	columns := r.Table.Columns()
	b.WriteString("| " + strings.Join(columns, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(columns)) + "\n")
	for _, rec := range r.Table.Records() {
		for i := range rec {
			rec[i] = escapeMarkdownCell(rec[i])
		}
		b.WriteString("| " + strings.Join(rec, " | ") + " |\n")
	}

	if s := Summary(r.Table); s != "" {
		fmt.Fprintf(&b, "\n%s\n", s)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func escapeMarkdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
