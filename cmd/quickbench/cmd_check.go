package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/quickbench/quickbench/internal/projectconfig"
	"github.com/quickbench/quickbench/internal/suite"
	"github.com/quickbench/quickbench/internal/validation"
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [suite.yaml ...]",
		Short: "Validate suite files without running them",
		Long: `Validate one or more suite files against the suite schema and the
semantic rules applied by "run" (unique model names, known predictor types,
valid row ranges).

With no arguments the suite named in .quickbench.yaml is checked.`,
		RunE: runCheck,
	}
	cmd.Flags().String("format", "text", "Output format: text | json")
	return cmd
}

type checkResult struct {
	Path   string   `json:"path"`
	Valid  bool     `json:"valid"`
	Models int      `json:"models"`
	Errors []string `json:"errors,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("unsupported format %q: must be text or json", format)
	}

	paths := args
	if len(paths) == 0 {
		cfg, err := projectconfig.Load(".")
		if err != nil {
			return err
		}
		paths = []string{cfg.SuitePath()}
	}

	results := make([]checkResult, 0, len(paths))
	invalid := 0
	for _, p := range paths {
		r := checkSuite(p)
		if !r.Valid {
			invalid++
		}
		results = append(results, r)
	}

	w := cmd.OutOrStdout()
	if format == "json" {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return err
		}
	} else {
		printCheckResults(w, results)
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d suite files invalid", invalid, len(results))
	}
	return nil
}

func checkSuite(path string) checkResult {
	r := checkResult{Path: path}
	problems, err := validation.ValidateSuiteFile(path)
	if err != nil {
		r.Errors = []string{err.Error()}
		return r
	}
	if len(problems) > 0 {
		r.Errors = problems
		return r
	}

	// The schema cannot express cross-field rules such as unique names.
	s, err := suite.Load(path)
	if err != nil {
		r.Errors = []string{err.Error()}
		return r
	}
	r.Valid = true
	r.Models = len(s.Models)
	return r
}

func printCheckResults(w io.Writer, results []checkResult) {
	width := 0
	for _, r := range results {
		width = max(width, runewidth.StringWidth(r.Path))
	}

	var b strings.Builder
	for _, r := range results {
		if r.Valid {
			fmt.Fprintf(&b, "✅ %s  %d models\n", padRight(r.Path, width), r.Models)
			continue
		}
		fmt.Fprintf(&b, "❌ %s  invalid\n", padRight(r.Path, width))
		for _, e := range r.Errors {
			fmt.Fprintf(&b, "   - %s\n", e)
		}
	}
	fmt.Fprint(w, b.String()) //nolint:errcheck
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
