package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/quickbench/quickbench/bench"
	"github.com/quickbench/quickbench/internal/dataset"
	"github.com/quickbench/quickbench/internal/projectconfig"
	"github.com/quickbench/quickbench/internal/reporting"
	"github.com/quickbench/quickbench/internal/spinner"
	"github.com/quickbench/quickbench/internal/suite"
	"github.com/quickbench/quickbench/internal/validation"
	"github.com/quickbench/quickbench/timer"
	"github.com/spf13/cobra"
)

type runOptions struct {
	format    string
	minScore  float64
	junitPath string
	noSpinner bool
}

func newRunCommand() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run [suite.yaml]",
		Short: "Score every model in a suite",
		Long: `Score every model declared in a suite file against its test set.

With no argument the suite named in .quickbench.yaml is used (default: bench.yaml).
Machine-readable formats (json, csv, junit) keep stdout clean: progress and
timing lines go to stderr instead.

Exit codes: 0 when every model reaches --min-score (or no gate is set),
1 when one or more models fall below it, 2 on any other error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommandE(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", projectconfig.DefaultOutputFormat,
		"Output format: table, markdown, json, csv, junit")
	cmd.Flags().Float64Var(&opts.minScore, "min-score", 0, "Fail models whose Primary Score is below this value")
	cmd.Flags().StringVar(&opts.junitPath, "junit", "", "Also write JUnit XML results to this file")
	cmd.Flags().BoolVar(&opts.noSpinner, "no-spinner", false, "Disable the progress spinner")

	return cmd
}

func runCommandE(cmd *cobra.Command, args []string, opts *runOptions) error {
	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}
	if cfg.Path != "" {
		slog.Debug("Loaded project config", "path", cfg.Path)
	}

	// CLI flags override project config
	suitePath := cfg.SuitePath()
	if len(args) == 1 {
		suitePath = args[0]
	}
	formatName := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		formatName = opts.format
	}
	format, err := reporting.ParseFormat(formatName)
	if err != nil {
		return err
	}
	minScore := cfg.Gate.MinScore
	if cmd.Flags().Changed("min-score") {
		minScore = &opts.minScore
	}
	showSpinner := cfg.SpinnerEnabled() && !opts.noSpinner

	stdout := cmd.OutOrStdout()
	progress := stdout
	if format.Machine() {
		progress = cmd.ErrOrStderr()
	}

	s, err := loadSuite(suitePath)
	if err != nil {
		return err
	}

	var ts *dataset.TestSet
	err = timer.Time("load dataset", func() error {
		stop := spinner.StartIf(showSpinner, cmd.ErrOrStderr(), "Loading "+s.DatasetPath())
		defer stop()
		var err error
		ts, err = s.LoadDataset()
		return err
	}, timer.WithWriter(progress))
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	slog.Debug("Loaded dataset", "path", ts.Path, "rows", len(ts.Targets), "features", len(ts.Features.Columns))

	models, err := s.BuildModels(ts.Features.Columns)
	if err != nil {
		return err
	}

	b, err := bench.NewBencher(models, ts.Features, ts.Targets, bench.WithOutput(progress))
	if err != nil {
		return err
	}
	table, err := b.Run()
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	report := &reporting.Report{
		Suite:     suiteName(s, suitePath),
		Dataset:   ts.Path,
		Samples:   len(ts.Targets),
		Timestamp: time.Now(),
		MinScore:  minScore,
		Table:     table,
	}
	if err := reporting.Write(stdout, format, report); err != nil {
		return fmt.Errorf("failed to write %s report: %w", format, err)
	}

	if opts.junitPath != "" {
		if err := reporting.WriteJUnitXML(report, opts.junitPath); err != nil {
			return fmt.Errorf("failed to write JUnit results: %w", err)
		}
		fmt.Fprintf(progress, "JUnit results saved to: %s\n", opts.junitPath) //nolint:errcheck
	}

	if failed := report.Failures(); len(failed) > 0 {
		return &TestFailureError{
			Message: fmt.Sprintf("%d of %d models scored below min score %.4f", len(failed), table.Len(), *minScore),
		}
	}
	return nil
}

// loadSuite schema-checks the suite file before decoding it so that users see
// every structural problem at once.
func loadSuite(path string) (*suite.Suite, error) {
	problems, err := validation.ValidateSuiteFile(path)
	if err != nil {
		return nil, err
	}
	if len(problems) > 0 {
		return nil, schemaError(path, problems)
	}
	s, err := suite.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load suite: %w", err)
	}
	return s, nil
}

func schemaError(path string, problems []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s does not match the suite schema:", path)
	for _, p := range problems {
		b.WriteString("\n  - " + p)
	}
	return fmt.Errorf("%s", b.String())
}

func suiteName(s *suite.Suite, path string) string {
	if s.Name != "" {
		return s.Name
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
