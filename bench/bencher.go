package bench

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/quickbench/quickbench/internal/metrics"
)

var (
	// ErrNoModels is returned by NewBencher when the model list is empty.
	ErrNoModels = errors.New("bench: no models to benchmark")

	// ErrNoTargets is returned by NewBencher when there are no true target values.
	ErrNoTargets = errors.New("bench: no true target values")

	// ErrDuplicateModel is returned by NewBencher when two models share a name.
	ErrDuplicateModel = errors.New("bench: duplicate model name")
)

type options struct {
	out    io.Writer
	logger *slog.Logger
}

// Option configures a Bencher.
type Option func(*options)

// WithOutput sets where the progress line is written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithLogger sets the logger used for per-model debug records.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Bencher scores a fixed set of models against one test set.
// It is not safe for concurrent use.
type Bencher[X any] struct {
	models  []Model[X]
	inputs  X
	targets []float64
	problem ProblemType

	out    io.Writer
	logger *slog.Logger
}

// NewBencher validates the request and infers the problem type from targets.
// Models are evaluated and reported in the order given.
func NewBencher[X any](models []Model[X], inputs X, targets []float64, opts ...Option) (*Bencher[X], error) {
	if len(models) == 0 {
		return nil, ErrNoModels
	}
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}

	seen := make(map[string]struct{}, len(models))
	for i, m := range models {
		if m.Name == "" {
			return nil, fmt.Errorf("bench: model %d has no name", i)
		}
		if m.Predictor == nil {
			return nil, fmt.Errorf("bench: model %q has no predictor", m.Name)
		}
		if _, dup := seen[m.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateModel, m.Name)
		}
		seen[m.Name] = struct{}{}
	}

	o := options{out: os.Stdout, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Bencher[X]{
		models:  slices.Clone(models),
		inputs:  inputs,
		targets: slices.Clone(targets),
		problem: InferProblemType(targets),
		out:     o.out,
		logger:  o.logger,
	}, nil
}

// ProblemType returns the problem type inferred at construction.
func (b *Bencher[X]) ProblemType() ProblemType {
	return b.problem
}

// Run evaluates every model once and returns the ranked table. The first
// predictor or metric error aborts the run; no partial table is returned.
func (b *Bencher[X]) Run() (*ScoreTable, error) {
	fmt.Fprintf(b.out, "📊 Starting ML Benchmark (%s) on %d models...\n", b.problem, len(b.models)) //nolint:errcheck

	rows := make([]Row, 0, len(b.models))
	for _, m := range b.models {
		row, err := b.evaluate(m)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	table := &ScoreTable{Problem: b.problem, Rows: rows}
	table.sort()
	return table, nil
}

func (b *Bencher[X]) evaluate(m Model[X]) (Row, error) {
	start := time.Now()
	preds, err := m.Predictor.Predict(b.inputs)
	elapsed := time.Since(start)
	if err != nil {
		return Row{}, fmt.Errorf("model %q: predict: %w", m.Name, err)
	}

	row := Row{
		ModelType: b.problem,
		Name:      m.Name,
		Latency:   metrics.Round4(elapsed.Seconds()),
		Elapsed:   elapsed,
	}

	switch b.problem {
	case Classification:
		s, err := metrics.Classification(b.targets, preds)
		if err != nil {
			return Row{}, fmt.Errorf("model %q: %w", m.Name, err)
		}
		row.PrimaryScore = metrics.Round4(s.Accuracy)
		row.F1Score = metrics.Round4(s.F1)
		row.Precision = metrics.Round4(s.Precision)
	case Regression:
		s, err := metrics.Regression(b.targets, preds)
		if err != nil {
			return Row{}, fmt.Errorf("model %q: %w", m.Name, err)
		}
		row.PrimaryScore = metrics.Round4(s.R2)
		row.RSquared = metrics.Round4(s.R2)
		row.MSE = metrics.Round4(s.MSE)
		row.RMSE = metrics.Round4(s.RMSE)
	}

	b.logger.Debug("Model evaluated",
		"model", m.Name,
		"problem", b.problem.String(),
		"latency", elapsed,
		"primary_score", row.PrimaryScore,
	)

	return row, nil
}

