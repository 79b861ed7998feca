package timer

import (
	"io"
	"os"
	"slices"
	"time"
)

// DefaultBlockLabel names a Scope started without WithLabel.
const DefaultBlockLabel = "Block"

type config struct {
	label string
	out   io.Writer
}

// Option configures a Scope or a wrapped function.
type Option func(*config)

// WithLabel names the report line.
func WithLabel(label string) Option {
	return func(c *config) {
		c.label = label
	}
}

// WithWriter sets where report lines go. Defaults to os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		c.out = w
	}
}

func newConfig(opts []Option) *config {
	c := &config{out: os.Stdout}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Scope times one block. A Scope is owned by a single goroutine; start a
// new one for every block.
type Scope struct {
	cfg     *config
	label   string
	start   time.Time
	elapsed time.Duration
	stopped bool
}

// Start begins timing a block. Pair it with a deferred Stop so the report
// is printed however the block exits.
func Start(opts ...Option) *Scope {
	cfg := newConfig(opts)
	label := cfg.label
	if label == "" {
		label = DefaultBlockLabel
	}
	return &Scope{cfg: cfg, label: label, start: time.Now()}
}

// Stop records the elapsed time and prints the report. Only the first call
// reports; later calls return the recorded duration.
func (s *Scope) Stop() time.Duration {
	if s.stopped {
		return s.elapsed
	}
	s.elapsed = time.Since(s.start)
	s.stopped = true
	report(s.cfg, s.label, s.elapsed)
	return s.elapsed
}

// Elapsed returns the time since Start, or the final duration once stopped.
func (s *Scope) Elapsed() time.Duration {
	if s.stopped {
		return s.elapsed
	}
	return time.Since(s.start)
}

// Label returns the name used in the report line.
func (s *Scope) Label() string {
	return s.label
}

// Time runs fn inside a Scope named label and returns fn's error unchanged.
func Time(label string, fn func() error, opts ...Option) error {
	s := Start(append(slices.Clone(opts), WithLabel(label))...)
	defer s.Stop()
	return fn()
}
