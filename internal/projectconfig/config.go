// Package projectconfig provides the ProjectConfig struct and loader for
// .quickbench.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up by Load.
const FileName = ".quickbench.yaml"

// maxSearchDepth bounds how many directories Load walks up.
const maxSearchDepth = 10

// Default values for project configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultSuite        = "bench.yaml"
	DefaultOutputFormat = "table"
)

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format  string `yaml:"format,omitempty"`
	Spinner *bool  `yaml:"spinner,omitempty"`
}

// GateConfig holds the pass/fail gate. Every model whose Primary Score is
// below MinScore fails.
type GateConfig struct {
	MinScore *float64 `yaml:"min_score,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .quickbench.yaml.
type ProjectConfig struct {
	Suite  string       `yaml:"suite,omitempty"`
	Output OutputConfig `yaml:"output,omitempty"`
	Gate   GateConfig   `yaml:"gate,omitempty"`

	// Path is the file the config was read from, empty when defaults are used.
	Path string `yaml:"-"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Suite: DefaultSuite,
		Output: OutputConfig{
			Format:  DefaultOutputFormat,
			Spinner: boolPtr(true),
		},
	}
}

// SuitePath resolves the configured suite relative to the directory that
// holds the config file. Absolute paths and default configs are returned as is.
func (c *ProjectConfig) SuitePath() string {
	if c.Path == "" || filepath.IsAbs(c.Suite) {
		return c.Suite
	}
	return filepath.Join(filepath.Dir(c.Path), c.Suite)
}

// SpinnerEnabled reports whether progress spinners may be shown.
func (c *ProjectConfig) SpinnerEnabled() bool {
	return c.Output.Spinner == nil || *c.Output.Spinner
}

// Load finds .quickbench.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	path, data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	mergeConfig(cfg, &fileCfg)
	cfg.Path = path
	return cfg, nil
}

// findConfigFile walks up from dir looking for .quickbench.yaml.
// Returns os.ErrNotExist if no config file is found. Real I/O errors
// (e.g. permission denied) are propagated.
func findConfigFile(dir string) (string, []byte, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for range maxSearchDepth {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return p, data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return "", nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Suite != "" {
		dst.Suite = src.Suite
	}

	// Output
	if src.Output.Format != "" {
		dst.Output.Format = src.Output.Format
	}
	if src.Output.Spinner != nil {
		dst.Output.Spinner = src.Output.Spinner
	}

	// Gate
	if src.Gate.MinScore != nil {
		dst.Gate.MinScore = src.Gate.MinScore
	}
}

func boolPtr(b bool) *bool {
	return &b
}
