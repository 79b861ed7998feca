// Package suite loads benchmark suite files: which test set to score and
// which models to score on it.
package suite

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/quickbench/quickbench/bench"
	"github.com/quickbench/quickbench/internal/dataset"
	"github.com/quickbench/quickbench/internal/predictors"
	"gopkg.in/yaml.v3"
)

// Suite is a complete benchmark definition.
type Suite struct {
	Name        string        `yaml:"name" json:"name"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`
	Dataset     DatasetConfig `yaml:"dataset" json:"dataset"`
	Models      []ModelConfig `yaml:"models" json:"models"`

	// dir is the directory the suite was loaded from.
	dir string
}

// DatasetConfig locates the held-out test set.
type DatasetConfig struct {
	Path   string `yaml:"path" json:"path"`
	Target string `yaml:"target" json:"target"`
	Start  int    `yaml:"start,omitempty" json:"start,omitempty"`
	End    int    `yaml:"end,omitempty" json:"end,omitempty"`
}

// ModelConfig declares one model to benchmark.
type ModelConfig struct {
	Name       string          `yaml:"name" json:"name"`
	Type       predictors.Type `yaml:"type" json:"type"`
	Parameters map[string]any  `yaml:"config,omitempty" json:"parameters,omitempty"`
}

// Load reads and validates a suite file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// Parse decodes and validates suite YAML.
func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that the suite is usable
func (s *Suite) Validate() error {
	if s.Dataset.Path == "" {
		return fmt.Errorf("dataset.path is required")
	}
	if s.Dataset.Target == "" {
		return fmt.Errorf("dataset.target is required")
	}
	if s.Dataset.Start < 0 {
		return fmt.Errorf("dataset.start must be >= 1, got %d", s.Dataset.Start)
	}
	if s.Dataset.End != 0 && s.Dataset.End < max(s.Dataset.Start, 1) {
		return fmt.Errorf("dataset.end (%d) must be >= dataset.start (%d)", s.Dataset.End, s.Dataset.Start)
	}
	if len(s.Models) == 0 {
		return fmt.Errorf("at least one model is required")
	}

	seen := make(map[string]bool, len(s.Models))
	for i, m := range s.Models {
		if m.Name == "" {
			return fmt.Errorf("models[%d].name is required", i)
		}
		if seen[m.Name] {
			return fmt.Errorf("models[%d]: duplicate model name %q", i, m.Name)
		}
		seen[m.Name] = true
		if m.Type == "" {
			return fmt.Errorf("models[%d].type is required", i)
		}
	}
	return nil
}

// DatasetPath returns the dataset path, resolved relative to the suite file
// unless it is absolute.
func (s *Suite) DatasetPath() string {
	if filepath.IsAbs(s.Dataset.Path) {
		return s.Dataset.Path
	}
	return filepath.Join(s.dir, s.Dataset.Path)
}

// LoadDataset loads the suite's test set.
func (s *Suite) LoadDataset() (*dataset.TestSet, error) {
	return dataset.Load(s.DatasetPath(), dataset.Options{
		Target: s.Dataset.Target,
		Start:  s.Dataset.Start,
		End:    s.Dataset.End,
	})
}

// BuildModels creates every declared predictor, in declaration order.
func (s *Suite) BuildModels(columns []string) ([]bench.Model[*dataset.Frame], error) {
	models := make([]bench.Model[*dataset.Frame], 0, len(s.Models))
	for _, m := range s.Models {
		p, err := predictors.Create(m.Type, m.Parameters, columns)
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", m.Name, err)
		}
		models = append(models, bench.Model[*dataset.Frame]{Name: m.Name, Predictor: p})
	}
	return models, nil
}
