// Package projectconfig provides the ProjectConfig struct and loader for
// .pathsig.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values for project configuration. New() references them and no
// other code should duplicate them.
const (
	DefaultResultsDir = "results/"

	DefaultMethod     = "combined-z"
	DefaultPercentile = 25.0
	DefaultWorkers    = 0 // 0 lets the scorer pick
	DefaultMinGenes   = 1

	// DefaultMinSensitivity of 0 disables the evaluate exit-code gate.
	DefaultMinSensitivity = 0.0
)

// PathsConfig holds output directory paths.
type PathsConfig struct {
	Results string `yaml:"results,omitempty"`
}

// ScoringConfig holds scoring method parameters.
type ScoringConfig struct {
	Method   string `yaml:"method,omitempty"`
	Workers  int    `yaml:"workers,omitempty"`
	MinGenes int    `yaml:"min_genes,omitempty"`
}

// ClassifyConfig holds classification defaults.
type ClassifyConfig struct {
	Percentile float64 `yaml:"percentile,omitempty"`
}

// EvaluateConfig holds evaluation defaults.
type EvaluateConfig struct {
	// MinSensitivity makes `pathsig evaluate` exit non-zero when the
	// classifier's sensitivity falls below it; 0 disables the gate.
	MinSensitivity float64 `yaml:"min_sensitivity,omitempty"`
	Stats          *bool   `yaml:"stats,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .pathsig.yaml.
type ProjectConfig struct {
	Paths    PathsConfig    `yaml:"paths,omitempty"`
	Scoring  ScoringConfig  `yaml:"scoring,omitempty"`
	Classify ClassifyConfig `yaml:"classify,omitempty"`
	Evaluate EvaluateConfig `yaml:"evaluate,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Paths: PathsConfig{
			Results: DefaultResultsDir,
		},
		Scoring: ScoringConfig{
			Method:   DefaultMethod,
			Workers:  DefaultWorkers,
			MinGenes: DefaultMinGenes,
		},
		Classify: ClassifyConfig{
			Percentile: DefaultPercentile,
		},
		Evaluate: EvaluateConfig{
			MinSensitivity: DefaultMinSensitivity,
			Stats:          boolPtr(false),
		},
	}
}

// Load finds .pathsig.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading .pathsig.yaml: %w", err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing .pathsig.yaml: %w", err)
	}

	// Merge file values onto defaults.
	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .pathsig.yaml (max 10 levels).
// Returns os.ErrNotExist if no config file is found. Propagates real I/O
// errors (e.g. permission denied) instead of silently swallowing them.
func findConfigFile(dir string) ([]byte, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ".pathsig.yaml")
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	// Paths
	if src.Paths.Results != "" {
		dst.Paths.Results = src.Paths.Results
	}

	// Scoring
	if src.Scoring.Method != "" {
		dst.Scoring.Method = src.Scoring.Method
	}
	if src.Scoring.Workers != 0 {
		dst.Scoring.Workers = src.Scoring.Workers
	}
	if src.Scoring.MinGenes != 0 {
		dst.Scoring.MinGenes = src.Scoring.MinGenes
	}

	// Classify
	if src.Classify.Percentile != 0 {
		dst.Classify.Percentile = src.Classify.Percentile
	}

	// Evaluate
	if src.Evaluate.MinSensitivity != 0 {
		dst.Evaluate.MinSensitivity = src.Evaluate.MinSensitivity
	}
	if src.Evaluate.Stats != nil {
		dst.Evaluate.Stats = src.Evaluate.Stats
	}
}

func boolPtr(b bool) *bool {
	return &b
}
