// Package signature parses gene signatures: the curated up-regulated and
// down-regulated gene sets characteristic of a pathway's active state. Two
// file forms are accepted: a two-column table with {-1,+1} polarity codes,
// and a YAML document with explicit up/down lists.
package signature

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/genescope/pathsig/internal/dataset"
	"github.com/genescope/pathsig/internal/models"
	"github.com/genescope/pathsig/internal/validation"
)

// Signature is an immutable gene signature. A gene appears in at most one of
// the two sets.
type Signature struct {
	Pathway string   `yaml:"pathway,omitempty"`
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
}

// Validate checks that both sets are non-empty, every identifier is
// non-blank, and no gene carries both polarities.
func (s *Signature) Validate() error {
	if len(s.Up) == 0 {
		return fmt.Errorf("%w: up-regulated gene set is empty", models.ErrInvalidSignature)
	}
	if len(s.Down) == 0 {
		return fmt.Errorf("%w: down-regulated gene set is empty", models.ErrInvalidSignature)
	}

	seen := make(map[string]string, len(s.Up)+len(s.Down))
	for _, g := range s.Up {
		if g == "" {
			return fmt.Errorf("%w: blank gene identifier in up set", models.ErrInvalidSignature)
		}
		if _, ok := seen[g]; ok {
			return fmt.Errorf("%w: gene %q listed more than once", models.ErrInvalidSignature, g)
		}
		seen[g] = "up"
	}
	for _, g := range s.Down {
		if g == "" {
			return fmt.Errorf("%w: blank gene identifier in down set", models.ErrInvalidSignature)
		}
		if side, ok := seen[g]; ok {
			if side == "up" {
				return fmt.Errorf("%w: gene %q has conflicting polarity (listed as both up and down)", models.ErrInvalidSignature, g)
			}
			return fmt.Errorf("%w: gene %q listed more than once", models.ErrInvalidSignature, g)
		}
		seen[g] = "down"
	}
	return nil
}

// Load reads a signature from disk, dispatching on extension: .yaml/.yml is
// the YAML form (schema-validated first), anything else the two-column
// polarity table.
func Load(path string) (*Signature, error) {
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		return loadYAML(path)
	default:
		return loadTable(path)
	}
}

func loadYAML(path string) (*Signature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("signature: read %s: %w", path, err)
	}

	if errs := validation.ValidateSignatureBytes(data); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s: %s", models.ErrInvalidSignature, path, strings.Join(errs, "; "))
	}

	var sig Signature
	if err := yaml.Unmarshal(data, &sig); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrInvalidSignature, path, err)
	}
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	slog.Debug("signature loaded", "path", path, "pathway", sig.Pathway, "up", len(sig.Up), "down", len(sig.Down))
	return &sig, nil
}

// loadTable reads the tabular form: a required "gene" column and a required
// "polarity" column holding +1 (up) or -1 (down); exactly these two codes
// are valid.
func loadTable(path string) (*Signature, error) {
	tbl, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	for _, col := range []string{"gene", "polarity"} {
		if !tbl.HasColumn(col) {
			return nil, fmt.Errorf("%w: %s has no %q column", models.ErrInvalidSignature, path, col)
		}
	}

	var sig Signature
	for i, row := range tbl.Rows {
		gene := row["gene"]
		switch polarity := strings.TrimSpace(row["polarity"]); polarity {
		case "1", "+1":
			sig.Up = append(sig.Up, gene)
		case "-1":
			sig.Down = append(sig.Down, gene)
		default:
			return nil, fmt.Errorf("%w: row %d gene %q has polarity %q (want -1 or +1)", models.ErrInvalidSignature, i+1, gene, polarity)
		}
	}
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	slog.Debug("signature loaded", "path", path, "up", len(sig.Up), "down", len(sig.Down))
	return &sig, nil
}
