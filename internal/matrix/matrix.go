// Package matrix holds the read-only genes-by-samples expression matrix and
// its file loader. Values are either raw non-negative integer counts or
// pre-normalized continuous values; which regime applies is detected from the
// data, not declared by the caller.
package matrix

import (
	"fmt"
	"math"

	"github.com/genescope/pathsig/internal/models"
)

// Matrix is a numeric genes-by-samples matrix with unique row and column
// identifiers. It is constructed once and read-only afterwards.
type Matrix struct {
	genes   []string
	samples []string
	geneIdx map[string]int
	values  [][]float64 // values[geneIdx][sampleIdx]
}

// New validates identifiers and values and builds a Matrix. Row and column
// identifiers must be unique and non-blank; every row must have one value per
// sample and every value must be a real number. Duplicate sample columns are
// rejected rather than averaged, so a caller holding technical replicates
// must collapse them before classification.
func New(genes, samples []string, values [][]float64) (*Matrix, error) {
	if len(genes) == 0 || len(samples) == 0 {
		return nil, fmt.Errorf("%w: matrix needs at least one gene and one sample (got %d genes, %d samples)", models.ErrInvalidInput, len(genes), len(samples))
	}
	if len(values) != len(genes) {
		return nil, fmt.Errorf("%w: %d value rows for %d genes", models.ErrInvalidInput, len(values), len(genes))
	}

	geneIdx := make(map[string]int, len(genes))
	for i, g := range genes {
		if g == "" {
			return nil, fmt.Errorf("%w: blank gene identifier at row %d", models.ErrInvalidInput, i+1)
		}
		if _, ok := geneIdx[g]; ok {
			return nil, fmt.Errorf("%w: duplicate gene %q", models.ErrInvalidInput, g)
		}
		geneIdx[g] = i
	}

	seen := make(map[string]struct{}, len(samples))
	for i, s := range samples {
		if s == "" {
			return nil, fmt.Errorf("%w: blank sample identifier at column %d", models.ErrInvalidInput, i+1)
		}
		if _, ok := seen[s]; ok {
			return nil, fmt.Errorf("%w: duplicate sample column %q", models.ErrInvalidInput, s)
		}
		seen[s] = struct{}{}
	}

	for i, row := range values {
		if len(row) != len(samples) {
			return nil, fmt.Errorf("%w: gene %q has %d values, expected %d", models.ErrInvalidInput, genes[i], len(row), len(samples))
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: non-finite value for gene %q, sample %q", models.ErrInvalidInput, genes[i], samples[j])
			}
		}
	}

	return &Matrix{genes: genes, samples: samples, geneIdx: geneIdx, values: values}, nil
}

// Genes returns the gene identifiers in row order.
func (m *Matrix) Genes() []string { return m.genes }

// Samples returns the sample identifiers in column order.
func (m *Matrix) Samples() []string { return m.samples }

// NumGenes returns the row count.
func (m *Matrix) NumGenes() int { return len(m.genes) }

// NumSamples returns the column count.
func (m *Matrix) NumSamples() int { return len(m.samples) }

// Row returns the values for one gene in sample order, or false if the gene
// is not in the matrix.
func (m *Matrix) Row(gene string) ([]float64, bool) {
	i, ok := m.geneIdx[gene]
	if !ok {
		return nil, false
	}
	return m.values[i], true
}

// GeneIndex returns the row index of a gene, or false if the gene is not in
// the matrix.
func (m *Matrix) GeneIndex(gene string) (int, bool) {
	i, ok := m.geneIdx[gene]
	return i, ok
}

// Value returns the cell at (gene row i, sample column j).
func (m *Matrix) Value(i, j int) float64 { return m.values[i][j] }

// IsCountData reports whether every value is a non-negative integer, which
// selects the Poisson scoring regime; anything else is treated as continuous
// normalized data.
func (m *Matrix) IsCountData() bool {
	for _, row := range m.values {
		for _, v := range row {
			if v < 0 || v != math.Trunc(v) {
				return false
			}
		}
	}
	return true
}
