package matrix

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/genescope/pathsig/internal/models"
)

// Load reads an expression matrix from a delimited file. The header row
// names the sample columns; the first column of each data row is the gene
// identifier. The delimiter is chosen from the file name (.tsv is
// tab-separated, anything else comma-separated) and .gz files are
// decompressed transparently. Non-numeric cells are rejected before any
// scoring can see them.
func Load(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrix: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	var r io.Reader = f
	name := path
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("matrix: gunzip %s: %w", path, err)
		}
		defer gz.Close() //nolint:errcheck
		r = gz
		name = strings.TrimSuffix(name, ".gz")
	}

	reader := csv.NewReader(r)
	if filepath.Ext(name) == ".tsv" {
		reader.Comma = '\t'
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("matrix: parse %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: %s has no data rows", models.ErrInvalidInput, path)
	}

	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: %s header has no sample columns", models.ErrInvalidInput, path)
	}
	// The top-left cell is the gene-column title and is ignored.
	samples := header[1:]

	genes := make([]string, 0, len(records)-1)
	values := make([][]float64, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("%w: %s row %d has %d columns, expected %d", models.ErrInvalidInput, path, i+2, len(record), len(header))
		}
		genes = append(genes, record[0])
		row := make([]float64, len(samples))
		for j, cell := range record[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: non-numeric value %q for gene %q, sample %q", models.ErrInvalidInput, cell, record[0], samples[j])
			}
			row[j] = v
		}
		values = append(values, row)
	}

	m, err := New(genes, samples, values)
	if err != nil {
		return nil, err
	}
	slog.Debug("expression matrix loaded", "path", path, "genes", m.NumGenes(), "samples", m.NumSamples(), "counts", m.IsCountData())
	return m, nil
}
