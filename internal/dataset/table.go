// Package dataset loads and saves the header-mapped tables the classifier
// exchanges with its callers: predicted-labels tables and ground-truth
// tables. Files may be comma- or tab-separated and optionally gzipped.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Row represents a single data row with column name to value mapping.
type Row map[string]string

// Table is a loaded tabular file: the header in file order plus one Row per
// data line.
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the header contains the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Load reads a delimited file into a Table. The first row is treated as the
// header. The delimiter is chosen from the file name: .tsv (or .tsv.gz) is
// tab-separated, everything else comma-separated. Files ending in .gz are
// decompressed transparently.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("table: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	var r io.Reader = f
	name := path
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("table: gunzip %s: %w", path, err)
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
		return nil, fmt.Errorf("table: parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("table: %s is empty (no header row)", path)
	}

	headers := records[0]
	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(headers) {
			return nil, fmt.Errorf("table: %s row %d has %d columns, expected %d", path, i+2, len(record), len(headers))
		}
		row := make(Row, len(headers))
		for j, h := range headers {
			row[h] = record[j]
		}
		rows = append(rows, row)
	}

	return &Table{Columns: headers, Rows: rows}, nil
}

// Save writes the table as CSV, header first, cells in Columns order. Rows
// missing a column are written with an empty cell.
func Save(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("table: create %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return fmt.Errorf("table: write header: %w", err)
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, c := range t.Columns {
			record[i] = row[c]
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("table: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("table: flush %s: %w", path, err)
	}
	return nil
}
