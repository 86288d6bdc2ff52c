package dataset

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantRows int
		wantErr  string
	}{
		{
			name:     "happy path 3 rows",
			content:  "sample,class\nA,Active\nB,Inactive\nC,Uncertain\n",
			wantRows: 3,
		},
		{
			name:     "headers only",
			content:  "sample,class\n",
			wantRows: 0,
		},
		{
			name:    "mismatched column count",
			content: "sample,class\nA,Active\nB\n",
			wantErr: "wrong number of fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "labels.csv", tt.content)

			tbl, err := Load(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, tbl.Rows, tt.wantRows)
			assert.Equal(t, []string{"sample", "class"}, tbl.Columns)
		})
	}
}

func TestLoad_Values(t *testing.T) {
	path := writeFile(t, t.TempDir(), "labels.csv", "sample,class\nTCGA-01,Active\nTCGA-02,Inactive\n")

	tbl, err := Load(path)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 2)

	assert.Equal(t, "TCGA-01", tbl.Rows[0]["sample"])
	assert.Equal(t, "Active", tbl.Rows[0]["class"])
	assert.Equal(t, "TCGA-02", tbl.Rows[1]["sample"])
	assert.Equal(t, "Inactive", tbl.Rows[1]["class"])
}

func TestLoad_TSV(t *testing.T) {
	path := writeFile(t, t.TempDir(), "truth.tsv", "sample\tER\nA\tActive\nB\tInactive\n")

	tbl, err := Load(path)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "Active", tbl.Rows[0]["ER"])
	assert.True(t, tbl.HasColumn("ER"))
	assert.False(t, tbl.HasColumn("PR"))
}

func TestLoad_Gzip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte("sample,class\nA,Active\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	p := filepath.Join(t.TempDir(), "labels.csv.gz")
	require.NoError(t, os.WriteFile(p, buf.Bytes(), 0o644))

	tbl, err := Load(p)
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, "Active", tbl.Rows[0]["class"])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/labels.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table: open")
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := &Table{
		Columns: []string{"sample", "class"},
		Rows: []Row{
			{"sample": "A", "class": "Active"},
			{"sample": "B", "class": "Uncertain"},
		},
	}

	p := filepath.Join(dir, "out.csv")
	require.NoError(t, Save(p, in))

	out, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, in.Columns, out.Columns)
	assert.Equal(t, in.Rows, out.Rows)
}
