package signature

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genescope/pathsig/internal/models"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		sig := &Signature{Up: []string{"ESR1", "PGR"}, Down: []string{"CDK1"}}
		require.NoError(t, sig.Validate())
	})

	t.Run("empty up set", func(t *testing.T) {
		sig := &Signature{Down: []string{"CDK1"}}
		err := sig.Validate()
		require.ErrorIs(t, err, models.ErrInvalidSignature)
		assert.Contains(t, err.Error(), "up-regulated gene set is empty")
	})

	t.Run("empty down set", func(t *testing.T) {
		sig := &Signature{Up: []string{"ESR1"}}
		require.ErrorIs(t, sig.Validate(), models.ErrInvalidSignature)
	})

	t.Run("conflicting polarity", func(t *testing.T) {
		sig := &Signature{Up: []string{"ESR1", "CDK1"}, Down: []string{"CDK1"}}
		err := sig.Validate()
		require.ErrorIs(t, err, models.ErrInvalidSignature)
		assert.Contains(t, err.Error(), `gene "CDK1" has conflicting polarity`)
	})

	t.Run("duplicate within a set", func(t *testing.T) {
		sig := &Signature{Up: []string{"ESR1", "ESR1"}, Down: []string{"CDK1"}}
		err := sig.Validate()
		require.ErrorIs(t, err, models.ErrInvalidSignature)
		assert.Contains(t, err.Error(), "listed more than once")
	})

	t.Run("blank gene", func(t *testing.T) {
		sig := &Signature{Up: []string{""}, Down: []string{"CDK1"}}
		require.ErrorIs(t, sig.Validate(), models.ErrInvalidSignature)
	})
}

func TestLoad_Table(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		p := write(t, "sig.tsv", "gene\tpolarity\nESR1\t1\nPGR\t+1\nCDK1\t-1\nMKI67\t-1\n")

		sig, err := Load(p)
		require.NoError(t, err)
		assert.Equal(t, []string{"ESR1", "PGR"}, sig.Up)
		assert.Equal(t, []string{"CDK1", "MKI67"}, sig.Down)
	})

	t.Run("invalid polarity code", func(t *testing.T) {
		p := write(t, "sig.tsv", "gene\tpolarity\nESR1\t2\nCDK1\t-1\n")

		_, err := Load(p)
		require.ErrorIs(t, err, models.ErrInvalidSignature)
		assert.Contains(t, err.Error(), `polarity "2"`)
	})

	t.Run("missing polarity column", func(t *testing.T) {
		p := write(t, "sig.tsv", "gene\tdirection\nESR1\t1\n")

		_, err := Load(p)
		require.ErrorIs(t, err, models.ErrInvalidSignature)
		assert.Contains(t, err.Error(), `"polarity"`)
	})

	t.Run("conflicting polarity across rows", func(t *testing.T) {
		p := write(t, "sig.tsv", "gene\tpolarity\nESR1\t1\nESR1\t-1\n")

		_, err := Load(p)
		require.ErrorIs(t, err, models.ErrInvalidSignature)
	})
}

func TestLoad_YAML(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		p := write(t, "sig.yaml", "pathway: ER\nup: [ESR1, PGR]\ndown: [CDK1]\n")

		sig, err := Load(p)
		require.NoError(t, err)
		assert.Equal(t, "ER", sig.Pathway)
		assert.Equal(t, []string{"ESR1", "PGR"}, sig.Up)
		assert.Equal(t, []string{"CDK1"}, sig.Down)
	})

	t.Run("schema violation", func(t *testing.T) {
		p := write(t, "sig.yaml", "pathway: ER\nup: [ESR1]\n")

		_, err := Load(p)
		require.ErrorIs(t, err, models.ErrInvalidSignature)
		assert.Contains(t, err.Error(), "down")
	})

	t.Run("conflicting polarity", func(t *testing.T) {
		p := write(t, "sig.yaml", "up: [ESR1]\ndown: [ESR1]\n")

		_, err := Load(p)
		require.ErrorIs(t, err, models.ErrInvalidSignature)
	})
}
