package evaluate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genescope/pathsig/internal/dataset"
	"github.com/genescope/pathsig/internal/models"
)

func predTable(rows map[string]string, order ...string) *dataset.Table {
	t := &dataset.Table{Columns: []string{"sample", "class"}}
	for _, s := range order {
		t.Rows = append(t.Rows, dataset.Row{"sample": s, "class": rows[s]})
	}
	return t
}

func truthTable(pathway string, rows map[string]string, order ...string) *dataset.Table {
	t := &dataset.Table{Columns: []string{"sample", pathway}}
	for _, s := range order {
		t.Rows = append(t.Rows, dataset.Row{"sample": s, pathway: rows[s]})
	}
	return t
}

func TestConfusionMatrix_EndToEndScenario(t *testing.T) {
	preds := predTable(map[string]string{
		"A": "Active", "B": "Inactive", "C": "Inactive", "D": "Uncertain",
	}, "A", "B", "C", "D")
	truth := truthTable("ER", map[string]string{
		"A": "Active", "B": "Inactive", "C": "Active", "D": "Active",
	}, "A", "B", "C", "D")

	cm, err := ConfusionMatrix(preds, truth, "ER")
	require.NoError(t, err)

	assert.Equal(t, 1, cm.Cell(models.LabelActive, models.LabelActive))
	assert.Equal(t, 1, cm.Cell(models.LabelActive, models.LabelInactive))
	assert.Equal(t, 1, cm.Cell(models.LabelActive, models.LabelUncertain))
	assert.Equal(t, 0, cm.Cell(models.LabelInactive, models.LabelActive))
	assert.Equal(t, 1, cm.Cell(models.LabelInactive, models.LabelInactive))
	assert.Equal(t, 0, cm.Cell(models.LabelInactive, models.LabelUncertain))

	assert.Equal(t, 4, cm.Joined)
	assert.Equal(t, 4, cm.Scored())
	assert.Equal(t, 0, cm.IndefiniteTruth)
	assert.Equal(t, 1, cm.UncertainPredictions)
}

func TestConfusionMatrix_InnerJoin(t *testing.T) {
	preds := predTable(map[string]string{
		"A": "Active", "B": "Inactive", "X": "Active",
	}, "A", "B", "X")
	truth := truthTable("ER", map[string]string{
		"A": "Active", "B": "Inactive", "Y": "Active",
	}, "A", "B", "Y")

	cm, err := ConfusionMatrix(preds, truth, "ER")
	require.NoError(t, err)

	assert.Equal(t, 2, cm.Joined)
	assert.Equal(t, 3, cm.TotalPredictions)
	assert.Equal(t, 3, cm.TotalTruth)
	assert.Equal(t, 2, cm.Scored())
}

func TestConfusionMatrix_IndefiniteTruthExcluded(t *testing.T) {
	preds := predTable(map[string]string{
		"A": "Active", "B": "Active", "C": "Inactive",
	}, "A", "B", "C")
	truth := truthTable("ER", map[string]string{
		"A": "Active", "B": "Unknown", "C": "Uncertain",
	}, "A", "B", "C")

	cm, err := ConfusionMatrix(preds, truth, "ER")
	require.NoError(t, err)

	assert.Equal(t, 3, cm.Joined)
	assert.Equal(t, 2, cm.IndefiniteTruth)
	assert.Equal(t, 1, cm.Scored())
	assert.Equal(t, 1, cm.Cell(models.LabelActive, models.LabelActive))
}

func TestConfusionMatrix_SumProperty(t *testing.T) {
	// Matrix cells restricted to definite predictions sum to M minus the
	// predicted-Uncertain count among samples with definite truth.
	preds := predTable(map[string]string{
		"A": "Active", "B": "Uncertain", "C": "Inactive", "D": "Uncertain", "E": "Active",
	}, "A", "B", "C", "D", "E")
	truth := truthTable("ER", map[string]string{
		"A": "Active", "B": "Active", "C": "Inactive", "D": "Unknown", "E": "Inactive",
	}, "A", "B", "C", "D", "E")

	cm, err := ConfusionMatrix(preds, truth, "ER")
	require.NoError(t, err)

	definiteTruth := 4 // A, B, C, E
	uncertainAmongThem := 1

	definiteCells := 0
	for _, tc := range models.TrueClasses {
		for _, pc := range []models.Label{models.LabelActive, models.LabelInactive} {
			definiteCells += cm.Cell(tc, pc)
		}
	}
	assert.LessOrEqual(t, definiteCells, definiteTruth)
	assert.Equal(t, definiteTruth-uncertainAmongThem, definiteCells)
}

func TestConfusionMatrix_SchemaErrors(t *testing.T) {
	good := predTable(map[string]string{"A": "Active"}, "A")
	goodTruth := truthTable("ER", map[string]string{"A": "Active"}, "A")

	t.Run("predictions missing class column", func(t *testing.T) {
		bad := &dataset.Table{Columns: []string{"sample", "label"}, Rows: []dataset.Row{{"sample": "A", "label": "Active"}}}
		_, err := ConfusionMatrix(bad, goodTruth, "ER")
		require.ErrorIs(t, err, models.ErrSchema)
		assert.Contains(t, err.Error(), `"class"`)
	})

	t.Run("truth missing sample column", func(t *testing.T) {
		bad := &dataset.Table{Columns: []string{"id", "ER"}, Rows: nil}
		_, err := ConfusionMatrix(good, bad, "ER")
		require.ErrorIs(t, err, models.ErrSchema)
	})

	t.Run("pathway column absent", func(t *testing.T) {
		_, err := ConfusionMatrix(good, goodTruth, "HER2")
		require.ErrorIs(t, err, models.ErrSchema)
		assert.Contains(t, err.Error(), `pathway "HER2"`)
	})

	t.Run("unknown predicted label", func(t *testing.T) {
		bad := predTable(map[string]string{"A": "Maybe"}, "A")
		_, err := ConfusionMatrix(bad, goodTruth, "ER")
		require.ErrorIs(t, err, models.ErrSchema)
	})

	t.Run("duplicate prediction sample", func(t *testing.T) {
		bad := &dataset.Table{
			Columns: []string{"sample", "class"},
			Rows: []dataset.Row{
				{"sample": "A", "class": "Active"},
				{"sample": "A", "class": "Inactive"},
			},
		}
		_, err := ConfusionMatrix(bad, goodTruth, "ER")
		require.ErrorIs(t, err, models.ErrSchema)
		assert.Contains(t, err.Error(), `sample "A" twice`)
	})

	t.Run("nil tables", func(t *testing.T) {
		_, err := ConfusionMatrix(nil, goodTruth, "ER")
		require.ErrorIs(t, err, models.ErrSchema)
	})
}

func TestStats(t *testing.T) {
	preds := predTable(map[string]string{
		"A": "Active", "B": "Inactive", "C": "Inactive", "D": "Uncertain",
	}, "A", "B", "C", "D")
	truth := truthTable("ER", map[string]string{
		"A": "Active", "B": "Inactive", "C": "Active", "D": "Active",
	}, "A", "B", "C", "D")

	cm, err := ConfusionMatrix(preds, truth, "ER")
	require.NoError(t, err)

	stats := Stats(cm)
	// TP=1 FN=1 FP=0 TN=1
	assert.InDelta(t, 0.5, stats.Sensitivity, 1e-9)
	assert.InDelta(t, 1.0, stats.Specificity, 1e-9)
	assert.InDelta(t, 1.0, stats.Precision, 1e-9)
	assert.InDelta(t, 0.0, stats.FalsePositiveRate, 1e-9)
	assert.InDelta(t, 0.5, stats.FalseNegativeRate, 1e-9)
	assert.InDelta(t, 0.75, stats.ClassifiedFraction, 1e-9)
}

func TestStats_EmptyDenominatorsAreNaN(t *testing.T) {
	cm := models.NewConfusionMatrix("ER")

	stats := Stats(cm)
	assert.True(t, math.IsNaN(stats.Sensitivity))
	assert.True(t, math.IsNaN(stats.Specificity))
	assert.True(t, math.IsNaN(stats.Precision))
	assert.True(t, math.IsNaN(stats.ClassifiedFraction))
}
