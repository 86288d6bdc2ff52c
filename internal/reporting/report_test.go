package reporting

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/genescope/pathsig/internal/models"
)

func TestFormatClassificationSummary(t *testing.T) {
	s := &models.Summary{
		Pathway:    "ER",
		Active:     3,
		Inactive:   2,
		Uncertain:  5,
		Total:      10,
		Classified: 5,
		UpScores:   models.ScoreDigest{Mean: 0.1, StdDev: 1.2},
		DownScores: models.ScoreDigest{Mean: -0.2, StdDev: 0.9},
		Cutoffs:    models.Thresholds{UpLow: -0.25, UpHigh: 0.25, DownLow: -0.25, DownHigh: 0.25},
	}

	out := FormatClassificationSummary(s)
	assert.Contains(t, out, "Pathway:    ER")
	assert.Contains(t, out, "Active:     3")
	assert.Contains(t, out, "Inactive:   2")
	assert.Contains(t, out, "Uncertain:  5")
	assert.Contains(t, out, "Total:      10")
	assert.Contains(t, out, "Classified: 5 (50%)")
	assert.Contains(t, out, "up [-0.25, 0.25]")
}

func TestFormatClassificationSummary_NoPathway(t *testing.T) {
	out := FormatClassificationSummary(&models.Summary{Total: 1, Uncertain: 1})
	assert.NotContains(t, out, "Pathway:")
}

func TestFormatConfusionMatrix(t *testing.T) {
	cm := models.NewConfusionMatrix("ER")
	cm.Counts[models.LabelActive][models.LabelActive] = 7
	cm.Counts[models.LabelInactive][models.LabelUncertain] = 2
	cm.Joined = 9
	cm.TotalPredictions = 12
	cm.TotalTruth = 10
	cm.IndefiniteTruth = 1

	out := FormatConfusionMatrix(cm)
	assert.Contains(t, out, "Confusion Matrix (ER)")
	assert.Contains(t, out, "Active")
	assert.Contains(t, out, "Uncertain")
	assert.Contains(t, out, "7")
	assert.Contains(t, out, "Samples joined: 9 of 12 predictions, 10 truth rows")
	assert.Contains(t, out, "Excluded (no definite true label): 1")
}

func TestFormatAccuracyStats(t *testing.T) {
	out := FormatAccuracyStats(models.AccuracyStats{
		Sensitivity:        0.5,
		Specificity:        1,
		Precision:          1,
		FalsePositiveRate:  0,
		FalseNegativeRate:  0.5,
		ClassifiedFraction: 0.75,
	})
	assert.Contains(t, out, "Sensitivity (TPR):   0.500")
	assert.Contains(t, out, "Specificity (TNR):   1.000")
	assert.Contains(t, out, "Classified fraction: 0.750")
}

func TestFormatAccuracyStats_NaNPrintsNA(t *testing.T) {
	out := FormatAccuracyStats(models.AccuracyStats{
		Sensitivity: math.NaN(),
	})
	assert.Contains(t, out, "Sensitivity (TPR):   n/a")
}
