package evaluate

import (
	"math"

	"github.com/genescope/pathsig/internal/models"
)

// Stats derives the standard binary statistics from a confusion matrix with
// Active as the positive class. Predicted-Uncertain entries are excluded
// from every denominator that assumes a binary prediction; the classified
// fraction is taken over all rows of the predictions table. A statistic
// whose denominator is zero comes back NaN rather than a fabricated zero.
func Stats(cm *models.ConfusionMatrix) models.AccuracyStats {
	tp := float64(cm.Cell(models.LabelActive, models.LabelActive))
	fn := float64(cm.Cell(models.LabelActive, models.LabelInactive))
	fp := float64(cm.Cell(models.LabelInactive, models.LabelActive))
	tn := float64(cm.Cell(models.LabelInactive, models.LabelInactive))

	definite := float64(cm.TotalPredictions - cm.UncertainPredictions)

	return models.AccuracyStats{
		Sensitivity:        ratio(tp, tp+fn),
		Specificity:        ratio(tn, tn+fp),
		Precision:          ratio(tp, tp+fp),
		FalsePositiveRate:  ratio(fp, fp+tn),
		FalseNegativeRate:  ratio(fn, fn+tp),
		ClassifiedFraction: ratio(definite, float64(cm.TotalPredictions)),
	}
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return math.NaN()
	}
	return num / den
}
