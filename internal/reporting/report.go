// Package reporting renders classification and evaluation results as
// plain-language text. Rendering is a side channel: the structured values
// are the contract, and nothing here mutates them.
package reporting

import (
	"fmt"
	"math"
	"strings"

	"github.com/genescope/pathsig/internal/models"
)

// FormatClassificationSummary produces the human-readable summary of a
// classification run: counts per class, the total, and how many samples got
// a definite call.
func FormatClassificationSummary(s *models.Summary) string {
	var b strings.Builder

	b.WriteString("=== Classification Summary ===\n\n")
	if s.Pathway != "" {
		b.WriteString(fmt.Sprintf("Pathway:    %s\n", s.Pathway))
	}
	b.WriteString(fmt.Sprintf("Active:     %d\n", s.Active))
	b.WriteString(fmt.Sprintf("Inactive:   %d\n", s.Inactive))
	b.WriteString(fmt.Sprintf("Uncertain:  %d\n", s.Uncertain))
	b.WriteString(fmt.Sprintf("Total:      %d\n", s.Total))
	b.WriteString(fmt.Sprintf("Classified: %d (%s)\n", s.Classified, percent(s.Classified, s.Total)))

	b.WriteString(fmt.Sprintf("\nUp scores:   mean %.3f, sd %.3f\n", s.UpScores.Mean, s.UpScores.StdDev))
	b.WriteString(fmt.Sprintf("Down scores: mean %.3f, sd %.3f\n", s.DownScores.Mean, s.DownScores.StdDev))
	b.WriteString(fmt.Sprintf("Cutoffs:     up [%g, %g], down [%g, %g]\n",
		s.Cutoffs.UpLow, s.Cutoffs.UpHigh, s.Cutoffs.DownLow, s.Cutoffs.DownHigh))

	return b.String()
}

// FormatConfusionMatrix renders the counts table, true classes as rows and
// predicted classes as columns, plus the join bookkeeping.
func FormatConfusionMatrix(cm *models.ConfusionMatrix) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("=== Confusion Matrix (%s) ===\n\n", cm.Pathway))
	b.WriteString(fmt.Sprintf("%-14s", "true\\predicted"))
	for _, pc := range models.PredictedClasses {
		b.WriteString(fmt.Sprintf("%11s", string(pc)))
	}
	b.WriteString("\n")
	for _, tc := range models.TrueClasses {
		b.WriteString(fmt.Sprintf("%-14s", string(tc)))
		for _, pc := range models.PredictedClasses {
			b.WriteString(fmt.Sprintf("%11d", cm.Cell(tc, pc)))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\nSamples joined: %d of %d predictions, %d truth rows\n",
		cm.Joined, cm.TotalPredictions, cm.TotalTruth))
	if cm.IndefiniteTruth > 0 {
		b.WriteString(fmt.Sprintf("Excluded (no definite true label): %d\n", cm.IndefiniteTruth))
	}

	return b.String()
}

// FormatAccuracyStats renders the derived statistics. Statistics without a
// defined value (zero denominator) print as n/a.
func FormatAccuracyStats(stats models.AccuracyStats) string {
	var b strings.Builder

	b.WriteString("=== Accuracy ===\n\n")
	b.WriteString(fmt.Sprintf("Sensitivity (TPR):   %s\n", rate(stats.Sensitivity)))
	b.WriteString(fmt.Sprintf("Specificity (TNR):   %s\n", rate(stats.Specificity)))
	b.WriteString(fmt.Sprintf("Precision:           %s\n", rate(stats.Precision)))
	b.WriteString(fmt.Sprintf("False positive rate: %s\n", rate(stats.FalsePositiveRate)))
	b.WriteString(fmt.Sprintf("False negative rate: %s\n", rate(stats.FalseNegativeRate)))
	b.WriteString(fmt.Sprintf("Classified fraction: %s\n", rate(stats.ClassifiedFraction)))

	return b.String()
}

func rate(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.3f", v)
}

func percent(part, total int) string {
	if total == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%%", 100*float64(part)/float64(total))
}
