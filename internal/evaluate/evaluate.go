// Package evaluate joins predicted labels with ground truth and derives
// accuracy statistics from the resulting confusion matrix.
package evaluate

import (
	"fmt"
	"log/slog"

	"github.com/genescope/pathsig/internal/dataset"
	"github.com/genescope/pathsig/internal/models"
)

// SampleColumn is the key column both input tables must expose.
const SampleColumn = "sample"

// ClassColumn is the predicted-label column of the predictions table. The
// truth table's label column is named after the pathway under evaluation.
const ClassColumn = "class"

// ConfusionMatrix joins the predictions table with the ground-truth table on
// sample identity (inner join) and tabulates true against predicted labels
// for the named pathway. Truth labels outside {Active, Inactive} stay in the
// join counts but out of the matrix: there is no ground truth to score them
// against. Looking up the pathway column by name replaces any reflective
// column dispatch; the column is validated here, once, at call time.
func ConfusionMatrix(predictions, truth *dataset.Table, pathway string) (*models.ConfusionMatrix, error) {
	if predictions == nil || truth == nil {
		return nil, fmt.Errorf("%w: both a predictions table and a truth table are required", models.ErrSchema)
	}
	for _, col := range []string{SampleColumn, ClassColumn} {
		if !predictions.HasColumn(col) {
			return nil, fmt.Errorf("%w: predictions table has no %q column", models.ErrSchema, col)
		}
	}
	if !truth.HasColumn(SampleColumn) {
		return nil, fmt.Errorf("%w: truth table has no %q column", models.ErrSchema, SampleColumn)
	}
	if pathway == "" || !truth.HasColumn(pathway) {
		return nil, fmt.Errorf("%w: truth table has no column for pathway %q", models.ErrSchema, pathway)
	}

	predicted := make(map[string]models.Label, len(predictions.Rows))
	for i, row := range predictions.Rows {
		sample := row[SampleColumn]
		if sample == "" {
			return nil, fmt.Errorf("%w: predictions row %d has a blank sample", models.ErrSchema, i+1)
		}
		if _, ok := predicted[sample]; ok {
			return nil, fmt.Errorf("%w: predictions table lists sample %q twice", models.ErrSchema, sample)
		}
		label, err := models.ParseLabel(row[ClassColumn])
		if err != nil {
			return nil, fmt.Errorf("%w: predictions row %d: %v", models.ErrSchema, i+1, err)
		}
		predicted[sample] = label
	}

	cm := models.NewConfusionMatrix(pathway)
	cm.TotalPredictions = len(predictions.Rows)
	cm.TotalTruth = len(truth.Rows)
	for _, label := range predicted {
		if label == models.LabelUncertain {
			cm.UncertainPredictions++
		}
	}

	seen := make(map[string]struct{}, len(truth.Rows))
	for i, row := range truth.Rows {
		sample := row[SampleColumn]
		if sample == "" {
			return nil, fmt.Errorf("%w: truth row %d has a blank sample", models.ErrSchema, i+1)
		}
		if _, ok := seen[sample]; ok {
			return nil, fmt.Errorf("%w: truth table lists sample %q twice", models.ErrSchema, sample)
		}
		seen[sample] = struct{}{}

		predictedLabel, ok := predicted[sample]
		if !ok {
			continue // inner join: no prediction for this sample
		}
		cm.Joined++

		trueLabel := models.Label(row[pathway])
		if !trueLabel.Definite() {
			cm.IndefiniteTruth++
			continue
		}
		cm.Counts[trueLabel][predictedLabel]++
	}

	slog.Debug("confusion matrix built", "pathway", pathway,
		"joined", cm.Joined, "scored", cm.Scored(), "indefinite_truth", cm.IndefiniteTruth)
	return cm, nil
}
