// Package classify applies the dual-threshold decision rule to a score pair
// table. Active requires simultaneous strong evidence on both signature
// sides: a high up-score and a low down-score (down-regulated genes show
// reduced abundance when the pathway is active). Inactive is the symmetric
// conjunction; everything else stays Uncertain.
package classify

import (
	"fmt"

	"github.com/genescope/pathsig/internal/metrics"
	"github.com/genescope/pathsig/internal/models"
)

// Run labels every sample in the score table against the threshold set and
// returns the result together with a structured summary. Both comparisons
// are inclusive: a sample sitting exactly on a boundary satisfies it.
func Run(scores *models.ScoreTable, cutoffs models.Thresholds) (*models.Result, *models.Summary, error) {
	if err := cutoffs.Validate(); err != nil {
		return nil, nil, err
	}
	if scores == nil || scores.Len() == 0 {
		return nil, nil, fmt.Errorf("%w: empty score table", models.ErrMissingScore)
	}

	result := &models.Result{
		Samples: scores.Samples,
		Labels:  make(map[string]models.Label, scores.Len()),
	}
	summary := &models.Summary{Total: scores.Len(), Cutoffs: cutoffs}

	for _, sample := range scores.Samples {
		pair, ok := scores.Pairs[sample]
		if !ok {
			return nil, nil, fmt.Errorf("%w: sample %q has no score pair", models.ErrMissingScore, sample)
		}

		label := Decide(pair, cutoffs)
		result.Labels[sample] = label
		switch label {
		case models.LabelActive:
			summary.Active++
		case models.LabelInactive:
			summary.Inactive++
		default:
			summary.Uncertain++
		}
	}
	summary.Classified = summary.Active + summary.Inactive

	ups := scores.UpScores()
	downs := scores.DownScores()
	summary.UpScores = models.ScoreDigest{Mean: metrics.Mean(ups), StdDev: metrics.StdDev(ups)}
	summary.DownScores = models.ScoreDigest{Mean: metrics.Mean(downs), StdDev: metrics.StdDev(downs)}

	return result, summary, nil
}

// Decide applies the decision rule to a single score pair.
func Decide(pair models.ScorePair, cutoffs models.Thresholds) models.Label {
	switch {
	case pair.Up >= cutoffs.UpHigh && pair.Down <= cutoffs.DownLow:
		return models.LabelActive
	case pair.Up <= cutoffs.UpLow && pair.Down >= cutoffs.DownHigh:
		return models.LabelInactive
	default:
		return models.LabelUncertain
	}
}
