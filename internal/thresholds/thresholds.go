// Package thresholds resolves classification boundaries, either from four
// explicit score values or from a percentile of the observed score
// distributions.
package thresholds

import (
	"fmt"
	"math"

	"github.com/genescope/pathsig/internal/metrics"
	"github.com/genescope/pathsig/internal/models"
)

// DefaultPercent is the percentile used when the caller does not specify one.
const DefaultPercent = 25.0

// Absolute validates caller-supplied boundary values and passes them through
// unchanged. An inverted low/high pair is rejected with a message naming the
// pair.
func Absolute(upLow, upHigh, downLow, downHigh float64) (models.Thresholds, error) {
	for name, v := range map[string]float64{
		"up_low": upLow, "up_high": upHigh, "down_low": downLow, "down_high": downHigh,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return models.Thresholds{}, fmt.Errorf("%w: %s is not a finite number", models.ErrInvalidThreshold, name)
		}
	}

	t := models.Thresholds{UpLow: upLow, UpHigh: upHigh, DownLow: downLow, DownHigh: downHigh}
	if err := t.Validate(); err != nil {
		return models.Thresholds{}, err
	}
	return t, nil
}

// FromPercentile derives the boundaries from the score distributions: the
// p-th and (1-p)-th sample quantiles of the up and down scores
// independently, with p = percent/100. percent must lie in (0, 50]; values
// above 50 would invert the low/high ordering and are rejected rather than
// silently corrected.
func FromPercentile(scores *models.ScoreTable, percent float64) (models.Thresholds, error) {
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return models.Thresholds{}, fmt.Errorf("%w: percentile is not a finite number", models.ErrInvalidThreshold)
	}
	if percent <= 0 || percent >= 100 {
		return models.Thresholds{}, fmt.Errorf("%w: percentile %g outside (0, 100)", models.ErrInvalidThreshold, percent)
	}
	if percent > 50 {
		return models.Thresholds{}, fmt.Errorf("%w: percentile %g above 50 would invert the low/high ordering", models.ErrInvalidThreshold, percent)
	}
	if scores == nil || scores.Len() == 0 {
		return models.Thresholds{}, fmt.Errorf("%w: no scores to derive percentile thresholds from", models.ErrInvalidThreshold)
	}

	p := percent / 100
	up := scores.UpScores()
	down := scores.DownScores()

	t := models.Thresholds{
		UpLow:    metrics.Quantile(up, p),
		UpHigh:   metrics.Quantile(up, 1-p),
		DownLow:  metrics.Quantile(down, p),
		DownHigh: metrics.Quantile(down, 1-p),
	}
	if err := t.Validate(); err != nil {
		return models.Thresholds{}, err
	}
	return t, nil
}
