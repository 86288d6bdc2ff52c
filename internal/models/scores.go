package models

import "fmt"

// ScorePair holds the two enrichment scores for one sample: one for the
// up-regulated half of the signature and one for the down-regulated half.
type ScorePair struct {
	Up   float64 `json:"up"`
	Down float64 `json:"down"`
}

// ScoreTable maps sample identifiers to their score pairs while preserving
// the column order of the source expression matrix, so downstream output is
// stable across runs.
type ScoreTable struct {
	Samples []string             `json:"samples"`
	Pairs   map[string]ScorePair `json:"pairs"`
}

// NewScoreTable allocates an empty table with capacity for n samples.
func NewScoreTable(n int) *ScoreTable {
	return &ScoreTable{
		Samples: make([]string, 0, n),
		Pairs:   make(map[string]ScorePair, n),
	}
}

// Add appends a sample with its pair. Adding the same sample twice is an
// internal-consistency failure.
func (t *ScoreTable) Add(sample string, pair ScorePair) error {
	if _, ok := t.Pairs[sample]; ok {
		return fmt.Errorf("%w: duplicate sample %q in score table", ErrInvalidInput, sample)
	}
	t.Samples = append(t.Samples, sample)
	t.Pairs[sample] = pair
	return nil
}

// Len returns the number of scored samples.
func (t *ScoreTable) Len() int { return len(t.Samples) }

// UpScores returns the up-side scores in sample order.
func (t *ScoreTable) UpScores() []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = t.Pairs[s].Up
	}
	return out
}

// DownScores returns the down-side scores in sample order.
func (t *ScoreTable) DownScores() []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = t.Pairs[s].Down
	}
	return out
}
