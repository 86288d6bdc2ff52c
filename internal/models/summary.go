package models

// Result is the classification output: exactly one label per scored sample,
// in the sample order of the score table.
type Result struct {
	Samples []string         `json:"samples"`
	Labels  map[string]Label `json:"labels"`
}

// ScoreDigest summarizes one side's score distribution.
type ScoreDigest struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// Summary aggregates a classification run: per-label counts, the total, and
// how many samples received a definite call.
type Summary struct {
	Pathway    string      `json:"pathway,omitempty"`
	Active     int         `json:"active"`
	Inactive   int         `json:"inactive"`
	Uncertain  int         `json:"uncertain"`
	Total      int         `json:"total"`
	Classified int         `json:"classified"`
	UpScores   ScoreDigest `json:"up_scores"`
	DownScores ScoreDigest `json:"down_scores"`
	Cutoffs    Thresholds  `json:"cutoffs"`
}
