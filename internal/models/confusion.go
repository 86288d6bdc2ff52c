package models

// TrueClasses and PredictedClasses fix the axis order of the confusion
// matrix. True labels are restricted to the two definite classes; predicted
// Uncertain is kept as a third column for transparency but stays out of the
// binary-statistic denominators.
var (
	TrueClasses      = []Label{LabelActive, LabelInactive}
	PredictedClasses = []Label{LabelActive, LabelInactive, LabelUncertain}
)

// ConfusionMatrix cross-tabulates true against predicted labels for one
// pathway, together with the join bookkeeping needed for reporting.
type ConfusionMatrix struct {
	Pathway string                  `json:"pathway"`
	Counts  map[Label]map[Label]int `json:"counts"`

	// TotalPredictions is the number of rows in the predictions table.
	TotalPredictions int `json:"total_predictions"`
	// TotalTruth is the number of rows in the ground-truth table.
	TotalTruth int `json:"total_truth"`
	// Joined is the number of samples present on both sides.
	Joined int `json:"joined"`
	// IndefiniteTruth counts joined samples whose true label is outside
	// {Active, Inactive}; they carry no ground truth to score against.
	IndefiniteTruth int `json:"indefinite_truth"`
	// UncertainPredictions counts Uncertain calls across the whole
	// predictions table, joined or not.
	UncertainPredictions int `json:"uncertain_predictions"`
}

// NewConfusionMatrix returns a zeroed matrix for the given pathway.
func NewConfusionMatrix(pathway string) *ConfusionMatrix {
	counts := make(map[Label]map[Label]int, len(TrueClasses))
	for _, tc := range TrueClasses {
		row := make(map[Label]int, len(PredictedClasses))
		for _, pc := range PredictedClasses {
			row[pc] = 0
		}
		counts[tc] = row
	}
	return &ConfusionMatrix{Pathway: pathway, Counts: counts}
}

// Cell returns the count at (true class, predicted class).
func (m *ConfusionMatrix) Cell(trueClass, predicted Label) int {
	return m.Counts[trueClass][predicted]
}

// Scored is the number of matrix entries, i.e. joined samples with a definite
// true label.
func (m *ConfusionMatrix) Scored() int {
	n := 0
	for _, row := range m.Counts {
		for _, c := range row {
			n += c
		}
	}
	return n
}

// AccuracyStats are the standard binary-classification statistics derived
// from a confusion matrix with Active as the positive class. Fields are NaN
// when the corresponding denominator is zero.
type AccuracyStats struct {
	Sensitivity        float64 `json:"sensitivity"`
	Specificity        float64 `json:"specificity"`
	Precision          float64 `json:"precision"`
	FalsePositiveRate  float64 `json:"false_positive_rate"`
	FalseNegativeRate  float64 `json:"false_negative_rate"`
	ClassifiedFraction float64 `json:"classified_fraction"`
}
