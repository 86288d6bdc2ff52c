package models

import "fmt"

// Label is the categorical pathway-activity call for one sample.
type Label string

const (
	LabelActive    Label = "Active"
	LabelInactive  Label = "Inactive"
	LabelUncertain Label = "Uncertain"
)

// Definite reports whether the label is one of the two scoreable classes.
// Uncertain predictions are valid output but carry no ground truth to score
// against.
func (l Label) Definite() bool {
	return l == LabelActive || l == LabelInactive
}

// ParseLabel converts a string to a Label, rejecting anything outside the
// three known classes.
func ParseLabel(s string) (Label, error) {
	switch Label(s) {
	case LabelActive, LabelInactive, LabelUncertain:
		return Label(s), nil
	default:
		return "", fmt.Errorf("unknown label %q (want Active, Inactive or Uncertain)", s)
	}
}
