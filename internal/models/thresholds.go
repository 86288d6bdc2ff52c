package models

import "fmt"

// Thresholds is the four-boundary set the classifier decides against.
// UpLow <= UpHigh and DownLow <= DownHigh must hold; an inverted pair is a
// configuration error, never a runtime condition to tolerate.
type Thresholds struct {
	UpLow    float64 `json:"up_low"`
	UpHigh   float64 `json:"up_high"`
	DownLow  float64 `json:"down_low"`
	DownHigh float64 `json:"down_high"`
}

// Validate checks the ordering invariant, naming the inverted pair.
func (t Thresholds) Validate() error {
	if t.UpLow > t.UpHigh {
		return fmt.Errorf("%w: up pair inverted (low %g > high %g)", ErrInvalidThreshold, t.UpLow, t.UpHigh)
	}
	if t.DownLow > t.DownHigh {
		return fmt.Errorf("%w: down pair inverted (low %g > high %g)", ErrInvalidThreshold, t.DownLow, t.DownHigh)
	}
	return nil
}
