package models

import "errors"

// Error kinds for configuration and input-correctness failures. All of them
// are reported synchronously and never retried; callers test with errors.Is
// and every wrapped message names the offending value or column.
var (
	// ErrInvalidInput marks non-matrix, non-numeric or malformed expression data.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSignature marks missing signature columns, invalid polarity
	// values, or a gene listed with conflicting polarity.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrInvalidThreshold marks non-numeric thresholds, inverted low/high
	// pairs, or an out-of-range percentile.
	ErrInvalidThreshold = errors.New("invalid threshold")

	// ErrMissingScore marks a sample without a score on one or both signature
	// sides. The score provider contract rules this out, so hitting it means
	// an internal-consistency failure upstream.
	ErrMissingScore = errors.New("missing score")

	// ErrSchema marks evaluation input tables missing required columns or the
	// named pathway column.
	ErrSchema = errors.New("schema error")
)
