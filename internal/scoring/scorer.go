// Package scoring computes per-sample enrichment scores for the two halves
// of a gene signature. The Scorer interface is the contract the classifier
// depends on; CombinedZ is the built-in implementation.
package scoring

import (
	"context"
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/genescope/pathsig/internal/matrix"
	"github.com/genescope/pathsig/internal/models"
	"github.com/genescope/pathsig/internal/signature"
)

// Method identifies a scoring method.
type Method string

const (
	// MethodCombinedZ standardizes every matrix cell (Poisson residuals for
	// count data, per-gene z-scores for continuous data) and combines each
	// side's genes per sample with a Stouffer sum.
	MethodCombinedZ Method = "combined-z"
)

// Scorer is the score provider contract: one real-valued score per sample
// per signature side, sample identity matching the matrix columns.
type Scorer interface {
	// Name returns the method identifier.
	Name() string

	// Score computes the score pair table for every sample in the matrix.
	Score(ctx context.Context, m *matrix.Matrix, sig *signature.Signature) (*models.ScoreTable, error)
}

// Create builds a scorer by method name, decoding method-specific options
// from params.
func Create(method Method, params map[string]any) (Scorer, error) {
	switch method {
	case MethodCombinedZ:
		var v struct {
			Workers  int `mapstructure:"workers"`
			MinGenes int `mapstructure:"min_genes"`
		}
		if err := mapstructure.Decode(params, &v); err != nil {
			return nil, err
		}
		return NewCombinedZ(CombinedZArgs{Workers: v.Workers, MinGenes: v.MinGenes}), nil
	default:
		return nil, fmt.Errorf("'%s' is not a valid scoring method", method)
	}
}
