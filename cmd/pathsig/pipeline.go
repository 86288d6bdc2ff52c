package main

import (
	"context"
	"fmt"

	"github.com/genescope/pathsig/internal/matrix"
	"github.com/genescope/pathsig/internal/models"
	"github.com/genescope/pathsig/internal/scoring"
	"github.com/genescope/pathsig/internal/signature"
)

// runScoring loads a matrix and a signature and scores every sample with the
// given method. Both the score and classify commands go through here.
func runScoring(ctx context.Context, matrixPath, signaturePath, method string, workers, minGenes int) (*models.ScoreTable, *signature.Signature, error) {
	m, err := matrix.Load(matrixPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load matrix: %w", err)
	}

	sig, err := signature.Load(signaturePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load signature: %w", err)
	}

	scorer, err := scoring.Create(scoring.Method(method), map[string]any{
		"workers":   workers,
		"min_genes": minGenes,
	})
	if err != nil {
		return nil, nil, err
	}

	scores, err := scorer.Score(ctx, m, sig)
	if err != nil {
		return nil, nil, fmt.Errorf("scoring failed: %w", err)
	}
	return scores, sig, nil
}
