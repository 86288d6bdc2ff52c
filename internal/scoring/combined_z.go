package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/genescope/pathsig/internal/matrix"
	"github.com/genescope/pathsig/internal/models"
	"github.com/genescope/pathsig/internal/signature"
)

// CombinedZArgs holds the options for the combined-z scorer.
type CombinedZArgs struct {
	// Workers bounds the sample-level parallelism; 0 means GOMAXPROCS.
	Workers int
	// MinGenes is the minimum number of signature genes per side that must be
	// present in the matrix; 0 means 1.
	MinGenes int
}

// combinedZ standardizes the matrix cell-wise and scores each sample on one
// signature side as sum(z)/sqrt(n) over the side's genes. Count matrices use
// standardized Poisson residuals against expected counts from row, column
// and grand totals; continuous matrices use per-gene z-scores.
type combinedZ struct {
	workers  int
	minGenes int
}

// NewCombinedZ creates the built-in combined-z scorer.
func NewCombinedZ(args CombinedZArgs) *combinedZ {
	workers := args.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	minGenes := args.MinGenes
	if minGenes <= 0 {
		minGenes = 1
	}
	return &combinedZ{workers: workers, minGenes: minGenes}
}

func (cz *combinedZ) Name() string { return string(MethodCombinedZ) }

func (cz *combinedZ) Score(ctx context.Context, m *matrix.Matrix, sig *signature.Signature) (*models.ScoreTable, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}

	upIdx := matchedGenes(m, sig.Up, "up")
	downIdx := matchedGenes(m, sig.Down, "down")
	if len(upIdx) < cz.minGenes {
		return nil, fmt.Errorf("%w: only %d of %d up-regulated genes present in matrix (need %d)", models.ErrInvalidSignature, len(upIdx), len(sig.Up), cz.minGenes)
	}
	if len(downIdx) < cz.minGenes {
		return nil, fmt.Errorf("%w: only %d of %d down-regulated genes present in matrix (need %d)", models.ErrInvalidSignature, len(downIdx), len(sig.Down), cz.minGenes)
	}

	var z [][]float64
	if m.IsCountData() {
		slog.Debug("scoring with Poisson residuals", "method", cz.Name(), "workers", cz.workers)
		z = poissonResiduals(m)
	} else {
		slog.Debug("scoring with per-gene z-scores", "method", cz.Name(), "workers", cz.workers)
		z = geneZScores(m)
	}

	samples := m.Samples()
	ups := make([]float64, len(samples))
	downs := make([]float64, len(samples))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(cz.workers)
	for j := range samples {
		g.Go(func() error {
			ups[j] = stouffer(z, upIdx, j)
			downs[j] = stouffer(z, downIdx, j)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	table := models.NewScoreTable(len(samples))
	for j, s := range samples {
		if err := table.Add(s, models.ScorePair{Up: ups[j], Down: downs[j]}); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// matchedGenes resolves one side's signature genes to matrix row indices,
// skipping genes the matrix does not measure.
func matchedGenes(m *matrix.Matrix, genes []string, side string) []int {
	idx := make([]int, 0, len(genes))
	for _, gene := range genes {
		i, ok := m.GeneIndex(gene)
		if !ok {
			slog.Debug("signature gene not in matrix", "gene", gene, "side", side)
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

// stouffer combines one sample's standardized values over the given gene
// rows: sum(z)/sqrt(n).
func stouffer(z [][]float64, geneIdx []int, j int) float64 {
	sum := 0.0
	for _, i := range geneIdx {
		sum += z[i][j]
	}
	return sum / math.Sqrt(float64(len(geneIdx)))
}

// geneZScores standardizes each gene row against its own mean and standard
// deviation. A constant gene contributes zero everywhere.
func geneZScores(m *matrix.Matrix) [][]float64 {
	nGenes, nSamples := m.NumGenes(), m.NumSamples()
	z := make([][]float64, nGenes)
	for i := 0; i < nGenes; i++ {
		mean := 0.0
		for j := 0; j < nSamples; j++ {
			mean += m.Value(i, j)
		}
		mean /= float64(nSamples)

		variance := 0.0
		for j := 0; j < nSamples; j++ {
			d := m.Value(i, j) - mean
			variance += d * d
		}
		sd := math.Sqrt(variance / float64(nSamples))

		row := make([]float64, nSamples)
		if sd > 0 {
			for j := 0; j < nSamples; j++ {
				row[j] = (m.Value(i, j) - mean) / sd
			}
		}
		z[i] = row
	}
	return z
}

// poissonResiduals standardizes count data as (x - e)/sqrt(e) where the
// expected count e scales the gene's total abundance by the sample's library
// size: e = rowTotal*colTotal/grandTotal. Cells with zero expectation
// contribute zero.
func poissonResiduals(m *matrix.Matrix) [][]float64 {
	nGenes, nSamples := m.NumGenes(), m.NumSamples()
	rowTotals := make([]float64, nGenes)
	colTotals := make([]float64, nSamples)
	grand := 0.0
	for i := 0; i < nGenes; i++ {
		for j := 0; j < nSamples; j++ {
			v := m.Value(i, j)
			rowTotals[i] += v
			colTotals[j] += v
			grand += v
		}
	}

	z := make([][]float64, nGenes)
	for i := 0; i < nGenes; i++ {
		row := make([]float64, nSamples)
		for j := 0; j < nSamples; j++ {
			e := 0.0
			if grand > 0 {
				e = rowTotals[i] * colTotals[j] / grand
			}
			if e > 0 {
				row[j] = (m.Value(i, j) - e) / math.Sqrt(e)
			}
		}
		z[i] = row
	}
	return z
}
