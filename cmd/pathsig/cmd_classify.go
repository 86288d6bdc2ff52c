package main

import (
	"fmt"
	"strconv"

	"github.com/genescope/pathsig/internal/classify"
	"github.com/genescope/pathsig/internal/dataset"
	"github.com/genescope/pathsig/internal/evaluate"
	"github.com/genescope/pathsig/internal/models"
	"github.com/genescope/pathsig/internal/projectconfig"
	"github.com/genescope/pathsig/internal/reporting"
	"github.com/genescope/pathsig/internal/thresholds"
	"github.com/spf13/cobra"
)

var (
	classifyOutput     string
	classifyMethod     string
	classifyWorkers    int
	classifyMinGenes   int
	classifyPercentile float64
	classifyUpLow      float64
	classifyUpHigh     float64
	classifyDownLow    float64
	classifyDownHigh   float64
)

func newClassifyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <matrix.csv> <signature>",
		Short: "Score and classify samples as Active, Inactive or Uncertain",
		Long: `Score every sample against a gene signature, resolve classification
thresholds, and label each sample Active, Inactive or Uncertain.

Thresholds come from score percentiles by default. Passing all four of
--up-low, --up-high, --down-low and --down-high switches to absolute
cutoffs instead.`,
		Args: cobra.ExactArgs(2),
		RunE: classifyCommandE,
	}

	cmd.Flags().StringVarP(&classifyOutput, "output", "o", "", "Output CSV file for predictions")
	cmd.Flags().StringVar(&classifyMethod, "method", "", "Scoring method (default: combined-z)")
	cmd.Flags().IntVar(&classifyWorkers, "workers", 0, "Number of concurrent scoring workers (default: GOMAXPROCS)")
	cmd.Flags().IntVar(&classifyMinGenes, "min-genes", 0, "Minimum matched genes required per signature side")
	cmd.Flags().Float64Var(&classifyPercentile, "percentile", thresholds.DefaultPercent, "Percentile for threshold resolution (0, 50]")
	cmd.Flags().Float64Var(&classifyUpLow, "up-low", 0, "Absolute lower up-score cutoff")
	cmd.Flags().Float64Var(&classifyUpHigh, "up-high", 0, "Absolute upper up-score cutoff")
	cmd.Flags().Float64Var(&classifyDownLow, "down-low", 0, "Absolute lower down-score cutoff")
	cmd.Flags().Float64Var(&classifyDownHigh, "down-high", 0, "Absolute upper down-score cutoff")

	return cmd
}

func classifyCommandE(cmd *cobra.Command, args []string) error {
	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}
	method, workers, minGenes := resolveScoringParams(cmd, cfg)

	scores, sig, err := runScoring(cmd.Context(), args[0], args[1], method, workers, minGenes)
	if err != nil {
		return err
	}

	cutoffs, err := resolveCutoffs(cmd, cfg, scores)
	if err != nil {
		return err
	}

	result, summary, err := classify.Run(scores, cutoffs)
	if err != nil {
		return err
	}
	summary.Pathway = sig.Pathway

	if classifyOutput != "" {
		table := predictionsToDataset(result, scores)
		if err := dataset.Save(classifyOutput, table); err != nil {
			return fmt.Errorf("failed to write predictions: %w", err)
		}
		fmt.Printf("Predictions written to %s\n", classifyOutput)
	}

	fmt.Print(reporting.FormatClassificationSummary(summary))
	return nil
}

// resolveCutoffs picks absolute cutoffs when any of the four absolute flags
// was set (all four are then required), percentile resolution otherwise.
func resolveCutoffs(cmd *cobra.Command, cfg *projectconfig.ProjectConfig, scores *models.ScoreTable) (models.Thresholds, error) {
	flags := cmd.Flags()
	absoluteFlags := []string{"up-low", "up-high", "down-low", "down-high"}
	set := 0
	for _, name := range absoluteFlags {
		if flags.Changed(name) {
			set++
		}
	}
	if set > 0 {
		if set < len(absoluteFlags) {
			return models.Thresholds{}, fmt.Errorf("absolute cutoffs require all of --up-low, --up-high, --down-low and --down-high")
		}
		return thresholds.Absolute(classifyUpLow, classifyUpHigh, classifyDownLow, classifyDownHigh)
	}

	percent := cfg.Classify.Percentile
	if flags.Changed("percentile") {
		percent = classifyPercentile
	}
	return thresholds.FromPercentile(scores, percent)
}

// predictionsToDataset builds the predictions table consumed by evaluate:
// sample and class columns, plus the score pair for reference.
func predictionsToDataset(result *models.Result, scores *models.ScoreTable) *dataset.Table {
	t := &dataset.Table{Columns: []string{evaluate.SampleColumn, evaluate.ClassColumn, "up", "down"}}
	for _, sample := range result.Samples {
		pair := scores.Pairs[sample]
		t.Rows = append(t.Rows, dataset.Row{
			evaluate.SampleColumn: sample,
			evaluate.ClassColumn:  string(result.Labels[sample]),
			"up":                  strconv.FormatFloat(pair.Up, 'g', -1, 64),
			"down":                strconv.FormatFloat(pair.Down, 'g', -1, 64),
		})
	}
	return t
}
