package main

import (
	"fmt"
	"math"

	"github.com/genescope/pathsig/internal/dataset"
	"github.com/genescope/pathsig/internal/evaluate"
	"github.com/genescope/pathsig/internal/projectconfig"
	"github.com/genescope/pathsig/internal/reporting"
	"github.com/spf13/cobra"
)

var (
	evaluatePathway        string
	evaluateStats          bool
	evaluateMinSensitivity float64
)

func newEvaluateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate <predictions.csv> <truth.csv>",
		Short: "Evaluate predictions against ground-truth labels",
		Long: `Compare a predictions table against a ground-truth table and print the
resulting confusion matrix.

The predictions table needs sample and class columns. The truth table
needs a sample column plus one class column per pathway; --pathway picks
which one to score against. Samples are joined by name; samples present
in only one table are ignored, as are truth rows whose class is not a
definite Active or Inactive call.`,
		Args: cobra.ExactArgs(2),
		RunE: evaluateCommandE,
	}

	cmd.Flags().StringVarP(&evaluatePathway, "pathway", "p", evaluate.ClassColumn, "Truth-table column holding the true class")
	cmd.Flags().BoolVar(&evaluateStats, "stats", false, "Print derived accuracy statistics")
	cmd.Flags().Float64Var(&evaluateMinSensitivity, "min-sensitivity", 0, "Fail (exit 1) when sensitivity falls below this value; 0 disables")

	return cmd
}

func evaluateCommandE(cmd *cobra.Command, args []string) error {
	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}

	predictions, err := dataset.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to load predictions: %w", err)
	}
	truth, err := dataset.Load(args[1])
	if err != nil {
		return fmt.Errorf("failed to load ground truth: %w", err)
	}

	cm, err := evaluate.ConfusionMatrix(predictions, truth, evaluatePathway)
	if err != nil {
		return err
	}
	fmt.Print(reporting.FormatConfusionMatrix(cm))

	showStats := evaluateStats
	if !cmd.Flags().Changed("stats") && cfg.Evaluate.Stats != nil {
		showStats = *cfg.Evaluate.Stats
	}

	minSensitivity := cfg.Evaluate.MinSensitivity
	if cmd.Flags().Changed("min-sensitivity") {
		minSensitivity = evaluateMinSensitivity
	}

	stats := evaluate.Stats(cm)
	if showStats {
		fmt.Print(reporting.FormatAccuracyStats(stats))
	}

	if minSensitivity > 0 {
		if math.IsNaN(stats.Sensitivity) || stats.Sensitivity < minSensitivity {
			return &AccuracyFailureError{
				Message: fmt.Sprintf("sensitivity %s below required minimum %.2f", formatSensitivity(stats.Sensitivity), minSensitivity),
			}
		}
	}
	return nil
}

func formatSensitivity(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}
