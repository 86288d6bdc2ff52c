package main

import (
	"fmt"
	"strconv"

	"github.com/genescope/pathsig/internal/dataset"
	"github.com/genescope/pathsig/internal/models"
	"github.com/genescope/pathsig/internal/projectconfig"
	"github.com/spf13/cobra"
)

var (
	scoreOutput   string
	scoreMethod   string
	scoreWorkers  int
	scoreMinGenes int
)

func newScoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <matrix.csv> <signature>",
		Short: "Score samples against a gene signature",
		Long: `Score every sample in an expression matrix against a gene signature.

Produces one (up, down) score pair per sample, written as a CSV table with
sample, up and down columns. The signature may be a YAML file or a
two-column gene/polarity table.`,
		Args: cobra.ExactArgs(2),
		RunE: scoreCommandE,
	}

	cmd.Flags().StringVarP(&scoreOutput, "output", "o", "", "Output CSV file for scores (default: stdout)")
	cmd.Flags().StringVar(&scoreMethod, "method", "", "Scoring method (default: combined-z)")
	cmd.Flags().IntVar(&scoreWorkers, "workers", 0, "Number of concurrent scoring workers (default: GOMAXPROCS)")
	cmd.Flags().IntVar(&scoreMinGenes, "min-genes", 0, "Minimum matched genes required per signature side")

	return cmd
}

func scoreCommandE(cmd *cobra.Command, args []string) error {
	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}
	method, workers, minGenes := resolveScoringParams(cmd, cfg)

	scores, _, err := runScoring(cmd.Context(), args[0], args[1], method, workers, minGenes)
	if err != nil {
		return err
	}

	table := scoreTableToDataset(scores)
	if scoreOutput == "" {
		printDatasetCSV(table)
		return nil
	}
	if err := dataset.Save(scoreOutput, table); err != nil {
		return fmt.Errorf("failed to write scores: %w", err)
	}
	fmt.Printf("Scores written to %s (%d samples)\n", scoreOutput, scores.Len())
	return nil
}

// resolveScoringParams merges project config defaults with any scoring flags
// the user set explicitly. Works for both score and classify, whose flags
// share names.
func resolveScoringParams(cmd *cobra.Command, cfg *projectconfig.ProjectConfig) (method string, workers, minGenes int) {
	method = cfg.Scoring.Method
	workers = cfg.Scoring.Workers
	minGenes = cfg.Scoring.MinGenes

	if cmd.Flags().Changed("method") {
		method, _ = cmd.Flags().GetString("method")
	}
	if cmd.Flags().Changed("workers") {
		workers, _ = cmd.Flags().GetInt("workers")
	}
	if cmd.Flags().Changed("min-genes") {
		minGenes, _ = cmd.Flags().GetInt("min-genes")
	}
	return method, workers, minGenes
}

// scoreTableToDataset converts a score table to a savable CSV table with
// sample, up and down columns, in sample order.
func scoreTableToDataset(scores *models.ScoreTable) *dataset.Table {
	t := &dataset.Table{Columns: []string{"sample", "up", "down"}}
	for _, sample := range scores.Samples {
		pair := scores.Pairs[sample]
		t.Rows = append(t.Rows, dataset.Row{
			"sample": sample,
			"up":     strconv.FormatFloat(pair.Up, 'g', -1, 64),
			"down":   strconv.FormatFloat(pair.Down, 'g', -1, 64),
		})
	}
	return t
}

func printDatasetCSV(t *dataset.Table) {
	for i, c := range t.Columns {
		if i > 0 {
			fmt.Print(",")
		}
		fmt.Print(c)
	}
	fmt.Println()
	for _, row := range t.Rows {
		for i, c := range t.Columns {
			if i > 0 {
				fmt.Print(",")
			}
			fmt.Print(row[c])
		}
		fmt.Println()
	}
}
