package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pathsig",
		Short: "Pathsig - pathway activity classification from expression data",
		Long: `Pathsig classifies samples as pathway-Active or pathway-Inactive from
gene expression data.

It scores each sample against a gene signature, applies a dual-threshold
decision rule, and evaluates predictions against ground-truth labels.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newScoreCommand())
	cmd.AddCommand(newClassifyCommand())
	cmd.AddCommand(newEvaluateCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
