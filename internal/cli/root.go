// Package cli wires the command-line surface: a long-running service mode and
// a one-shot batch mode for optimizing scraped record files.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "futurestudies",
	Short: "Content normalization and retrieval-chunking pipeline",
	Long: `futurestudies turns scraped education pages into retrieval-ready
documents: normalized text, context-labeled chunks, keywords, topics,
search variations and QA pairs.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}
