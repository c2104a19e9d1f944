package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bestfranklinAI/web-scraper-future-studies/features/document"
	"github.com/bestfranklinAI/web-scraper-future-studies/internal/export"
	"github.com/bestfranklinAI/web-scraper-future-studies/internal/pipeline"
)

var (
	optimizeInput       string
	optimizeOutput      string
	optimizeSourceType  string
	optimizeProfilePath string
	optimizeSourceLabel string
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Optimize a file of scraped records into a retrieval-ready export",
	Long: `Reads a JSON file of raw records, runs each through the
normalization and chunking pipeline and writes the indexer envelope.
Records without a usable title or body are skipped, not failed.`,
	RunE: runOptimize,
}

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeInput, "input", "i", "", "input JSON file of raw records (required)")
	optimizeCmd.Flags().StringVarP(&optimizeOutput, "output", "o", "", "output file (default stdout)")
	optimizeCmd.Flags().StringVarP(&optimizeSourceType, "source-type", "t", "", "source type applied to records that carry none (article, subject, school)")
	optimizeCmd.Flags().StringVar(&optimizeProfilePath, "profile", "", "YAML file overriding the built-in vocabulary profiles")
	optimizeCmd.Flags().StringVar(&optimizeSourceLabel, "source-label", "LinkedU Articles (RAG Optimized)", "source label written to the envelope metadata")
	_ = optimizeCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(optimizeCmd)
}

// decodeRecords accepts either a bare JSON array of records or an object
// with a "records" field, matching what the scrapers emit.
func decodeRecords(data []byte) ([]document.RawRecord, error) {
	var records []document.RawRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var wrapped struct {
		Records []document.RawRecord `json:"records"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("input is neither a record array nor a records object: %w", err)
	}
	return wrapped.Records, nil
}

func runOptimize(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(optimizeInput)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	records, err := decodeRecords(data)
	if err != nil {
		return err
	}

	registry := pipeline.DefaultRegistry()
	if optimizeProfilePath != "" {
		registry, err = pipeline.LoadRegistry(optimizeProfilePath)
		if err != nil {
			return fmt.Errorf("failed to load profiles: %w", err)
		}
	}

	assemblers := make(map[string]*pipeline.Assembler)
	assemblerFor := func(sourceType string) *pipeline.Assembler {
		if a, ok := assemblers[sourceType]; ok {
			return a
		}
		a := pipeline.NewAssembler(registry.For(sourceType))
		assemblers[sourceType] = a
		return a
	}

	docs := []document.Document{}
	skipped := 0
	for i, rec := range records {
		if rec.SourceType == "" {
			rec.SourceType = optimizeSourceType
		}
		doc, err := assemblerFor(rec.SourceType).Assemble(rec, i+1)
		if err != nil {
			if errors.Is(err, pipeline.ErrSkippedRecord) {
				cmd.PrintErrf("skipping record %d (%s): %v\n", i, rec.Title, err)
				skipped++
				continue
			}
			return fmt.Errorf("record %d (%s): %w", i, rec.Title, err)
		}
		docs = append(docs, *doc)
	}

	out := cmd.OutOrStdout()
	if optimizeOutput != "" {
		f, err := os.Create(optimizeOutput)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	env := export.NewEnvelope(optimizeSourceLabel, docs, time.Now())
	if err := export.Write(out, env); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	cmd.PrintErrf("optimized %d documents (%d skipped)\n", len(docs), skipped)
	return nil
}
