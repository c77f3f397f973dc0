// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/insight-engine/internal/aggregate"
	"github.com/pdiddy/insight-engine/internal/pipeline"
)

var aggregateCmd = &cobra.Command{
	Use:   "aggregate <batch-file>",
	Short: "Filter, deduplicate, and cap a collector batch",
	Long: `Aggregate applies the lightweight cleanup path to a batch file: articles
with too little content are dropped, near-identical articles are removed,
and each source is capped at a maximum number of articles. Unlike rank,
no scoring or provenance merging happens.`,
	Args: cobra.ExactArgs(1),
	RunE: runAggregate,
}

func runAggregate(cmd *cobra.Command, args []string) error {
	cfg, err := pipelineConfig()
	if err != nil {
		return err
	}
	if maxPerSource, _ := cmd.Flags().GetInt("max-per-source"); maxPerSource > 0 {
		cfg.Aggregator.MaxArticlesPerSource = maxPerSource
	}

	sources, err := pipeline.ReadBatch(args[0])
	if err != nil {
		return err
	}

	// Flatten in source-name order so output is deterministic.
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)

	var articles []aggregate.Article
	for _, name := range names {
		for _, item := range sources[name] {
			articles = append(articles, aggregate.Article{Source: name, Item: item})
		}
	}

	kept := aggregate.New(cfg.Aggregator).Aggregate(articles)
	fmt.Fprintf(os.Stderr, "kept %d of %d articles\n", len(kept), len(articles))

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(kept)
	}

	for _, art := range kept {
		fmt.Printf("%-14s  %s\n", art.Source, art.Item.Title)
	}
	return nil
}

func init() {
	aggregateCmd.Flags().Int("max-per-source", 0, "cap articles per source (0 = config default)")
	aggregateCmd.Flags().Bool("json", false, "output kept articles as JSON")

	rootCmd.AddCommand(aggregateCmd)
}
