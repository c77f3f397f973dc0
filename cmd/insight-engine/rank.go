// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/insight-engine/internal/pipeline"
	"github.com/pdiddy/insight-engine/internal/score"
	"github.com/pdiddy/insight-engine/pkg/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank <batch-file>",
	Short: "Run the full pipeline on a collector batch file",
	Long: `Rank reads collector output from a JSON or YAML batch file, combines it
across sources, merges duplicates, scores every item, and prints the
ranked list. The batch file holds either a map from source name to item
list or a flat item list with per-item source fields.

Use --save to write the run to a rank file that can be inspected later
without re-ranking.`,
	Args: cobra.ExactArgs(1),
	RunE: runRank,
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg, err := pipelineConfig()
	if err != nil {
		return err
	}

	if sortBy, _ := cmd.Flags().GetString("sort-by"); sortBy != "" {
		key := types.SortKey(sortBy)
		if !key.Valid() {
			return fmt.Errorf("invalid sort key %q: use relevance, recency, credibility, engagement, or composite", sortBy)
		}
		cfg.Scoring.SortBy = key
	}
	if maxPerSource, _ := cmd.Flags().GetInt("max-per-source"); maxPerSource > 0 {
		cfg.Combiner.MaxItemsPerSource = maxPerSource
	}

	sources, err := pipeline.ReadBatch(args[0])
	if err != nil {
		return err
	}

	// The originating query drives entity-focus detection during scoring.
	if query, _ := cmd.Flags().GetString("query"); query != "" {
		for name, items := range sources {
			for i := range items {
				if items[i].Metadata == nil {
					items[i].Metadata = map[string]any{}
				}
				if _, ok := items[i].Metadata["search_query"]; !ok {
					items[i].Metadata["search_query"] = query
				}
			}
			sources[name] = items
		}
	}

	out, err := pipeline.New(cfg).Run(sources, os.Stderr)
	if err != nil {
		return err
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := pipeline.WriteRankFile(savePath, out); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved run %s to %s\n", out.RunID, savePath)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return pipeline.FormatJSON(out, os.Stdout)
	}

	pipeline.FormatTable(out, os.Stdout)

	if explain, _ := cmd.Flags().GetBool("explain"); explain {
		fmt.Println()
		for i := range out.Items {
			fmt.Printf("%d. %s\n", i+1, score.Explain(&out.Items[i]))
		}
	}
	return nil
}

func init() {
	rankCmd.Flags().String("query", "", "originating search query, used for entity-focus detection")
	rankCmd.Flags().String("sort-by", "", "sort key: relevance, recency, credibility, engagement, composite")
	rankCmd.Flags().Int("max-per-source", 0, "cap items per source before combining (0 = config default)")
	rankCmd.Flags().String("save", "", "write the run to a rank file at this path")
	rankCmd.Flags().Bool("json", false, "output ranked items as JSON")
	rankCmd.Flags().Bool("explain", false, "print a score breakdown per item")

	rootCmd.AddCommand(rankCmd)
}
