// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/insight-engine/internal/combine"
	"github.com/pdiddy/insight-engine/internal/pipeline"
	"github.com/pdiddy/insight-engine/internal/registry"
)

var statsCmd = &cobra.Command{
	Use:   "stats <batch-file>",
	Short: "Report source-type distribution for a collector batch",
	Long: `Stats combines a batch file without deduplicating or scoring it and
reports how the items are distributed across source types.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := pipelineConfig()
	if err != nil {
		return err
	}

	sources, err := pipeline.ReadBatch(args[0])
	if err != nil {
		return err
	}

	combiner := combine.New(cfg.Combiner, registry.New(cfg.Sources))
	stats := combine.Statistics(combiner.Combine(sources))

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	fmt.Printf("%d items across %d source types\n\n", stats.TotalItems, stats.UniqueSources)

	names := make([]string, 0, len(stats.Sources))
	for name := range stats.Sources {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-14s  %4d  %5.1f%%\n", name, stats.Sources[name], stats.SourcePercentages[name])
	}
	return nil
}

func init() {
	statsCmd.Flags().Bool("json", false, "output statistics as JSON")

	rootCmd.AddCommand(statsCmd)
}
