// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package combine

import (
	"math"

	"github.com/pdiddy/insight-engine/pkg/types"
)

// SourceStatistics summarizes a combined list by source type. Reporting
// helper only; not part of the pipeline hot path.
type SourceStatistics struct {
	TotalItems        int                `json:"total_items" yaml:"total_items"`
	Sources           map[string]int     `json:"sources" yaml:"sources"`
	SourcePercentages map[string]float64 `json:"source_percentages,omitempty" yaml:"source_percentages,omitempty"`
	UniqueSources     int                `json:"unique_sources" yaml:"unique_sources"`
}

// Statistics counts items per source type and derives percentages rounded
// to one decimal.
func Statistics(items []types.ContentItem) SourceStatistics {
	if len(items) == 0 {
		return SourceStatistics{Sources: map[string]int{}}
	}

	counts := make(map[string]int)
	for _, item := range items {
		t := item.SourceType
		if t == "" {
			t = "unknown"
		}
		counts[t]++
	}

	percentages := make(map[string]float64, len(counts))
	total := len(items)
	for t, n := range counts {
		pct := float64(n) / float64(total) * 100
		percentages[t] = math.Round(pct*10) / 10
	}

	return SourceStatistics{
		TotalItems:        total,
		Sources:           counts,
		SourcePercentages: percentages,
		UniqueSources:     len(counts),
	}
}
