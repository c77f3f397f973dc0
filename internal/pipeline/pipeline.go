// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline wires the combine, dedup, and score stages into the
// single ranking entry point.
// Implements: prd005-pipeline (R1-R4);
//
//	docs/ARCHITECTURE § Pipeline Interface.
package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/insight-engine/internal/combine"
	"github.com/pdiddy/insight-engine/internal/dedup"
	"github.com/pdiddy/insight-engine/internal/registry"
	"github.com/pdiddy/insight-engine/internal/score"
	"github.com/pdiddy/insight-engine/pkg/types"
)

// Pipeline runs raw collector output through standardization, duplicate
// merging, and scoring. A pipeline is immutable after construction and safe
// for concurrent Run calls.
type Pipeline struct {
	combiner *combine.Combiner
	dedup    *dedup.Deduplicator
	scorer   *score.Scorer
}

// Stats holds per-stage counts for one run.
type Stats struct {
	Sources     int           `json:"sources" yaml:"sources"`
	Combined    int           `json:"combined" yaml:"combined"`
	DupsRemoved int           `json:"duplicates_removed" yaml:"duplicates_removed"`
	Ranked      int           `json:"ranked" yaml:"ranked"`
	Duration    time.Duration `json:"duration" yaml:"duration"`
}

// Output holds the ranked items and run metadata.
type Output struct {
	RunID string              `json:"run_id" yaml:"run_id"`
	Items []types.ContentItem `json:"items" yaml:"items"`
	Stats Stats               `json:"stats" yaml:"stats"`
}

// New builds a pipeline from the given configuration. Zero config fields
// fall back to documented defaults stage by stage.
func New(cfg types.PipelineConfig) *Pipeline {
	reg := registry.New(cfg.Sources)
	return &Pipeline{
		combiner: combine.New(cfg.Combiner, reg),
		dedup:    dedup.New(cfg.Dedup),
		scorer:   score.New(cfg.Scoring),
	}
}

// Run executes the three stages in order and reports progress to w. Items
// that fail standardization are resolved to defaults inside the stages, so
// the only error case is an empty input.
func (p *Pipeline) Run(sources map[string][]types.RawItem, w io.Writer) (Output, error) {
	if len(sources) == 0 {
		return Output{}, fmt.Errorf("no sources provided")
	}

	start := time.Now()
	out := Output{RunID: uuid.NewString()}
	out.Stats.Sources = len(sources)

	combined := p.combiner.Combine(sources)
	out.Stats.Combined = len(combined)
	fmt.Fprintf(w, "combined %d items from %d sources\n", len(combined), len(sources))

	unique := p.dedup.Deduplicate(combined)
	out.Stats.DupsRemoved = len(combined) - len(unique)
	fmt.Fprintf(w, "removed %d duplicates, %d items remain\n", out.Stats.DupsRemoved, len(unique))

	out.Items = p.scorer.Score(unique)
	out.Stats.Ranked = len(out.Items)
	out.Stats.Duration = time.Since(start)
	fmt.Fprintf(w, "ranked %d items in %s\n", len(out.Items), out.Stats.Duration.Round(time.Millisecond))

	return out, nil
}

// FormatTable writes the ranked items as a human-readable table to w.
func FormatTable(out Output, w io.Writer) {
	if len(out.Items) == 0 {
		fmt.Fprintln(w, "No items ranked.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-55s  %-14s  %-9s  %s\n",
		"Rank", "Title", "Source", "Composite", "Published")
	fmt.Fprintln(w, strings.Repeat("-", 95))

	for i, item := range out.Items {
		title := item.Title
		if len(title) > 55 {
			title = title[:52] + "..."
		}
		published := ""
		if item.PublishedValid {
			published = item.Published.Format("2006-01-02")
		}
		composite := 0.0
		if item.Score != nil {
			composite = item.Score.Composite
		}
		fmt.Fprintf(w, "%-4d  %-55s  %-14s  %-9.3f  %s\n",
			i+1, title, truncate(item.Source, 14), composite, published)
	}

	fmt.Fprintf(w, "\n%d items", len(out.Items))
	if out.Stats.DupsRemoved > 0 {
		fmt.Fprintf(w, " (%d duplicates removed)", out.Stats.DupsRemoved)
	}
	fmt.Fprintln(w)
}

// FormatJSON writes the ranked items as indented JSON to w.
func FormatJSON(out Output, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out.Items)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
