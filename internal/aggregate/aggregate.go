// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate filters, deduplicates, and caps raw article lists. It is
// the lightweight entry point for callers that want cleaned-up collector
// output without the full combine, dedup, and score pipeline.
// Implements: prd004-aggregation (R1-R3);
//
//	docs/ARCHITECTURE § Aggregation.
package aggregate

import (
	"github.com/pdiddy/insight-engine/internal/dedup"
	"github.com/pdiddy/insight-engine/pkg/types"
)

// Article pairs a raw item with the name of the source that produced it,
// since raw items do not carry source attribution themselves.
type Article struct {
	Source string
	Item   types.RawItem
}

// Aggregator applies content filtering, raw-text deduplication, and
// per-source limits to article lists.
type Aggregator struct {
	cfg types.AggregatorConfig
}

// New returns an aggregator with documented defaults applied to zero
// config fields.
func New(cfg types.AggregatorConfig) *Aggregator {
	if cfg.DeduplicationThreshold == 0 {
		cfg.DeduplicationThreshold = 0.8
	}
	if cfg.MaxArticlesPerSource == 0 {
		cfg.MaxArticlesPerSource = 5
	}
	if cfg.MinArticleLength == 0 {
		cfg.MinArticleLength = 100
	}
	return &Aggregator{cfg: cfg}
}

// Aggregate runs the three stages in order: content filter, duplicate
// removal, then per-source limits. Input order is preserved throughout.
func (a *Aggregator) Aggregate(articles []Article) []Article {
	return a.ApplySourceLimits(a.Deduplicate(a.FilterContent(articles)))
}

// FilterContent drops articles whose content is shorter than the configured
// minimum length, in bytes.
func (a *Aggregator) FilterContent(articles []Article) []Article {
	var kept []Article
	for _, art := range articles {
		if len(art.Item.Content) < a.cfg.MinArticleLength {
			continue
		}
		kept = append(kept, art)
	}
	return kept
}

// Deduplicate drops articles whose raw content is similar to an earlier
// article at or above the configured threshold. Unlike the pipeline
// deduplicator it compares content as-is, with no normalization and no
// provenance merging; the first occurrence simply wins.
func (a *Aggregator) Deduplicate(articles []Article) []Article {
	var unique []Article
	for _, art := range articles {
		duplicate := false
		for _, kept := range unique {
			if dedup.Ratio(art.Item.Content, kept.Item.Content) >= a.cfg.DeduplicationThreshold {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, art)
		}
	}
	return unique
}

// ApplySourceLimits keeps the first N articles per source, in input order.
func (a *Aggregator) ApplySourceLimits(articles []Article) []Article {
	counts := make(map[string]int)
	var kept []Article
	for _, art := range articles {
		if counts[art.Source] >= a.cfg.MaxArticlesPerSource {
			continue
		}
		counts[art.Source]++
		kept = append(kept, art)
	}
	return kept
}
