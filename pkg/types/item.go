// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the insight-engine pipeline.
// Implements: prd001-combine (RawItem, ContentItem, R1.1-R1.4);
//
//	prd003-scoring (Score, Analysis, R4.1);
//	docs/ARCHITECTURE § Data Structures.
package types

import "time"

// RawItem is a content record exactly as a collector produced it. Every
// field is optional; the pipeline reads raw items but never mutates them.
type RawItem struct {
	// ID is the collector-assigned identifier, if any. When empty the
	// combiner derives a stable id from title, content, url, and source.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// Title is the item headline.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Content is the item body text.
	Content string `json:"content,omitempty" yaml:"content,omitempty"`

	// URL is the canonical link for the item.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Author is the byline, if the collector found one.
	Author string `json:"author,omitempty" yaml:"author,omitempty"`

	// Published is the publication timestamp as the collector reported it.
	// Collectors disagree on formats, so it stays a string until the
	// combiner parses it.
	Published string `json:"published,omitempty" yaml:"published,omitempty"`

	// Tags lists collector-assigned topic tags.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Relevance is an optional relevance hint from the collector, used only
	// as a sort tie-breaker during combining.
	Relevance float64 `json:"relevance_score,omitempty" yaml:"relevance_score,omitempty"`

	// Metadata holds any extra collector fields not modeled above
	// (engagement counters, search_query, verified flags, ...).
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// DuplicateSource records the provenance of a merged duplicate.
type DuplicateSource struct {
	SourceType string `json:"source_type" yaml:"source_type"`
	URL        string `json:"url" yaml:"url"`
	ID         string `json:"id" yaml:"id"`
}

// Score holds the per-item component scores produced by the scorer.
// All components are in [0,1]; Composite is floored at the configured
// minimum. Values are rounded to 3 decimals for output stability.
type Score struct {
	Relevance   float64 `json:"relevance" yaml:"relevance"`
	Credibility float64 `json:"credibility" yaml:"credibility"`
	Recency     float64 `json:"recency" yaml:"recency"`
	Engagement  float64 `json:"engagement" yaml:"engagement"`
	SourceBoost float64 `json:"source_boost" yaml:"source_boost"`
	Composite   float64 `json:"composite" yaml:"composite"`
}

// RelevanceSignal is the relevance portion of an external analysis
// attachment (produced by the analyzer collaborators, not by this core).
type RelevanceSignal struct {
	// Score is the analyzer's base relevance in [0,1].
	Score float64 `json:"score" yaml:"score"`

	// TitleMatches lists query terms found in the title.
	TitleMatches []string `json:"title_matches,omitempty" yaml:"title_matches,omitempty"`

	// KeywordDensity is the fraction of content words matching the query.
	KeywordDensity float64 `json:"keyword_density,omitempty" yaml:"keyword_density,omitempty"`
}

// CredibilitySignal is the credibility portion of an external analysis
// attachment.
type CredibilitySignal struct {
	// Score is the analyzer's base credibility in [0,1].
	Score float64 `json:"score" yaml:"score"`

	// RiskFactors lists detected credibility risks; each one costs 0.1.
	RiskFactors []string `json:"risk_factors,omitempty" yaml:"risk_factors,omitempty"`
}

// Analysis is the attachment external analyzers place on an item before
// scoring. Either signal may be absent; the scorer substitutes neutral
// defaults.
type Analysis struct {
	Relevance   *RelevanceSignal   `json:"relevance,omitempty" yaml:"relevance,omitempty"`
	Credibility *CredibilitySignal `json:"credibility,omitempty" yaml:"credibility,omitempty"`
}

// ContentItem is the standardized content record produced by the combiner
// and carried through deduplication and scoring. Per prd001-combine R2.1,
// the id is immutable once assigned; the deduplicator mutates only Tags and
// DuplicateSources, the scorer only Score. Downstream consumers treat the
// record as immutable.
type ContentItem struct {
	// ID is globally unique. Two raw items with identical title, content,
	// and url from the same source collapse to the same id.
	ID string `json:"id" yaml:"id"`

	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
	URL     string `json:"url" yaml:"url"`
	Author  string `json:"author" yaml:"author"`

	// Source is the identifier of the collector that produced the item.
	Source string `json:"source" yaml:"source"`

	// SourceType, SourceCategory, CredibilityScore, and BiasRating are
	// copied from the source registry at combine time and frozen.
	// CredibilityScore is normalized to [0,1].
	SourceType       string  `json:"source_type" yaml:"source_type"`
	SourceCategory   string  `json:"source_category" yaml:"source_category"`
	CredibilityScore float64 `json:"credibility_score" yaml:"credibility_score"`
	BiasRating       string  `json:"bias_rating" yaml:"bias_rating"`

	// Published is the parsed publication time. When the collector supplied
	// no timestamp it defaults to the combine time; when the timestamp was
	// unparsable it is the zero time (sorting oldest).
	Published time.Time `json:"published" yaml:"published"`

	// PublishedValid reports whether Published came from a parsable
	// collector timestamp. Invalid timestamps score a neutral recency.
	PublishedValid bool `json:"published_valid" yaml:"published_valid"`

	// Tags is a set of topic tags; the deduplicator unions in tags from
	// merged duplicates.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// DuplicateSources records items merged into this one by the
	// deduplicator, in merge order.
	DuplicateSources []DuplicateSource `json:"duplicate_sources,omitempty" yaml:"duplicate_sources,omitempty"`

	// Metadata carries extra collector fields, preserved only when the
	// combiner is configured to do so.
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// Analysis is the external analyzer attachment consumed by the scorer.
	Analysis *Analysis `json:"analysis,omitempty" yaml:"analysis,omitempty"`

	// Score is populated by the scorer and absent before it runs.
	Score *Score `json:"score,omitempty" yaml:"score,omitempty"`
}
