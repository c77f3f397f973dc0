// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SortKey selects the score field the scorer orders by.
// Per prd003-scoring R5.1.
type SortKey string

const (
	SortRelevance   SortKey = "relevance"
	SortRecency     SortKey = "recency"
	SortCredibility SortKey = "credibility"
	SortEngagement  SortKey = "engagement"
	SortComposite   SortKey = "composite"
)

// Valid reports whether the sort key is one of the recognized values.
func (k SortKey) Valid() bool {
	switch k {
	case SortRelevance, SortRecency, SortCredibility, SortEngagement, SortComposite:
		return true
	}
	return false
}

// CombinerConfig holds settings for the combine stage.
// Per prd001-combine R5.1-R5.2.
type CombinerConfig struct {
	// MaxItemsPerSource caps how many raw items each source contributes,
	// applied before standardization (default 100).
	MaxItemsPerSource int `json:"max_items_per_source" yaml:"max_items_per_source"`

	// PreserveMetadata controls whether unmodeled collector fields are
	// carried into ContentItem.Metadata (default true).
	PreserveMetadata bool `json:"preserve_metadata" yaml:"preserve_metadata"`
}

// DedupConfig holds settings for the deduplication stage.
// Per prd002-dedup R5.1-R5.5.
type DedupConfig struct {
	// SimilarityThreshold is the weighted overall similarity above which
	// two items are duplicates (default 0.8).
	SimilarityThreshold float64 `json:"similarity_threshold" yaml:"similarity_threshold"`

	// TitleThreshold is the title-only similarity threshold (default 0.9).
	TitleThreshold float64 `json:"title_threshold" yaml:"title_threshold"`

	// URLThreshold short-circuits the text comparison: URL similarity at or
	// above it marks a duplicate outright (default 0.95).
	URLThreshold float64 `json:"url_threshold" yaml:"url_threshold"`

	// ContentThreshold is the content-only similarity threshold (default 0.85).
	ContentThreshold float64 `json:"content_threshold" yaml:"content_threshold"`

	// MinContentLength is the minimum content length considered meaningful
	// for comparison (default 50).
	MinContentLength int `json:"min_content_length" yaml:"min_content_length"`
}

// ScoringConfig holds settings for the scoring stage.
// Per prd003-scoring R5.1-R5.6. The four component weights are renormalized
// to sum to 1 when entity focus is detected.
type ScoringConfig struct {
	// MinScore is the floor applied to the composite score (default 0.1).
	MinScore float64 `json:"min_score" yaml:"min_score"`

	// Component weights (defaults 0.4 / 0.2 / 0.2 / 0.2).
	RelevanceWeight   float64 `json:"relevance_weight" yaml:"relevance_weight"`
	CredibilityWeight float64 `json:"credibility_weight" yaml:"credibility_weight"`
	RecencyWeight     float64 `json:"recency_weight" yaml:"recency_weight"`
	EngagementWeight  float64 `json:"engagement_weight" yaml:"engagement_weight"`

	// SortBy selects the output ordering (default composite).
	SortBy SortKey `json:"sort_by" yaml:"sort_by"`

	// MaxAgeDays is the age at which recency bottoms out at 0.1 (default 30).
	MaxAgeDays int `json:"max_age_days" yaml:"max_age_days"`

	// BoostFactors maps source type to a composite multiplier (default 1.0
	// for unlisted types).
	BoostFactors map[string]float64 `json:"boost_factors,omitempty" yaml:"boost_factors,omitempty"`

	// EntityGroups maps an entity category to the names that trigger
	// entity-focused weight adjustment. Empty means the built-in groups.
	EntityGroups map[string][]string `json:"entity_groups,omitempty" yaml:"entity_groups,omitempty"`
}

// AggregatorConfig holds settings for the simple aggregation entry point.
// Per prd004-aggregation R1.1-R1.3.
type AggregatorConfig struct {
	// DeduplicationThreshold is the raw-content similarity above which two
	// articles are duplicates (default 0.8).
	DeduplicationThreshold float64 `json:"deduplication_threshold" yaml:"deduplication_threshold"`

	// MaxArticlesPerSource keeps the first N articles per source (default 5).
	MaxArticlesPerSource int `json:"max_articles_per_source" yaml:"max_articles_per_source"`

	// MinArticleLength drops articles with shorter content (default 100).
	MinArticleLength int `json:"min_article_length" yaml:"min_article_length"`
}

// SourceProfile is the registry record for one source. Score is normalized
// to [0,1]; integrations whose collectors report 0-100 must divide before
// configuring overrides.
type SourceProfile struct {
	Score    float64 `json:"score" yaml:"score"`
	Bias     string  `json:"bias" yaml:"bias"`
	Category string  `json:"category" yaml:"category"`
	Type     string  `json:"type" yaml:"type"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Combiner   CombinerConfig   `json:"combiner" yaml:"combiner"`
	Dedup      DedupConfig      `json:"dedup" yaml:"dedup"`
	Scoring    ScoringConfig    `json:"scoring" yaml:"scoring"`
	Aggregator AggregatorConfig `json:"aggregator" yaml:"aggregator"`

	// Sources overrides or extends the built-in source registry.
	Sources map[string]SourceProfile `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// DefaultPipelineConfig returns the documented defaults for every stage.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Combiner: CombinerConfig{
			MaxItemsPerSource: 100,
			PreserveMetadata:  true,
		},
		Dedup: DedupConfig{
			SimilarityThreshold: 0.8,
			TitleThreshold:      0.9,
			URLThreshold:        0.95,
			ContentThreshold:    0.85,
			MinContentLength:    50,
		},
		Scoring: ScoringConfig{
			MinScore:          0.1,
			RelevanceWeight:   0.4,
			CredibilityWeight: 0.2,
			RecencyWeight:     0.2,
			EngagementWeight:  0.2,
			SortBy:            SortComposite,
			MaxAgeDays:        30,
		},
		Aggregator: AggregatorConfig{
			DeduplicationThreshold: 0.8,
			MaxArticlesPerSource:   5,
			MinArticleLength:       100,
		},
	}
}
