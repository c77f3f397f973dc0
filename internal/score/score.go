// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package score computes multi-factor relevance scores and produces the
// final ranked ordering.
// Implements: prd003-scoring (R1-R6);
//
//	docs/ARCHITECTURE § Scoring.
package score

import (
	"math"
	"sort"
	"time"

	"github.com/pdiddy/insight-engine/pkg/types"
)

// Scorer computes component and composite scores for content items. Scoring
// is total: a malformed item resolves every missing or invalid field to a
// documented default and never aborts the batch.
type Scorer struct {
	cfg      types.ScoringConfig
	entities map[string][]string

	// Now is the clock used for recency decay. Overridable in tests.
	Now func() time.Time
}

// New returns a scorer with documented defaults applied to zero config
// fields.
func New(cfg types.ScoringConfig) *Scorer {
	if cfg.MinScore == 0 {
		cfg.MinScore = 0.1
	}
	if cfg.RelevanceWeight == 0 {
		cfg.RelevanceWeight = 0.4
	}
	if cfg.CredibilityWeight == 0 {
		cfg.CredibilityWeight = 0.2
	}
	if cfg.RecencyWeight == 0 {
		cfg.RecencyWeight = 0.2
	}
	if cfg.EngagementWeight == 0 {
		cfg.EngagementWeight = 0.2
	}
	if !cfg.SortBy.Valid() {
		cfg.SortBy = types.SortComposite
	}
	if cfg.MaxAgeDays <= 0 {
		cfg.MaxAgeDays = 30
	}
	entities := cfg.EntityGroups
	if len(entities) == 0 {
		entities = DefaultEntityGroups()
	}
	return &Scorer{cfg: cfg, entities: entities, Now: time.Now}
}

// Score returns copies of the items with Score populated, sorted descending
// by the configured sort key. The input is not mutated.
func (s *Scorer) Score(items []types.ContentItem) []types.ContentItem {
	if len(items) == 0 {
		return nil
	}

	scored := make([]types.ContentItem, len(items))
	for i, item := range items {
		out := item
		sc := s.calculate(&item)
		out.Score = &sc
		scored[i] = out
	}

	key := sortKeyFunc(s.cfg.SortBy)
	sort.SliceStable(scored, func(i, j int) bool {
		return key(scored[i].Score) > key(scored[j].Score)
	})
	return scored
}

func sortKeyFunc(by types.SortKey) func(*types.Score) float64 {
	switch by {
	case types.SortRelevance:
		return func(s *types.Score) float64 { return s.Relevance }
	case types.SortRecency:
		return func(s *types.Score) float64 { return s.Recency }
	case types.SortCredibility:
		return func(s *types.Score) float64 { return s.Credibility }
	case types.SortEngagement:
		return func(s *types.Score) float64 { return s.Engagement }
	default:
		return func(s *types.Score) float64 { return s.Composite }
	}
}

// calculate produces the full score record for one item.
func (s *Scorer) calculate(item *types.ContentItem) types.Score {
	relevance := s.relevanceScore(item)
	credibility := s.credibilityScore(item)
	recency := s.recencyScore(item)
	engagement := s.engagementScore(item)

	// Entity-focused content shifts weight toward relevance, away from
	// credibility and engagement, then renormalizes so weights sum to 1.
	rw := s.cfg.RelevanceWeight
	cw := s.cfg.CredibilityWeight
	tw := s.cfg.RecencyWeight
	ew := s.cfg.EngagementWeight

	entityGroup := s.detectEntityGroup(item)
	if entityGroup != "" {
		rw *= 1.5
		cw *= 0.8
		ew *= 0.7
		total := rw + cw + tw + ew
		rw /= total
		cw /= total
		tw /= total
		ew /= total
	}

	composite := relevance*rw + credibility*cw + recency*tw + engagement*ew

	boost := s.sourceBoost(item)
	composite *= boost

	// Entity searches with very low relevance are most likely about a
	// different subject entirely; penalize hard.
	if entityGroup != "" && relevance < 0.3 {
		composite *= 0.3
	}

	return types.Score{
		Relevance:   round3(relevance),
		Credibility: round3(credibility),
		Recency:     round3(recency),
		Engagement:  round3(engagement),
		SourceBoost: round3(boost),
		Composite:   round3(math.Max(composite, s.cfg.MinScore)),
	}
}

// relevanceScore combines the analyzer's base relevance with capped boosts
// for title matches (0.1 each, up to 0.3) and keyword density (up to 0.2).
func (s *Scorer) relevanceScore(item *types.ContentItem) float64 {
	if item.Analysis == nil || item.Analysis.Relevance == nil {
		return 0.5
	}
	rel := item.Analysis.Relevance

	titleBoost := math.Min(float64(len(rel.TitleMatches))*0.1, 0.3)
	densityBoost := math.Min(rel.KeywordDensity*2, 0.2)

	return math.Min(rel.Score+titleBoost+densityBoost, 1.0)
}

// credibilityScore applies a 0.1 penalty per analyzer risk factor to the
// base credibility, floored at zero.
func (s *Scorer) credibilityScore(item *types.ContentItem) float64 {
	if item.Analysis == nil || item.Analysis.Credibility == nil {
		return 0.5
	}
	cred := item.Analysis.Credibility

	penalty := float64(len(cred.RiskFactors)) * 0.1
	return math.Max(cred.Score-penalty, 0.0)
}

// recencyScore decays exponentially with age: half-life is a third of
// MaxAgeDays, so an item that old scores e^-1 ≈ 0.368. Items without a
// valid publish time score a neutral 0.5.
func (s *Scorer) recencyScore(item *types.ContentItem) float64 {
	if !item.PublishedValid {
		return 0.5
	}

	ageDays := s.Now().Sub(item.Published).Hours() / 24
	maxAge := float64(s.cfg.MaxAgeDays)
	switch {
	case ageDays <= 0:
		return 1.0
	case ageDays >= maxAge:
		return 0.1
	default:
		halfLife := maxAge / 3
		return math.Exp(-ageDays / halfLife)
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
