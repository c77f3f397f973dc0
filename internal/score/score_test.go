// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/insight-engine/pkg/types"
)

func testScorer() *Scorer {
	s := New(types.ScoringConfig{})
	s.Now = func() time.Time { return time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestScoreEmpty(t *testing.T) {
	if got := testScorer().Score(nil); got != nil {
		t.Errorf("Score(nil) = %v, want nil", got)
	}
}

func TestScoreMalformedItemGetsNeutralDefaults(t *testing.T) {
	items := []types.ContentItem{{
		ID:    "bare",
		Title: "Bare item with nothing attached",
	}}

	scored := testScorer().Score(items)
	if len(scored) != 1 {
		t.Fatalf("len(scored) = %d, want 1", len(scored))
	}
	sc := scored[0].Score
	if sc == nil {
		t.Fatal("Score = nil, want populated")
	}
	if sc.Relevance != 0.5 || sc.Credibility != 0.5 || sc.Recency != 0.5 || sc.Engagement != 0.5 {
		t.Errorf("components = %+v, want all 0.5", sc)
	}
	if sc.SourceBoost != 1.0 {
		t.Errorf("SourceBoost = %f, want 1.0", sc.SourceBoost)
	}
	if sc.Composite != 0.5 {
		t.Errorf("Composite = %f, want 0.5", sc.Composite)
	}
}

func TestScoreDoesNotMutateInput(t *testing.T) {
	items := []types.ContentItem{
		{ID: "a", Title: "First"},
		{ID: "b", Title: "Second"},
	}

	_ = testScorer().Score(items)
	for _, item := range items {
		if item.Score != nil {
			t.Errorf("input item %q was mutated", item.ID)
		}
	}
}

func TestRelevanceScoreBoosts(t *testing.T) {
	s := testScorer()
	item := &types.ContentItem{
		Analysis: &types.Analysis{
			Relevance: &types.RelevanceSignal{
				Score:          0.6,
				TitleMatches:   []string{"ai", "protein"},
				KeywordDensity: 0.05,
			},
		},
	}

	// 0.6 base + 0.2 title matches + 0.1 density.
	got := s.relevanceScore(item)
	if math.Abs(got-0.9) > 0.0001 {
		t.Errorf("relevanceScore = %f, want 0.9", got)
	}
}

func TestRelevanceScoreBoostsCapped(t *testing.T) {
	s := testScorer()
	item := &types.ContentItem{
		Analysis: &types.Analysis{
			Relevance: &types.RelevanceSignal{
				Score:          0.9,
				TitleMatches:   []string{"a", "b", "c", "d", "e"},
				KeywordDensity: 0.5,
			},
		},
	}

	if got := s.relevanceScore(item); got != 1.0 {
		t.Errorf("relevanceScore = %f, want capped at 1.0", got)
	}
}

func TestCredibilityScoreRiskPenalty(t *testing.T) {
	s := testScorer()
	item := &types.ContentItem{
		Analysis: &types.Analysis{
			Credibility: &types.CredibilitySignal{
				Score:       0.8,
				RiskFactors: []string{"sensational language", "no byline"},
			},
		},
	}

	got := s.credibilityScore(item)
	if math.Abs(got-0.6) > 0.0001 {
		t.Errorf("credibilityScore = %f, want 0.6", got)
	}

	item.Analysis.Credibility.RiskFactors = make([]string, 10)
	if got := s.credibilityScore(item); got != 0.0 {
		t.Errorf("credibilityScore with 10 risks = %f, want floored at 0", got)
	}
}

func TestRecencyScoreFixedPoints(t *testing.T) {
	s := testScorer()
	now := s.Now()

	tests := []struct {
		name      string
		published time.Time
		valid     bool
		want      float64
		tolerance float64
	}{
		{"just published", now, true, 1.0, 0},
		{"past max age", now.AddDate(0, 0, -40), true, 0.1, 0},
		{"one third of max age", now.AddDate(0, 0, -10), true, math.Exp(-1), 0.01},
		{"invalid timestamp", time.Time{}, false, 0.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &types.ContentItem{Published: tt.published, PublishedValid: tt.valid}
			got := s.recencyScore(item)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("recencyScore = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestCompositeFloor(t *testing.T) {
	s := testScorer()
	items := []types.ContentItem{{
		ID:         "weak",
		SourceType: "youtube",
		Published:  s.Now().AddDate(0, 0, -40),
		// No counters, so engagement bottoms out too.
		PublishedValid: true,
		Analysis: &types.Analysis{
			Relevance:   &types.RelevanceSignal{Score: 0},
			Credibility: &types.CredibilitySignal{Score: 0},
		},
	}}

	scored := s.Score(items)
	if got := scored[0].Score.Composite; got != 0.1 {
		t.Errorf("Composite = %f, want floored at 0.1", got)
	}
}

func TestEntityFocusPenalizesOffTopicContent(t *testing.T) {
	s := testScorer()
	items := []types.ContentItem{{
		ID:    "offtopic",
		Title: "BTS and Blackpink chart positions",
		Analysis: &types.Analysis{
			Relevance: &types.RelevanceSignal{Score: 0.1},
		},
	}}

	// Entity focus with relevance below 0.3 triggers the 0.3 penalty,
	// which drives the composite into the floor.
	scored := s.Score(items)
	if got := scored[0].Score.Composite; got != 0.1 {
		t.Errorf("Composite = %f, want 0.1", got)
	}

	// The same relevance without entity focus stays well above the floor.
	plain := []types.ContentItem{{
		ID:    "plain",
		Title: "Quarterly earnings miss expectations",
		Analysis: &types.Analysis{
			Relevance: &types.RelevanceSignal{Score: 0.1},
		},
	}}
	scored = s.Score(plain)
	if got := scored[0].Score.Composite; got <= 0.1 {
		t.Errorf("Composite = %f, want above the floor without entity focus", got)
	}
}

func TestEntityWeightsRenormalize(t *testing.T) {
	s := testScorer()
	item := &types.ContentItem{
		Title: "Apple and Google announce partnership",
		Analysis: &types.Analysis{
			Relevance: &types.RelevanceSignal{Score: 0.8},
		},
	}

	// rw 0.6, cw 0.16, tw 0.2, ew 0.14 renormalized over 1.1, then
	// components 0.8 / 0.5 / 0.5 / 0.5.
	sc := s.calculate(item)
	want := (0.8*0.6 + 0.5*0.16 + 0.5*0.2 + 0.5*0.14) / 1.1
	if math.Abs(sc.Composite-round3(want)) > 0.0001 {
		t.Errorf("Composite = %f, want %f", sc.Composite, round3(want))
	}
}

func TestScoreSortsByConfiguredKey(t *testing.T) {
	mk := func(id string, rel float64) types.ContentItem {
		return types.ContentItem{
			ID:       id,
			Analysis: &types.Analysis{Relevance: &types.RelevanceSignal{Score: rel}},
		}
	}
	items := []types.ContentItem{mk("low", 0.2), mk("high", 0.9), mk("mid", 0.5)}

	s := New(types.ScoringConfig{SortBy: types.SortRelevance})
	s.Now = func() time.Time { return time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC) }

	scored := s.Score(items)
	for i, id := range []string{"high", "mid", "low"} {
		if scored[i].ID != id {
			t.Errorf("scored[%d].ID = %q, want %q", i, scored[i].ID, id)
		}
	}
}

func TestScoreStableOnTies(t *testing.T) {
	items := []types.ContentItem{
		{ID: "first", Title: "Tie one"},
		{ID: "second", Title: "Tie two"},
		{ID: "third", Title: "Tie three"},
	}

	scored := testScorer().Score(items)
	for i, id := range []string{"first", "second", "third"} {
		if scored[i].ID != id {
			t.Errorf("scored[%d].ID = %q, want %q (ties keep input order)", i, scored[i].ID, id)
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	items := []types.ContentItem{
		{ID: "1", Title: "BTS comeback breaks records", SourceType: "news", Content: "A study of streaming numbers."},
		{ID: "2", Title: "Markets rally on tech earnings", SourceType: "reddit", Metadata: map[string]any{"score": 150.0}},
		{ID: "3", Title: "New research on protein folding"},
	}

	first := testScorer().Score(items)
	for i := 0; i < 5; i++ {
		if got := testScorer().Score(items); !reflect.DeepEqual(first, got) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

func TestExplain(t *testing.T) {
	item := &types.ContentItem{}
	if got := Explain(item); got != "unscored" {
		t.Errorf("Explain(unscored) = %q", got)
	}

	item.Score = &types.Score{Relevance: 0.9, Credibility: 0.8, Recency: 0.5, Engagement: 0.5, SourceBoost: 1.2, Composite: 0.84}
	got := Explain(item)
	for _, want := range []string{"composite 0.840", "relevance 0.900", "boost x1.20"} {
		if !strings.Contains(got, want) {
			t.Errorf("Explain() = %q, missing %q", got, want)
		}
	}
}
