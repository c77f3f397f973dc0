// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"strings"

	"github.com/pdiddy/insight-engine/pkg/types"
)

var researchTerms = []string{"research", "study", "analysis", "peer-reviewed"}

var clickbaitTerms = []string{"click here", "you won't believe", "shocking"}

// sourceBoost returns the multiplicative boost for an item: the configured
// per-source-type factor, raised for verified accounts and research
// vocabulary, lowered for clickbait headlines. Factors compound.
func (s *Scorer) sourceBoost(item *types.ContentItem) float64 {
	boost := 1.0
	if f, ok := s.cfg.BoostFactors[item.SourceType]; ok {
		boost = f
	}

	if v, ok := item.Metadata["verified"].(bool); ok && v {
		boost *= 1.2
	}

	text := strings.ToLower(item.Title + " " + item.Content)
	for _, term := range researchTerms {
		if strings.Contains(text, term) {
			boost *= 1.1
			break
		}
	}

	title := strings.ToLower(item.Title)
	for _, term := range clickbaitTerms {
		if strings.Contains(title, term) {
			boost *= 0.8
			break
		}
	}

	return boost
}
