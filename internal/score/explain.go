// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"fmt"
	"strings"

	"github.com/pdiddy/insight-engine/pkg/types"
)

// Explain renders a one-line human-readable breakdown of an item's score,
// suitable for verbose CLI output. Items without a score yield "unscored".
func Explain(item *types.ContentItem) string {
	if item.Score == nil {
		return "unscored"
	}
	sc := item.Score

	var parts []string
	parts = append(parts, fmt.Sprintf("relevance %.3f", sc.Relevance))
	parts = append(parts, fmt.Sprintf("credibility %.3f", sc.Credibility))
	parts = append(parts, fmt.Sprintf("recency %.3f", sc.Recency))
	parts = append(parts, fmt.Sprintf("engagement %.3f", sc.Engagement))
	if sc.SourceBoost != 1.0 {
		parts = append(parts, fmt.Sprintf("boost x%.2f", sc.SourceBoost))
	}

	return fmt.Sprintf("composite %.3f (%s)", sc.Composite, strings.Join(parts, ", "))
}
