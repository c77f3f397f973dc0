// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"math"
	"strings"

	"github.com/pdiddy/insight-engine/pkg/types"
)

// engagementScore estimates audience engagement from whatever signals the
// source type carries. Counters are log-scaled against what a strong
// showing looks like on each platform; absent counters simply score low
// rather than erroring.
func (s *Scorer) engagementScore(item *types.ContentItem) float64 {
	switch item.SourceType {
	case "youtube":
		views := metaFloat(item.Metadata, "views")
		likes := metaFloat(item.Metadata, "likes")

		// Log scale up to ~1M views; like ratio up to 1%.
		viewScore := math.Min(math.Log10(math.Max(views, 1))/6, 1.0)
		likeScore := 0.0
		if views > 0 {
			likeScore = math.Min(likes/views*100, 1.0)
		}
		return viewScore*0.7 + likeScore*0.3

	case "reddit":
		score := metaFloat(item.Metadata, "score")
		comments := metaFloat(item.Metadata, "comments")
		upvoteRatio := metaFloatDefault(item.Metadata, "upvote_ratio", 0.5)

		// Log scale up to ~10k score and ~1k comments.
		scoreNorm := math.Min(math.Log10(math.Max(score, 1))/4, 1.0)
		commentScore := math.Min(math.Log10(math.Max(comments, 1))/3, 1.0)
		return scoreNorm*0.4 + commentScore*0.3 + upvoteRatio*0.3

	case "twitter":
		retweets := metaFloat(item.Metadata, "retweets")
		likes := metaFloat(item.Metadata, "likes")
		replies := metaFloat(item.Metadata, "replies")

		retweetScore := math.Min(math.Log10(math.Max(retweets, 1))/4, 1.0)
		likeScore := math.Min(math.Log10(math.Max(likes, 1))/4, 1.0)
		replyScore := math.Min(math.Log10(math.Max(replies, 1))/3, 1.0)
		return retweetScore*0.4 + likeScore*0.4 + replyScore*0.2

	case "news":
		// No counters for long-form news; use article depth as a proxy.
		// The ideal band is 800-1200 words.
		words := len(strings.Fields(item.Content))
		switch {
		case words >= 800 && words <= 1200:
			return 1.0
		case words < 200:
			return 0.3
		case words > 3000:
			return 0.6
		default:
			return 0.7
		}

	default:
		return 0.5
	}
}

// metaFloat reads a numeric metadata value, tolerating the numeric types
// JSON and YAML decoders produce. Missing or non-numeric values are 0.
func metaFloat(m map[string]any, key string) float64 {
	return metaFloatDefault(m, key, 0)
}

func metaFloatDefault(m map[string]any, key string, def float64) float64 {
	if m == nil {
		return def
	}
	switch v := m[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		return def
	}
}
