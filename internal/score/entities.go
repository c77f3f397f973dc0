// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"sort"
	"strings"

	"github.com/pdiddy/insight-engine/pkg/types"
)

// DefaultEntityGroups returns the built-in entity dictionary: grouped names
// whose presence marks content as entity-focused. Deployments override it
// through ScoringConfig.EntityGroups.
func DefaultEntityGroups() map[string][]string {
	return map[string][]string{
		"k-pop":  {"bts", "blackpink", "twice", "exo", "nct", "iu", "psy"},
		"tech":   {"apple", "google", "microsoft", "meta", "amazon"},
		"sports": {"nba", "nfl", "mlb", "fifa", "uefa"},
	}
}

// detectEntityGroup reports which entity group, if any, the item is focused
// on. A group matches when the originating search query names one of its
// entities, or when the title and content together mention at least two of
// them. Returns "" when no group matches.
func (s *Scorer) detectEntityGroup(item *types.ContentItem) string {
	query := strings.ToLower(metaString(item.Metadata, "search_query"))
	title := strings.ToLower(item.Title)
	content := strings.ToLower(item.Content)

	// Groups are visited in name order so detection is deterministic when
	// more than one group could match.
	groups := make([]string, 0, len(s.entities))
	for group := range s.entities {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	for _, group := range groups {
		names := s.entities[group]
		mentions := 0
		for _, name := range names {
			if query != "" && strings.Contains(query, name) {
				return group
			}
			if strings.Contains(title, name) || strings.Contains(content, name) {
				mentions++
			}
		}
		if mentions >= 2 {
			return group
		}
	}
	return ""
}

// metaString reads a string-valued metadata key, tolerating absent maps and
// non-string values.
func metaString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
