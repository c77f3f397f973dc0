// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package combine standardizes raw collector items into ContentItems and
// merges them into a single ordered list.
// Implements: prd001-combine (R1-R5);
//
//	docs/ARCHITECTURE § Combining.
package combine

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"time"

	"github.com/pdiddy/insight-engine/internal/registry"
	"github.com/pdiddy/insight-engine/pkg/types"
)

// Combiner standardizes and merges per-source raw item lists. It is a pure
// transform: no item is dropped except by the per-source cap (R2.4).
type Combiner struct {
	cfg      types.CombinerConfig
	registry *registry.Registry

	// Now is the clock used for defaulted publish times. Overridable in tests.
	Now func() time.Time
}

// New returns a combiner using the given config and source registry.
func New(cfg types.CombinerConfig, reg *registry.Registry) *Combiner {
	if cfg.MaxItemsPerSource <= 0 {
		cfg.MaxItemsPerSource = 100
	}
	return &Combiner{cfg: cfg, registry: reg, Now: time.Now}
}

// Combine standardizes every source's items (truncated to the per-source
// cap first, preserving collector order) and returns one list sorted by
// publish time descending, relevance hint descending. Unparsable
// timestamps sort oldest (R4.1-R4.3). Sources are visited in name order so
// the output is deterministic for a fixed input.
func (c *Combiner) Combine(sources map[string][]types.RawItem) []types.ContentItem {
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)

	type entry struct {
		item types.ContentItem
		hint float64
	}
	var entries []entry

	for _, name := range names {
		items := sources[name]
		if len(items) > c.cfg.MaxItemsPerSource {
			items = items[:c.cfg.MaxItemsPerSource]
		}
		profile := c.registry.Lookup(name)
		for _, raw := range items {
			entries = append(entries, entry{
				item: c.standardize(raw, name, profile),
				hint: raw.Relevance,
			})
		}
	}

	// Pre-sort only: final ordering is owned by the scorer.
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].item.Published.Equal(entries[j].item.Published) {
			return entries[i].item.Published.After(entries[j].item.Published)
		}
		return entries[i].hint > entries[j].hint
	})

	combined := make([]types.ContentItem, len(entries))
	for i, e := range entries {
		combined[i] = e.item
	}
	return combined
}

// standardize converts one raw item to the canonical form, freezing the
// source profile at combine time (R3.2).
func (c *Combiner) standardize(raw types.RawItem, source string, profile types.SourceProfile) types.ContentItem {
	item := types.ContentItem{
		ID:               raw.ID,
		Title:            raw.Title,
		Content:          raw.Content,
		URL:              raw.URL,
		Author:           raw.Author,
		Source:           source,
		SourceType:       profile.Type,
		SourceCategory:   profile.Category,
		CredibilityScore: profile.Score,
		BiasRating:       profile.Bias,
	}

	if item.ID == "" {
		item.ID = ItemID(source, raw.Title, raw.Content, raw.URL)
	}

	if len(raw.Tags) > 0 {
		item.Tags = append([]string(nil), raw.Tags...)
	}

	item.Published, item.PublishedValid = parsePublished(raw.Published, c.Now)

	if c.cfg.PreserveMetadata && len(raw.Metadata) > 0 {
		item.Metadata = make(map[string]any, len(raw.Metadata))
		for k, v := range raw.Metadata {
			item.Metadata[k] = v
		}
	}

	return item
}

// ItemID derives a stable identifier from the item's identifying fields,
// scoped by source. Identical title, content, and url from the same source
// always produce the same id (R2.1).
func ItemID(source, title, content, url string) string {
	sum := sha256.Sum256([]byte(title + content + url))
	return source + "_" + hex.EncodeToString(sum[:16])
}

// publishedLayouts are the accepted collector timestamp formats, tried in
// order.
var publishedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// parsePublished converts a collector timestamp string without raising.
// Absent timestamps default to now and unparsable ones to the zero time
// (sorting oldest); both report valid=false so the scorer falls back to a
// neutral recency.
func parsePublished(s string, now func() time.Time) (t time.Time, valid bool) {
	if s == "" {
		return now().UTC(), false
	}
	for _, layout := range publishedLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
