// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dedup removes exact and near-duplicate content items, merging
// provenance into the surviving representative.
// Implements: prd002-dedup (R1-R5);
//
//	docs/ARCHITECTURE § Deduplication.
package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"

	"github.com/pdiddy/insight-engine/pkg/types"
)

// Deduplicator removes duplicates in two phases: a cheap normalized-hash
// pass for exact duplicates, then a pairwise similarity scan. The scan is
// O(n²) in the worst case, which is fine at the batch sizes this pipeline
// targets (tens to low hundreds of items).
type Deduplicator struct {
	cfg types.DedupConfig
}

// New returns a deduplicator with documented defaults applied to zero
// config fields.
func New(cfg types.DedupConfig) *Deduplicator {
	if cfg.SimilarityThreshold == 0 {
		cfg.SimilarityThreshold = 0.8
	}
	if cfg.TitleThreshold == 0 {
		cfg.TitleThreshold = 0.9
	}
	if cfg.URLThreshold == 0 {
		cfg.URLThreshold = 0.95
	}
	if cfg.ContentThreshold == 0 {
		cfg.ContentThreshold = 0.85
	}
	if cfg.MinContentLength == 0 {
		cfg.MinContentLength = 50
	}
	return &Deduplicator{cfg: cfg}
}

// Deduplicate returns the unique items in first-occurrence order. Exactly
// one item survives per duplicate cluster, keeping its own id and absorbing
// the others' tags and provenance. The first accepted match wins, not the
// best one; the operation is idempotent.
func (d *Deduplicator) Deduplicate(items []types.ContentItem) []types.ContentItem {
	if len(items) == 0 {
		return nil
	}

	// Phase 1: exact duplicates by normalized content hash.
	seen := make(map[string]struct{}, len(items))
	hashed := make([]types.ContentItem, 0, len(items))
	for _, item := range items {
		h := contentHash(item)
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		hashed = append(hashed, item)
	}

	// Phase 2: pairwise similarity against already-accepted items.
	var unique []types.ContentItem
	for _, item := range hashed {
		matched := false
		for i := range unique {
			if d.similar(item, unique[i]) {
				mergeDuplicate(&unique[i], item)
				matched = true
				break
			}
		}
		if !matched {
			unique = append(unique, item)
		}
	}
	return unique
}

// contentHash fingerprints an item on its normalized title, the first 200
// characters of normalized content, and its normalized URL.
func contentHash(item types.ContentItem) string {
	content := normalizeText(item.Content)
	if runes := []rune(content); len(runes) > 200 {
		content = string(runes[:200])
	}
	key := normalizeText(item.Title) + "|" + content + "|" + normalizeURL(item.URL)
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// similar reports whether two items are near-duplicates. URL similarity is
// the most reliable signal and short-circuits the text comparison; a
// near-identical title or body alone also qualifies, so rewritten headlines
// over the same wire copy still collapse.
func (d *Deduplicator) similar(a, b types.ContentItem) bool {
	urlSim := urlSimilarity(a.URL, b.URL)
	if urlSim >= d.cfg.URLThreshold {
		return true
	}

	titleSim := textSimilarity(a.Title, b.Title)
	if titleSim >= d.cfg.TitleThreshold {
		return true
	}

	// Bodies below the minimum length (stubs, teasers) are too short for
	// the ratio to mean anything and contribute nothing.
	contentSim := 0.0
	if len(a.Content) >= d.cfg.MinContentLength && len(b.Content) >= d.cfg.MinContentLength {
		contentSim = textSimilarity(a.Content, b.Content)
		if contentSim >= d.cfg.ContentThreshold {
			return true
		}
	}

	overall := titleSim*0.4 + contentSim*0.4 + urlSim*0.2
	return overall >= d.cfg.SimilarityThreshold
}

// mergeDuplicate folds the duplicate's tags into the survivor and records
// its provenance. Tags are kept sorted so merge output is deterministic.
func mergeDuplicate(survivor *types.ContentItem, duplicate types.ContentItem) {
	if len(duplicate.Tags) > 0 {
		tagSet := make(map[string]struct{}, len(survivor.Tags)+len(duplicate.Tags))
		for _, tag := range survivor.Tags {
			tagSet[tag] = struct{}{}
		}
		for _, tag := range duplicate.Tags {
			tagSet[tag] = struct{}{}
		}
		merged := make([]string, 0, len(tagSet))
		for tag := range tagSet {
			merged = append(merged, tag)
		}
		sort.Strings(merged)
		survivor.Tags = merged
	}

	survivor.DuplicateSources = append(survivor.DuplicateSources, types.DuplicateSource{
		SourceType: duplicate.SourceType,
		URL:        duplicate.URL,
		ID:         duplicate.ID,
	})
}
