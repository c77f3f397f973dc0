// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry maps source identifiers to credibility profiles.
// Implements: prd001-combine (R3.1-R3.3);
//
//	docs/ARCHITECTURE § Source Registry.
package registry

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/insight-engine/pkg/types"
)

// DefaultProfile is returned for sources the registry does not know.
var DefaultProfile = types.SourceProfile{
	Score:    0.5,
	Bias:     "Unknown",
	Category: "Uncategorized",
	Type:     "unknown",
}

// builtin is the shipped credibility table. Scores are normalized to [0,1];
// collectors that report a 0-100 scale must be converted by the integration
// layer before they land here.
var builtin = map[string]types.SourceProfile{
	"bbc":         {Score: 0.9, Bias: "Center", Category: "News", Type: "news"},
	"techcrunch":  {Score: 0.85, Bias: "Center-Left", Category: "Technology News", Type: "news"},
	"google_news": {Score: 0.8, Bias: "Center", Category: "News Aggregator", Type: "news"},
	"duckduckgo":  {Score: 0.75, Bias: "Neutral", Category: "Search Engine", Type: "search"},
	"bing":        {Score: 0.75, Bias: "Neutral", Category: "Search Engine", Type: "search"},
	"safari":      {Score: 0.75, Bias: "Neutral", Category: "Search Engine", Type: "search"},
	"edge":        {Score: 0.75, Bias: "Neutral", Category: "Search Engine", Type: "search"},
	"wikipedia":   {Score: 0.85, Bias: "Neutral", Category: "Knowledge Base", Type: "knowledge"},
	"hackernews":  {Score: 0.8, Bias: "Center", Category: "Technology Community", Type: "social"},
	"dictionary":  {Score: 0.95, Bias: "Neutral", Category: "Reference", Type: "dictionary"},
}

// Registry resolves source names to credibility profiles. It is immutable
// after construction, so a single instance is safe for concurrent use.
type Registry struct {
	profiles map[string]types.SourceProfile
}

// New returns a registry containing the built-in table merged with the
// given overrides. Overrides win on name collisions.
func New(overrides map[string]types.SourceProfile) *Registry {
	profiles := make(map[string]types.SourceProfile, len(builtin)+len(overrides))
	for name, p := range builtin {
		profiles[name] = p
	}
	for name, p := range overrides {
		profiles[name] = p
	}
	return &Registry{profiles: profiles}
}

// Lookup returns the credibility profile for a source, or DefaultProfile
// for unknown sources. Unknown sources are not an error (R3.3).
func (r *Registry) Lookup(source string) types.SourceProfile {
	if p, ok := r.profiles[source]; ok {
		return p
	}
	return DefaultProfile
}

// Len returns the number of known sources.
func (r *Registry) Len() int {
	return len(r.profiles)
}

// LoadOverrides reads a YAML file mapping source names to profiles, for
// per-deployment registry extensions.
func LoadOverrides(path string) (map[string]types.SourceProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry overrides: %w", err)
	}
	var overrides map[string]types.SourceProfile
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing registry overrides: %w", err)
	}
	return overrides, nil
}
