// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/insight-engine/pkg/types"
)

func TestLookupBuiltin(t *testing.T) {
	r := New(nil)

	p := r.Lookup("bbc")
	assert.Equal(t, 0.9, p.Score)
	assert.Equal(t, "news", p.Type)
	assert.Equal(t, "Center", p.Bias)

	p = r.Lookup("dictionary")
	assert.Equal(t, 0.95, p.Score)
	assert.Equal(t, "Reference", p.Category)
}

func TestLookupUnknownReturnsDefault(t *testing.T) {
	r := New(nil)

	p := r.Lookup("some-blog-nobody-knows")
	assert.Equal(t, DefaultProfile, p)
	assert.Equal(t, 0.5, p.Score)
	assert.Equal(t, "unknown", p.Type)
}

func TestOverridesWin(t *testing.T) {
	r := New(map[string]types.SourceProfile{
		"bbc":    {Score: 0.95, Bias: "Center", Category: "News", Type: "news"},
		"myfeed": {Score: 0.6, Bias: "Left", Category: "Blog", Type: "blog"},
	})

	assert.Equal(t, 0.95, r.Lookup("bbc").Score)
	assert.Equal(t, "blog", r.Lookup("myfeed").Type)
	// Untouched built-ins remain.
	assert.Equal(t, 0.85, r.Lookup("techcrunch").Score)
}

func TestScoresNormalized(t *testing.T) {
	r := New(nil)
	for _, name := range []string{"bbc", "techcrunch", "google_news", "wikipedia", "hackernews"} {
		p := r.Lookup(name)
		assert.GreaterOrEqual(t, p.Score, 0.0, name)
		assert.LessOrEqual(t, p.Score, 1.0, name)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sources.yaml")
	content := `
myblog:
  score: 0.65
  bias: Center
  category: Blog
  type: blog
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	overrides, err := LoadOverrides(path)
	require.NoError(t, err)
	require.Contains(t, overrides, "myblog")
	assert.Equal(t, 0.65, overrides["myblog"].Score)

	r := New(overrides)
	assert.Equal(t, "blog", r.Lookup("myblog").Type)
}

func TestLoadOverridesMissingFile(t *testing.T) {
	_, err := LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
