// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dedup

import (
	"math"
	"testing"
)

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "abcd", "abcd", 1.0},
		{"both empty", "", "", 1.0},
		{"one empty", "abcd", "", 0.0},
		{"overlap", "abcd", "bcde", 0.75},
		{"disjoint", "abcd", "efgh", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ratio(tt.a, tt.b)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Ratio(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRatioSymmetricRange(t *testing.T) {
	pairs := [][2]string{
		{"the quick brown fox", "the quick brown dog"},
		{"breaking news today", "today news breaking"},
		{"short", "a much longer unrelated string"},
	}
	for _, p := range pairs {
		ab := Ratio(p[0], p[1])
		ba := Ratio(p[1], p[0])
		if math.Abs(ab-ba) > 0.0001 {
			t.Errorf("Ratio not symmetric for %q/%q: %f vs %f", p[0], p[1], ab, ba)
		}
		if ab < 0 || ab > 1 {
			t.Errorf("Ratio(%q, %q) = %f, out of [0,1]", p[0], p[1], ab)
		}
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello,   World!", "hello world"},
		{"  Spaced\tOut\nText  ", "spaced out text"},
		{"MiXeD CaSe", "mixed case"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := normalizeText(tt.input); got != tt.want {
				t.Errorf("normalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"tracking params", "https://example.com/story?utm_source=feed&utm_medium=rss", "https://example.com/story"},
		{"ref param", "https://example.com/story?ref=homepage", "https://example.com/story"},
		{"trailing slash", "https://example.com/story/", "https://example.com/story"},
		{"www prefix", "https://www.example.com/story", "https://example.com/story"},
		{"uppercase", "HTTPS://Example.COM/Story", "https://example.com/story"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeURL(tt.input); got != tt.want {
				t.Errorf("normalizeURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestURLSimilarity(t *testing.T) {
	if got := urlSimilarity("https://www.example.com/story/", "https://example.com/story"); got != 1.0 {
		t.Errorf("normalized-equal URLs = %f, want 1.0", got)
	}
	if got := urlSimilarity("https://example.com/story", "https://other.com/story"); got != 0.0 {
		t.Errorf("cross-domain URLs = %f, want 0.0", got)
	}
	if got := urlSimilarity("", "https://example.com"); got != 0.0 {
		t.Errorf("empty URL = %f, want 0.0", got)
	}

	got := urlSimilarity("https://example.com/story/part-one", "https://example.com/story/part-two")
	if got <= 0.0 || got >= 1.0 {
		t.Errorf("same-domain near paths = %f, want strictly between 0 and 1", got)
	}
}
