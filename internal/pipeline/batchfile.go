// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/insight-engine/pkg/types"
)

// RankFile is the on-disk representation of a completed run. The operator
// can save a run to a file and reload it later without re-ranking.
// Implements: prd005-pipeline R4.2.
type RankFile struct {
	Items   []types.ContentItem `yaml:"items"`
	Summary RankSummary         `yaml:"summary"`
}

// RankSummary stores run statistics and a timestamp.
type RankSummary struct {
	RunID       string    `yaml:"run_id"`
	Sources     int       `yaml:"sources"`
	Combined    int       `yaml:"combined"`
	DupsRemoved int       `yaml:"duplicates_removed"`
	Ranked      int       `yaml:"ranked"`
	Timestamp   time.Time `yaml:"timestamp"`
}

// WriteRankFile saves a run's items and statistics to a YAML file.
func WriteRankFile(path string, out Output) error {
	rf := RankFile{
		Items: out.Items,
		Summary: RankSummary{
			RunID:       out.RunID,
			Sources:     out.Stats.Sources,
			Combined:    out.Stats.Combined,
			DupsRemoved: out.Stats.DupsRemoved,
			Ranked:      out.Stats.Ranked,
			Timestamp:   time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling rank file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadRankFile loads a previously saved rank file from disk.
func ReadRankFile(path string) (*RankFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rank file: %w", err)
	}
	var rf RankFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing rank file: %w", err)
	}
	return &rf, nil
}

// batchEntry is one element of the flat batch-file form: a raw item with
// explicit source attribution.
type batchEntry struct {
	Source        string `json:"source" yaml:"source"`
	types.RawItem `yaml:",inline"`
}

// ReadBatch loads collector output from a JSON or YAML file, selected by
// extension. Two shapes are accepted: a map from source name to item list,
// or a flat list of items each carrying a "source" field.
func ReadBatch(path string) (map[string][]types.RawItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}

	unmarshal := yaml.Unmarshal
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".json" {
		unmarshal = json.Unmarshal
	}

	var bySource map[string][]types.RawItem
	if err := unmarshal(data, &bySource); err == nil && bySource != nil {
		return bySource, nil
	}

	var flat []batchEntry
	if err := unmarshal(data, &flat); err != nil {
		return nil, fmt.Errorf("parsing batch file %s: %w", path, err)
	}

	bySource = make(map[string][]types.RawItem, len(flat))
	for _, entry := range flat {
		source := entry.Source
		if source == "" {
			source = "unknown"
		}
		bySource[source] = append(bySource[source], entry.RawItem)
	}
	return bySource, nil
}
