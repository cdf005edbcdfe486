package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadAppliesOverrides(t *testing.T) {
	path := writeConfig(t, `
db_path: /tmp/test.db
search:
  query: "rust developer"
  area: "1"
  page_size: 50
  search_timeout: 30s
filter:
  include_keywords: [rust]
  exclude_keywords: [manager]
pacing:
  page_delay: 1s
  detail_delay: 500ms
analysis:
  top_limit: 10
  stop_words: [crate]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Search.Query != "rust developer" || cfg.Search.Area != "1" || cfg.Search.PageSize != 50 {
		t.Errorf("Search = %+v", cfg.Search)
	}
	if cfg.Search.SearchTimeout != 30*time.Second {
		t.Errorf("SearchTimeout = %v", cfg.Search.SearchTimeout)
	}
	// Unset fields keep their defaults.
	if cfg.Search.DetailTimeout != 10*time.Second {
		t.Errorf("DetailTimeout = %v, want default 10s", cfg.Search.DetailTimeout)
	}
	if len(cfg.Filter.IncludeKeywords) != 1 || cfg.Filter.IncludeKeywords[0] != "rust" {
		t.Errorf("IncludeKeywords = %v", cfg.Filter.IncludeKeywords)
	}
	if cfg.Pacing.PageDelay != time.Second || cfg.Pacing.DetailDelay != 500*time.Millisecond {
		t.Errorf("Pacing = %+v", cfg.Pacing)
	}
	if cfg.Analysis.TopLimit != 10 {
		t.Errorf("TopLimit = %d", cfg.Analysis.TopLimit)
	}
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	def := Default()
	if cfg.Search.Query != def.Search.Query {
		t.Errorf("Query = %q, want default", cfg.Search.Query)
	}
	if cfg.Pacing.PageDelay != 3*time.Second || cfg.Pacing.DetailDelay != 2*time.Second {
		t.Errorf("Pacing = %+v, want 3s/2s defaults", cfg.Pacing)
	}
	if cfg.Analysis.TopLimit != 50 {
		t.Errorf("TopLimit = %d, want 50", cfg.Analysis.TopLimit)
	}
}

func TestLoadExpandsEnvVars(t *testing.T) {
	t.Setenv("TEST_DB_DIR", "/var/data")
	path := writeConfig(t, "db_path: $TEST_DB_DIR/vacancies.db\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/var/data/vacancies.db" {
		t.Errorf("DBPath = %q, want env var expanded", cfg.DBPath)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"page size too large", "search:\n  page_size: 200\n"},
		{"negative top limit", "analysis:\n  top_limit: -1\n"},
		{"bad duration", "pacing:\n  page_delay: soon\n"},
		{"negative delay", "pacing:\n  page_delay: -3s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestEffectiveStopWords(t *testing.T) {
	merged := AnalysisConfig{StopWords: []string{"extra"}}.EffectiveStopWords()
	if !slices.Contains(merged, "extra") || !slices.Contains(merged, "and") {
		t.Errorf("expected merged set to hold both custom and built-in words")
	}

	replaced := AnalysisConfig{StopWords: []string{"only"}, ReplaceStopWords: true}.EffectiveStopWords()
	if len(replaced) != 1 || replaced[0] != "only" {
		t.Errorf("replaced = %v, want just the configured words", replaced)
	}
}
