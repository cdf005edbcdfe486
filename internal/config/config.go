package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/azuresoup/hh-skills-parser/internal/analyzer"
)

// Config is the root configuration for the hhparse tool.
type Config struct {
	DBPath   string
	Search   SearchConfig
	Filter   FilterConfig
	Pacing   PacingConfig
	Analysis AnalysisConfig
}

// SearchConfig controls the hh.ru search request.
type SearchConfig struct {
	Query         string        // search text, matched against titles only
	Area          string        // optional hh.ru area id, empty = everywhere
	PageSize      int           // items per page, API max is 100
	BaseURL       string        // override for the API base URL
	SearchTimeout time.Duration // per search-page request
	DetailTimeout time.Duration // per detail request
}

// FilterConfig holds the title relevance keyword lists.
type FilterConfig struct {
	IncludeKeywords []string
	ExcludeKeywords []string
}

// PacingConfig holds the courtesy delays between upstream requests.
type PacingConfig struct {
	PageDelay   time.Duration // between search pages
	DetailDelay time.Duration // between detail fetches
}

// AnalysisConfig controls the skill/keyword frequency analysis.
type AnalysisConfig struct {
	TopLimit         int
	StopWords        []string // merged with the built-in set unless ReplaceStopWords
	ReplaceStopWords bool
}

// EffectiveStopWords returns the stop-word list the tokenizer should use.
func (a AnalysisConfig) EffectiveStopWords() []string {
	if a.ReplaceStopWords {
		return a.StopWords
	}
	return append(analyzer.DefaultStopWords(), a.StopWords...)
}

// rawConfig is used for YAML unmarshaling (snake_case fields and durations as strings).
type rawConfig struct {
	DBPath   string            `yaml:"db_path"`
	Search   rawSearchConfig   `yaml:"search"`
	Filter   rawFilterConfig   `yaml:"filter"`
	Pacing   rawPacingConfig   `yaml:"pacing"`
	Analysis rawAnalysisConfig `yaml:"analysis"`
}

type rawSearchConfig struct {
	Query         string `yaml:"query"`
	Area          string `yaml:"area"`
	PageSize      int    `yaml:"page_size"`
	BaseURL       string `yaml:"base_url"`
	SearchTimeout string `yaml:"search_timeout"`
	DetailTimeout string `yaml:"detail_timeout"`
}

type rawFilterConfig struct {
	IncludeKeywords []string `yaml:"include_keywords"`
	ExcludeKeywords []string `yaml:"exclude_keywords"`
}

type rawPacingConfig struct {
	PageDelay   string `yaml:"page_delay"`
	DetailDelay string `yaml:"detail_delay"`
}

type rawAnalysisConfig struct {
	TopLimit         int      `yaml:"top_limit"`
	StopWords        []string `yaml:"stop_words"`
	ReplaceStopWords bool     `yaml:"replace_stop_words"`
}

// Default returns the configuration used when no config file is present.
// The keyword lists target Go roles and exclude management positions.
func Default() *Config {
	return &Config{
		DBPath: "vacancies.db",
		Search: SearchConfig{
			Query:         "golang OR go developer",
			PageSize:      100,
			BaseURL:       "https://api.hh.ru",
			SearchTimeout: 15 * time.Second,
			DetailTimeout: 10 * time.Second,
		},
		Filter: FilterConfig{
			IncludeKeywords: []string{"go", "golang"},
			ExcludeKeywords: []string{"lead", "лид", "руководитель", "ментор", "преподаватель", "менеджер"},
		},
		Pacing: PacingConfig{
			PageDelay:   3 * time.Second,
			DetailDelay: 2 * time.Second,
		},
		Analysis: AnalysisConfig{
			TopLimit: 50,
		},
	}
}

// Load reads and parses the YAML config file at path, applies it over the
// defaults, validates the result, and returns it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()

	if raw.DBPath != "" {
		cfg.DBPath = raw.DBPath
	}
	if raw.Search.Query != "" {
		cfg.Search.Query = raw.Search.Query
	}
	if raw.Search.Area != "" {
		cfg.Search.Area = raw.Search.Area
	}
	if raw.Search.PageSize != 0 {
		cfg.Search.PageSize = raw.Search.PageSize
	}
	if raw.Search.BaseURL != "" {
		cfg.Search.BaseURL = raw.Search.BaseURL
	}
	if cfg.Search.SearchTimeout, err = overrideDuration(cfg.Search.SearchTimeout, raw.Search.SearchTimeout, "search.search_timeout"); err != nil {
		return nil, err
	}
	if cfg.Search.DetailTimeout, err = overrideDuration(cfg.Search.DetailTimeout, raw.Search.DetailTimeout, "search.detail_timeout"); err != nil {
		return nil, err
	}
	if raw.Filter.IncludeKeywords != nil {
		cfg.Filter.IncludeKeywords = raw.Filter.IncludeKeywords
	}
	if raw.Filter.ExcludeKeywords != nil {
		cfg.Filter.ExcludeKeywords = raw.Filter.ExcludeKeywords
	}
	if cfg.Pacing.PageDelay, err = overrideDuration(cfg.Pacing.PageDelay, raw.Pacing.PageDelay, "pacing.page_delay"); err != nil {
		return nil, err
	}
	if cfg.Pacing.DetailDelay, err = overrideDuration(cfg.Pacing.DetailDelay, raw.Pacing.DetailDelay, "pacing.detail_delay"); err != nil {
		return nil, err
	}
	if raw.Analysis.TopLimit != 0 {
		cfg.Analysis.TopLimit = raw.Analysis.TopLimit
	}
	cfg.Analysis.StopWords = raw.Analysis.StopWords
	cfg.Analysis.ReplaceStopWords = raw.Analysis.ReplaceStopWords

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// overrideDuration parses a duration override, keeping the fallback when the
// raw value is empty.
func overrideDuration(fallback time.Duration, raw, field string) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", field, raw, err)
	}
	return d, nil
}

func validate(cfg *Config) error {
	if cfg.DBPath == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if cfg.Search.Query == "" {
		return fmt.Errorf("search.query must not be empty")
	}
	if cfg.Search.PageSize < 1 || cfg.Search.PageSize > 100 {
		return fmt.Errorf("search.page_size must be between 1 and 100, got %d", cfg.Search.PageSize)
	}
	if cfg.Search.SearchTimeout <= 0 || cfg.Search.DetailTimeout <= 0 {
		return fmt.Errorf("search timeouts must be positive")
	}
	if cfg.Pacing.PageDelay < 0 || cfg.Pacing.DetailDelay < 0 {
		return fmt.Errorf("pacing delays must not be negative")
	}
	if cfg.Analysis.TopLimit < 1 {
		return fmt.Errorf("analysis.top_limit must be positive, got %d", cfg.Analysis.TopLimit)
	}
	return nil
}
