package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/azuresoup/hh-skills-parser/internal/config"
	"github.com/azuresoup/hh-skills-parser/internal/hh"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "hhparse",
	Short: "Harvest hh.ru job postings and analyze in-demand skills",
	Long:  "hhparse collects job postings from the hh.ru API into a local database and derives skill/keyword frequency statistics from them.",
	// Default to `harvest` so that `hhparse` with no args runs the pipeline.
	RunE: runHarvest,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: HHPARSE_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > HHPARSE_CONFIG env var > "./config.yaml".
// When no file was named explicitly and ./config.yaml is absent, the
// built-in defaults are used.
func loadConfig(path string) (*config.Config, error) {
	explicit := path != ""
	if path == "" {
		if env := os.Getenv("HHPARSE_CONFIG"); env != "" {
			path = env
			explicit = true
		} else {
			path = "config.yaml"
		}
	}
	if !explicit {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

func newAPIClient(cfg *config.Config) *hh.Client {
	return hh.NewClient(
		cfg.Search.BaseURL,
		cfg.Search.PageSize,
		&http.Client{Timeout: cfg.Search.SearchTimeout},
		&http.Client{Timeout: cfg.Search.DetailTimeout},
	)
}
