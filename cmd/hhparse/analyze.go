package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/azuresoup/hh-skills-parser/internal/analyzer"
	"github.com/azuresoup/hh-skills-parser/internal/report"
	"github.com/azuresoup/hh-skills-parser/internal/store"
)

var analyzeTop int

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Rank skills and keywords across stored postings",
	Long:  "Run the full analysis: aggregate counts, top skill tags, and top keywords extracted from posting descriptions.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 0, "how many entries per ranking (overrides config)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	limit := cfg.Analysis.TopLimit
	if analyzeTop > 0 {
		limit = analyzeTop
	}

	sqlStore, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer sqlStore.Close()

	tokenizer := analyzer.NewTokenizer(cfg.Analysis.EffectiveStopWords())
	a := analyzer.New(sqlStore, tokenizer, logger)

	result, err := a.RunFullAnalysis(limit)
	if err != nil {
		logger.Error("analysis failed", "error", err)
		os.Exit(1)
	}

	report.NewConsole(os.Stdout).Analysis(result)
	return nil
}
