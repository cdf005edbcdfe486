package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/azuresoup/hh-skills-parser/internal/filter"
	"github.com/azuresoup/hh-skills-parser/internal/harvester"
	"github.com/azuresoup/hh-skills-parser/internal/model"
	"github.com/azuresoup/hh-skills-parser/internal/pace"
	"github.com/azuresoup/hh-skills-parser/internal/report"
	"github.com/azuresoup/hh-skills-parser/internal/store"
)

var (
	harvestQuery  string
	harvestArea   string
	harvestDryRun bool
)

var harvestCmd = &cobra.Command{
	Use:   "harvest",
	Short: "Fetch postings from hh.ru into the local database",
	Long:  "Run the full ingestion pipeline once: paged search, title filtering, per-posting detail enrichment, dedup, persist.",
	RunE:  runHarvest,
}

func init() {
	harvestCmd.Flags().StringVarP(&harvestQuery, "query", "q", "", "search query (overrides config)")
	harvestCmd.Flags().StringVarP(&harvestArea, "area", "a", "", "hh.ru area id (overrides config)")
	harvestCmd.Flags().BoolVar(&harvestDryRun, "dry-run", false, "run the pipeline without persisting anything")
	rootCmd.AddCommand(harvestCmd)
}

func runHarvest(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	query := cfg.Search.Query
	if harvestQuery != "" {
		query = harvestQuery
	}
	area := cfg.Search.Area
	if harvestArea != "" {
		area = harvestArea
	}

	logger.Info("config loaded",
		"query", query,
		"area", area,
		"page_size", cfg.Search.PageSize,
		"include_keywords", cfg.Filter.IncludeKeywords,
		"exclude_keywords", len(cfg.Filter.ExcludeKeywords),
	)

	// A store that cannot initialize aborts before any ingestion.
	var postingStore model.PostingStore
	if harvestDryRun {
		logger.Info("dry-run mode enabled, nothing will be persisted")
		postingStore = store.NewNopStore()
	} else {
		sqlStore, err := store.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			logger.Error("failed to open store", "error", err)
			os.Exit(1)
		}
		defer sqlStore.Close()
		postingStore = sqlStore
	}

	titleFilter := filter.NewTitleFilter(cfg.Filter.IncludeKeywords, cfg.Filter.ExcludeKeywords)

	h := harvester.New(
		newAPIClient(cfg),
		titleFilter,
		postingStore,
		cfg.Pacing.PageDelay,
		cfg.Pacing.DetailDelay,
		pace.Wait,
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := h.Run(ctx, query, area)
	if err != nil {
		logger.Warn("harvest ended early", "error", err)
	}

	report.NewConsole(os.Stdout).HarvestSummary(summary)
	return nil
}
