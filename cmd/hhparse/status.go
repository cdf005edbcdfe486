package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/azuresoup/hh-skills-parser/internal/report"
	"github.com/azuresoup/hh-skills-parser/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print aggregate counts for the local database",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	sqlStore, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer sqlStore.Close()

	counts, err := sqlStore.Counts()
	if err != nil {
		logger.Error("failed to read counts", "error", err)
		os.Exit(1)
	}

	report.NewConsole(os.Stdout).Counts(counts)
	return nil
}
