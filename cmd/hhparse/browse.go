package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/azuresoup/hh-skills-parser/internal/browse"
	"github.com/azuresoup/hh-skills-parser/internal/store"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse stored postings interactively",
	Long:  "Open a terminal UI listing every stored posting, with a detail view showing skills and description.",
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
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

	postings, err := sqlStore.All()
	if err != nil {
		logger.Error("failed to read postings", "error", err)
		os.Exit(1)
	}

	return browse.Run(postings)
}
