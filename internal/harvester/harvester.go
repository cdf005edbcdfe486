package harvester

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/azuresoup/hh-skills-parser/internal/hh"
	"github.com/azuresoup/hh-skills-parser/internal/model"
	"github.com/azuresoup/hh-skills-parser/internal/pace"
)

// Harvester owns the full ingestion pipeline for one run:
// paged search → relevance filter → dedup → detail fetch → persist.
type Harvester struct {
	client      model.SearchClient
	filter      model.TitleFilter
	store       model.PostingStore
	pageDelay   time.Duration
	detailDelay time.Duration
	sleep       pace.Sleeper
	logger      *slog.Logger
}

// New creates a harvester wired with all its dependencies.
func New(
	client model.SearchClient,
	filter model.TitleFilter,
	store model.PostingStore,
	pageDelay, detailDelay time.Duration,
	sleep pace.Sleeper,
	logger *slog.Logger,
) *Harvester {
	return &Harvester{
		client:      client,
		filter:      filter,
		store:       store,
		pageDelay:   pageDelay,
		detailDelay: detailDelay,
		sleep:       sleep,
		logger:      logger,
	}
}

// Summary reports what one harvest run did.
type Summary struct {
	Found    int // total matched count reported by the API
	Relevant int // items that passed the relevance filter
	New      int // postings persisted this run
	Existing int // postings already stored from earlier runs
}

// Run executes one harvest: collect relevant summaries across all search
// pages, then enrich and persist each unseen one in discovery order.
// Transport errors end the current loop early; whatever was gathered before
// the failure is still processed and counted.
func (h *Harvester) Run(ctx context.Context, query, area string) (Summary, error) {
	relevant, found := h.collect(ctx, query, area)
	summary := Summary{Found: found, Relevant: len(relevant)}

	h.logger.Info("search complete", "relevant", len(relevant))

	for i, item := range relevant {
		exists, err := h.store.Exists(item.ID)
		if err != nil {
			h.logger.Error("existence check failed", "id", item.ID, "error", err)
			continue
		}
		if exists {
			summary.Existing++
			h.logger.Info("skipping existing posting",
				"progress", progress(i, len(relevant)), "title", item.Title)
			continue
		}

		h.logger.Info("fetching detail",
			"progress", progress(i, len(relevant)), "title", item.Title)
		detail, err := h.client.FetchDetail(ctx, item.ID)
		if err != nil {
			// No detail is not fatal: the posting is stored with empty
			// skills and description.
			h.logger.Warn("detail fetch failed", "id", item.ID, "error", err)
			detail = nil
		}

		posting := hh.Normalize(item, detail)
		switch err := h.store.Insert(posting); {
		case err == nil:
			summary.New++
			h.logger.Info("posting stored", "title", posting.Title)
		case errors.Is(err, model.ErrDuplicate):
			summary.Existing++
			h.logger.Info("posting already exists", "id", posting.ExternalID)
		default:
			h.logger.Error("storing posting failed", "id", posting.ExternalID, "error", err)
		}

		if err := h.sleep(ctx, h.detailDelay); err != nil {
			return summary, err
		}
	}

	return summary, nil
}

// collect walks the search pages sequentially, applying the relevance filter
// to every item. It stops at the last reported page, on an empty page (the
// authoritative stop signal even when the reported page count disagrees), or
// on the first fetch error, returning everything gathered so far.
func (h *Harvester) collect(ctx context.Context, query, area string) (relevant []model.VacancySummary, found int) {
	for page := 0; ; page++ {
		h.logger.Debug("loading page", "page", page+1)

		sp, err := h.client.SearchPage(ctx, query, area, page)
		if err != nil {
			h.logger.Error("search page failed", "page", page, "error", err)
			return relevant, found
		}

		if page == 0 {
			found = sp.Found
			h.logger.Info("search started", "query", query, "found", sp.Found, "pages", sp.Pages)
		}

		kept := 0
		for _, item := range sp.Items {
			ok, reason := h.filter.Verdict(item.Title)
			if !ok {
				h.logger.Debug("rejected posting", "title", item.Title, "reason", string(reason))
				continue
			}
			relevant = append(relevant, item)
			kept++
		}
		h.logger.Info("page processed", "page", page+1, "items", len(sp.Items), "relevant", kept)

		if len(sp.Items) == 0 || page >= sp.Pages-1 {
			h.logger.Info("all pages loaded")
			return relevant, found
		}

		if err := h.sleep(ctx, h.pageDelay); err != nil {
			h.logger.Warn("harvest interrupted", "error", err)
			return relevant, found
		}
	}
}

func progress(i, total int) string {
	return fmt.Sprintf("%d/%d", i+1, total)
}
