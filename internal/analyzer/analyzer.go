package analyzer

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/azuresoup/hh-skills-parser/internal/model"
)

// progressEvery controls how often keyword analysis logs its progress.
const progressEvery = 50

// Analyzer derives skill and keyword frequency statistics from all stored
// postings.
type Analyzer struct {
	store     model.PostingStore
	tokenizer *Tokenizer
	logger    *slog.Logger
}

// New creates an analyzer over the given store and tokenizer.
func New(store model.PostingStore, tokenizer *Tokenizer, logger *slog.Logger) *Analyzer {
	return &Analyzer{
		store:     store,
		tokenizer: tokenizer,
		logger:    logger,
	}
}

// Report is the result of one full analysis run.
type Report struct {
	Counts model.StoreCounts

	SkillMentions int // total skill tag occurrences across all postings
	UniqueSkills  int
	TopSkills     []TokenCount

	KeywordMentions int // total surviving tokens across all descriptions
	UniqueKeywords  int
	TopKeywords     []TokenCount
}

// RunFullAnalysis reports aggregate counts, ranks the structured skill tags,
// and ranks the tokens extracted from descriptions, keeping the top limit of
// each.
func (a *Analyzer) RunFullAnalysis(limit int) (*Report, error) {
	counts, err := a.store.Counts()
	if err != nil {
		return nil, fmt.Errorf("full analysis: %w", err)
	}
	report := &Report{Counts: counts}

	skills, err := a.collectSkills()
	if err != nil {
		return nil, fmt.Errorf("full analysis: %w", err)
	}
	ranked := Rank(skills, 0)
	report.SkillMentions = len(skills)
	report.UniqueSkills = len(ranked)
	report.TopSkills = top(ranked, limit)

	keywords, err := a.collectKeywords()
	if err != nil {
		return nil, fmt.Errorf("full analysis: %w", err)
	}
	ranked = Rank(keywords, 0)
	report.KeywordMentions = len(keywords)
	report.UniqueKeywords = len(ranked)
	report.TopKeywords = top(ranked, limit)

	return report, nil
}

// collectSkills flattens all stored skill blobs. A blob that does not parse
// is skipped; one bad record must not abort the analysis.
func (a *Analyzer) collectSkills() ([]string, error) {
	blobs, err := a.store.SkillBlobs()
	if err != nil {
		return nil, err
	}

	var all []string
	for _, blob := range blobs {
		var skills []string
		if err := json.Unmarshal([]byte(blob), &skills); err != nil {
			a.logger.Debug("skipping malformed skill blob", "error", err)
			continue
		}
		all = append(all, skills...)
	}
	return all, nil
}

// collectKeywords tokenizes every stored description and flattens the result.
func (a *Analyzer) collectKeywords() ([]string, error) {
	descriptions, err := a.store.Descriptions()
	if err != nil {
		return nil, err
	}

	var all []string
	for i, description := range descriptions {
		if (i+1)%progressEvery == 0 {
			a.logger.Info("processing descriptions", "done", i+1, "total", len(descriptions))
		}
		all = append(all, a.tokenizer.ExtractTokens(description)...)
	}
	return all, nil
}

func top(ranked []TokenCount, limit int) []TokenCount {
	if limit > 0 && len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}
