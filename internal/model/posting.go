package model

import (
	"context"
	"time"
)

// Posting is a single job listing as stored by this system.
type Posting struct {
	ExternalID  string    // unique id assigned by hh.ru, dedup key
	Title       string    // posting headline
	Description string    // plain text, markup stripped, capped at 10k chars
	Skills      []string  // structured key-skill tags from the detail endpoint
	URL         string    // hh.ru alternate (human-facing) URL
	Employer    string    // employer name
	SalaryFrom  *int      // nil when the summary carries no salary block
	SalaryTo    *int
	Currency    *string
	CreatedAt   time.Time // set by the store on first insert, never mutated
}

// VacancySummary is one search-result item from the listing API.
type VacancySummary struct {
	ID       string
	Title    string
	URL      string
	Employer string
	Salary   *Salary // nil when the posting advertises no salary
}

// Salary is the optional salary block on a summary item. From and To may
// individually be nil (hh.ru allows open-ended ranges).
type Salary struct {
	From     *int
	To       *int
	Currency *string
}

// VacancyDetail is the enrichment fetched per vacancy.
type VacancyDetail struct {
	KeySkills   []string
	Description string // raw, markup-laden
}

// SearchPage is one page of search results.
type SearchPage struct {
	Items []VacancySummary
	Pages int // total page count reported by the API
	Found int // total matched count reported by the API
}

// SearchClient talks to the remote listing API.
type SearchClient interface {
	SearchPage(ctx context.Context, query, area string, page int) (SearchPage, error)
	FetchDetail(ctx context.Context, id string) (*VacancyDetail, error)
}

// PostingStore owns all persisted posting state.
type PostingStore interface {
	Exists(externalID string) (bool, error)
	Insert(p Posting) error
	SkillBlobs() ([]string, error)
	Descriptions() ([]string, error)
	Counts() (StoreCounts, error)
}

// StoreCounts are the aggregate counts reported before analysis.
type StoreCounts struct {
	Total           int
	WithSkills      int
	WithDescription int
}

// TitleFilter decides whether a posting title is relevant.
type TitleFilter interface {
	Verdict(title string) (bool, RejectReason)
}

// RejectReason explains why a title was rejected by the filter.
type RejectReason string

const (
	RejectNone      RejectReason = ""
	RejectNoKeyword RejectReason = "no keyword match"
	RejectExcluded  RejectReason = "excluded word"
)
