package hh

import (
	"regexp"
	"strings"

	"github.com/azuresoup/hh-skills-parser/internal/model"
)

// MaxDescriptionLen caps the stored plain-text description length, in runes.
const MaxDescriptionLen = 10000

var htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

// Normalize converts a search summary plus its optional detail into a
// Posting. A nil detail (failed detail fetch) yields empty skills and an
// empty description rather than an error.
func Normalize(summary model.VacancySummary, detail *model.VacancyDetail) model.Posting {
	p := model.Posting{
		ExternalID: summary.ID,
		Title:      summary.Title,
		URL:        summary.URL,
		Employer:   summary.Employer,
		Skills:     []string{},
	}

	if detail != nil {
		if len(detail.KeySkills) > 0 {
			p.Skills = detail.KeySkills
		}
		p.Description = cleanDescription(detail.Description)
	}

	if summary.Salary != nil {
		p.SalaryFrom = summary.Salary.From
		p.SalaryTo = summary.Salary.To
		p.Currency = summary.Salary.Currency
	}

	return p
}

// cleanDescription strips markup tags, trims surrounding whitespace, and
// truncates to MaxDescriptionLen runes. HTML entities are left as-is; the
// analysis stop-word set filters out their names.
func cleanDescription(raw string) string {
	plain := htmlTagRegex.ReplaceAllString(raw, "")
	plain = strings.TrimSpace(plain)
	if runes := []rune(plain); len(runes) > MaxDescriptionLen {
		plain = string(runes[:MaxDescriptionLen])
	}
	return plain
}
