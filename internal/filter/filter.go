package filter

import (
	"strings"

	"github.com/azuresoup/hh-skills-parser/internal/model"
)

// Ensure TitleFilter implements model.TitleFilter.
var _ model.TitleFilter = (*TitleFilter)(nil)

// TitleFilter matches posting titles that contain at least one inclusion
// keyword and none of the exclusion keywords. Matching is case-insensitive
// substring, not word-boundary-aware. An empty inclusion list is treated as
// "match all".
type TitleFilter struct {
	include []string
	exclude []string
}

// NewTitleFilter returns a filter over the given keyword lists.
func NewTitleFilter(include, exclude []string) *TitleFilter {
	return &TitleFilter{
		include: lowered(include),
		exclude: lowered(exclude),
	}
}

// Verdict reports whether the title is relevant and, when it is not, why:
// no inclusion keyword matched, or an exclusion keyword did. The inclusion
// check runs first; a title containing both an inclusion and an exclusion
// keyword is rejected as excluded.
func (f *TitleFilter) Verdict(title string) (bool, model.RejectReason) {
	titleLower := strings.ToLower(title)

	if len(f.include) > 0 {
		matched := false
		for _, kw := range f.include {
			if strings.Contains(titleLower, kw) {
				matched = true
				break
			}
		}
		if !matched {
			return false, model.RejectNoKeyword
		}
	}

	for _, word := range f.exclude {
		if strings.Contains(titleLower, word) {
			return false, model.RejectExcluded
		}
	}

	return true, model.RejectNone
}

func lowered(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}
