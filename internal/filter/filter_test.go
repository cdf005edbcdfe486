package filter

import (
	"testing"

	"github.com/azuresoup/hh-skills-parser/internal/model"
)

func TestTitleFilter_Verdict(t *testing.T) {
	include := []string{"go", "golang"}
	exclude := []string{"lead", "лид", "руководитель", "менеджер"}

	tests := []struct {
		name       string
		title      string
		wantMatch  bool
		wantReason model.RejectReason
	}{
		{
			name:       "inclusion keyword matches",
			title:      "Go Developer",
			wantMatch:  true,
			wantReason: model.RejectNone,
		},
		{
			name:       "exclusion wins over inclusion",
			title:      "Golang Team Lead",
			wantMatch:  false,
			wantReason: model.RejectExcluded,
		},
		{
			name:       "no inclusion keyword",
			title:      "Python Developer",
			wantMatch:  false,
			wantReason: model.RejectNoKeyword,
		},
		{
			name:       "case insensitive matching",
			title:      "GOLANG ENGINEER",
			wantMatch:  true,
			wantReason: model.RejectNone,
		},
		{
			name:       "cyrillic exclusion word",
			title:      "Go разработчик / руководитель группы",
			wantMatch:  false,
			wantReason: model.RejectExcluded,
		},
		{
			name:       "substring match is not word-boundary-aware",
			title:      "Django Developer", // "go" inside "Django"
			wantMatch:  true,
			wantReason: model.RejectNone,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewTitleFilter(include, exclude)
			got, reason := f.Verdict(tt.title)
			if got != tt.wantMatch {
				t.Errorf("Verdict() match = %v, want %v", got, tt.wantMatch)
			}
			if reason != tt.wantReason {
				t.Errorf("Verdict() reason = %q, want %q", reason, tt.wantReason)
			}
		})
	}
}

func TestTitleFilter_EmptyIncludeListPassesAll(t *testing.T) {
	f := NewTitleFilter(nil, []string{"lead"})

	if ok, _ := f.Verdict("Any Role"); !ok {
		t.Error("expected empty inclusion list to pass all titles")
	}
	if ok, reason := f.Verdict("Team Lead"); ok || reason != model.RejectExcluded {
		t.Errorf("expected exclusion to still apply, got ok=%v reason=%q", ok, reason)
	}
}
