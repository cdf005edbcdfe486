package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/azuresoup/hh-skills-parser/internal/analyzer"
	"github.com/azuresoup/hh-skills-parser/internal/harvester"
	"github.com/azuresoup/hh-skills-parser/internal/model"
)

func TestHarvestSummary(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).HarvestSummary(harvester.Summary{Found: 120, Relevant: 40, New: 7, Existing: 33})

	out := buf.String()
	for _, want := range []string{"120", "40", "7", "33"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAnalysisListsRankedEntries(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).Analysis(&analyzer.Report{
		Counts:        model.StoreCounts{Total: 2, WithSkills: 2, WithDescription: 1},
		SkillMentions: 3,
		UniqueSkills:  2,
		TopSkills:     []analyzer.TokenCount{{Token: "Go", Count: 2}, {Token: "Docker", Count: 1}},
		TopKeywords:   []analyzer.TokenCount{{Token: "grpc", Count: 5}},
	})

	out := buf.String()
	if !strings.Contains(out, "1. Go: 2") || !strings.Contains(out, "2. Docker: 1") {
		t.Errorf("skill ranking missing:\n%s", out)
	}
	if !strings.Contains(out, "1. grpc: 5") {
		t.Errorf("keyword ranking missing:\n%s", out)
	}
}
