package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/azuresoup/hh-skills-parser/internal/analyzer"
	"github.com/azuresoup/hh-skills-parser/internal/harvester"
	"github.com/azuresoup/hh-skills-parser/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	countStyle = lipgloss.NewStyle().
			Bold(true)
)

// Console renders harvest summaries and analysis reports as human-readable
// text. The layout is presentation only; counts and top-N listings are the
// contract.
type Console struct {
	out io.Writer
}

// NewConsole returns a reporter writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// HarvestSummary prints the result of one harvest run.
func (c *Console) HarvestSummary(s harvester.Summary) {
	fmt.Fprintln(c.out, headerStyle.Render("Harvest complete"))
	c.count("Found upstream", s.Found)
	c.count("Relevant", s.Relevant)
	c.count("New postings", s.New)
	c.count("Already stored", s.Existing)
}

// Counts prints the aggregate store counts.
func (c *Console) Counts(counts model.StoreCounts) {
	c.count("Postings stored", counts.Total)
	c.count("With skills", counts.WithSkills)
	c.count("With description", counts.WithDescription)
}

// Analysis prints a full analysis report: aggregate counts, top skills, and
// top description keywords.
func (c *Console) Analysis(r *analyzer.Report) {
	fmt.Fprintln(c.out, headerStyle.Render("Posting analysis"))
	c.Counts(r.Counts)

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, headerStyle.Render(fmt.Sprintf("Top %d skills (key_skills tags)", len(r.TopSkills))))
	c.count("Skill mentions", r.SkillMentions)
	c.count("Unique skills", r.UniqueSkills)
	c.ranking(r.TopSkills)

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, headerStyle.Render(fmt.Sprintf("Top %d keywords (descriptions)", len(r.TopKeywords))))
	c.count("Keyword mentions", r.KeywordMentions)
	c.count("Unique keywords", r.UniqueKeywords)
	c.ranking(r.TopKeywords)
}

func (c *Console) count(label string, n int) {
	fmt.Fprintf(c.out, "%s %s\n", labelStyle.Render(label+":"), countStyle.Render(fmt.Sprintf("%d", n)))
}

func (c *Console) ranking(entries []analyzer.TokenCount) {
	for i, tc := range entries {
		fmt.Fprintf(c.out, "%3d. %s: %d\n", i+1, tc.Token, tc.Count)
	}
}
