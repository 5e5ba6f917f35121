package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/refinery-lab/groomctl/pkg/domain/interfaces"
	"github.com/refinery-lab/groomctl/pkg/domain/model"
	"github.com/refinery-lab/groomctl/pkg/domain/types"
)

const timestampFormat = "2006-01-02 15:04"

// Markdown renders a session report as a Markdown document
type Markdown struct{}

// NewMarkdown creates a new Markdown renderer
func NewMarkdown() interfaces.ReportRenderer {
	return &Markdown{}
}

// Render writes the Markdown report
func (r *Markdown) Render(w io.Writer, report *model.SessionReport) error {
	if report == nil {
		return goerr.New("report is nil")
	}

	var b strings.Builder

	b.WriteString("# Backlog Grooming Session Results\n\n")
	fmt.Fprintf(&b, "Project: %s  \n", report.Session.ProjectKey)
	fmt.Fprintf(&b, "Session: %s  \n", report.Session.ID)
	fmt.Fprintf(&b, "Generated on: %s\n\n", report.GeneratedAt.Format(timestampFormat))

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Total Items Reviewed | %d |\n", report.Summary.TotalItems)
	for _, tier := range types.AllTiers() {
		fmt.Fprintf(&b, "| %s | %d |\n", tier, report.Summary.Count(tier))
	}
	b.WriteString("\n")

	b.WriteString("## Detailed Results\n\n")
	for _, result := range report.Results {
		fmt.Fprintf(&b, "### [%s] %s\n\n", result.ItemKey, result.Title)
		fmt.Fprintf(&b, "**Score:** %.1f%%  \n", result.Percentage)
		fmt.Fprintf(&b, "**Readiness Level:** %s  \n", result.Tier)
		if result.StoryPoints != nil {
			fmt.Fprintf(&b, "**Story Points:** %d  \n", *result.StoryPoints)
		}
		b.WriteString("\n**Evaluation Details:**\n\n")

		for _, cs := range result.Breakdown {
			mark := "❌"
			if cs.Answer {
				mark = "✅"
			}
			fmt.Fprintf(&b, "- %s: %s\n", cs.Question, mark)
		}

		b.WriteString("\n---\n\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return goerr.Wrap(err, "failed to write markdown report")
	}

	return nil
}
