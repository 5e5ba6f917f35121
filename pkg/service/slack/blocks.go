package slack

import (
	"fmt"

	"github.com/refinery-lab/groomctl/pkg/domain/model"
	"github.com/refinery-lab/groomctl/pkg/domain/types"
	"github.com/slack-go/slack"
)

// TierEmoji returns an emoji for a readiness tier
func TierEmoji(tier types.ReadinessTier) string {
	switch tier {
	case types.TierReadyForSprint:
		return "✅"
	case types.TierMinorRefinements:
		return "🟡"
	case types.TierNeedsDiscussion:
		return "🗣️"
	default:
		return "🚧"
	}
}

// BuildSessionSummaryBlocks builds the Slack message for a completed
// grooming session
func BuildSessionSummaryBlocks(report *model.SessionReport) []slack.Block {
	headerText := slack.NewTextBlockObject(slack.PlainTextType,
		fmt.Sprintf("Backlog Grooming Results: %s", report.Session.ProjectKey), false, false)
	header := slack.NewHeaderBlock(headerText)

	summaryFields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Items Reviewed:*\n%d", report.Summary.TotalItems), false, false),
	}
	for _, tier := range types.AllTiers() {
		summaryFields = append(summaryFields, slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*%s %s:*\n%d", TierEmoji(tier), tier, report.Summary.Count(tier)), false, false))
	}
	summary := slack.NewSectionBlock(nil, summaryFields, nil)

	blocks := []slack.Block{header, summary, slack.NewDividerBlock()}

	for _, result := range report.Results {
		line := fmt.Sprintf("%s *%s* %s — %.1f%%",
			TierEmoji(result.Tier), result.ItemKey, result.Title, result.Percentage)
		if result.StoryPoints != nil {
			line += fmt.Sprintf(" (%d pts)", *result.StoryPoints)
		}
		text := slack.NewTextBlockObject(slack.MarkdownType, line, false, false)
		blocks = append(blocks, slack.NewSectionBlock(text, nil, nil))
	}

	return blocks
}
