package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/refinery-lab/groomctl/pkg/domain/interfaces"
	"github.com/refinery-lab/groomctl/pkg/domain/model"
	slackSvc "github.com/refinery-lab/groomctl/pkg/service/slack"
	"github.com/slack-go/slack"
)

// NotifyUseCase posts grooming session summaries to Slack
type NotifyUseCase struct {
	slackClient interfaces.SlackClient
	channelID   string
}

// NewNotify creates a new NotifyUseCase
func NewNotify(slackClient interfaces.SlackClient, channelID string) (*NotifyUseCase, error) {
	if slackClient == nil {
		return nil, goerr.New("slack client is required")
	}
	if channelID == "" {
		return nil, goerr.New("notification channel ID is required")
	}

	return &NotifyUseCase{
		slackClient: slackClient,
		channelID:   channelID,
	}, nil
}

// PostSessionSummary posts the session summary to the configured channel
func (u *NotifyUseCase) PostSessionSummary(ctx context.Context, report *model.SessionReport) error {
	if report == nil {
		return goerr.New("report is nil")
	}

	blocks := slackSvc.BuildSessionSummaryBlocks(report)
	_, _, err := u.slackClient.PostMessage(ctx, u.channelID, slack.MsgOptionBlocks(blocks...))
	if err != nil {
		return goerr.Wrap(err, "failed to post session summary",
			goerr.V("channelID", u.channelID),
			goerr.V("sessionID", report.Session.ID))
	}

	return nil
}
