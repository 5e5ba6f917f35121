package config

import (
	"log/slog"

	"github.com/refinery-lab/groomctl/pkg/domain/interfaces"
	slackSvc "github.com/refinery-lab/groomctl/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack notification configuration
type Slack struct {
	OAuthToken string
	Channel    string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for API access",
			Category:    "Slack",
			Sources:     cli.EnvVars("GROOMCTL_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID for session summaries",
			Category:    "Slack",
			Sources:     cli.EnvVars("GROOMCTL_SLACK_CHANNEL"),
			Destination: &s.Channel,
		},
	}
}

// ConfigureOptional creates a Slack client if configured, returns nil if not
func (s *Slack) ConfigureOptional(logger *slog.Logger) interfaces.SlackClient {
	if !s.IsConfigured() {
		logger.Warn("Slack not configured - session summaries will not be posted")
		return nil
	}

	logger.Info("Configuring Slack client")
	return slackSvc.New(s.OAuthToken)
}

// IsConfigured checks if Slack notification is properly configured
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.Channel != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.Channel),
	)
}
