package config

import (
	"log/slog"

	"github.com/secmon-lab/pregtrack/pkg/domain/interfaces"
	slackSvc "github.com/secmon-lab/pregtrack/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for posting week change messages",
			Category:    "Slack",
			Sources:     cli.EnvVars("PREGTRACK_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID to post week change messages to",
			Category:    "Slack",
			Sources:     cli.EnvVars("PREGTRACK_SLACK_CHANNEL"),
			Destination: &s.ChannelID,
		},
	}
}

// ConfigureOptional creates a notifier if configured, returns nil if not
func (s *Slack) ConfigureOptional(logger *slog.Logger) interfaces.Notifier {
	if !s.IsConfigured() {
		logger.Debug("Slack not configured - week change notifications are disabled")
		return nil
	}

	logger.Info("Configuring Slack notifier", slog.String("channel", s.ChannelID))
	return slackSvc.New(s.OAuthToken, s.ChannelID)
}

// IsConfigured checks if both token and channel are set
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.ChannelID),
	)
}
