package interfaces

//go:generate moq -out mocks/slack_mock.go -pkg mocks . SlackClient Notifier

import (
	"context"

	"github.com/secmon-lab/pregtrack/pkg/domain/model"
	"github.com/slack-go/slack"
)

// SlackClient is the subset of the Slack API used for notifications
type SlackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Notifier is informed when the displayed gestational week changes
type Notifier interface {
	NotifyWeekChange(ctx context.Context, snapshot *model.Snapshot) error
}
