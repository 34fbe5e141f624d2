package slack

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pregtrack/pkg/domain/interfaces"
	"github.com/secmon-lab/pregtrack/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Notifier posts a status message to a Slack channel when the week changes
type Notifier struct {
	client    interfaces.SlackClient
	channelID string
}

// New creates a Notifier using a Slack OAuth token
func New(token, channelID string) *Notifier {
	return NewNotifier(slack.New(token), channelID)
}

// NewNotifier creates a Notifier with the given client
func NewNotifier(client interfaces.SlackClient, channelID string) *Notifier {
	return &Notifier{
		client:    client,
		channelID: channelID,
	}
}

var _ interfaces.Notifier = (*Notifier)(nil)

// NotifyWeekChange posts the snapshot as a Block Kit message
func (n *Notifier) NotifyWeekChange(ctx context.Context, snapshot *model.Snapshot) error {
	if snapshot == nil {
		return goerr.New("snapshot is nil")
	}

	_, _, err := n.client.PostMessageContext(ctx, n.channelID,
		slack.MsgOptionText(FallbackText(snapshot), false),
		slack.MsgOptionBlocks(BuildWeekBlocks(snapshot)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post week change to Slack",
			goerr.V("channel", n.channelID),
			goerr.V("week", snapshot.Status.CurrentWeek))
	}
	return nil
}

// FallbackText is the plain text shown in notifications
func FallbackText(snapshot *model.Snapshot) string {
	if snapshot.Status.IsComplete() {
		return "Congratulations! Your baby has arrived (or is due any moment)."
	}
	return fmt.Sprintf("Week %d: %d days remaining", snapshot.Status.CurrentWeek, snapshot.Status.DaysRemaining)
}

// BuildWeekBlocks builds the message blocks honoring the display options
func BuildWeekBlocks(snapshot *model.Snapshot) []slack.Block {
	status := snapshot.Status
	display := snapshot.Display

	if status.IsComplete() {
		return []slack.Block{
			slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, "Congratulations!", true, false)),
			slack.NewSectionBlock(
				slack.NewTextBlockObject(slack.MarkdownType, "Your baby has arrived (or is due any moment).", false, false),
				nil, nil,
			),
		}
	}

	title := fmt.Sprintf("Week %d", status.CurrentWeek)
	if header := display.VisibleHeader(); header != "" {
		title = fmt.Sprintf("%s: %s", header, title)
	}

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Due Date:*\n%s", status.DueDateText()), false, false),
	}
	if display.ShowDaysRemaining {
		fields = append(fields,
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Days Remaining:*\n%d", status.DaysRemaining), false, false),
		)
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, title, true, false)),
		slack.NewSectionBlock(nil, fields, nil),
	}

	if display.ShowSizeComparison && snapshot.Content.SizeComparison != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, snapshot.Content.SizeComparison, false, false),
			nil, nil,
		))
	}

	if display.ShowMilestones && len(snapshot.Content.Milestones) > 0 {
		var b strings.Builder
		b.WriteString("*Development This Week*")
		for _, m := range snapshot.Content.Milestones {
			b.WriteString("\n• ")
			b.WriteString(m)
		}
		blocks = append(blocks,
			slack.NewDividerBlock(),
			slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, b.String(), false, false), nil, nil),
		)
	}

	return blocks
}
