package card

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/secmon-lab/pregtrack/pkg/domain/model"
)

// Palette
var (
	ColorAccent = lipgloss.Color("#C678DD")
	ColorText   = lipgloss.Color("#ABB2BF")
	ColorMuted  = lipgloss.Color("#828997")
	ColorGood   = lipgloss.Color("#98C379")
	ColorBorder = lipgloss.Color("#3F4451")
)

// Styles
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Bold(true)

	WeekStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true).
				MarginTop(1)

	CongratsStyle = lipgloss.NewStyle().
			Foreground(ColorGood).
			Bold(true)
)

// Render draws the status card for a terminal
func Render(snapshot *model.Snapshot) string {
	status := snapshot.Status
	display := snapshot.Display

	var lines []string
	if header := display.VisibleHeader(); header != "" {
		lines = append(lines, HeaderStyle.Render(header))
	}

	if status.IsComplete() {
		lines = append(lines,
			CongratsStyle.Render("Congratulations!"),
			TextStyle.Render("Your baby has arrived (or is due any moment)."),
		)
		return CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	lines = append(lines, WeekStyle.Render(fmt.Sprintf("Week %d", status.CurrentWeek)))
	if !snapshot.Content.ImageRef.IsNone() {
		lines = append(lines, MutedStyle.Render(snapshot.Content.ImageRef.String()))
	}

	lines = append(lines, TextStyle.Render("Due Date: "+status.DueDateText()))
	if display.ShowDaysRemaining {
		lines = append(lines, TextStyle.Render(fmt.Sprintf("%d days remaining", status.DaysRemaining)))
	}

	if display.ShowSizeComparison && snapshot.Content.SizeComparison != "" {
		lines = append(lines, SectionTitleStyle.Render("Size"), TextStyle.Render(snapshot.Content.SizeComparison))
	}

	if display.ShowMilestones && len(snapshot.Content.Milestones) > 0 {
		items := make([]string, 0, len(snapshot.Content.Milestones))
		for _, m := range snapshot.Content.Milestones {
			items = append(items, "• "+m)
		}
		lines = append(lines,
			SectionTitleStyle.Render("Development This Week"),
			TextStyle.Render(strings.Join(items, "\n")),
		)
	}

	return CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
