package card_test

import (
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pregtrack/pkg/domain/model"
	"github.com/secmon-lab/pregtrack/pkg/service/card"
)

func snapshotAt(today time.Time) *model.Snapshot {
	ref := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &model.Snapshot{
		Status: model.ComputeStatus(ref, today),
		Content: model.WeekContent{
			Week:           5,
			SizeComparison: "Sesame seed",
			Milestones:     []string{"Heart starts beating"},
			ImageRef:       "/images/week5.png",
		},
		Display: model.DefaultDisplayOptions(),
	}
}

func TestRender(t *testing.T) {
	t.Run("All sections", func(t *testing.T) {
		out := card.Render(snapshotAt(time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)))
		gt.S(t, out).Contains("Week 5")
		gt.S(t, out).Contains("Due Date: October 8, 2025")
		gt.S(t, out).Contains("249 days remaining")
		gt.S(t, out).Contains("Sesame seed")
		gt.S(t, out).Contains("Development This Week")
		gt.S(t, out).Contains("Heart starts beating")
		gt.S(t, out).Contains("/images/week5.png")
		gt.False(t, strings.Contains(out, "Pregnancy Tracker"))
	})

	t.Run("Hidden sections", func(t *testing.T) {
		snap := snapshotAt(time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC))
		snap.Display.ShowHeader = true
		snap.Display.ShowDaysRemaining = false
		snap.Display.ShowSizeComparison = false
		snap.Display.ShowMilestones = false

		out := card.Render(snap)
		gt.S(t, out).Contains("Pregnancy Tracker")
		gt.False(t, strings.Contains(out, "days remaining"))
		gt.False(t, strings.Contains(out, "Sesame seed"))
		gt.False(t, strings.Contains(out, "Development This Week"))
	})

	t.Run("Complete", func(t *testing.T) {
		out := card.Render(snapshotAt(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)))
		gt.S(t, out).Contains("Congratulations!")
		gt.False(t, strings.Contains(out, "Week "))
	})
}
