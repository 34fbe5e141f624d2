package model_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pregtrack/pkg/domain/model"
	"github.com/secmon-lab/pregtrack/pkg/domain/types"
)

func TestSnapshotView(t *testing.T) {
	ref := date(2025, time.January, 1)
	snap := &model.Snapshot{
		ID:         types.NewSnapshotID(),
		ComputedAt: date(2025, time.February, 1),
		Status:     model.ComputeStatus(ref, date(2025, time.February, 1)),
		Content: model.WeekContent{
			Week:           5,
			SizeComparison: "Sesame seed",
			Milestones:     []string{"Heart starts beating"},
			ImageRef:       "/images/week5.png",
		},
		Display: model.DefaultDisplayOptions(),
	}

	v := snap.View()
	gt.Equal(t, v.CurrentWeek, 5)
	gt.Equal(t, v.DueDate, "2025-10-08")
	gt.Equal(t, v.DueDateText, "October 8, 2025")
	gt.False(t, v.Complete)
	gt.NotEqual(t, v.ImageRef, nil)
	gt.Equal(t, *v.ImageRef, "/images/week5.png")
}

func TestWeekContentView_NoImageIsNull(t *testing.T) {
	c := model.WeekContent{Week: 3, SizeComparison: "x"}
	raw, err := json.Marshal(c.View())
	gt.NoError(t, err)
	gt.True(t, strings.Contains(string(raw), `"imageRef":null`))
	gt.True(t, strings.Contains(string(raw), `"milestones":[]`))
}

func TestDisplayOptions(t *testing.T) {
	d := model.DefaultDisplayOptions()
	gt.Equal(t, d.Header, "Pregnancy Tracker")
	gt.False(t, d.ShowHeader)
	gt.True(t, d.ShowDaysRemaining)
	gt.True(t, d.ShowSizeComparison)
	gt.True(t, d.ShowMilestones)
	gt.Equal(t, d.VisibleHeader(), "")

	d.ShowHeader = true
	gt.Equal(t, d.VisibleHeader(), "Pregnancy Tracker")
}
