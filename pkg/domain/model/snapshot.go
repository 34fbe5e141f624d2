package model

import (
	"time"

	"github.com/secmon-lab/pregtrack/pkg/domain/types"
)

// Snapshot is everything a rendering layer needs to draw the status card
type Snapshot struct {
	ID         types.SnapshotID
	ComputedAt time.Time
	Status     PregnancyStatus
	Content    WeekContent
	Display    DisplayOptions
}

// SnapshotView is the JSON representation of a snapshot
type SnapshotView struct {
	ID             string         `json:"id"`
	ComputedAt     time.Time      `json:"computedAt"`
	CurrentWeek    int            `json:"currentWeek"`
	DaysRemaining  int            `json:"daysRemaining"`
	DueDate        string         `json:"dueDate"`
	DueDateText    string         `json:"dueDateText"`
	Complete       bool           `json:"complete"`
	SizeComparison string         `json:"sizeComparison"`
	Milestones     []string       `json:"milestones"`
	ImageRef       *string        `json:"imageRef"`
	Display        DisplayOptions `json:"display"`
}

// WeekContentView is the JSON representation of week content
type WeekContentView struct {
	Week           int      `json:"week"`
	SizeComparison string   `json:"sizeComparison"`
	Milestones     []string `json:"milestones"`
	ImageRef       *string  `json:"imageRef"`
}

// View converts the snapshot to its JSON representation
func (s *Snapshot) View() SnapshotView {
	return SnapshotView{
		ID:             s.ID.String(),
		ComputedAt:     s.ComputedAt,
		CurrentWeek:    s.Status.CurrentWeek.Int(),
		DaysRemaining:  s.Status.DaysRemaining,
		DueDate:        s.Status.DueDate.Format(DateLayout),
		DueDateText:    s.Status.DueDateText(),
		Complete:       s.Status.IsComplete(),
		SizeComparison: s.Content.SizeComparison,
		Milestones:     nonNil(s.Content.Milestones),
		ImageRef:       imageRefPtr(s.Content.ImageRef),
		Display:        s.Display,
	}
}

// View converts the content to its JSON representation. A missing image is
// encoded as null.
func (c WeekContent) View() WeekContentView {
	return WeekContentView{
		Week:           c.Week.Int(),
		SizeComparison: c.SizeComparison,
		Milestones:     nonNil(c.Milestones),
		ImageRef:       imageRefPtr(c.ImageRef),
	}
}

func imageRefPtr(ref types.ImageRef) *string {
	if ref.IsNone() {
		return nil
	}
	s := ref.String()
	return &s
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
