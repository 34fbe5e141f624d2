package usecase

import (
	"context"

	"github.com/secmon-lab/pregtrack/pkg/domain/model"
	"github.com/secmon-lab/pregtrack/pkg/domain/types"
)

// TrackerUseCase defines the interface the controllers depend on
type TrackerUseCase interface {
	// Refresh recomputes the status for the current day and stores a new snapshot
	Refresh(ctx context.Context) *model.Snapshot

	// Snapshot returns the latest snapshot, computing one if none exists yet
	Snapshot(ctx context.Context) *model.Snapshot

	// Content resolves the catalog content and image for a week
	Content(week types.Week) model.WeekContent
}

var _ TrackerUseCase = (*Tracker)(nil)
