package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pregtrack/pkg/domain/interfaces"
	"github.com/secmon-lab/pregtrack/pkg/domain/model"
	"github.com/secmon-lab/pregtrack/pkg/domain/types"
	"github.com/secmon-lab/pregtrack/pkg/utils/async"
)

// TrackerOption is a functional option for configuring Tracker
type TrackerOption func(*Tracker)

// WithDisplay sets the display options copied into each snapshot
func WithDisplay(display model.DisplayOptions) TrackerOption {
	return func(t *Tracker) {
		t.display = display
	}
}

// WithNotifier sets the notifier called when the week changes
func WithNotifier(notifier interfaces.Notifier) TrackerOption {
	return func(t *Tracker) {
		t.notifier = notifier
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) {
		t.now = now
	}
}

// Tracker computes pregnancy snapshots and keeps the latest one
type Tracker struct {
	config   *model.PregnancyConfig
	catalog  *model.Catalog
	assets   interfaces.AssetStore
	display  model.DisplayOptions
	notifier interfaces.Notifier
	now      func() time.Time

	mu       sync.RWMutex
	snapshot *model.Snapshot
}

// NewTracker creates a new Tracker
func NewTracker(config *model.PregnancyConfig, catalog *model.Catalog, assets interfaces.AssetStore, opts ...TrackerOption) (*Tracker, error) {
	if config == nil {
		return nil, goerr.Wrap(model.ErrMissingReferenceDate, "pregnancy config is nil")
	}
	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid pregnancy config")
	}

	t := &Tracker{
		config:  config,
		catalog: catalog,
		assets:  assets,
		display: model.DefaultDisplayOptions(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// Refresh recomputes the status. Catalog text is resolved again only when the
// week differs from the previous snapshot; the image is looked up every time. A week change after the first
// refresh is sent to the notifier in the background.
func (t *Tracker) Refresh(ctx context.Context) *model.Snapshot {
	now := t.now()
	status := t.config.Status(now)

	t.mu.Lock()
	prev := t.snapshot

	var content model.WeekContent
	if prev != nil && prev.Status.CurrentWeek == status.CurrentWeek {
		content = prev.Content
		content.ImageRef = ResolveImage(status.CurrentWeek, t.assets)
	} else {
		content = ResolveContent(status.CurrentWeek, t.catalog, t.assets)
	}

	snapshot := &model.Snapshot{
		ID:         types.NewSnapshotID(),
		ComputedAt: now,
		Status:     status,
		Content:    content,
		Display:    t.display,
	}
	t.snapshot = snapshot
	t.mu.Unlock()

	logger := ctxlog.From(ctx)
	logger.Debug("Pregnancy status refreshed",
		slog.String("snapshot_id", snapshot.ID.String()),
		slog.Int("week", status.CurrentWeek.Int()),
		slog.Int("days_remaining", status.DaysRemaining),
	)

	if prev != nil && prev.Status.CurrentWeek != status.CurrentWeek {
		logger.Info("Gestational week changed",
			slog.Int("from", prev.Status.CurrentWeek.Int()),
			slog.Int("to", status.CurrentWeek.Int()),
		)

		if t.notifier != nil {
			async.Dispatch(ctx, func(ctx context.Context) error {
				return t.notifier.NotifyWeekChange(ctx, snapshot)
			})
		}
	}

	return snapshot
}

// Snapshot returns the latest snapshot
func (t *Tracker) Snapshot(ctx context.Context) *model.Snapshot {
	t.mu.RLock()
	snapshot := t.snapshot
	t.mu.RUnlock()

	if snapshot == nil {
		return t.Refresh(ctx)
	}
	return snapshot
}

// Content resolves the content of any week
func (t *Tracker) Content(week types.Week) model.WeekContent {
	return ResolveContent(week, t.catalog, t.assets)
}

// RefreshTask adapts Refresh to a scheduler Task
func (t *Tracker) RefreshTask() Task {
	return func(ctx context.Context) error {
		t.Refresh(ctx)
		return nil
	}
}
