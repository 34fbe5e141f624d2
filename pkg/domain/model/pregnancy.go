package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pregtrack/pkg/domain/types"
)

const (
	// GestationDays is the offset from the reference date to the due date (40 weeks).
	// It is applied to both conception and LMP references.
	GestationDays = 280

	// DateLayout is the ISO date format accepted for reference dates
	DateLayout = "2006-01-02"

	// DueDateLayout is the human readable due date format
	DueDateLayout = "January 2, 2006"
)

// PregnancyConfig is the immutable tracker input
type PregnancyConfig struct {
	ReferenceDate time.Time
	ReferenceKind types.ReferenceKind
}

// NewPregnancyConfig builds a config from the two mutually exclusive date options.
// Exactly one of them must be non-empty.
func NewPregnancyConfig(conceptionDate, lmpDate string) (*PregnancyConfig, error) {
	var (
		raw  string
		kind types.ReferenceKind
	)

	switch {
	case conceptionDate != "" && lmpDate != "":
		return nil, goerr.Wrap(ErrConflictingReferenceDates, "failed to build pregnancy config",
			goerr.V("conception_date", conceptionDate),
			goerr.V("lmp_date", lmpDate))
	case conceptionDate != "":
		raw, kind = conceptionDate, types.ReferenceKindConception
	case lmpDate != "":
		raw, kind = lmpDate, types.ReferenceKindLMP
	default:
		return nil, goerr.Wrap(ErrMissingReferenceDate, "failed to build pregnancy config")
	}

	date, err := time.Parse(DateLayout, raw)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidReferenceDate, "failed to parse reference date",
			goerr.V("date", raw),
			goerr.V("kind", kind),
			goerr.V("cause", err.Error()))
	}

	return &PregnancyConfig{
		ReferenceDate: date,
		ReferenceKind: kind,
	}, nil
}

// Validate validates the config
func (c *PregnancyConfig) Validate() error {
	if c.ReferenceDate.IsZero() {
		return goerr.Wrap(ErrMissingReferenceDate, "reference date is zero")
	}
	if !c.ReferenceKind.IsValid() {
		return goerr.New("invalid reference kind", goerr.V("kind", c.ReferenceKind))
	}
	return nil
}

// Status computes the pregnancy status for the given day
func (c *PregnancyConfig) Status(today time.Time) PregnancyStatus {
	return ComputeStatus(c.ReferenceDate, today)
}

// PregnancyStatus is the computed state for one day. It has no identity and
// is recomputed on each refresh.
type PregnancyStatus struct {
	CurrentWeek   types.Week
	DaysRemaining int
	DueDate       time.Time
	// DaysElapsed is the signed number of whole days since the reference date
	DaysElapsed int
}

// IsComplete reports whether the due date has been reached
func (s PregnancyStatus) IsComplete() bool {
	return s.DaysRemaining <= 0
}

// DueDateText returns the due date in DueDateLayout
func (s PregnancyStatus) DueDateText() string {
	return s.DueDate.Format(DueDateLayout)
}

// ComputeStatus maps a reference date and today's date to the pregnancy status.
// Dates are compared as calendar days; the time of day is ignored. The current
// week is clamped to [1, 40] and days remaining never goes below zero.
func ComputeStatus(referenceDate, today time.Time) PregnancyStatus {
	ref := civilDate(referenceDate)
	now := civilDate(today)
	due := ref.AddDate(0, 0, GestationDays)

	elapsed := daysBetween(ref, now)
	week := types.Week(floorDiv(elapsed, 7) + 1).Clamp()

	return PregnancyStatus{
		CurrentWeek:   week,
		DaysRemaining: max(daysBetween(now, due), 0),
		DueDate:       due,
		DaysElapsed:   elapsed,
	}
}

// civilDate drops the clock part of t, keeping the calendar day of t's own location
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole days between two UTC midnights. Unix seconds are
// used since time.Duration saturates after about 292 years.
func daysBetween(from, to time.Time) int {
	return int((to.Unix() - from.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
