package types

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// Week represents a gestational week number
type Week int

const (
	// MinWeek is the first gestational week
	MinWeek Week = 1
	// MaxWeek is the last gestational week reported by the calculator
	MaxWeek Week = 40
	// MaxImageWeek is the last week an image asset may exist for
	MaxImageWeek Week = 41
)

// Int returns the week as int
func (w Week) Int() int {
	return int(w)
}

// String returns the string representation used as catalog key
func (w Week) String() string {
	return strconv.Itoa(int(w))
}

// IsValid checks if the week is in [MinWeek, MaxWeek]
func (w Week) IsValid() bool {
	return w >= MinWeek && w <= MaxWeek
}

// Clamp limits the week to [MinWeek, MaxWeek]
func (w Week) Clamp() Week {
	return min(max(w, MinWeek), MaxWeek)
}

// ParseWeek parses a stringified week number
func ParseWeek(s string) (Week, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, goerr.Wrap(err, "invalid week number", goerr.V("week", s))
	}
	return Week(n), nil
}

// ReferenceKind tells what the configured reference date means
type ReferenceKind string

const (
	ReferenceKindConception ReferenceKind = "conception"
	ReferenceKindLMP        ReferenceKind = "lmp"
)

// String returns the string representation
func (k ReferenceKind) String() string {
	return string(k)
}

// IsValid checks if the kind is known
func (k ReferenceKind) IsValid() bool {
	switch k {
	case ReferenceKindConception, ReferenceKindLMP:
		return true
	default:
		return false
	}
}

// ImageRef is a URL-like path of a fetus image asset
type ImageRef string

// NoImage is returned when no asset exists for any week
const NoImage ImageRef = ""

// String returns the string representation
func (r ImageRef) String() string {
	return string(r)
}

// IsNone reports whether the ref is the NoImage sentinel
func (r ImageRef) IsNone() bool {
	return r == NoImage
}

// SnapshotID identifies one computed tracker snapshot
type SnapshotID string

// String returns the string representation
func (id SnapshotID) String() string {
	return string(id)
}

// NewSnapshotID creates a new SnapshotID
func NewSnapshotID() SnapshotID {
	return SnapshotID(uuid.New().String())
}
