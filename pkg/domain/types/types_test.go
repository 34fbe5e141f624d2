package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pregtrack/pkg/domain/types"
)

func TestWeekClamp(t *testing.T) {
	tests := []struct {
		name     string
		week     types.Week
		expected types.Week
	}{
		{"Below range", types.Week(-3), types.MinWeek},
		{"Zero", types.Week(0), types.MinWeek},
		{"Lower bound", types.MinWeek, types.MinWeek},
		{"Middle", types.Week(20), types.Week(20)},
		{"Upper bound", types.MaxWeek, types.MaxWeek},
		{"Above range", types.Week(58), types.MaxWeek},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, tt.week.Clamp(), tt.expected)
		})
	}
}

func TestWeekIsValid(t *testing.T) {
	gt.False(t, types.Week(0).IsValid())
	gt.True(t, types.Week(1).IsValid())
	gt.True(t, types.Week(40).IsValid())
	gt.False(t, types.Week(41).IsValid())
}

func TestParseWeek(t *testing.T) {
	t.Run("Valid number", func(t *testing.T) {
		w, err := types.ParseWeek("12")
		gt.NoError(t, err)
		gt.Equal(t, w, types.Week(12))
	})

	t.Run("Surrounding spaces", func(t *testing.T) {
		w, err := types.ParseWeek(" 7 ")
		gt.NoError(t, err)
		gt.Equal(t, w, types.Week(7))
	})

	t.Run("Not a number", func(t *testing.T) {
		_, err := types.ParseWeek("twelve")
		gt.Error(t, err)
	})
}

func TestReferenceKindValidation(t *testing.T) {
	tests := []struct {
		kind     types.ReferenceKind
		expected bool
	}{
		{types.ReferenceKindConception, true},
		{types.ReferenceKindLMP, true},
		{types.ReferenceKind(""), false},
		{types.ReferenceKind("LMP"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if tt.kind.IsValid() != tt.expected {
				t.Errorf("ReferenceKind(%q).IsValid() = %v, want %v", tt.kind, tt.kind.IsValid(), tt.expected)
			}
		})
	}
}

func TestImageRef(t *testing.T) {
	gt.True(t, types.NoImage.IsNone())
	gt.False(t, types.ImageRef("/images/week3.png").IsNone())
}

func TestNewSnapshotID(t *testing.T) {
	a := types.NewSnapshotID()
	b := types.NewSnapshotID()
	gt.NotEqual(t, a, b)
	gt.Equal(t, len(a.String()), 36)
}
