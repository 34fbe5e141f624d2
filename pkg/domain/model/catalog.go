package model

import (
	"fmt"
	"maps"
	"slices"

	"github.com/secmon-lab/pregtrack/pkg/domain/types"
)

// Placeholder texts written when no catalog data is available
const (
	placeholderMilestone = "Developmental data not available. Please create data files."
	placeholderSizeFmt   = "Week %d: Size comparison not available. Please create data files."
)

// Catalog is the read-only mapping from week to descriptive content.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	sizeComparisons map[types.Week]string
	milestones      map[types.Week][]string
}

// NewCatalog creates a catalog from copies of the given maps
func NewCatalog(sizeComparisons map[types.Week]string, milestones map[types.Week][]string) *Catalog {
	c := &Catalog{
		sizeComparisons: make(map[types.Week]string, len(sizeComparisons)),
		milestones:      make(map[types.Week][]string, len(milestones)),
	}
	maps.Copy(c.sizeComparisons, sizeComparisons)
	for week, list := range milestones {
		c.milestones[week] = slices.Clone(list)
	}
	return c
}

// NewPlaceholderCatalog creates a catalog with generic text for every week
func NewPlaceholderCatalog() *Catalog {
	sizes := make(map[types.Week]string, types.MaxWeek)
	milestones := make(map[types.Week][]string, types.MaxWeek)
	for week := types.MinWeek; week <= types.MaxWeek; week++ {
		sizes[week] = fmt.Sprintf(placeholderSizeFmt, week)
		milestones[week] = []string{placeholderMilestone}
	}
	return &Catalog{
		sizeComparisons: sizes,
		milestones:      milestones,
	}
}

// SizeComparison returns the size comparison text for the week
func (c *Catalog) SizeComparison(week types.Week) (string, bool) {
	if c == nil {
		return "", false
	}
	s, ok := c.sizeComparisons[week]
	return s, ok
}

// Milestones returns a copy of the milestone list for the week
func (c *Catalog) Milestones(week types.Week) ([]string, bool) {
	if c == nil {
		return nil, false
	}
	list, ok := c.milestones[week]
	if !ok {
		return nil, false
	}
	return slices.Clone(list), true
}

// SizeComparisons returns a copy of all size comparisons
func (c *Catalog) SizeComparisons() map[types.Week]string {
	if c == nil {
		return map[types.Week]string{}
	}
	return maps.Clone(c.sizeComparisons)
}

// AllMilestones returns a copy of all milestone lists
func (c *Catalog) AllMilestones() map[types.Week][]string {
	result := make(map[types.Week][]string)
	if c == nil {
		return result
	}
	for week, list := range c.milestones {
		result[week] = slices.Clone(list)
	}
	return result
}

// Weeks returns every week that has any content, in ascending order
func (c *Catalog) Weeks() []types.Week {
	if c == nil {
		return nil
	}
	seen := make(map[types.Week]struct{}, len(c.sizeComparisons))
	for week := range c.sizeComparisons {
		seen[week] = struct{}{}
	}
	for week := range c.milestones {
		seen[week] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}

// WeekContent is the resolved content for one week
type WeekContent struct {
	Week           types.Week
	SizeComparison string
	Milestones     []string
	ImageRef       types.ImageRef
}
