package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pregtrack/pkg/domain/model"
	"github.com/secmon-lab/pregtrack/pkg/domain/types"
)

func TestNewCatalog(t *testing.T) {
	sizes := map[types.Week]string{4: "Poppy seed"}
	milestones := map[types.Week][]string{4: {"Neural tube forms"}}
	c := model.NewCatalog(sizes, milestones)

	// mutating the inputs must not leak into the catalog
	sizes[4] = "changed"
	milestones[4][0] = "changed"

	s, ok := c.SizeComparison(4)
	gt.True(t, ok)
	gt.Equal(t, s, "Poppy seed")

	list, ok := c.Milestones(4)
	gt.True(t, ok)
	gt.A(t, list).Length(1)
	gt.Equal(t, list[0], "Neural tube forms")

	// mutating the returned slice must not leak either
	list[0] = "changed"
	again, _ := c.Milestones(4)
	gt.Equal(t, again[0], "Neural tube forms")

	_, ok = c.SizeComparison(5)
	gt.False(t, ok)
	_, ok = c.Milestones(5)
	gt.False(t, ok)
}

func TestNewPlaceholderCatalog(t *testing.T) {
	c := model.NewPlaceholderCatalog()
	weeks := c.Weeks()
	gt.A(t, weeks).Length(40)
	gt.Equal(t, weeks[0], types.Week(1))
	gt.Equal(t, weeks[39], types.Week(40))

	s, ok := c.SizeComparison(12)
	gt.True(t, ok)
	gt.Equal(t, s, "Week 12: Size comparison not available. Please create data files.")

	list, ok := c.Milestones(12)
	gt.True(t, ok)
	gt.A(t, list).Length(1)
	gt.Equal(t, list[0], "Developmental data not available. Please create data files.")
}

func TestCatalog_NilIsEmpty(t *testing.T) {
	var c *model.Catalog
	_, ok := c.SizeComparison(1)
	gt.False(t, ok)
	_, ok = c.Milestones(1)
	gt.False(t, ok)
	gt.A(t, c.Weeks()).Length(0)
	gt.Equal(t, len(c.SizeComparisons()), 0)
	gt.Equal(t, len(c.AllMilestones()), 0)
}

func TestCatalog_Weeks(t *testing.T) {
	c := model.NewCatalog(
		map[types.Week]string{3: "a", 1: "b"},
		map[types.Week][]string{2: {"x"}, 3: {"y"}},
	)
	weeks := c.Weeks()
	gt.A(t, weeks).Length(3)
	gt.Equal(t, weeks[0], types.Week(1))
	gt.Equal(t, weeks[1], types.Week(2))
	gt.Equal(t, weeks[2], types.Week(3))
}
