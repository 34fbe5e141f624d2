package usecase

import (
	"fmt"

	"github.com/secmon-lab/pregtrack/pkg/domain/interfaces"
	"github.com/secmon-lab/pregtrack/pkg/domain/model"
	"github.com/secmon-lab/pregtrack/pkg/domain/types"
)

// ResolveContent looks up the week's catalog entries and image. Missing
// entries are replaced with fallback text naming the week.
func ResolveContent(week types.Week, catalog *model.Catalog, assets interfaces.AssetStore) model.WeekContent {
	size, ok := catalog.SizeComparison(week)
	if !ok {
		size = fmt.Sprintf("Week %d: Size comparison not available", week)
	}

	milestones, ok := catalog.Milestones(week)
	if !ok || len(milestones) == 0 {
		milestones = []string{fmt.Sprintf("Week %d: Developmental data not available", week)}
	}

	return model.WeekContent{
		Week:           week,
		SizeComparison: size,
		Milestones:     milestones,
		ImageRef:       ResolveImage(week, assets),
	}
}

// ResolveImage returns the image for exactly week if it exists, otherwise the
// image of the nearest week in [1, 41]. On a tie the lower week wins. Returns
// types.NoImage when week is out of range or no image exists at all.
func ResolveImage(week types.Week, assets interfaces.AssetStore) types.ImageRef {
	if assets == nil || week < types.MinWeek || week > types.MaxImageWeek {
		return types.NoImage
	}

	if assets.Has(week) {
		return assets.Ref(week)
	}

	var (
		closest types.Week
		found   bool
		minDiff = int(types.MaxImageWeek)
	)
	for w := types.MinWeek; w <= types.MaxImageWeek; w++ {
		if !assets.Has(w) {
			continue
		}
		if diff := abs(int(w - week)); diff < minDiff {
			minDiff = diff
			closest = w
			found = true
		}
	}

	if !found {
		return types.NoImage
	}
	return assets.Ref(closest)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
