package interfaces

import "github.com/secmon-lab/pregtrack/pkg/domain/types"

// AssetStore tells which weeks have a fetus image and how to reference it
type AssetStore interface {
	// Has reports whether an image exists for exactly the given week
	Has(week types.Week) bool

	// Ref returns the URL-like path of the week's image
	Ref(week types.Week) types.ImageRef
}
