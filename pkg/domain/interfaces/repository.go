package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . CatalogRepository

import (
	"context"

	"github.com/secmon-lab/pregtrack/pkg/domain/model"
)

// CatalogRepository defines the interface for week content persistence
type CatalogRepository interface {
	// LoadCatalog returns model.ErrCatalogNotFound (wrapped) when no catalog
	// exists yet, or a decode error when stored data is malformed
	LoadCatalog(ctx context.Context) (*model.Catalog, error)

	// SaveCatalog writes every week of the catalog, overwriting stored weeks
	SaveCatalog(ctx context.Context, catalog *model.Catalog) error

	// Close closes the repository connection
	Close() error
}
