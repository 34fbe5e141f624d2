package repository

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pregtrack/pkg/domain/interfaces"
	"github.com/secmon-lab/pregtrack/pkg/domain/model"
)

// Memory implements CatalogRepository interface with in-memory storage
type Memory struct {
	mu      sync.RWMutex
	catalog *model.Catalog
}

// NewMemory creates a new memory repository. A nil catalog behaves as an
// empty store.
func NewMemory(catalog *model.Catalog) interfaces.CatalogRepository {
	return &Memory{catalog: catalog}
}

// LoadCatalog returns the stored catalog
func (m *Memory) LoadCatalog(ctx context.Context) (*model.Catalog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.catalog == nil {
		return nil, goerr.Wrap(model.ErrCatalogNotFound, "memory repository is empty")
	}

	// Copy to prevent sharing with later saves
	return model.NewCatalog(m.catalog.SizeComparisons(), m.catalog.AllMilestones()), nil
}

// SaveCatalog stores the catalog
func (m *Memory) SaveCatalog(ctx context.Context, catalog *model.Catalog) error {
	if catalog == nil {
		return goerr.New("catalog is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.catalog = model.NewCatalog(catalog.SizeComparisons(), catalog.AllMilestones())
	return nil
}

// Close does nothing for memory repository
func (m *Memory) Close() error {
	return nil
}
