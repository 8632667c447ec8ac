package repository

import (
	"sync"

	"mostruario_digital/internal/domain/entities"
	"mostruario_digital/internal/usecase/interfaces"
)

// CatalogMemoryRepository holds the current catalog snapshot. The catalog
// itself is immutable; the only write is the atomic reference swap done by
// Replace, so readers either see the previous complete index or the new
// one, never a partial rebuild.
type CatalogMemoryRepository struct {
	mu  sync.RWMutex
	cat *entities.Catalog
}

var _ interfaces.ICatalogRepository = (*CatalogMemoryRepository)(nil)

func NewCatalogMemoryRepository() *CatalogMemoryRepository {
	return &CatalogMemoryRepository{}
}

func (r *CatalogMemoryRepository) Snapshot() *entities.Catalog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cat
}

func (r *CatalogMemoryRepository) Replace(cat *entities.Catalog) {
	r.mu.Lock()
	r.cat = cat
	r.mu.Unlock()
}
