package interfaces

import (
	"mostruario_digital/internal/domain/entities"
)

// ICatalogRepository holds the shared catalog snapshot.
//
// The catalog is immutable after construction: reads take the current
// snapshot, a reload builds a whole new index and swaps it atomically.
// Concurrent readers must never observe a partially rebuilt index.

type ICatalogRepository interface {
	Snapshot() *entities.Catalog
	Replace(cat *entities.Catalog)
}
