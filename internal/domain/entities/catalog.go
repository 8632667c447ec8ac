package entities

import "time"

// Catalog is the immutable in-memory index built once per workbook load.
//
// Lifecycle:
//   - built in a single pass by the catalog package
//   - shared read-only across requests, no locking needed for reads
//   - a reload builds a new Catalog and atomically swaps the shared
//     reference; readers never observe a partially built index
type Catalog struct {
	// BuildID identifies one build for reload observability.
	BuildID  string
	LoadedAt time.Time

	// Products is ordered by canonical supplier id (numeric ids first, by
	// value), then by accent-folded name.
	Products []Product

	// NameIndex maps the exact product name to its position in Products.
	// FoldedNameIndex maps the trimmed lowercase name, used as the lookup
	// fallback when the exact match misses.
	NameIndex       map[string]int
	FoldedNameIndex map[string]int

	// Finishes partitions the unified supplier-finish table by canonical
	// supplier id, preserving sheet row order.
	Finishes map[string][]FinishRecord

	// Brands and SupplierIDs are the distinct non-blank values used to
	// populate filter controls, already sorted.
	Brands      []string
	SupplierIDs []string
}

// CatalogInfo summarizes a build for the reload endpoint.
type CatalogInfo struct {
	BuildID   string    `json:"build_id"`
	LoadedAt  time.Time `json:"loaded_at"`
	Products  int       `json:"products"`
	Suppliers int       `json:"suppliers"`
}
