package entities

import "time"

// Status color tokens attached to each FinishRecord at index-build time.
// Values follow the showroom convention: red for unavailable, amber for
// suspended, green for active, neutral black for anything else.
const (
	StatusColorUnavailable = "#FF0000"
	StatusColorSuspended   = "#D4A017"
	StatusColorActive      = "#008000"
	StatusColorNeutral     = "#000000"
)

// CategoryOther is the sentinel bucket for finish rows with no resolvable
// category column or value. Rows are never dropped for lacking a category.
const CategoryOther = "OUTROS"

// LastUpdatedUnavailable is rendered when no ULTIMA_ATUALIZACAO value in a
// supplier's finish sheet resolves to a date.
const LastUpdatedUnavailable = "Data não disponível"

// FinishRecord is one supplier-specific finish (acabamento) entry.
//
// Status is free text; the semantic values "ativo", "suspenso" and
// "indisponível" are recognized case- and accent-insensitively, anything
// else renders neutrally. Status is never null: the empty string is the
// null-equivalent. Dates that fail to resolve stay empty.
type FinishRecord struct {
	// Category is the resolved bucket this record belongs to; serialized
	// through the Category wrapper, not per record.
	Category string `json:"-"`

	Name        string `json:"finish"`
	Type        string `json:"type"`
	Composition string `json:"composition"`
	Status      string `json:"status"`
	StatusDate  string `json:"status_date"`
	StatusColor string `json:"status_color"`
	Restriction string `json:"restriction"`
	Info        string `json:"extra_info"`
	Image       string `json:"image"`

	// SearchKey is the accent-folded lowercase concatenation of the
	// searchable fields, precomputed at build time.
	SearchKey string `json:"-"`
	// UpdatedAt is the resolved ULTIMA_ATUALIZACAO instant; zero when the
	// cell did not resolve.
	UpdatedAt time.Time `json:"-"`
}

// Category is an ordered bucket of finish records. Insertion order follows
// sheet row order.
type Category struct {
	Name    string         `json:"category"`
	Records []FinishRecord `json:"records"`
}

// SupplierCatalog is the per-supplier aggregation served on the product
// detail page and the PDF export.
type SupplierCatalog struct {
	Categories  []Category `json:"categories"`
	FinishNames []string   `json:"finish_names"`
	Statuses    []string   `json:"statuses"`
	LastUpdated string     `json:"last_updated"`
}
