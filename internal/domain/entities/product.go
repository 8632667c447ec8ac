package entities

// Product is one unique product from the PRODUTOS sheet.
//
// Domain notes:
//   - Name is the natural key. The sheet repeats a product over several
//     finish-variant rows; identity collapses to the first-seen non-blank
//     brand/supplier/image values for that name.
//   - SupplierID is the canonical string form (e.g. "7" for a 7.0-typed
//     cell) used as the join key against the finish sheets.
type Product struct {
	Name       string   `json:"name"`
	Brand      string   `json:"brand"`
	SupplierID string   `json:"supplier_id"`
	Images     []string `json:"images"`
}

// ProductDetail is a product together with its supplier's finish sheet.
type ProductDetail struct {
	Product  Product
	Supplier SupplierCatalog
}
