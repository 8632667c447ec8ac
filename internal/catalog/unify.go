package catalog

import (
	"sort"
	"strings"
)

// Canonical column names after header normalization (trim + upper-case).
const (
	ColSupplier     = "FORNECEDOR"
	ColBrand        = "MARCA"
	ColProduct      = "PRODUTO"
	ColProductImage = "IMAGEM PRODUTO"

	// ColSupplierKey is the derived canonical supplier-id column added to
	// both tables, the exact-string join key between them.
	ColSupplierKey = "FORNECEDOR_STR"
)

// Logical fields of the supplier-finish table. Each sheet is authored
// independently, so every field accepts an ordered list of header
// spellings (accented vs. plain, spaced vs. underscored); the first
// present non-null column wins.
var finishFieldAliases = map[string][]string{
	"finish":      {"ACABAMENTO"},
	"category":    {"TIPO DE ACABAMENTO", "TIPO_ACABAMENTO"},
	"composition": {"COMPOSIÇÃO", "COMPOSICAO"},
	"status":      {"STATUS"},
	"statusDate":  {"STATUS_DATA", "STATUS DATA"},
	"restriction": {"RESTRIÇÃO", "RESTRICAO"},
	"info":        {"INFORMACAO_COMPLEMENTAR", "INFORMAÇÃO COMPLEMENTAR"},
	"finishImage": {"IMAGEM ACABAMENTO", "IMAGEM"},
	"lastUpdated": {"ULTIMA_ATUALIZACAO"},
}

// Unified holds the two tables every later stage works from: the products
// table and the concatenation of all supplier finish sheets.
type Unified struct {
	Products []Row
	Finishes []Row
}

// NormalizeHeader is the canonical comparison key for column names.
func NormalizeHeader(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// ValueByAlias returns the first candidate column present in the row with
// a non-null value.
func ValueByAlias(row Row, candidates ...string) Cell {
	for _, name := range candidates {
		if c, ok := row[name]; ok && !c.IsNull() {
			return c
		}
	}
	return NullCell()
}

// FinishField resolves a logical finish-table field through the alias
// table.
func FinishField(row Row, field string) Cell {
	return ValueByAlias(row, finishFieldAliases[field]...)
}

// Unify turns a raw workbook into the unified schema:
//   - the sheet named "produtos" (case/whitespace-insensitive) is the
//     products table; with no such sheet the workbook's first sheet is
//     used (documented fallback, not an error)
//   - every other non-empty sheet concatenates into the supplier-finish
//     table, column union, missing columns behaving as null cells
//   - all headers are trimmed and upper-cased
//   - FORNECEDOR/MARCA/PRODUTO fill down on the products table, restoring
//     merged-cell product groupings
//   - the canonical FORNECEDOR_STR join column is derived on both tables
func Unify(wb Workbook) Unified {
	productsIdx := 0
	for i, sh := range wb.Sheets {
		if strings.ToLower(strings.TrimSpace(sh.Name)) == "produtos" {
			productsIdx = i
			break
		}
	}

	var u Unified
	for i, sh := range wb.Sheets {
		rows := normalizeRows(sh.Rows)
		if i == productsIdx {
			u.Products = rows
			continue
		}
		if len(rows) > 0 {
			u.Finishes = append(u.Finishes, rows...)
		}
	}

	fillDown(u.Products, ColSupplier, ColBrand, ColProduct)

	for _, row := range u.Products {
		row[ColSupplierKey] = TextCell(CanonicalSupplierID(row[ColSupplier]))
	}
	supplierCol := supplierColumn(u.Finishes)
	for _, row := range u.Finishes {
		row[ColSupplierKey] = TextCell(CanonicalSupplierID(row[supplierCol]))
	}
	return u
}

func normalizeRows(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		n := make(Row, len(row))
		for name, c := range row {
			n[NormalizeHeader(name)] = c
		}
		out = append(out, n)
	}
	return out
}

// fillDown propagates the nearest preceding non-null value over null and
// blank cells, in row order, per column.
func fillDown(rows []Row, columns ...string) {
	last := make(map[string]Cell, len(columns))
	for _, row := range rows {
		for _, col := range columns {
			c := row[col]
			if c.IsNull() || Clean(c) == "" {
				if prev, ok := last[col]; ok {
					row[col] = prev
				}
				continue
			}
			last[col] = c
		}
	}
}

// supplierColumn picks the join-source column of the finish table: the
// exact FORNECEDOR header when present anywhere, else the alphabetically
// first header containing "FORNECEDOR" (deterministic tie-break).
func supplierColumn(rows []Row) string {
	seen := make(map[string]struct{})
	for _, row := range rows {
		for name := range row {
			if name == ColSupplier {
				return ColSupplier
			}
			if strings.Contains(name, ColSupplier) {
				seen[name] = struct{}{}
			}
		}
	}
	candidates := make([]string, 0, len(seen))
	for name := range seen {
		candidates = append(candidates, name)
	}
	if len(candidates) == 0 {
		return ColSupplier
	}
	sort.Strings(candidates)
	return candidates[0]
}
