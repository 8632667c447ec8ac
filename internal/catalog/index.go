package catalog

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"mostruario_digital/internal/domain/entities"
)

// Build runs the whole normalization pipeline once and returns the
// immutable catalog index: unified tables, deduplicated products, the
// supplier partition of the finish table and the precomputed search and
// presentation metadata. The result is safe to share across requests
// without synchronization.
func Build(wb Workbook) *entities.Catalog {
	u := Unify(wb)

	cat := &entities.Catalog{
		BuildID:         uuid.NewString(),
		LoadedAt:        time.Now().UTC(),
		Products:        buildProducts(u.Products),
		Finishes:        buildFinishes(u.Finishes),
		NameIndex:       make(map[string]int),
		FoldedNameIndex: make(map[string]int),
	}

	sort.SliceStable(cat.Products, func(i, j int) bool {
		a, b := cat.Products[i], cat.Products[j]
		if a.SupplierID != b.SupplierID {
			return SupplierIDLess(a.SupplierID, b.SupplierID)
		}
		return SearchKey(a.Name) < SearchKey(b.Name)
	})
	for i, p := range cat.Products {
		if _, ok := cat.NameIndex[p.Name]; !ok {
			cat.NameIndex[p.Name] = i
		}
		folded := strings.ToLower(strings.TrimSpace(p.Name))
		if _, ok := cat.FoldedNameIndex[folded]; !ok {
			cat.FoldedNameIndex[folded] = i
		}
	}

	cat.Brands = distinctBrands(u.Products)
	cat.SupplierIDs = distinctSuppliers(cat.Finishes, cat.Products)
	return cat
}

// buildProducts collapses the raw product rows (one per finish variant) to
// unique products: first-seen non-blank brand/supplier values and the
// deduplicated image paths for each name. Rows with a blank or "nan" name
// are skipped.
func buildProducts(rows []Row) []entities.Product {
	var products []entities.Product
	byName := make(map[string]int)

	for _, row := range rows {
		name := Clean(row[ColProduct])
		if name == "" || strings.EqualFold(name, "nan") {
			continue
		}
		idx, ok := byName[name]
		if !ok {
			idx = len(products)
			byName[name] = idx
			products = append(products, entities.Product{Name: name})
		}
		p := &products[idx]
		if p.Brand == "" {
			p.Brand = Clean(row[ColBrand])
		}
		if p.SupplierID == "" {
			p.SupplierID = Clean(row[ColSupplierKey])
		}
		if img := StaticPath(Clean(row[ColProductImage])); img != "" && !contains(p.Images, img) {
			p.Images = append(p.Images, img)
		}
	}
	return products
}

// buildFinishes partitions the unified finish table by canonical supplier
// id, preserving sheet row order, and materializes each FinishRecord with
// its resolved dates, color token and search key.
func buildFinishes(rows []Row) map[string][]entities.FinishRecord {
	finishes := make(map[string][]entities.FinishRecord)
	for _, row := range rows {
		supplier := Clean(row[ColSupplierKey])
		status := Clean(FinishField(row, "status"))
		category := Clean(FinishField(row, "category"))

		rec := entities.FinishRecord{
			Category:    category,
			Name:        Clean(FinishField(row, "finish")),
			Type:        category,
			Composition: Clean(FinishField(row, "composition")),
			Status:      status,
			StatusColor: StatusColorFor(status),
			Restriction: Clean(FinishField(row, "restriction")),
			Info:        Clean(FinishField(row, "info")),
			Image:       StaticPath(Clean(FinishField(row, "finishImage"))),
		}
		if rec.Category == "" {
			rec.Category = entities.CategoryOther
		}
		if t, ok := ResolveCell(FinishField(row, "statusDate")); ok {
			rec.StatusDate = FormatDate(t)
		}
		rec.SearchKey = SearchKey(strings.Join([]string{
			rec.Name, rec.Type, rec.Composition, rec.Restriction, rec.Info,
		}, " "))

		finishes[supplier] = append(finishes[supplier], rec)
	}

	// ULTIMA_ATUALIZACAO resolves as a series per supplier, so a column
	// that is wholly numeric serials converts even when single cells would
	// be ambiguous.
	for supplier, recs := range finishes {
		supplierRows := finishRowsFor(rows, supplier)
		cells := make([]Cell, len(supplierRows))
		for i, row := range supplierRows {
			cells[i] = FinishField(row, "lastUpdated")
		}
		for i, t := range ResolveSeries(cells) {
			recs[i].UpdatedAt = t
		}
	}
	return finishes
}

func finishRowsFor(rows []Row, supplier string) []Row {
	var out []Row
	for _, row := range rows {
		if Clean(row[ColSupplierKey]) == supplier {
			out = append(out, row)
		}
	}
	return out
}

// Summarize aggregates a set of finish records into the supplier catalog
// served on the detail page: category buckets in insertion order,
// deduplicated finish names, distinct lowercase statuses in first-seen
// order and the maximum resolved last-updated date.
func Summarize(records []entities.FinishRecord) entities.SupplierCatalog {
	sc := entities.SupplierCatalog{LastUpdated: entities.LastUpdatedUnavailable}

	catIdx := make(map[string]int)
	seenFinish := make(map[string]struct{})
	seenStatus := make(map[string]struct{})
	var latest time.Time

	for _, rec := range records {
		idx, ok := catIdx[rec.Category]
		if !ok {
			idx = len(sc.Categories)
			catIdx[rec.Category] = idx
			sc.Categories = append(sc.Categories, entities.Category{Name: rec.Category})
		}
		sc.Categories[idx].Records = append(sc.Categories[idx].Records, rec)

		if rec.Name != "" {
			if _, ok := seenFinish[rec.Name]; !ok {
				seenFinish[rec.Name] = struct{}{}
				sc.FinishNames = append(sc.FinishNames, rec.Name)
			}
		}
		if s := strings.ToLower(strings.TrimSpace(rec.Status)); s != "" {
			if _, ok := seenStatus[s]; !ok {
				seenStatus[s] = struct{}{}
				sc.Statuses = append(sc.Statuses, s)
			}
		}
		if !rec.UpdatedAt.IsZero() && rec.UpdatedAt.After(latest) {
			latest = rec.UpdatedAt
		}
	}
	if !latest.IsZero() {
		sc.LastUpdated = FormatDate(latest)
	}
	return sc
}

// SupplierIDLess is the deterministic total order for supplier ids:
// all-digit ids compare numerically and sort before non-numeric ids,
// which compare lexicographically.
func SupplierIDLess(a, b string) bool {
	an, aok := digitValue(a)
	bn, bok := digitValue(b)
	switch {
	case aok && bok:
		return an < bn
	case aok:
		return true
	case bok:
		return false
	default:
		return a < b
	}
}

func digitValue(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func distinctBrands(productRows []Row) []string {
	seen := make(map[string]struct{})
	var brands []string
	for _, row := range productRows {
		b := Clean(row[ColBrand])
		if b == "" {
			continue
		}
		if _, ok := seen[b]; !ok {
			seen[b] = struct{}{}
			brands = append(brands, b)
		}
	}
	sort.Slice(brands, func(i, j int) bool { return SupplierIDLess(brands[i], brands[j]) })
	return brands
}

func distinctSuppliers(finishes map[string][]entities.FinishRecord, products []entities.Product) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, p := range products {
		if p.SupplierID == "" {
			continue
		}
		if _, ok := seen[p.SupplierID]; !ok {
			seen[p.SupplierID] = struct{}{}
			ids = append(ids, p.SupplierID)
		}
	}
	for id := range finishes {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return SupplierIDLess(ids[i], ids[j]) })
	return ids
}

func contains(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
