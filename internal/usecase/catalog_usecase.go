package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mostruario_digital/internal/catalog"
	"mostruario_digital/internal/domain/entities"
	"mostruario_digital/internal/usecase/interfaces"
)

var (
	ErrCatalogUnavailable = errors.New("catalog not loaded")
	ErrInvalidProductName = errors.New("invalid product name")
)

// ProductNotFoundError reports a lookup miss carrying the requested name.
type ProductNotFoundError struct {
	Name string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %q not found", e.Name)
}

// ListFilter narrows the product listing. Brands and Suppliers are
// OR-within-field and AND-across-fields; an empty list, or any value
// case-insensitively equal to "all"/"todas"/"todos", means no restriction
// for that field. NameSearch is an accent-insensitive substring on the
// product name.
type ListFilter struct {
	Brands     []string
	Suppliers  []string
	NameSearch string
}

// ICatalogUseCase exposes the catalog query operations consumed by the web
// and PDF layers.
type ICatalogUseCase interface {
	ListProducts(ctx context.Context, filter ListFilter) ([]entities.Product, error)
	GetProductDetail(ctx context.Context, name, finishSearch string) (entities.ProductDetail, error)
	DistinctBrands(ctx context.Context) ([]string, error)
	DistinctSupplierIDs(ctx context.Context) ([]string, error)
	Reload(ctx context.Context) (entities.CatalogInfo, error)
}

type CatalogUseCase struct {
	repo         interfaces.ICatalogRepository
	loader       interfaces.IWorkbookLoader
	workbookPath string
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository, loader interfaces.IWorkbookLoader, workbookPath string) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, loader: loader, workbookPath: workbookPath}
}

// ListProducts returns the filtered product listing in the catalog's
// prebuilt order: canonical supplier id (numeric ids first, by value),
// then folded name.
func (u *CatalogUseCase) ListProducts(_ context.Context, filter ListFilter) ([]entities.Product, error) {
	cat := u.repo.Snapshot()
	if cat == nil {
		return nil, ErrCatalogUnavailable
	}

	brands := normalizeFilterValues(filter.Brands)
	suppliers := normalizeSupplierValues(filter.Suppliers)
	search := catalog.SearchKey(strings.TrimSpace(filter.NameSearch))

	out := make([]entities.Product, 0, len(cat.Products))
	for _, p := range cat.Products {
		if brands != nil {
			if _, ok := brands[p.Brand]; !ok {
				continue
			}
		}
		if suppliers != nil {
			if _, ok := suppliers[p.SupplierID]; !ok {
				continue
			}
		}
		if search != "" && !strings.Contains(catalog.SearchKey(p.Name), search) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// GetProductDetail resolves a product by exact name, falling back to a
// trimmed case-insensitive match, and aggregates its supplier's finish
// records. A non-empty finishSearch narrows the records by accent-folded
// substring over finish name, type, composition, restriction and extra
// info; the supplier aggregates are computed from the same filtered set,
// so the summary always describes the records being shown.
func (u *CatalogUseCase) GetProductDetail(_ context.Context, name, finishSearch string) (entities.ProductDetail, error) {
	if strings.TrimSpace(name) == "" {
		return entities.ProductDetail{}, ErrInvalidProductName
	}
	cat := u.repo.Snapshot()
	if cat == nil {
		return entities.ProductDetail{}, ErrCatalogUnavailable
	}

	idx, ok := cat.NameIndex[name]
	if !ok {
		idx, ok = cat.FoldedNameIndex[strings.ToLower(strings.TrimSpace(name))]
	}
	if !ok {
		return entities.ProductDetail{}, &ProductNotFoundError{Name: name}
	}
	product := cat.Products[idx]

	records := cat.Finishes[product.SupplierID]
	if term := catalog.SearchKey(strings.TrimSpace(finishSearch)); term != "" {
		filtered := make([]entities.FinishRecord, 0, len(records))
		for _, rec := range records {
			if strings.Contains(rec.SearchKey, term) {
				filtered = append(filtered, rec)
			}
		}
		records = filtered
	}

	return entities.ProductDetail{
		Product:  product,
		Supplier: catalog.Summarize(records),
	}, nil
}

func (u *CatalogUseCase) DistinctBrands(_ context.Context) ([]string, error) {
	cat := u.repo.Snapshot()
	if cat == nil {
		return nil, ErrCatalogUnavailable
	}
	return cat.Brands, nil
}

func (u *CatalogUseCase) DistinctSupplierIDs(_ context.Context) ([]string, error) {
	cat := u.repo.Snapshot()
	if cat == nil {
		return nil, ErrCatalogUnavailable
	}
	return cat.SupplierIDs, nil
}

// Reload builds a fresh index from the workbook and swaps the shared
// snapshot. Readers keep serving the previous snapshot until the swap.
func (u *CatalogUseCase) Reload(ctx context.Context) (entities.CatalogInfo, error) {
	wb, err := u.loader.Load(ctx, u.workbookPath)
	if err != nil {
		return entities.CatalogInfo{}, err
	}
	cat := catalog.Build(wb)
	u.repo.Replace(cat)
	return entities.CatalogInfo{
		BuildID:   cat.BuildID,
		LoadedAt:  cat.LoadedAt,
		Products:  len(cat.Products),
		Suppliers: len(cat.SupplierIDs),
	}, nil
}

// normalizeFilterValues trims the values and returns nil (no restriction)
// when the list is empty or contains an "all" marker.
func normalizeFilterValues(values []string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		switch strings.ToLower(v) {
		case "all", "todas", "todos":
			return nil
		}
		set[v] = struct{}{}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

// normalizeSupplierValues additionally canonicalizes every id, so "7",
// " 7 " and "7.0" all select the supplier stored under "7".
func normalizeSupplierValues(values []string) map[string]struct{} {
	set := normalizeFilterValues(values)
	if set == nil {
		return nil
	}
	canonical := make(map[string]struct{}, len(set))
	for v := range set {
		canonical[catalog.CanonicalSupplierID(catalog.TextCell(v))] = struct{}{}
	}
	return canonical
}
