package response

import (
	"mostruario_digital/internal/domain/entities"
)

// ProductSummaryResponse is one row of the product listing.
type ProductSummaryResponse struct {
	Name       string `json:"name"`
	Brand      string `json:"brand"`
	SupplierID string `json:"supplier_id"`
	Image      string `json:"image"`
}

func FromProduct(p entities.Product) ProductSummaryResponse {
	img := ""
	if len(p.Images) > 0 {
		img = p.Images[0]
	}
	return ProductSummaryResponse{
		Name:       p.Name,
		Brand:      p.Brand,
		SupplierID: p.SupplierID,
		Image:      img,
	}
}

// ProductListResponse carries the filtered listing plus the distinct
// brand/supplier values that populate the filter controls.
type ProductListResponse struct {
	Products  []ProductSummaryResponse `json:"products"`
	Brands    []string                 `json:"brands"`
	Suppliers []string                 `json:"suppliers"`
}

func FromProducts(products []entities.Product, brands, suppliers []string) ProductListResponse {
	out := ProductListResponse{
		Products:  make([]ProductSummaryResponse, 0, len(products)),
		Brands:    brands,
		Suppliers: suppliers,
	}
	for _, p := range products {
		out.Products = append(out.Products, FromProduct(p))
	}
	return out
}

// ProductDetailResponse is the product detail payload: identity, images
// and the per-supplier finish sheet grouped by category.
type ProductDetailResponse struct {
	Name        string              `json:"name"`
	Brand       string              `json:"brand"`
	SupplierID  string              `json:"supplier_id"`
	Images      []string            `json:"images"`
	Categories  []entities.Category `json:"categories"`
	FinishNames []string            `json:"finish_names"`
	Statuses    []string            `json:"statuses"`
	LastUpdated string              `json:"last_updated"`
}

func FromProductDetail(d entities.ProductDetail) ProductDetailResponse {
	return ProductDetailResponse{
		Name:        d.Product.Name,
		Brand:       d.Product.Brand,
		SupplierID:  d.Product.SupplierID,
		Images:      d.Product.Images,
		Categories:  d.Supplier.Categories,
		FinishNames: d.Supplier.FinishNames,
		Statuses:    d.Supplier.Statuses,
		LastUpdated: d.Supplier.LastUpdated,
	}
}
