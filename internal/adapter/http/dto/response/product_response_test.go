package response

import (
	"testing"

	"mostruario_digital/internal/domain/entities"
)

func TestFromProduct(t *testing.T) {
	p := entities.Product{
		Name:       "Sofa X",
		Brand:      "Acme",
		SupplierID: "7",
		Images:     []string{"/static/img/a.jpg", "/static/img/b.jpg"},
	}
	res := FromProduct(p)
	if res.Name != "Sofa X" || res.Brand != "Acme" || res.SupplierID != "7" {
		t.Fatalf("unexpected mapping: %+v", res)
	}
	if res.Image != "/static/img/a.jpg" {
		t.Fatalf("expected the first image, got %q", res.Image)
	}

	if got := FromProduct(entities.Product{Name: "Mesa"}); got.Image != "" {
		t.Fatalf("expected empty image, got %q", got.Image)
	}
}

func TestFromProducts(t *testing.T) {
	res := FromProducts(
		[]entities.Product{{Name: "Sofa X"}},
		[]string{"Acme"},
		[]string{"7"},
	)
	if len(res.Products) != 1 || res.Products[0].Name != "Sofa X" {
		t.Fatalf("unexpected products: %+v", res.Products)
	}
	if len(res.Brands) != 1 || len(res.Suppliers) != 1 {
		t.Fatalf("filter lists not carried: %+v", res)
	}
}

func TestFromProductDetail(t *testing.T) {
	d := entities.ProductDetail{
		Product: entities.Product{Name: "Sofa X", Brand: "Acme", SupplierID: "7", Images: []string{"/static/a.jpg"}},
		Supplier: entities.SupplierCatalog{
			Categories:  []entities.Category{{Name: "Revestimento", Records: []entities.FinishRecord{{Name: "Couro", Status: "Ativo"}}}},
			FinishNames: []string{"Couro"},
			Statuses:    []string{"ativo"},
			LastUpdated: "22/02/2024",
		},
	}
	res := FromProductDetail(d)
	if res.Name != "Sofa X" || res.SupplierID != "7" {
		t.Fatalf("unexpected identity: %+v", res)
	}
	if len(res.Categories) != 1 || res.Categories[0].Records[0].Name != "Couro" {
		t.Fatalf("unexpected categories: %+v", res.Categories)
	}
	if res.LastUpdated != "22/02/2024" || len(res.Statuses) != 1 {
		t.Fatalf("aggregates not carried: %+v", res)
	}
}
