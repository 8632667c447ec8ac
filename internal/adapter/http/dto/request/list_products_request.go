package request

import "strings"

// ListProductsRequest carries the listing filters. The showroom front-end
// historically sends checkbox arrays as "marca[]"/"fornecedor[]"; the
// plain keys are accepted too.
type ListProductsRequest struct {
	Brands         []string `form:"marca[]"`
	BrandsPlain    []string `form:"marca"`
	Suppliers      []string `form:"fornecedor[]"`
	SuppliersPlain []string `form:"fornecedor"`
	NameSearch     string   `form:"pesquisar_produto"`
}

func (r ListProductsRequest) ResolveBrands() []string {
	return mergeValues(r.Brands, r.BrandsPlain)
}

func (r ListProductsRequest) ResolveSuppliers() []string {
	return mergeValues(r.Suppliers, r.SuppliersPlain)
}

func (r ListProductsRequest) ResolveNameSearch() string {
	return strings.TrimSpace(r.NameSearch)
}

func mergeValues(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		for _, v := range g {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
