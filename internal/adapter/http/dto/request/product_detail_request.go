package request

import "strings"

// ProductDetailRequest carries the optional finish search applied to the
// detail page and the PDF export.
type ProductDetailRequest struct {
	FinishSearch string `form:"pesquisa_acabamento"`
}

func (r ProductDetailRequest) ResolveFinishSearch() string {
	return strings.TrimSpace(r.FinishSearch)
}
