package handlers

import (
	"errors"
	"net/http"

	"mostruario_digital/internal/adapter/http/dto/request"
	"mostruario_digital/internal/adapter/http/dto/response"
	"mostruario_digital/internal/usecase"
	"mostruario_digital/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidListQuery = pkg.NewDomainErrorSimple("INVALID_LIST_QUERY", "Invalid product listing query", http.StatusBadRequest)
)

// CatalogHandler handles HTTP requests for the showroom catalog: product
// listing, product detail with finish aggregation and the filter control
// values.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListProducts serves the filtered product listing together with the
// distinct brand and supplier values used by the filter controls.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	var payload request.ListProductsRequest
	if err := c.ShouldBindQuery(&payload); err != nil {
		c.JSON(errInvalidListQuery.HTTPStatus, errInvalidListQuery.ToHTTPError())
		return
	}

	filter := usecase.ListFilter{
		Brands:     payload.ResolveBrands(),
		Suppliers:  payload.ResolveSuppliers(),
		NameSearch: payload.ResolveNameSearch(),
	}
	products, err := h.usecase.ListProducts(c.Request.Context(), filter)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	brands, err := h.usecase.DistinctBrands(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	suppliers, err := h.usecase.DistinctSupplierIDs(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(products, brands, suppliers))
}

// GetProduct serves the product detail page data: identity, images and
// the supplier's finish records grouped by category, optionally narrowed
// by the pesquisa_acabamento term.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	var payload request.ProductDetailRequest
	_ = c.ShouldBindQuery(&payload)

	detail, err := h.usecase.GetProductDetail(c.Request.Context(), c.Param("name"), payload.ResolveFinishSearch())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProductDetail(detail))
}

func (h *CatalogHandler) ListBrands(c *gin.Context) {
	brands, err := h.usecase.DistinctBrands(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"brands": brands})
}

func (h *CatalogHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.usecase.DistinctSupplierIDs(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"suppliers": suppliers})
}

// ReloadCatalog rebuilds the index from the workbook and swaps the shared
// snapshot atomically.
func (h *CatalogHandler) ReloadCatalog(c *gin.Context) {
	info, err := h.usecase.Reload(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, info)
}

func mapCatalogError(err error) *pkg.AppError {
	var nf *usecase.ProductNotFoundError
	switch {
	case errors.As(err, &nf):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", nf.Error(), http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidProductName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogUnavailable):
		return pkg.NewDomainErrorSimple("CATALOG_UNAVAILABLE", "Catalog not loaded", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
