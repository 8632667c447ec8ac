package handlers

import (
	"fmt"
	"net/http"

	"mostruario_digital/internal/adapter/http/dto/request"
	"mostruario_digital/internal/usecase"
	"mostruario_digital/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// ExportHandler serves the finish sheet PDF download. It reuses the exact
// detail data path of CatalogHandler.GetProduct, so the PDF always matches
// what the detail page shows, including an active finish search.

type ExportHandler struct {
	usecase  usecase.ICatalogUseCase
	exporter interfaces.IFinishSheetExporter
}

func NewExportHandler(uc usecase.ICatalogUseCase, exporter interfaces.IFinishSheetExporter) *ExportHandler {
	return &ExportHandler{usecase: uc, exporter: exporter}
}

func (h *ExportHandler) DownloadFinishSheet(c *gin.Context) {
	var payload request.ProductDetailRequest
	_ = c.ShouldBindQuery(&payload)

	name := c.Param("name")
	detail, err := h.usecase.GetProductDetail(c.Request.Context(), name, payload.ResolveFinishSearch())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	pdf, err := h.exporter.Render(detail)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", detail.Product.Name+"_acabamentos.pdf"))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdf)
}
