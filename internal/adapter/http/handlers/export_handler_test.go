package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mostruario_digital/internal/adapter/http/handlers/mocks"
	"mostruario_digital/internal/domain/entities"
	"mostruario_digital/internal/usecase"
	mock_interfaces "mostruario_digital/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestExportHandler_DownloadFinishSheet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success sets download headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		exporter := mock_interfaces.NewMockIFinishSheetExporter(ctrl)
		h := NewExportHandler(uc, exporter)

		r := gin.New()
		r.GET("/v1/products/:name/pdf", h.DownloadFinishSheet)

		detail := entities.ProductDetail{Product: entities.Product{Name: "Sofa X", SupplierID: "7"}}
		uc.EXPECT().GetProductDetail(gomock.Any(), "Sofa X", "").Return(detail, nil)
		exporter.EXPECT().Render(detail).Return([]byte("%PDF-1.3 fake"), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/products/Sofa%20X/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("unexpected content type %q", ct)
		}
		cd := w.Header().Get("Content-Disposition")
		if !strings.Contains(cd, "Sofa X_acabamentos.pdf") {
			t.Fatalf("unexpected disposition %q", cd)
		}
		if w.Header().Get("Cache-Control") != "no-store" {
			t.Fatalf("expected no-store cache header")
		}
	})

	t.Run("unknown product maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		exporter := mock_interfaces.NewMockIFinishSheetExporter(ctrl)
		h := NewExportHandler(uc, exporter)

		r := gin.New()
		r.GET("/v1/products/:name/pdf", h.DownloadFinishSheet)

		uc.EXPECT().GetProductDetail(gomock.Any(), "Nope", "").
			Return(entities.ProductDetail{}, &usecase.ProductNotFoundError{Name: "Nope"})

		req := httptest.NewRequest(http.MethodGet, "/v1/products/Nope/pdf", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
