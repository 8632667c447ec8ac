package interfaces

import (
	"mostruario_digital/internal/domain/entities"
)

// IFinishSheetExporter renders a product's finish sheet for download. The
// exporter is a pure consumer of normalized records; it never reaches back
// into the workbook.

type IFinishSheetExporter interface {
	Render(detail entities.ProductDetail) ([]byte, error)
}
