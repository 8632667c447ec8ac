package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"mostruario_digital/internal/domain/entities"
	"mostruario_digital/internal/usecase/interfaces"
)

// FinishSheetExporter renders a product's finish catalog as a printable
// A4 sheet, one table per category with status cells tinted the same
// colors the API reports.
type FinishSheetExporter struct{}

var _ interfaces.IFinishSheetExporter = (*FinishSheetExporter)(nil)

func NewFinishSheetExporter() *FinishSheetExporter {
	return &FinishSheetExporter{}
}

var columns = []struct {
	title string
	width float64
}{
	{"Acabamento", 38},
	{"Status", 24},
	{"Data", 20},
	{"Composição", 43},
	{"Restrição", 30},
	{"Informações", 35},
}

func (e *FinishSheetExporter) Render(detail entities.ProductDetail) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetTitle(tr(detail.Product.Name), false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, tr(detail.Product.Name), "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(90, 90, 90)
	subtitle := fmt.Sprintf("Marca: %s  |  Fornecedor: %s", detail.Product.Brand, detail.Product.SupplierID)
	doc.CellFormat(0, 6, tr(subtitle), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, tr("Última atualização: "+detail.Supplier.LastUpdated), "", 1, "L", false, 0, "")
	doc.Ln(2)

	for _, category := range detail.Supplier.Categories {
		e.renderCategory(doc, tr, category)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render finish sheet for %s: %w", detail.Product.Name, err)
	}
	return buf.Bytes(), nil
}

func (e *FinishSheetExporter) renderCategory(doc *gofpdf.Fpdf, tr func(string) string, category entities.Category) {
	doc.SetFont("Helvetica", "B", 11)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(0, 8, tr(category.Name), "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "B", 8)
	doc.SetFillColor(230, 230, 230)
	for _, col := range columns {
		doc.CellFormat(col.width, 6, tr(col.title), "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 8)
	for _, rec := range category.Records {
		values := []string{rec.Name, rec.Status, rec.StatusDate, rec.Composition, rec.Restriction, rec.Info}
		for i, col := range columns {
			if col.title == "Status" {
				r, g, b := hexColor(rec.StatusColor)
				doc.SetTextColor(r, g, b)
			} else {
				doc.SetTextColor(0, 0, 0)
			}
			doc.CellFormat(col.width, 6, tr(truncate(values[i], 34)), "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	}
	doc.SetTextColor(0, 0, 0)
	doc.Ln(3)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// hexColor parses a #RRGGBB status color, falling back to black.
func hexColor(hex string) (int, int, int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}
