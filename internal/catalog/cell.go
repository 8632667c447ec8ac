// Package catalog implements the normalization and resolution engine: it
// unifies arbitrarily named sheets and columns into one schema, reconciles
// inconsistent scalar encodings (float-typed supplier codes, multi-format
// dates, accented free text) and builds the immutable in-memory index the
// query layer serves from.
package catalog

// CellKind tags the scalar variant stored in a spreadsheet cell. Supplier
// sheets carry no declared schema: any column may hold text, a number or
// nothing. All format-specific interpretation happens in this package,
// never in consumers.
type CellKind int

const (
	KindNull CellKind = iota
	KindNumber
	KindText
)

// Cell is a tagged scalar from one spreadsheet cell.
type Cell struct {
	Kind CellKind
	Num  float64
	Text string
}

func NullCell() Cell            { return Cell{Kind: KindNull} }
func NumberCell(v float64) Cell { return Cell{Kind: KindNumber, Num: v} }
func TextCell(s string) Cell    { return Cell{Kind: KindText, Text: s} }

func (c Cell) IsNull() bool { return c.Kind == KindNull }

// Row maps a normalized column name to its cell. A column absent from the
// row behaves exactly like a null cell.
type Row map[string]Cell

// Sheet is one worksheet as delivered by the workbook loader: the header
// row already consumed into per-row column keys.
type Sheet struct {
	Name string
	Rows []Row
}

// Workbook preserves the file's own sheet order, which matters when no
// sheet is named PRODUTOS and the first sheet is used as the products
// table.
type Workbook struct {
	Sheets []Sheet
}
