package interfaces

import (
	"context"

	"mostruario_digital/internal/catalog"
)

// IWorkbookLoader abstracts the one I/O boundary of the engine: given a
// file, return the raw sheet tables. It either returns a complete table
// set or fails; there is no partial result.

type IWorkbookLoader interface {
	Load(ctx context.Context, path string) (catalog.Workbook, error)
}
