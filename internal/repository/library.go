package repository

import (
	"context"

	"github.com/specialistvlad/memgridgo/internal/design"
	"github.com/specialistvlad/memgridgo/internal/vlnv"
)

// Library resolves document references. Implementations must be safe for
// concurrent reads.
type Library interface {
	// Document returns the document identified by ref, or false when the
	// library holds no such document.
	Document(ctx context.Context, ref vlnv.VLNV) (design.Document, bool)
}
