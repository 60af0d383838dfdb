package history

import (
	"context"

	"github.com/dmitrijs2005/gophfx/internal/models"
)

// Repository is the append-only conversion ledger. Records are scoped by
// owner; the empty owner is the guest ledger.
type Repository interface {
	Append(ctx context.Context, rec *models.ConversionRecord) error
	ListByOwner(ctx context.Context, owner string) ([]models.ConversionRecord, error)
}
