package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophfx/internal/common"
	"github.com/dmitrijs2005/gophfx/internal/models"
	"github.com/dmitrijs2005/gophfx/internal/repositories/history"
)

// HistoryService appends to and reads the per-owner conversion ledger.
// The empty owner is the guest ledger.
type HistoryService interface {
	Record(ctx context.Context, owner string, rec models.ConversionRecord) (models.ConversionRecord, error)
	List(ctx context.Context, owner string) ([]models.ConversionRecord, error)
}

type historyService struct {
	repo history.Repository
}

// NewHistoryService stores timestamps as civil time in loc.
func NewHistoryService(db *sql.DB, loc *time.Location) HistoryService {
	return &historyService{repo: history.NewSQLiteRepository(db, loc)}
}

// Record stores rec under owner and returns it with ID and Owner set.
func (s *historyService) Record(ctx context.Context, owner string, rec models.ConversionRecord) (models.ConversionRecord, error) {
	rec.Owner = owner
	rec.ID = 0

	if err := s.repo.Append(ctx, &rec); err != nil {
		return models.ConversionRecord{}, fmt.Errorf("%w: record conversion: %w", common.ErrStore, err)
	}
	return rec, nil
}

func (s *historyService) List(ctx context.Context, owner string) ([]models.ConversionRecord, error) {
	recs, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%w: list history: %w", common.ErrStore, err)
	}
	return recs, nil
}
