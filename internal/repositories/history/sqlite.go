package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophfx/internal/dbx"
	"github.com/dmitrijs2005/gophfx/internal/models"
)

// SQLiteRepository stores every owner's records in the shared history table.
// Timestamps are written as civil time in loc using models.TimestampLayout.
type SQLiteRepository struct {
	db  dbx.DBTX
	loc *time.Location
}

func NewSQLiteRepository(db dbx.DBTX, loc *time.Location) *SQLiteRepository {
	if loc == nil {
		loc = time.UTC
	}
	return &SQLiteRepository{db: db, loc: loc}
}

func (r *SQLiteRepository) Append(ctx context.Context, rec *models.ConversionRecord) error {
	query := `INSERT INTO history (owner, amount, from_currency, to_currency, rate, converted_amount, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		ownerValue(rec.Owner),
		rec.Amount,
		rec.FromCurrency,
		rec.ToCurrency,
		rec.Rate,
		rec.ConvertedAmount,
		rec.Timestamp.In(r.loc).Format(models.TimestampLayout),
	)
	if err != nil {
		return fmt.Errorf("failed to insert conversion: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get conversion id: %w", err)
	}
	rec.ID = id
	return nil
}

// ListByOwner returns the owner's records in insertion order. The result is
// an empty, non-nil slice when there are none.
func (r *SQLiteRepository) ListByOwner(ctx context.Context, owner string) ([]models.ConversionRecord, error) {
	query := `SELECT id, owner, amount, from_currency, to_currency, rate, converted_amount, timestamp
		FROM history WHERE owner IS ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, ownerValue(owner))
	if err != nil {
		return nil, fmt.Errorf("failed to select conversions: %w", err)
	}
	defer rows.Close()

	result := make([]models.ConversionRecord, 0)
	for rows.Next() {
		var (
			rec   models.ConversionRecord
			who   sql.NullString
			stamp string
		)
		if err := rows.Scan(&rec.ID, &who, &rec.Amount, &rec.FromCurrency, &rec.ToCurrency,
			&rec.Rate, &rec.ConvertedAmount, &stamp); err != nil {
			return nil, fmt.Errorf("failed to scan conversion row: %w", err)
		}
		rec.Owner = who.String

		rec.Timestamp, err = time.ParseInLocation(models.TimestampLayout, stamp, r.loc)
		if err != nil {
			return nil, fmt.Errorf("failed to parse timestamp of conversion %d: %w", rec.ID, err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conversion rows: %w", err)
	}
	return result, nil
}

// ownerValue maps the guest owner to NULL.
func ownerValue(owner string) any {
	if owner == "" {
		return nil
	}
	return owner
}
