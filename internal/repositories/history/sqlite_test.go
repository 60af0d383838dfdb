package history

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gophfx/internal/models"
	"github.com/dmitrijs2005/gophfx/internal/store"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := store.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func kolkata(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func record(owner, from, to string, amount, rate float64, ts time.Time) models.ConversionRecord {
	return models.ConversionRecord{
		Owner:           owner,
		Amount:          amount,
		FromCurrency:    from,
		ToCurrency:      to,
		Rate:            rate,
		ConvertedAmount: amount * rate,
		Timestamp:       ts,
	}
}

func TestAppend_ThenList(t *testing.T) {
	loc := kolkata(t)
	r := NewSQLiteRepository(setupDB(t), loc)
	ctx := context.Background()

	ts := time.Date(2024, 5, 1, 15, 30, 0, 0, loc)
	first := record("alice", "USD", "EUR", 10, 0.9, ts)
	second := record("alice", "INR", "USD", 100, 1.0/83.0, ts.Add(time.Minute))

	require.NoError(t, r.Append(ctx, &first))
	require.NoError(t, r.Append(ctx, &second))
	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)

	got, err := r.ListByOwner(ctx, "alice")
	require.NoError(t, err)

	want := []models.ConversionRecord{first, second}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListByOwner mismatch (-want +got):\n%s", diff)
	}
}

func TestListByOwner_Empty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t), time.UTC)

	got, err := r.ListByOwner(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListByOwner_ScopedPerOwner(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t), time.UTC)
	ctx := context.Background()
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	for _, rec := range []models.ConversionRecord{
		record("alice", "USD", "EUR", 1, 0.9, ts),
		record("", "USD", "INR", 2, 83, ts),
		record("bob", "EUR", "USD", 3, 1.1, ts),
		record("alice", "USD", "INR", 4, 83, ts),
		record("", "INR", "EUR", 5, 0.01, ts),
	} {
		rec := rec
		require.NoError(t, r.Append(ctx, &rec))
	}

	amounts := func(recs []models.ConversionRecord) []float64 {
		out := make([]float64, 0, len(recs))
		for _, rec := range recs {
			out = append(out, rec.Amount)
		}
		return out
	}

	alice, err := r.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4}, amounts(alice))

	bob, err := r.ListByOwner(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, amounts(bob))

	guest, err := r.ListByOwner(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, amounts(guest))
	for _, rec := range guest {
		assert.Empty(t, rec.Owner)
	}
}

func TestAppend_StoresGuestOwnerAsNull(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db, time.UTC)
	ctx := context.Background()

	rec := record("", "USD", "EUR", 1, 0.9, time.Now())
	require.NoError(t, r.Append(ctx, &rec))

	var owner sql.NullString
	require.NoError(t, db.QueryRowContext(ctx, `SELECT owner FROM history WHERE id = ?`, rec.ID).Scan(&owner))
	assert.False(t, owner.Valid)
}

func TestAppend_TimestampWrittenInRepositoryZone(t *testing.T) {
	loc := kolkata(t)
	db := setupDB(t)
	r := NewSQLiteRepository(db, loc)
	ctx := context.Background()

	rec := record("alice", "USD", "EUR", 1, 0.9, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, r.Append(ctx, &rec))

	var stamp string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT timestamp FROM history WHERE id = ?`, rec.ID).Scan(&stamp))
	assert.Equal(t, "2024-05-01 15:30:00", stamp)

	got, err := r.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, rec.Timestamp.Equal(got[0].Timestamp))
	assert.Equal(t, loc, got[0].Timestamp.Location())
}

func TestAppend_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO history").WillReturnError(errors.New("disk I/O error"))

	rec := record("alice", "USD", "EUR", 1, 0.9, time.Now())
	err = NewSQLiteRepository(db, time.UTC).Append(context.Background(), &rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert conversion")
	assert.Zero(t, rec.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByOwner_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, owner").WithArgs("alice").WillReturnError(errors.New("boom"))

	_, err = NewSQLiteRepository(db, time.UTC).ListByOwner(context.Background(), "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to select conversions")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByOwner_BadTimestamp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "owner", "amount", "from_currency", "to_currency", "rate", "converted_amount", "timestamp"}).
		AddRow(1, "alice", 10.0, "USD", "EUR", 0.9, 9.0, "yesterday")
	mock.ExpectQuery("SELECT id, owner").WillReturnRows(rows)

	_, err = NewSQLiteRepository(db, time.UTC).ListByOwner(context.Background(), "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse timestamp")
}
