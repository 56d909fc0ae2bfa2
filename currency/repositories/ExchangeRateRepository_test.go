package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestGetLastKnown(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewExchangeRateRepository(db)

	fetched := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "base_currency", "target_currency", "rate", "fetched_at"}).
		AddRow("9f1c1f2e-3c44-4c1d-9a8e-1b2c3d4e5f60", "PLN", "EUR", "0.23150000", fetched)
	mock.ExpectQuery(`SELECT \* FROM "exchange_rates" WHERE \(base_currency = \$1 AND target_currency = \$2\)`).
		WillReturnRows(rows)

	rate, err := repo.GetLastKnown(context.Background(), "PLN", "EUR")
	require.NoError(t, err)
	require.NotNil(t, rate)
	assert.True(t, rate.Rate.Equal(decimal.RequireFromString("0.2315")))
	assert.True(t, rate.FetchedAt.Equal(fetched))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLastKnownMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewExchangeRateRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "exchange_rates"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rate, err := repo.GetLastKnown(context.Background(), "PLN", "GBP")
	require.NoError(t, err)
	assert.Nil(t, rate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRatesUpserts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewExchangeRateRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "exchange_rates" .* ON CONFLICT \("base_currency","target_currency"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.SaveRates(context.Background(), "PLN", map[string]decimal.Decimal{
		"EUR": decimal.RequireFromString("0.2315"),
	}, time.Now())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
