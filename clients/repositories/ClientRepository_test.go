package repositories

import (
	"context"
	"errors"
	"testing"

	"licensing-backend/db/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
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

func TestGetByIDForUpdateLocksRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "clients" WHERE id = \$1 ORDER BY "clients"."id" LIMIT \$2 FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "kind", "address", "email", "phone"}).
			AddRow(id.String(), "COMPANY", "ul. Prosta 1", "biuro@acme.pl", "600100200"))
	mock.ExpectQuery(`SELECT \* FROM "companies" WHERE "companies"."client_id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"client_id", "name", "krs"}).AddRow(id.String(), "Acme", "0000123456"))
	mock.ExpectQuery(`SELECT \* FROM "individuals" WHERE "individuals"."client_id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"client_id"}))

	client, err := repo.GetByIDForUpdate(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.ClientKindCompany, client.Kind)
	require.NotNil(t, client.Company)
	assert.Equal(t, "Acme", client.Company.Name)
	assert.Nil(t, client.Individual)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "clients"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPESELTakenIgnoresTombstoned(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "individuals" WHERE pesel = \$1 AND status = \$2 AND client_id <> \$3`).
		WithArgs("90010112345", models.IndividualActive, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	taken, err := repo.PESELTaken(context.Background(), "90010112345", uuid.Nil)
	require.NoError(t, err)
	assert.False(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}
