package repositories

import (
	"testing"

	bleveindex "licensing-backend/bleve/services"
	"licensing-backend/db/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMemRepo(t *testing.T) BleveRepositoryInterface {
	t.Helper()
	svc := bleveindex.NewIndexingService(zap.NewNop(), "")
	t.Cleanup(func() { svc.Close() })
	return NewBleveRepository(svc)
}

func company(name, krs string) models.Client {
	id := uuid.New()
	return models.Client{
		ID: id, Kind: models.ClientKindCompany, Address: "Kraków", Email: "biuro@" + krs + ".pl", Phone: "123",
		Company: &models.Company{ClientID: id, Name: name, KRS: krs},
	}
}

func person(name, surname string) models.Client {
	id := uuid.New()
	return models.Client{
		ID: id, Kind: models.ClientKindIndividual, Address: "Gdańsk", Email: "x@example.com", Phone: "456",
		Individual: &models.Individual{ClientID: id, Name: name, Surname: surname, PESEL: "90010112345", Status: models.IndividualActive},
	}
}

func TestSearchClientsByNamePrefixAndTypo(t *testing.T) {
	repo := newMemRepo(t)
	acme := company("Acme Software", "0000123456")
	jan := person("Jan", "Kowalski")
	require.NoError(t, repo.IndexExistingClients([]models.Client{acme, jan}))

	res, err := repo.SearchClients("acm", 10)
	require.NoError(t, err)
	require.NotEmpty(t, res.Hits)
	assert.Equal(t, acme.ID.String(), res.Hits[0].ID)

	res, err = repo.SearchClients("kowalsky", 10)
	require.NoError(t, err)
	require.NotEmpty(t, res.Hits)
	assert.Equal(t, jan.ID.String(), res.Hits[0].ID)
}

func TestTombstonedClientLeavesIndex(t *testing.T) {
	repo := newMemRepo(t)
	jan := person("Jan", "Kowalski")
	require.NoError(t, repo.IndexSingleClient(jan))

	res, err := repo.SearchClients("kowalski", 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), res.Total)

	jan.Tombstone(jan.CreatedAt)
	require.NoError(t, repo.IndexSingleClient(jan))

	res, err = repo.SearchClients("kowalski", 10)
	require.NoError(t, err)
	assert.Zero(t, res.Total)
}

func TestResetClients(t *testing.T) {
	repo := newMemRepo(t)
	require.NoError(t, repo.IndexSingleClient(company("Globex", "0000999999")))
	require.NoError(t, repo.ResetClients())

	res, err := repo.SearchClients("globex", 10)
	require.NoError(t, err)
	assert.Zero(t, res.Total)
}
